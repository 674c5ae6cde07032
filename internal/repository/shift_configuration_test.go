//go:build integration
// +build integration

package repository

import (
	"testing"

	"club-shifts-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ShiftConfigurationRepositoryTestSuite tests the ShiftConfigurationRepository
type ShiftConfigurationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ShiftConfigurationRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ShiftConfigurationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewShiftConfigurationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ShiftConfigurationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ShiftConfigurationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ShiftConfigurationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestGetOrCreateIsIdempotent tests the configuration row is created once per club
func (suite *ShiftConfigurationRepositoryTestSuite) TestGetOrCreateIsIdempotent() {
	club := suite.factories.Club.Create()
	suite.Require().NoError(NewClubRepository(suite.baseTestSuite.DB).Create(club))

	_, err := suite.repo.GetByClubID(club.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)

	first, err := suite.repo.GetOrCreate(club.ID)
	suite.NoError(err)
	suite.True(first.RotationEnabled)
	suite.Nil(first.CurrentWindowID)

	second, err := suite.repo.GetOrCreate(club.ID)
	suite.NoError(err)
	suite.Equal(first.ID, second.ID)
}

// TestSetCurrentWindow tests assigning and clearing the current jornada
func (suite *ShiftConfigurationRepositoryTestSuite) TestSetCurrentWindow() {
	db := suite.baseTestSuite.DB
	club := suite.factories.Club.Create()
	suite.Require().NoError(NewClubRepository(db).Create(club))
	window := suite.factories.ShiftWindow.Create(club.ID)
	suite.Require().NoError(NewShiftWindowRepository(db).Create(window))

	_, err := suite.repo.GetOrCreate(club.ID)
	suite.NoError(err)

	suite.NoError(suite.repo.SetCurrentWindow(club.ID, &window.ID))
	cfg, err := suite.repo.GetByClubID(club.ID)
	suite.NoError(err)
	suite.True(cfg.IsCurrent(window.ID))
	suite.False(cfg.IsCurrent(uuid.New()))

	suite.NoError(suite.repo.SetRotationEnabled(club.ID, false))
	suite.NoError(suite.repo.SetCurrentWindow(club.ID, nil))
	cfg, err = suite.repo.GetByClubID(club.ID)
	suite.NoError(err)
	suite.Nil(cfg.CurrentWindowID)
	suite.False(cfg.RotationEnabled)
}

// Run the test suite
func TestShiftConfigurationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftConfigurationRepositoryTestSuite))
}
