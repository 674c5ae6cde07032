package service_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"club-shifts-backend/internal/database/models"
	apperrors "club-shifts-backend/internal/errors"
	"club-shifts-backend/internal/mocks"
	"club-shifts-backend/internal/schedule"
	"club-shifts-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ShiftResolverServiceTestSuite defines the test suite for ShiftResolverService
type ShiftResolverServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockWindowRepo  *mocks.MockShiftWindowRepositoryInterface
	mockClubRepo    *mocks.MockClubRepositoryInterface
	resolverService *service.ShiftResolverService
	club            *models.Club
	morning         models.ShiftWindow
	afternoon       models.ShiftWindow
	night           models.ShiftWindow
}

// SetupTest sets up the test suite
func (suite *ShiftResolverServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockWindowRepo = mocks.NewMockShiftWindowRepositoryInterface(suite.ctrl)
	suite.mockClubRepo = mocks.NewMockClubRepositoryInterface(suite.ctrl)

	// 2025-01-07 is a Tuesday
	clock := schedule.FixedClock{At: time.Date(2025, 1, 7, 10, 0, 0, 0, time.UTC)}
	suite.resolverService = service.NewShiftResolverService(suite.mockWindowRepo, suite.mockClubRepo, clock, time.UTC)

	suite.club = &models.Club{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "club", Timezone: "UTC"}
	suite.morning = suite.window("Mañana", "07:00", "12:00", 1, schedule.AllWeekdays...)
	suite.afternoon = suite.window("Tarde", "15:00", "21:00", 2, schedule.AllWeekdays...)
	suite.night = suite.window("Noche", "22:00", "06:00", 1, schedule.Friday, schedule.Saturday)
}

// TearDownTest cleans up after each test
func (suite *ShiftResolverServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ShiftResolverServiceTestSuite) window(name, start, end string, order int, days ...schedule.Weekday) models.ShiftWindow {
	return models.ShiftWindow{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ClubID:    suite.club.ID,
		Name:      name,
		StartTime: start,
		EndTime:   end,
		Weekdays:  schedule.NewWeekdaySet(days...),
		Active:    true,
		SortOrder: order,
	}
}

func (suite *ShiftResolverServiceTestSuite) expect(windows ...models.ShiftWindow) {
	suite.mockClubRepo.EXPECT().GetByID(suite.club.ID).Return(suite.club, nil).Times(1)
	suite.mockWindowRepo.EXPECT().GetActiveByClubID(suite.club.ID).Return(windows, nil).Times(1)
}

func (suite *ShiftResolverServiceTestSuite) resolve(now time.Time) *service.ActiveWindowResponse {
	resp, err := suite.resolverService.ResolveActiveWindow(context.Background(), suite.club.ID, now)
	require.NoError(suite.T(), err)
	return resp
}

// TestMorningAndAfternoon tests the two-window weekday scenario
func (suite *ShiftResolverServiceTestSuite) TestMorningAndAfternoon() {
	suite.expect(suite.morning, suite.afternoon)
	resp := suite.resolve(time.Date(2025, 1, 7, 10, 0, 0, 0, time.UTC))
	require.NotNil(suite.T(), resp.Window)
	assert.Equal(suite.T(), "Mañana", resp.Window.Name)
	assert.Equal(suite.T(), "martes", resp.Weekday)
	assert.Equal(suite.T(), "10:00", resp.Time)
	assert.Equal(suite.T(), 120, *resp.MinutesUntilBoundary)
	assert.Nil(suite.T(), resp.FallbackWindow)

	suite.expect(suite.morning, suite.afternoon)
	resp = suite.resolve(time.Date(2025, 1, 7, 16, 0, 0, 0, time.UTC))
	require.NotNil(suite.T(), resp.Window)
	assert.Equal(suite.T(), "Tarde", resp.Window.Name)
	assert.Equal(suite.T(), 300, *resp.MinutesUntilBoundary)
}

// TestGapFallsBackToFirstWindow tests that a gap is data, not an error, and is logged
func (suite *ShiftResolverServiceTestSuite) TestGapFallsBackToFirstWindow() {
	var buf bytes.Buffer
	prev := logrus.StandardLogger().Out
	logrus.SetOutput(&buf)
	logrus.SetFormatter(&logrus.JSONFormatter{})
	defer logrus.SetOutput(prev)

	// Listed out of order; the fallback still picks the lowest order
	suite.expect(suite.afternoon, suite.morning)
	resp := suite.resolve(time.Date(2025, 1, 7, 13, 0, 0, 0, time.UTC))

	assert.Nil(suite.T(), resp.Window)
	assert.Nil(suite.T(), resp.MinutesUntilBoundary)
	require.NotNil(suite.T(), resp.FallbackWindow)
	assert.Equal(suite.T(), "Mañana", resp.FallbackWindow.Name)

	var entry map[string]interface{}
	require.NoError(suite.T(), json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(suite.T(), "warning", entry["level"])
	assert.Equal(suite.T(), suite.club.ID.String(), entry["club_id"])
}

// TestResolvedWindowSerializesNull tests that "no active window" is an explicit null
func (suite *ShiftResolverServiceTestSuite) TestResolvedWindowSerializesNull() {
	suite.expect()
	resp := suite.resolve(time.Date(2025, 1, 7, 13, 0, 0, 0, time.UTC))

	body, err := json.Marshal(resp)
	require.NoError(suite.T(), err)
	assert.Contains(suite.T(), string(body), `"window":null`)
	assert.NotContains(suite.T(), string(body), "fallback_window")
}

// TestMidnightCrossingWeekdays tests a Friday/Saturday night jornada
func (suite *ShiftResolverServiceTestSuite) TestMidnightCrossingWeekdays() {
	// Saturday 01:00 is inside the window that started Friday night
	suite.expect(suite.night)
	resp := suite.resolve(time.Date(2025, 1, 11, 1, 0, 0, 0, time.UTC))
	require.NotNil(suite.T(), resp.Window)
	assert.Equal(suite.T(), "Noche", resp.Window.Name)
	assert.Equal(suite.T(), 300, *resp.MinutesUntilBoundary)

	// Saturday 23:30 counts down across midnight
	suite.expect(suite.night)
	resp = suite.resolve(time.Date(2025, 1, 11, 23, 30, 0, 0, time.UTC))
	require.NotNil(suite.T(), resp.Window)
	assert.Equal(suite.T(), 390, *resp.MinutesUntilBoundary)

	// Sunday 01:00 is not in the applicable set
	suite.expect(suite.night)
	resp = suite.resolve(time.Date(2025, 1, 12, 1, 0, 0, 0, time.UTC))
	assert.Nil(suite.T(), resp.Window)
	assert.Equal(suite.T(), "domingo", resp.Weekday)
}

// TestOverlapLowestOrderWins tests deterministic tie-breaking
func (suite *ShiftResolverServiceTestSuite) TestOverlapLowestOrderWins() {
	wide := suite.window("Amplia", "08:00", "20:00", 5, schedule.AllWeekdays...)
	narrow := suite.window("Centro", "09:00", "11:00", 2, schedule.AllWeekdays...)
	now := time.Date(2025, 1, 7, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		suite.expect(wide, narrow)
		resp := suite.resolve(now)
		require.NotNil(suite.T(), resp.Window)
		assert.Equal(suite.T(), "Centro", resp.Window.Name)
	}
}

// TestClubLocation tests that now is read in the club's timezone
func (suite *ShiftResolverServiceTestSuite) TestClubLocation() {
	suite.club.Timezone = "America/Argentina/Buenos_Aires"
	suite.expect(suite.morning, suite.afternoon)

	// 13:00 UTC is 10:00 in Buenos Aires (UTC-3)
	resp := suite.resolve(time.Date(2025, 1, 7, 13, 0, 0, 0, time.UTC))
	require.NotNil(suite.T(), resp.Window)
	assert.Equal(suite.T(), "Mañana", resp.Window.Name)
	assert.Equal(suite.T(), "10:00", resp.Time)
}

// TestMalformedRowIsReported tests a corrupt stored time fails resolution naming the row
func (suite *ShiftResolverServiceTestSuite) TestMalformedRowIsReported() {
	broken := suite.window("Rota", "7am", "12:00", 0, schedule.AllWeekdays...)
	suite.expect(suite.morning, broken)

	resp, err := suite.resolverService.ResolveActiveWindow(context.Background(), suite.club.ID,
		time.Date(2025, 1, 7, 10, 0, 0, 0, time.UTC))
	assert.Nil(suite.T(), resp)
	require.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), broken.ID.String())
}

// TestResolveAt tests explicit instants and the injected clock
func (suite *ShiftResolverServiceTestSuite) TestResolveAt() {
	suite.expect(suite.morning, suite.afternoon)
	resp, err := suite.resolverService.ResolveAt(context.Background(), suite.club.ID, "")
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), resp.Window)
	assert.Equal(suite.T(), "Mañana", resp.Window.Name)

	suite.expect(suite.morning, suite.afternoon)
	resp, err = suite.resolverService.ResolveAt(context.Background(), suite.club.ID, "2025-01-07T16:30")
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), resp.Window)
	assert.Equal(suite.T(), "Tarde", resp.Window.Name)
}

// TestResolveAtInvalidInstant tests malformed instants are validation errors
func (suite *ShiftResolverServiceTestSuite) TestResolveAtInvalidInstant() {
	suite.mockClubRepo.EXPECT().GetByID(suite.club.ID).Return(suite.club, nil).Times(1)

	resp, err := suite.resolverService.ResolveAt(context.Background(), suite.club.ID, "tuesday morning")

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestClubNotFound tests resolution for an unknown club
func (suite *ShiftResolverServiceTestSuite) TestClubNotFound() {
	suite.mockClubRepo.EXPECT().GetByID(suite.club.ID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	resp, err := suite.resolverService.ResolveActiveWindow(context.Background(), suite.club.ID, time.Now())

	assert.Nil(suite.T(), resp)
	assert.Equal(suite.T(), apperrors.ErrClubNotFound, err)
}

// TestShiftResolverServiceTestSuite runs the test suite
func TestShiftResolverServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftResolverServiceTestSuite))
}
