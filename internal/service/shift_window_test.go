package service_test

import (
	"testing"

	"club-shifts-backend/internal/database/models"
	apperrors "club-shifts-backend/internal/errors"
	"club-shifts-backend/internal/mocks"
	"club-shifts-backend/internal/schedule"
	"club-shifts-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ShiftWindowServiceTestSuite defines the test suite for ShiftWindowService
type ShiftWindowServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockWindowRepo *mocks.MockShiftWindowRepositoryInterface
	mockConfigRepo *mocks.MockShiftConfigurationRepositoryInterface
	mockClubRepo   *mocks.MockClubRepositoryInterface
	windowService  *service.ShiftWindowService
	clubID         uuid.UUID
}

// SetupTest sets up the test suite
func (suite *ShiftWindowServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockWindowRepo = mocks.NewMockShiftWindowRepositoryInterface(suite.ctrl)
	suite.mockConfigRepo = mocks.NewMockShiftConfigurationRepositoryInterface(suite.ctrl)
	suite.mockClubRepo = mocks.NewMockClubRepositoryInterface(suite.ctrl)
	suite.windowService = service.NewShiftWindowService(suite.mockWindowRepo, suite.mockConfigRepo, suite.mockClubRepo, service.NewValidator())
	suite.clubID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *ShiftWindowServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ShiftWindowServiceTestSuite) expectClub() {
	suite.mockClubRepo.EXPECT().GetByID(suite.clubID).
		Return(&models.Club{BaseModel: models.BaseModel{ID: suite.clubID}}, nil).Times(1)
}

func (suite *ShiftWindowServiceTestSuite) storedWindow(start, end string) *models.ShiftWindow {
	return &models.ShiftWindow{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ClubID:    suite.clubID,
		Name:      "Noche",
		StartTime: start,
		EndTime:   end,
		Weekdays:  schedule.NewWeekdaySet(schedule.Friday, schedule.Saturday),
		Active:    true,
		SortOrder: 1,
	}
}

// TestAddWindow tests adding a midnight-crossing jornada with accented weekday tokens
func (suite *ShiftWindowServiceTestSuite) TestAddWindow() {
	req := &service.CreateShiftWindowRequest{
		Name:      "Noche",
		StartTime: "22:00",
		EndTime:   "06:00",
		Weekdays:  []string{"viernes", "sábado"},
		Order:     3,
	}

	suite.expectClub()
	suite.mockWindowRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(w *models.ShiftWindow) error {
			assert.Equal(suite.T(), suite.clubID, w.ClubID)
			assert.True(suite.T(), w.Active)
			assert.Equal(suite.T(), 3, w.SortOrder)
			return nil
		}).
		Times(1)

	resp, err := suite.windowService.AddWindow(suite.clubID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"viernes", "sabado"}, resp.Weekdays)
	assert.True(suite.T(), resp.CrossesMidnight)
	assert.False(suite.T(), resp.FullDay)
	assert.Equal(suite.T(), 3, resp.Order)
}

// TestAddWindowDefaultsToEveryDay tests that omitted weekdays mean all seven days
func (suite *ShiftWindowServiceTestSuite) TestAddWindowDefaultsToEveryDay() {
	suite.expectClub()
	suite.mockWindowRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	resp, err := suite.windowService.AddWindow(suite.clubID, &service.CreateShiftWindowRequest{
		Name: "Todo el día", StartTime: "00:00", EndTime: "00:00",
	})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.Weekdays, 7)
	assert.True(suite.T(), resp.FullDay)
}

// TestAddWindowValidation tests malformed input is rejected before touching storage
func (suite *ShiftWindowServiceTestSuite) TestAddWindowValidation() {
	cases := []struct {
		name  string
		req   service.CreateShiftWindowRequest
		field string
	}{
		{"missing name", service.CreateShiftWindowRequest{StartTime: "07:00", EndTime: "12:00"}, "name"},
		{"seconds in start", service.CreateShiftWindowRequest{Name: "A", StartTime: "07:00:00", EndTime: "12:00"}, "start_time"},
		{"hour out of range", service.CreateShiftWindowRequest{Name: "A", StartTime: "07:00", EndTime: "24:00"}, "end_time"},
		{"unknown weekday", service.CreateShiftWindowRequest{Name: "A", StartTime: "07:00", EndTime: "12:00", Weekdays: []string{"monday"}}, "weekdays"},
		{"negative order", service.CreateShiftWindowRequest{Name: "A", StartTime: "07:00", EndTime: "12:00", Order: -1}, "order"},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			req := tc.req
			resp, err := suite.windowService.AddWindow(suite.clubID, &req)
			suite.Nil(resp)
			suite.True(apperrors.IsValidation(err), "expected validation error, got %v", err)
			suite.Contains(err.Error(), tc.field)
		})
	}
}

// TestAddWindowClubNotFound tests adding a jornada to an unknown club
func (suite *ShiftWindowServiceTestSuite) TestAddWindowClubNotFound() {
	suite.mockClubRepo.EXPECT().GetByID(suite.clubID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	resp, err := suite.windowService.AddWindow(suite.clubID, &service.CreateShiftWindowRequest{
		Name: "A", StartTime: "07:00", EndTime: "12:00",
	})

	assert.Nil(suite.T(), resp)
	assert.Equal(suite.T(), apperrors.ErrClubNotFound, err)
}

// TestUpdateWindowPartial tests only supplied fields change
func (suite *ShiftWindowServiceTestSuite) TestUpdateWindowPartial() {
	stored := suite.storedWindow("22:00", "06:00")
	end := "05:00"
	inactive := false

	suite.mockWindowRepo.EXPECT().GetByID(stored.ID).Return(stored, nil).Times(1)
	suite.mockWindowRepo.EXPECT().Update(stored).Return(nil).Times(1)

	resp, err := suite.windowService.UpdateWindow(stored.ID, &service.UpdateShiftWindowRequest{
		EndTime: &end,
		Active:  &inactive,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Noche", resp.Name)
	assert.Equal(suite.T(), "22:00", resp.StartTime)
	assert.Equal(suite.T(), "05:00", resp.EndTime)
	assert.False(suite.T(), resp.Active)
	assert.Equal(suite.T(), []string{"viernes", "sabado"}, resp.Weekdays)
}

// TestUpdateWindowNotFound tests updating an unknown jornada
func (suite *ShiftWindowServiceTestSuite) TestUpdateWindowNotFound() {
	id := uuid.New()
	name := "Tarde"
	suite.mockWindowRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound).Times(1)

	resp, err := suite.windowService.UpdateWindow(id, &service.UpdateShiftWindowRequest{Name: &name})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestUpdateWindowInvalidPatch tests a malformed patch field leaves the row untouched
func (suite *ShiftWindowServiceTestSuite) TestUpdateWindowInvalidPatch() {
	stored := suite.storedWindow("07:00", "12:00")
	bad := "7:00"
	suite.mockWindowRepo.EXPECT().GetByID(stored.ID).Return(stored, nil).Times(1)

	resp, err := suite.windowService.UpdateWindow(stored.ID, &service.UpdateShiftWindowRequest{StartTime: &bad})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Equal(suite.T(), "07:00", stored.StartTime)
}

// TestRemoveWindow tests deleting a jornada that is not current
func (suite *ShiftWindowServiceTestSuite) TestRemoveWindow() {
	stored := suite.storedWindow("07:00", "12:00")
	other := uuid.New()

	suite.mockWindowRepo.EXPECT().GetByID(stored.ID).Return(stored, nil).Times(1)
	suite.mockConfigRepo.EXPECT().GetByClubID(suite.clubID).
		Return(&models.ShiftConfiguration{ClubID: suite.clubID, CurrentWindowID: &other}, nil).Times(1)
	suite.mockWindowRepo.EXPECT().Delete(stored.ID).Return(nil).Times(1)

	assert.NoError(suite.T(), suite.windowService.RemoveWindow(stored.ID))
}

// TestRemoveWindowWithoutConfiguration tests clubs that never configured a current jornada
func (suite *ShiftWindowServiceTestSuite) TestRemoveWindowWithoutConfiguration() {
	stored := suite.storedWindow("07:00", "12:00")

	suite.mockWindowRepo.EXPECT().GetByID(stored.ID).Return(stored, nil).Times(1)
	suite.mockConfigRepo.EXPECT().GetByClubID(suite.clubID).Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockWindowRepo.EXPECT().Delete(stored.ID).Return(nil).Times(1)

	assert.NoError(suite.T(), suite.windowService.RemoveWindow(stored.ID))
}

// TestRemoveCurrentWindowConflict tests the current jornada cannot be deleted
func (suite *ShiftWindowServiceTestSuite) TestRemoveCurrentWindowConflict() {
	stored := suite.storedWindow("07:00", "12:00")

	suite.mockWindowRepo.EXPECT().GetByID(stored.ID).Return(stored, nil).Times(1)
	suite.mockConfigRepo.EXPECT().GetByClubID(suite.clubID).
		Return(&models.ShiftConfiguration{ClubID: suite.clubID, CurrentWindowID: &stored.ID}, nil).Times(1)

	err := suite.windowService.RemoveWindow(stored.ID)

	assert.True(suite.T(), apperrors.IsConflict(err))
	assert.ErrorIs(suite.T(), err, apperrors.ErrCurrentShiftWindow)
}

// TestRemoveWindowNotFound tests deleting an unknown jornada
func (suite *ShiftWindowServiceTestSuite) TestRemoveWindowNotFound() {
	id := uuid.New()
	suite.mockWindowRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound).Times(1)

	assert.Equal(suite.T(), apperrors.ErrShiftWindowNotFound, suite.windowService.RemoveWindow(id))
}

// TestListActiveWindows tests listing keeps repository order
func (suite *ShiftWindowServiceTestSuite) TestListActiveWindows() {
	a := suite.storedWindow("07:00", "12:00")
	a.Name, a.SortOrder = "Mañana", 1
	b := suite.storedWindow("15:00", "21:00")
	b.Name, b.SortOrder = "Tarde", 2

	suite.expectClub()
	suite.mockWindowRepo.EXPECT().GetActiveByClubID(suite.clubID).Return([]models.ShiftWindow{*a, *b}, nil).Times(1)

	resp, err := suite.windowService.ListActiveWindows(suite.clubID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 2)
	assert.Equal(suite.T(), "Mañana", resp[0].Name)
	assert.Equal(suite.T(), "Tarde", resp[1].Name)
}

// TestListWindowsClubNotFound tests listing for an unknown club
func (suite *ShiftWindowServiceTestSuite) TestListWindowsClubNotFound() {
	suite.mockClubRepo.EXPECT().GetByID(suite.clubID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	resp, err := suite.windowService.ListWindows(suite.clubID)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestShiftWindowServiceTestSuite runs the test suite
func TestShiftWindowServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftWindowServiceTestSuite))
}
