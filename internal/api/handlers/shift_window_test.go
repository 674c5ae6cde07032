package handlers

import (
	"net/http"
	"testing"

	apperrors "club-shifts-backend/internal/errors"
	"club-shifts-backend/internal/mocks"
	"club-shifts-backend/internal/service"
	"club-shifts-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ShiftWindowHandlerTestSuite defines the test suite for ShiftWindowHandler
type ShiftWindowHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockWindowService *mocks.MockShiftWindowServiceInterface
	handler           *ShiftWindowHandler
	httpSuite         *testutils.HTTPTestSuite
	clubID            uuid.UUID
	base              string
}

func (suite *ShiftWindowHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockWindowService = mocks.NewMockShiftWindowServiceInterface(suite.ctrl)
	suite.handler = NewShiftWindowHandler(suite.mockWindowService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.clubID = uuid.New()
	suite.base = "/api/v1/clubs/" + suite.clubID.String() + "/shift-windows"

	windows := suite.httpSuite.Router.Group("/api/v1/clubs/:id/shift-windows")
	{
		windows.POST("", suite.handler.CreateShiftWindow)
		windows.GET("", suite.handler.ListShiftWindows)
		windows.GET("/:windowId", suite.handler.GetShiftWindow)
		windows.PATCH("/:windowId", suite.handler.UpdateShiftWindow)
		windows.DELETE("/:windowId", suite.handler.DeleteShiftWindow)
	}
}

func (suite *ShiftWindowHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ShiftWindowHandlerTestSuite) window(clubID uuid.UUID) *service.ShiftWindowResponse {
	return &service.ShiftWindowResponse{
		ID:        uuid.New(),
		ClubID:    clubID,
		Name:      "Mañana",
		StartTime: "07:00",
		EndTime:   "12:00",
		Weekdays:  []string{"lunes", "martes"},
		Active:    true,
		Order:     1,
	}
}

func (suite *ShiftWindowHandlerTestSuite) TestCreateShiftWindow() {
	created := suite.window(suite.clubID)
	suite.mockWindowService.EXPECT().
		AddWindow(suite.clubID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, req *service.CreateShiftWindowRequest) (*service.ShiftWindowResponse, error) {
			assert.Equal(suite.T(), "Mañana", req.Name)
			assert.Equal(suite.T(), []string{"lunes", "martes"}, req.Weekdays)
			assert.Nil(suite.T(), req.Active)
			return created, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", suite.base, map[string]interface{}{
		"name":       "Mañana",
		"start_time": "07:00",
		"end_time":   "12:00",
		"weekdays":   []string{"lunes", "martes"},
		"order":      1,
	})

	var response service.ShiftWindowResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), created.ID, response.ID)
}

func (suite *ShiftWindowHandlerTestSuite) TestCreateShiftWindowInvalidTime() {
	suite.mockWindowService.EXPECT().
		AddWindow(suite.clubID, gomock.Any()).
		Return(nil, apperrors.NewValidationError("start_time", "invalid time \"25:00\"")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", suite.base, map[string]interface{}{
		"name": "Noche", "start_time": "25:00", "end_time": "02:00",
	})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "start_time")
}

func (suite *ShiftWindowHandlerTestSuite) TestCreateShiftWindowUnknownClub() {
	suite.mockWindowService.EXPECT().AddWindow(suite.clubID, gomock.Any()).Return(nil, apperrors.ErrClubNotFound).Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", suite.base, map[string]interface{}{
		"name": "Tarde", "start_time": "12:00", "end_time": "18:00",
	})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "club not found")
}

func (suite *ShiftWindowHandlerTestSuite) TestListShiftWindows() {
	suite.mockWindowService.EXPECT().
		ListWindows(suite.clubID).
		Return([]service.ShiftWindowResponse{*suite.window(suite.clubID), *suite.window(suite.clubID)}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", suite.base, nil)

	var response []service.ShiftWindowResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response, 2)
}

func (suite *ShiftWindowHandlerTestSuite) TestListActiveShiftWindows() {
	suite.mockWindowService.EXPECT().
		ListActiveWindows(suite.clubID).
		Return([]service.ShiftWindowResponse{*suite.window(suite.clubID)}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", suite.base+"?active=true", nil)
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	recorder = suite.httpSuite.MakeRequest("GET", suite.base+"?active=maybe", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid active filter")
}

func (suite *ShiftWindowHandlerTestSuite) TestGetShiftWindow() {
	w := suite.window(suite.clubID)
	suite.mockWindowService.EXPECT().GetWindow(w.ID).Return(w, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", suite.base+"/"+w.ID.String(), nil)

	var response service.ShiftWindowResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "07:00", response.StartTime)
}

func (suite *ShiftWindowHandlerTestSuite) TestGetShiftWindowOfAnotherClub() {
	w := suite.window(uuid.New())
	suite.mockWindowService.EXPECT().GetWindow(w.ID).Return(w, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", suite.base+"/"+w.ID.String(), nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "shift window not found")
}

func (suite *ShiftWindowHandlerTestSuite) TestGetShiftWindowInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", suite.base+"/nope", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid shift window ID")
}

func (suite *ShiftWindowHandlerTestSuite) TestUpdateShiftWindow() {
	w := suite.window(suite.clubID)
	suite.mockWindowService.EXPECT().GetWindow(w.ID).Return(w, nil).Times(1)
	suite.mockWindowService.EXPECT().
		UpdateWindow(w.ID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, req *service.UpdateShiftWindowRequest) (*service.ShiftWindowResponse, error) {
			require.NotNil(suite.T(), req.Active)
			assert.False(suite.T(), *req.Active)
			assert.Nil(suite.T(), req.Name)
			updated := *w
			updated.Active = false
			return &updated, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PATCH", suite.base+"/"+w.ID.String(), map[string]interface{}{"active": false})

	var response service.ShiftWindowResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.False(suite.T(), response.Active)
}

func (suite *ShiftWindowHandlerTestSuite) TestDeleteShiftWindow() {
	w := suite.window(suite.clubID)
	suite.mockWindowService.EXPECT().GetWindow(w.ID).Return(w, nil).Times(1)
	suite.mockWindowService.EXPECT().RemoveWindow(w.ID).Return(nil).Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", suite.base+"/"+w.ID.String(), nil)
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func (suite *ShiftWindowHandlerTestSuite) TestDeleteCurrentShiftWindow() {
	w := suite.window(suite.clubID)
	suite.mockWindowService.EXPECT().GetWindow(w.ID).Return(w, nil).Times(1)
	suite.mockWindowService.EXPECT().RemoveWindow(w.ID).Return(apperrors.ErrCurrentShiftWindow).Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", suite.base+"/"+w.ID.String(), nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "current jornada")
}

func TestShiftWindowHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftWindowHandlerTestSuite))
}
