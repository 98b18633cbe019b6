package handlers_test

import (
	"net/http"
	"testing"

	"frc-scout-backend/internal/api/handlers"
	apperrors "frc-scout-backend/internal/errors"
	"frc-scout-backend/internal/mocks"
	"frc-scout-backend/internal/service"
	"frc-scout-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AnalysisHandlerTestSuite defines the test suite for AnalysisHandler
type AnalysisHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockAnalysisServiceInterface
	http        *testutils.HTTPTestSuite
	sessionID   uuid.UUID
}

// SetupTest sets up the test suite
func (suite *AnalysisHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockAnalysisServiceInterface(suite.ctrl)
	suite.sessionID = uuid.New()

	handler := handlers.NewAnalysisHandler(suite.mockService)
	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.GET("/sessions/:sessionID/dashboard", handler.Dashboard)
	suite.http.Router.GET("/sessions/:sessionID/search", handler.Search)
	suite.http.Router.GET("/sessions/:sessionID/search/capability", handler.FilterByCapability)
	suite.http.Router.GET("/sessions/:sessionID/compare", handler.Compare)
}

// TearDownTest cleans up after each test
func (suite *AnalysisHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AnalysisHandlerTestSuite) url(suffix string) string {
	return "/sessions/" + suite.sessionID.String() + suffix
}

// TestDashboard tests the dashboard endpoint
func (suite *AnalysisHandlerTestSuite) TestDashboard() {
	resp := &service.DashboardResponse{
		TeamsScouted:       2,
		MatchesRecorded:    3,
		TeamsWithMatchData: 2,
	}

	suite.mockService.EXPECT().
		Dashboard(suite.sessionID).
		Return(resp, nil).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodGet, suite.url("/dashboard"), nil)

	var body service.DashboardResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	suite.Equal(2, body.TeamsScouted)
	suite.Equal(3, body.MatchesRecorded)
}

// TestSearch tests the team search endpoint
func (suite *AnalysisHandlerTestSuite) TestSearch() {
	resp := &service.SearchResponse{Query: "254"}

	suite.mockService.EXPECT().
		SearchByTeam(suite.sessionID, "254").
		Return(resp, nil).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodGet, suite.url("/search?team=254"), nil)

	var body service.SearchResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	suite.Equal("254", body.Query)
}

// TestSearchEmptyQuery tests that a missing query yields a 400
func (suite *AnalysisHandlerTestSuite) TestSearchEmptyQuery() {
	suite.mockService.EXPECT().
		SearchByTeam(suite.sessionID, "").
		Return(nil, apperrors.NewValidationError("team", "search query must not be empty")).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodGet, suite.url("/search"), nil)

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

// TestFilterByCapability tests the capability filter endpoint
func (suite *AnalysisHandlerTestSuite) TestFilterByCapability() {
	entries := []service.PitResponse{{ID: uuid.New(), FRCTeam: "254", CanClimb: true}}

	suite.mockService.EXPECT().
		FilterByCapability(suite.sessionID, "can_climb").
		Return(entries, nil).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodGet, suite.url("/search/capability?capability=can_climb"), nil)

	var body []service.PitResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	suite.Len(body, 1)
}

// TestCompare tests that comma-separated team selections are split
func (suite *AnalysisHandlerTestSuite) TestCompare() {
	resp := &service.ComparisonResponse{
		Teams: []service.TeamComparison{{FRCTeam: "254"}, {FRCTeam: "1678"}},
	}

	suite.mockService.EXPECT().
		Compare(suite.sessionID, []string{"254", "1678"}).
		Return(resp, nil).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodGet, suite.url("/compare?teams=254,1678"), nil)

	var body service.ComparisonResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	suite.Len(body.Teams, 2)
}

// TestCompareRepeatedParams tests that repeated query params also accumulate
func (suite *AnalysisHandlerTestSuite) TestCompareRepeatedParams() {
	resp := &service.ComparisonResponse{NeedMoreSelections: true}

	suite.mockService.EXPECT().
		Compare(suite.sessionID, []string{"254"}).
		Return(resp, nil).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodGet, suite.url("/compare?teams=254"), nil)

	var body service.ComparisonResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &body)
	suite.True(body.NeedMoreSelections)
}

// TestCompareTooMany tests that a rejected selection maps to 400
func (suite *AnalysisHandlerTestSuite) TestCompareTooMany() {
	suite.mockService.EXPECT().
		Compare(suite.sessionID, []string{"1", "2", "3", "4", "5"}).
		Return(nil, apperrors.ErrTooManyTeams).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodGet, suite.url("/compare?teams=1,2,3,4,5"), nil)

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

// Run the test suite
func TestAnalysisHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AnalysisHandlerTestSuite))
}
