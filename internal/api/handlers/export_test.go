package handlers_test

import (
	"net/http"
	"testing"

	"frc-scout-backend/internal/api/handlers"
	"frc-scout-backend/internal/mocks"
	"frc-scout-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ExportHandlerTestSuite defines the test suite for ExportHandler
type ExportHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockExportServiceInterface
	http        *testutils.HTTPTestSuite
	sessionID   uuid.UUID
}

// SetupTest sets up the test suite
func (suite *ExportHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockExportServiceInterface(suite.ctrl)
	suite.sessionID = uuid.New()

	handler := handlers.NewExportHandler(suite.mockService)
	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.GET("/sessions/:sessionID/export/pit.csv", handler.PitCSV)
	suite.http.Router.GET("/sessions/:sessionID/export/matches.csv", handler.MatchCSV)
	suite.http.Router.GET("/sessions/:sessionID/export/report.xlsx", handler.ReportXLSX)
}

// TearDownTest cleans up after each test
func (suite *ExportHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ExportHandlerTestSuite) url(suffix string) string {
	return "/sessions/" + suite.sessionID.String() + "/export" + suffix
}

// TestPitCSV tests the pit CSV download headers and body
func (suite *ExportHandlerTestSuite) TestPitCSV() {
	suite.mockService.EXPECT().
		PitCSV(suite.sessionID).
		Return([]byte("Team Number,Team Name\n"), nil).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodGet, suite.url("/pit.csv"), nil)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Header().Get("Content-Type"), "text/csv")
	suite.Contains(recorder.Header().Get("Content-Disposition"), "pit_scouting_data.csv")
	suite.Equal("Team Number,Team Name\n", recorder.Body.String())
}

// TestMatchCSV tests the match CSV download headers
func (suite *ExportHandlerTestSuite) TestMatchCSV() {
	suite.mockService.EXPECT().
		MatchCSV(suite.sessionID).
		Return([]byte("Match Number,Team Number\n"), nil).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodGet, suite.url("/matches.csv"), nil)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Header().Get("Content-Disposition"), "match_scores_data.csv")
}

// TestReportXLSX tests the workbook download headers
func (suite *ExportHandlerTestSuite) TestReportXLSX() {
	suite.mockService.EXPECT().
		ReportXLSX(suite.sessionID).
		Return([]byte{0x50, 0x4b, 0x03, 0x04}, nil).
		Times(1)

	recorder := suite.http.MakeRequest(http.MethodGet, suite.url("/report.xlsx"), nil)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Header().Get("Content-Type"), "spreadsheetml")
	suite.Contains(recorder.Header().Get("Content-Disposition"), "frc_scouting_report.xlsx")
}

// TestInvalidSessionID tests that a malformed session id yields a 400
func (suite *ExportHandlerTestSuite) TestInvalidSessionID() {
	recorder := suite.http.MakeRequest(http.MethodGet, "/sessions/nope/export/pit.csv", nil)

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

// Run the test suite
func TestExportHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ExportHandlerTestSuite))
}
