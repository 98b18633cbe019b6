package service_test

import (
	"testing"

	"frc-scout-backend/internal/database/models"
	apperrors "frc-scout-backend/internal/errors"
	"frc-scout-backend/internal/mocks"
	"frc-scout-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AnalysisServiceTestSuite defines the test suite for AnalysisService
type AnalysisServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockPitRepo     *mocks.MockPitScoutingRepositoryInterface
	mockMatchRepo   *mocks.MockMatchScoreRepositoryInterface
	analysisService *service.AnalysisService
	sessionID       uuid.UUID
}

// SetupTest sets up the test suite
func (suite *AnalysisServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPitRepo = mocks.NewMockPitScoutingRepositoryInterface(suite.ctrl)
	suite.mockMatchRepo = mocks.NewMockMatchScoreRepositoryInterface(suite.ctrl)
	suite.analysisService = service.NewAnalysisService(suite.mockPitRepo, suite.mockMatchRepo)
	suite.sessionID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *AnalysisServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestDashboard tests the session summary metrics
func (suite *AnalysisServiceTestSuite) TestDashboard() {
	pits := []models.PitScouting{
		{BaseModel: models.BaseModel{ID: uuid.New()}, FRCTeam: "254"},
		{BaseModel: models.BaseModel{ID: uuid.New()}, FRCTeam: "1678"},
	}
	matches := []models.MatchScore{
		{BaseModel: models.BaseModel{ID: uuid.New()}, MatchNumber: 1, FRCTeam: "254"},
		{BaseModel: models.BaseModel{ID: uuid.New()}, MatchNumber: 2, FRCTeam: "254"},
		{BaseModel: models.BaseModel{ID: uuid.New()}, MatchNumber: 1, FRCTeam: "1678"},
	}

	suite.mockPitRepo.EXPECT().ListBySession(suite.sessionID).Return(pits, nil).Times(1)
	suite.mockMatchRepo.EXPECT().ListBySession(suite.sessionID).Return(matches, nil).Times(1)
	suite.mockMatchRepo.EXPECT().CountDistinctTeams(suite.sessionID).Return(int64(2), nil).Times(1)

	resp, err := suite.analysisService.Dashboard(suite.sessionID)

	suite.NoError(err)
	suite.Equal(2, resp.TeamsScouted)
	suite.Equal(3, resp.MatchesRecorded)
	suite.Equal(int64(2), resp.TeamsWithMatchData)
	suite.Len(resp.PitEntries, 2)
	suite.Len(resp.MatchScores, 3)
}

// TestDashboardEmptySession tests the dashboard over an empty session
func (suite *AnalysisServiceTestSuite) TestDashboardEmptySession() {
	suite.mockPitRepo.EXPECT().ListBySession(suite.sessionID).Return(nil, nil).Times(1)
	suite.mockMatchRepo.EXPECT().ListBySession(suite.sessionID).Return(nil, nil).Times(1)
	suite.mockMatchRepo.EXPECT().CountDistinctTeams(suite.sessionID).Return(int64(0), nil).Times(1)

	resp, err := suite.analysisService.Dashboard(suite.sessionID)

	suite.NoError(err)
	suite.Equal(0, resp.TeamsScouted)
	suite.Equal(0, resp.MatchesRecorded)
	suite.Equal(int64(0), resp.TeamsWithMatchData)
}

// TestSearchByTeam tests searching both collections and deriving averages
func (suite *AnalysisServiceTestSuite) TestSearchByTeam() {
	pits := []models.PitScouting{
		{BaseModel: models.BaseModel{ID: uuid.New()}, FRCTeam: "254"},
	}
	matches := []models.MatchScore{
		{AutoHigh: 2, TeleopHigh: 3, DriverSkill: 4},
		{AutoHigh: 2, TeleopHigh: 3, DriverSkill: 4},
	}

	suite.mockPitRepo.EXPECT().SearchByTeam(suite.sessionID, "254").Return(pits, nil).Times(1)
	suite.mockMatchRepo.EXPECT().SearchByTeam(suite.sessionID, "254").Return(matches, nil).Times(1)

	resp, err := suite.analysisService.SearchByTeam(suite.sessionID, " 254 ")

	suite.NoError(err)
	suite.Equal("254", resp.Query)
	suite.Len(resp.PitEntries, 1)
	suite.Len(resp.MatchScores, 2)
	suite.Require().NotNil(resp.Averages)
	suite.InDelta(5.0, resp.Averages.AverageHigh, 1e-9)
}

// TestSearchByTeamNoMatchRows tests that averages stay absent without match data
func (suite *AnalysisServiceTestSuite) TestSearchByTeamNoMatchRows() {
	pits := []models.PitScouting{
		{BaseModel: models.BaseModel{ID: uuid.New()}, FRCTeam: "254"},
	}

	suite.mockPitRepo.EXPECT().SearchByTeam(suite.sessionID, "254").Return(pits, nil).Times(1)
	suite.mockMatchRepo.EXPECT().SearchByTeam(suite.sessionID, "254").Return(nil, nil).Times(1)

	resp, err := suite.analysisService.SearchByTeam(suite.sessionID, "254")

	suite.NoError(err)
	suite.Nil(resp.Averages)
}

// TestSearchByTeamEmptyQuery tests that a blank query is rejected
func (suite *AnalysisServiceTestSuite) TestSearchByTeamEmptyQuery() {
	resp, err := suite.analysisService.SearchByTeam(suite.sessionID, "   ")

	suite.Error(err)
	suite.True(apperrors.IsValidation(err))
	suite.Nil(resp)
}

// TestFilterByCapability tests the quick capability filter passthrough
func (suite *AnalysisServiceTestSuite) TestFilterByCapability() {
	pits := []models.PitScouting{
		{BaseModel: models.BaseModel{ID: uuid.New()}, FRCTeam: "254", CanClimb: true},
	}

	suite.mockPitRepo.EXPECT().ListWithCapability(suite.sessionID, "can_climb").Return(pits, nil).Times(1)

	resp, err := suite.analysisService.FilterByCapability(suite.sessionID, "can_climb")

	suite.NoError(err)
	suite.Require().Len(resp, 1)
	suite.True(resp[0].CanClimb)
}

// TestFilterByCapabilityUnknown tests that repository rejection maps to a
// validation error
func (suite *AnalysisServiceTestSuite) TestFilterByCapabilityUnknown() {
	suite.mockPitRepo.EXPECT().
		ListWithCapability(suite.sessionID, "team_name").
		Return(nil, gorm.ErrInvalidField).
		Times(1)

	resp, err := suite.analysisService.FilterByCapability(suite.sessionID, "team_name")

	suite.Error(err)
	suite.True(apperrors.IsValidation(err))
	suite.Nil(resp)
}

// TestCompareTwoTeams tests a full two-column comparison
func (suite *AnalysisServiceTestSuite) TestCompareTwoTeams() {
	pit254 := &models.PitScouting{BaseModel: models.BaseModel{ID: uuid.New()}, FRCTeam: "254"}
	matches254 := []models.MatchScore{{AutoHigh: 2, TeleopHigh: 3, DriverSkill: 4}}

	suite.mockPitRepo.EXPECT().GetByTeam(suite.sessionID, "254").Return(pit254, nil).Times(1)
	suite.mockMatchRepo.EXPECT().ListByTeam(suite.sessionID, "254").Return(matches254, nil).Times(1)
	suite.mockPitRepo.EXPECT().GetByTeam(suite.sessionID, "1678").Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockMatchRepo.EXPECT().ListByTeam(suite.sessionID, "1678").Return(nil, nil).Times(1)

	resp, err := suite.analysisService.Compare(suite.sessionID, []string{"254", "1678"})

	suite.NoError(err)
	suite.False(resp.NeedMoreSelections)
	suite.Require().Len(resp.Teams, 2)

	// First column has both pit data and averages
	suite.Equal("254", resp.Teams[0].FRCTeam)
	suite.NotNil(resp.Teams[0].Pit)
	suite.Require().NotNil(resp.Teams[0].Averages)
	suite.InDelta(5.0, resp.Teams[0].Averages.AverageHigh, 1e-9)

	// Second column has neither, but still renders
	suite.Equal("1678", resp.Teams[1].FRCTeam)
	suite.Nil(resp.Teams[1].Pit)
	suite.Nil(resp.Teams[1].Averages)
}

// TestCompareSingleSelection tests the need-more-selections state
func (suite *AnalysisServiceTestSuite) TestCompareSingleSelection() {
	resp, err := suite.analysisService.Compare(suite.sessionID, []string{"254"})

	suite.NoError(err)
	suite.True(resp.NeedMoreSelections)
	suite.Empty(resp.Teams)
}

// TestCompareNoSelection tests that an empty selection is rejected
func (suite *AnalysisServiceTestSuite) TestCompareNoSelection() {
	resp, err := suite.analysisService.Compare(suite.sessionID, []string{"", "  "})

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrNotEnoughTeams)
	suite.Nil(resp)
}

// TestCompareTooManySelections tests that a fifth team is rejected outright
func (suite *AnalysisServiceTestSuite) TestCompareTooManySelections() {
	resp, err := suite.analysisService.Compare(suite.sessionID, []string{"1", "2", "3", "4", "5"})

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrTooManyTeams)
	suite.Nil(resp)
}

// TestCompareDeduplicatesSelection tests that repeated teams collapse before
// the bounds check
func (suite *AnalysisServiceTestSuite) TestCompareDeduplicatesSelection() {
	// Four mentions of two distinct teams is a valid two-column comparison
	suite.mockPitRepo.EXPECT().GetByTeam(suite.sessionID, "254").Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockMatchRepo.EXPECT().ListByTeam(suite.sessionID, "254").Return(nil, nil).Times(1)
	suite.mockPitRepo.EXPECT().GetByTeam(suite.sessionID, "1678").Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockMatchRepo.EXPECT().ListByTeam(suite.sessionID, "1678").Return(nil, nil).Times(1)

	resp, err := suite.analysisService.Compare(suite.sessionID, []string{"254", " 254", "1678", "254 "})

	suite.NoError(err)
	suite.Len(resp.Teams, 2)
}

// Run the test suite
func TestAnalysisServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnalysisServiceTestSuite))
}
