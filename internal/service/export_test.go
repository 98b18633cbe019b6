package service_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"frc-scout-backend/internal/database/models"
	"frc-scout-backend/internal/mocks"
	"frc-scout-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

// ExportServiceTestSuite defines the test suite for ExportService
type ExportServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockPitRepo   *mocks.MockPitScoutingRepositoryInterface
	mockMatchRepo *mocks.MockMatchScoreRepositoryInterface
	exportService *service.ExportService
	sessionID     uuid.UUID
}

// SetupTest sets up the test suite
func (suite *ExportServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPitRepo = mocks.NewMockPitScoutingRepositoryInterface(suite.ctrl)
	suite.mockMatchRepo = mocks.NewMockMatchScoreRepositoryInterface(suite.ctrl)
	suite.exportService = service.NewExportService(suite.mockPitRepo, suite.mockMatchRepo)
	suite.sessionID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *ExportServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ExportServiceTestSuite) parseCSV(data []byte) [][]string {
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	suite.Require().NoError(err)
	return records
}

// TestPitCSVHeader tests the exact pit export column set
func (suite *ExportServiceTestSuite) TestPitCSVHeader() {
	suite.mockPitRepo.EXPECT().ListBySession(suite.sessionID).Return(nil, nil).Times(1)

	data, err := suite.exportService.PitCSV(suite.sessionID)
	suite.NoError(err)

	records := suite.parseCSV(data)
	suite.Require().Len(records, 1)
	suite.Equal([]string{
		"Team Number", "Team Name", "Drivetrain", "Weight (lbs)", "Height (in)",
		"Programming Language", "Years Experience", "Auto Scoring", "Auto Mobility",
		"Auto Paths", "Can Climb", "Ground Intake", "Source Intake", "High Scoring",
		"Low Scoring", "Has Vision", "Strengths", "Weaknesses", "Strategy Notes", "Scout",
	}, records[0])
}

// TestPitCSVRows tests rendering a pit entry into a CSV record
func (suite *ExportServiceTestSuite) TestPitCSVRows() {
	entries := []models.PitScouting{
		{
			FRCTeam:         "254",
			TeamName:        "The Cheesy Poofs",
			Drivetrain:      models.DrivetrainSwerve,
			RobotWeight:     115,
			RobotHeight:     28,
			ProgrammingLang: models.ProgrammingLanguageJava,
			YearsExperience: 20,
			AutoScoring:     true,
			AutoPaths:       3,
			CanClimb:        true,
			Strengths:       "Fast cycles",
			ScouterName:     "Alex",
		},
	}

	suite.mockPitRepo.EXPECT().ListBySession(suite.sessionID).Return(entries, nil).Times(1)

	data, err := suite.exportService.PitCSV(suite.sessionID)
	suite.NoError(err)

	records := suite.parseCSV(data)
	suite.Require().Len(records, 2)
	row := records[1]
	suite.Equal("254", row[0])
	suite.Equal("The Cheesy Poofs", row[1])
	suite.Equal("Swerve", row[2])
	suite.Equal("115", row[3])
	suite.Equal("true", row[7])  // auto scoring
	suite.Equal("false", row[8]) // auto mobility
	suite.Equal("3", row[9])     // auto paths
	suite.Equal("true", row[10]) // can climb
	suite.Equal("Fast cycles", row[16])
	suite.Equal("Alex", row[19])
}

// TestMatchCSVHeader tests the exact match export column set
func (suite *ExportServiceTestSuite) TestMatchCSVHeader() {
	suite.mockMatchRepo.EXPECT().ListBySession(suite.sessionID).Return(nil, nil).Times(1)

	data, err := suite.exportService.MatchCSV(suite.sessionID)
	suite.NoError(err)

	records := suite.parseCSV(data)
	suite.Require().Len(records, 1)
	suite.Equal([]string{
		"Match Number", "Team Number", "Alliance", "Auto Leave", "Auto High",
		"Auto Low", "Teleop High", "Teleop Low", "Teleop Cycles", "Endgame",
		"Trap Scored", "Defense Rating", "Driver Skill", "Died on Field",
		"Tipped Over", "Exploded", "Notes", "Scout",
	}, records[0])
}

// TestMatchCSVRows tests rendering a match score into a CSV record
func (suite *ExportServiceTestSuite) TestMatchCSVRows() {
	scores := []models.MatchScore{
		{
			MatchNumber:   12,
			FRCTeam:       "254",
			Alliance:      models.AllianceRed,
			AutoLeave:     true,
			AutoHigh:      2,
			TeleopHigh:    5,
			TeleopCycles:  7,
			EndgameStatus: models.EndgameClimbedHigh,
			DefenseRating: 2,
			DriverSkill:   4,
			MatchNotes:    "Strong defense",
			ScouterName:   "Alex",
		},
	}

	suite.mockMatchRepo.EXPECT().ListBySession(suite.sessionID).Return(scores, nil).Times(1)

	data, err := suite.exportService.MatchCSV(suite.sessionID)
	suite.NoError(err)

	records := suite.parseCSV(data)
	suite.Require().Len(records, 2)
	row := records[1]
	suite.Equal("12", row[0])
	suite.Equal("254", row[1])
	suite.Equal("Red", row[2])
	suite.Equal("true", row[3])
	suite.Equal("2", row[4])
	suite.Equal("Climbed - High", row[9])
	suite.Equal("4", row[12])
	suite.Equal("Strong defense", row[16])
}

// TestReportXLSX tests the combined workbook layout: two named sheets with
// the reduced column subsets
func (suite *ExportServiceTestSuite) TestReportXLSX() {
	entries := []models.PitScouting{
		{
			FRCTeam:     "254",
			TeamName:    "The Cheesy Poofs",
			Drivetrain:  models.DrivetrainSwerve,
			RobotWeight: 115,
			RobotHeight: 28,
			CanClimb:    true,
			HasVision:   true,
			AutoPaths:   3,
			Strengths:   "Fast cycles",
		},
	}
	scores := []models.MatchScore{
		{
			MatchNumber:   12,
			FRCTeam:       "254",
			Alliance:      models.AllianceRed,
			AutoHigh:      2,
			TeleopHigh:    5,
			TeleopCycles:  7,
			EndgameStatus: models.EndgameClimbedHigh,
			DriverSkill:   4,
		},
	}

	suite.mockPitRepo.EXPECT().ListBySession(suite.sessionID).Return(entries, nil).Times(1)
	suite.mockMatchRepo.EXPECT().ListBySession(suite.sessionID).Return(scores, nil).Times(1)

	data, err := suite.exportService.ReportXLSX(suite.sessionID)
	suite.NoError(err)
	suite.NotEmpty(data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	suite.Require().NoError(err)
	defer f.Close()

	suite.ElementsMatch([]string{"Pit Scouting", "Match Scores"}, f.GetSheetList())

	pitRows, err := f.GetRows("Pit Scouting")
	suite.Require().NoError(err)
	suite.Require().Len(pitRows, 2)
	suite.Equal([]string{
		"Team Number", "Team Name", "Drivetrain", "Weight (lbs)", "Height (in)",
		"Can Climb", "Has Vision", "Auto Paths", "Strengths", "Weaknesses",
	}, pitRows[0])
	suite.Equal("254", pitRows[1][0])
	suite.Equal("Swerve", pitRows[1][2])

	matchRows, err := f.GetRows("Match Scores")
	suite.Require().NoError(err)
	suite.Require().Len(matchRows, 2)
	suite.Equal([]string{
		"Match", "Team", "Alliance", "Auto High", "Auto Low",
		"Teleop High", "Teleop Low", "Cycles", "Endgame", "Skill",
	}, matchRows[0])
	suite.Equal("12", matchRows[1][0])
	suite.Equal("Climbed - High", matchRows[1][8])
}

// TestReportXLSXEmptySession tests that an empty session still yields a
// well-formed workbook with only header rows
func (suite *ExportServiceTestSuite) TestReportXLSXEmptySession() {
	suite.mockPitRepo.EXPECT().ListBySession(suite.sessionID).Return(nil, nil).Times(1)
	suite.mockMatchRepo.EXPECT().ListBySession(suite.sessionID).Return(nil, nil).Times(1)

	data, err := suite.exportService.ReportXLSX(suite.sessionID)
	suite.NoError(err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	suite.Require().NoError(err)
	defer f.Close()

	pitRows, err := f.GetRows("Pit Scouting")
	suite.Require().NoError(err)
	suite.Len(pitRows, 1)
}

// Run the test suite
func TestExportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}
