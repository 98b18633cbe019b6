package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"frc-scout-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// Fixed export column sets. Order and names are a compatibility contract
// with downstream spreadsheet consumers; do not reorder.
var (
	pitCSVHeader = []string{
		"Team Number", "Team Name", "Drivetrain", "Weight (lbs)", "Height (in)",
		"Programming Language", "Years Experience", "Auto Scoring", "Auto Mobility",
		"Auto Paths", "Can Climb", "Ground Intake", "Source Intake", "High Scoring",
		"Low Scoring", "Has Vision", "Strengths", "Weaknesses", "Strategy Notes", "Scout",
	}
	matchCSVHeader = []string{
		"Match Number", "Team Number", "Alliance", "Auto Leave", "Auto High",
		"Auto Low", "Teleop High", "Teleop Low", "Teleop Cycles", "Endgame",
		"Trap Scored", "Defense Rating", "Driver Skill", "Died on Field",
		"Tipped Over", "Exploded", "Notes", "Scout",
	}
	pitSheetHeader = []string{
		"Team Number", "Team Name", "Drivetrain", "Weight (lbs)", "Height (in)",
		"Can Climb", "Has Vision", "Auto Paths", "Strengths", "Weaknesses",
	}
	matchSheetHeader = []string{
		"Match", "Team", "Alliance", "Auto High", "Auto Low",
		"Teleop High", "Teleop Low", "Cycles", "Endgame", "Skill",
	}
)

const (
	pitSheetName   = "Pit Scouting"
	matchSheetName = "Match Scores"
)

// ExportService produces the CSV and workbook exports
type ExportService struct {
	pitRepo   repository.PitScoutingRepositoryInterface
	matchRepo repository.MatchScoreRepositoryInterface
}

// Ensure ExportService implements ExportServiceInterface
var _ ExportServiceInterface = (*ExportService)(nil)

// NewExportService creates a new ExportService
func NewExportService(pitRepo repository.PitScoutingRepositoryInterface, matchRepo repository.MatchScoreRepositoryInterface) *ExportService {
	return &ExportService{pitRepo: pitRepo, matchRepo: matchRepo}
}

// PitCSV renders all pit entries of a session as CSV with the full column set
func (s *ExportService) PitCSV(sessionID uuid.UUID) ([]byte, error) {
	entries, err := s.pitRepo.ListBySession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load pit entries: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(pitCSVHeader); err != nil {
		return nil, err
	}
	for i := range entries {
		p := &entries[i]
		record := []string{
			p.FRCTeam,
			p.TeamName,
			string(p.Drivetrain),
			strconv.Itoa(p.RobotWeight),
			strconv.Itoa(p.RobotHeight),
			string(p.ProgrammingLang),
			strconv.Itoa(p.YearsExperience),
			strconv.FormatBool(p.AutoScoring),
			strconv.FormatBool(p.AutoMobility),
			strconv.Itoa(p.AutoPaths),
			strconv.FormatBool(p.CanClimb),
			strconv.FormatBool(p.CanIntakeGround),
			strconv.FormatBool(p.CanIntakeSource),
			strconv.FormatBool(p.CanShootSpeaker),
			strconv.FormatBool(p.CanScoreAmp),
			strconv.FormatBool(p.HasVision),
			p.Strengths,
			p.Weaknesses,
			p.StrategyNotes,
			p.ScouterName,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MatchCSV renders all match scores of a session as CSV with the full column set
func (s *ExportService) MatchCSV(sessionID uuid.UUID) ([]byte, error) {
	scores, err := s.matchRepo.ListBySession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load match scores: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(matchCSVHeader); err != nil {
		return nil, err
	}
	for i := range scores {
		m := &scores[i]
		record := []string{
			strconv.Itoa(m.MatchNumber),
			m.FRCTeam,
			string(m.Alliance),
			strconv.FormatBool(m.AutoLeave),
			strconv.Itoa(m.AutoHigh),
			strconv.Itoa(m.AutoLow),
			strconv.Itoa(m.TeleopHigh),
			strconv.Itoa(m.TeleopLow),
			strconv.Itoa(m.TeleopCycles),
			string(m.EndgameStatus),
			strconv.FormatBool(m.TrapScored),
			strconv.Itoa(m.DefenseRating),
			strconv.Itoa(m.DriverSkill),
			strconv.FormatBool(m.DiedOnField),
			strconv.FormatBool(m.TippedOver),
			strconv.FormatBool(m.Exploded),
			m.MatchNotes,
			m.ScouterName,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReportXLSX builds the combined workbook: one sheet per collection with the
// reduced column subsets
func (s *ExportService) ReportXLSX(sessionID uuid.UUID) ([]byte, error) {
	entries, err := s.pitRepo.ListBySession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load pit entries: %w", err)
	}
	scores, err := s.matchRepo.ListBySession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load match scores: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(pitSheetName); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(matchSheetName); err != nil {
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	if err := writeSheetRow(f, pitSheetName, 1, toRow(pitSheetHeader)); err != nil {
		return nil, err
	}
	for i := range entries {
		p := &entries[i]
		row := []interface{}{
			p.FRCTeam, p.TeamName, string(p.Drivetrain), p.RobotWeight, p.RobotHeight,
			p.CanClimb, p.HasVision, p.AutoPaths, p.Strengths, p.Weaknesses,
		}
		if err := writeSheetRow(f, pitSheetName, i+2, row); err != nil {
			return nil, err
		}
	}

	if err := writeSheetRow(f, matchSheetName, 1, toRow(matchSheetHeader)); err != nil {
		return nil, err
	}
	for i := range scores {
		m := &scores[i]
		row := []interface{}{
			m.MatchNumber, m.FRCTeam, string(m.Alliance), m.AutoHigh, m.AutoLow,
			m.TeleopHigh, m.TeleopLow, m.TeleopCycles, string(m.EndgameStatus), m.DriverSkill,
		}
		if err := writeSheetRow(f, matchSheetName, i+2, row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheetRow(f *excelize.File, sheet string, rowNum int, row []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &row)
}

func toRow(header []string) []interface{} {
	row := make([]interface{}, len(header))
	for i, h := range header {
		row[i] = h
	}
	return row
}
