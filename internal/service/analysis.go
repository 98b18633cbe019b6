package service

import (
	"errors"
	"fmt"
	"strings"

	apperrors "frc-scout-backend/internal/errors"
	"frc-scout-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comparison selection bounds: side-by-side needs at least 2 teams and the
// view renders at most 4 columns.
const (
	compareMinTeams = 2
	compareMaxTeams = 4
)

// AnalysisService backs the dashboard, search and comparison views
type AnalysisService struct {
	pitRepo   repository.PitScoutingRepositoryInterface
	matchRepo repository.MatchScoreRepositoryInterface
}

// Ensure AnalysisService implements AnalysisServiceInterface
var _ AnalysisServiceInterface = (*AnalysisService)(nil)

// NewAnalysisService creates a new AnalysisService
func NewAnalysisService(pitRepo repository.PitScoutingRepositoryInterface, matchRepo repository.MatchScoreRepositoryInterface) *AnalysisService {
	return &AnalysisService{pitRepo: pitRepo, matchRepo: matchRepo}
}

// DashboardResponse summarizes a session's collected data
type DashboardResponse struct {
	TeamsScouted       int             `json:"teams_scouted"`
	MatchesRecorded    int             `json:"matches_recorded"`
	TeamsWithMatchData int64           `json:"teams_with_match_data"`
	PitEntries         []PitResponse   `json:"pit_entries"`
	MatchScores        []MatchResponse `json:"match_scores"`
}

// SearchResponse holds substring-match results over both collections plus
// the derived averages when any match rows were found
type SearchResponse struct {
	Query       string          `json:"query"`
	PitEntries  []PitResponse   `json:"pit_entries"`
	MatchScores []MatchResponse `json:"match_scores"`
	Averages    *TeamAverages   `json:"averages,omitempty"`
}

// TeamComparison is one column of the side-by-side comparison view
type TeamComparison struct {
	FRCTeam  string        `json:"frc_team"`
	Pit      *PitResponse  `json:"pit,omitempty"`
	Averages *TeamAverages `json:"averages,omitempty"`
}

// ComparisonResponse is the comparison view payload. NeedMoreSelections is
// set when exactly one team was chosen; a rendered comparison always has
// between 2 and 4 columns.
type ComparisonResponse struct {
	NeedMoreSelections bool             `json:"need_more_selections"`
	Teams              []TeamComparison `json:"teams,omitempty"`
}

// Dashboard builds the session summary: entry counts plus both collections
func (s *AnalysisService) Dashboard(sessionID uuid.UUID) (*DashboardResponse, error) {
	pits, err := s.pitRepo.ListBySession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load pit entries: %w", err)
	}
	matches, err := s.matchRepo.ListBySession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load match scores: %w", err)
	}
	distinctTeams, err := s.matchRepo.CountDistinctTeams(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to count teams with match data: %w", err)
	}

	resp := &DashboardResponse{
		TeamsScouted:       len(pits),
		MatchesRecorded:    len(matches),
		TeamsWithMatchData: distinctTeams,
		PitEntries:         make([]PitResponse, len(pits)),
		MatchScores:        make([]MatchResponse, len(matches)),
	}
	for i := range pits {
		resp.PitEntries[i] = toPitResponse(&pits[i])
	}
	for i := range matches {
		resp.MatchScores[i] = toMatchResponse(&matches[i])
	}
	return resp, nil
}

// SearchByTeam matches the query as a substring against frc_team in both
// collections independently
func (s *AnalysisService) SearchByTeam(sessionID uuid.UUID, query string) (*SearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.NewValidationError("team", "search query must not be empty")
	}

	pits, err := s.pitRepo.SearchByTeam(sessionID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search pit entries: %w", err)
	}
	matches, err := s.matchRepo.SearchByTeam(sessionID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search match scores: %w", err)
	}

	resp := &SearchResponse{
		Query:       query,
		PitEntries:  make([]PitResponse, len(pits)),
		MatchScores: make([]MatchResponse, len(matches)),
		Averages:    ComputeTeamAverages(matches),
	}
	for i := range pits {
		resp.PitEntries[i] = toPitResponse(&pits[i])
	}
	for i := range matches {
		resp.MatchScores[i] = toMatchResponse(&matches[i])
	}
	return resp, nil
}

// FilterByCapability returns pit entries where the given boolean flag is set
func (s *AnalysisService) FilterByCapability(sessionID uuid.UUID, capability string) ([]PitResponse, error) {
	pits, err := s.pitRepo.ListWithCapability(sessionID, capability)
	if err != nil {
		return nil, apperrors.NewValidationError("capability", err.Error())
	}
	responses := make([]PitResponse, len(pits))
	for i := range pits {
		responses[i] = toPitResponse(&pits[i])
	}
	return responses, nil
}

// Compare joins each selected team's pit row with its match rows and derived
// averages. Exactly one selection yields the need-more state; zero or more
// than four selections are rejected.
func (s *AnalysisService) Compare(sessionID uuid.UUID, teams []string) (*ComparisonResponse, error) {
	distinct := make([]string, 0, len(teams))
	seen := make(map[string]struct{}, len(teams))
	for _, t := range teams {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		distinct = append(distinct, t)
	}

	if len(distinct) == 0 {
		return nil, apperrors.ErrNotEnoughTeams
	}
	if len(distinct) > compareMaxTeams {
		return nil, apperrors.ErrTooManyTeams
	}
	if len(distinct) < compareMinTeams {
		return &ComparisonResponse{NeedMoreSelections: true}, nil
	}

	resp := &ComparisonResponse{Teams: make([]TeamComparison, 0, len(distinct))}
	for _, team := range distinct {
		column := TeamComparison{FRCTeam: team}

		pit, err := s.pitRepo.GetByTeam(sessionID, team)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load pit entry for team %s: %w", team, err)
		}
		if pit != nil {
			pr := toPitResponse(pit)
			column.Pit = &pr
		}

		matches, err := s.matchRepo.ListByTeam(sessionID, team)
		if err != nil {
			return nil, fmt.Errorf("failed to load match scores for team %s: %w", team, err)
		}
		column.Averages = ComputeTeamAverages(matches)

		resp.Teams = append(resp.Teams, column)
	}
	return resp, nil
}
