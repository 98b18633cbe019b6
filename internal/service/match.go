package service

import (
	"fmt"
	"strings"
	"time"

	"frc-scout-backend/internal/database/models"
	apperrors "frc-scout-backend/internal/errors"
	"frc-scout-backend/internal/logger"
	"frc-scout-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MatchService provides match scoring business logic
type MatchService struct {
	repo      repository.MatchScoreRepositoryInterface
	validator *validator.Validate
}

// Ensure MatchService implements MatchServiceInterface
var _ MatchServiceInterface = (*MatchService)(nil)

// NewMatchService creates a new MatchService
func NewMatchService(repo repository.MatchScoreRepositoryInterface, validator *validator.Validate) *MatchService {
	return &MatchService{repo: repo, validator: validator}
}

// RecordMatchRequest carries one match scoring form submission. Counts left
// unset default to 0 and the two ratings default to 3.
type RecordMatchRequest struct {
	MatchNumber int    `json:"match_number" validate:"required,min=1,max=200"`
	FRCTeam     string `json:"frc_team" validate:"required,max=20"`
	Alliance    string `json:"alliance"`

	AutoLeave bool `json:"auto_leave"`
	AutoHigh  int  `json:"auto_high" validate:"min=0,max=20"`
	AutoLow   int  `json:"auto_low" validate:"min=0,max=20"`

	TeleopHigh   int `json:"teleop_high" validate:"min=0,max=50"`
	TeleopLow    int `json:"teleop_low" validate:"min=0,max=50"`
	TeleopCycles int `json:"teleop_cycles" validate:"min=0,max=30"`

	EndgameStatus string `json:"endgame_status"`
	TrapScored    bool   `json:"trap_scored"`

	DefenseRating int  `json:"defense_rating" validate:"min=0,max=5"`
	DriverSkill   int  `json:"driver_skill" validate:"min=0,max=5"`
	DiedOnField   bool `json:"died_on_field"`
	TippedOver    bool `json:"tipped_over"`
	Exploded      bool `json:"exploded"`

	MatchNotes  string `json:"match_notes"`
	ScouterName string `json:"scouter_name" validate:"max=100"`
}

// MatchResponse represents a match score record in API responses
type MatchResponse struct {
	ID          uuid.UUID       `json:"id"`
	MatchNumber int             `json:"match_number"`
	FRCTeam     string          `json:"frc_team"`
	Alliance    models.Alliance `json:"alliance"`

	AutoLeave bool `json:"auto_leave"`
	AutoHigh  int  `json:"auto_high"`
	AutoLow   int  `json:"auto_low"`

	TeleopHigh   int `json:"teleop_high"`
	TeleopLow    int `json:"teleop_low"`
	TeleopCycles int `json:"teleop_cycles"`

	EndgameStatus models.EndgameStatus `json:"endgame_status"`
	TrapScored    bool                 `json:"trap_scored"`

	DefenseRating int  `json:"defense_rating"`
	DriverSkill   int  `json:"driver_skill"`
	DiedOnField   bool `json:"died_on_field"`
	TippedOver    bool `json:"tipped_over"`
	Exploded      bool `json:"exploded"`

	MatchNotes  string    `json:"match_notes"`
	ScouterName string    `json:"scouter_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// Record validates and inserts a new match observation. Always an insert:
// duplicate (match, team) submissions are legitimate re-scouting.
func (s *MatchService) Record(sessionID uuid.UUID, req *RecordMatchRequest) (*MatchResponse, error) {
	req.FRCTeam = strings.TrimSpace(req.FRCTeam)
	if req.FRCTeam == "" {
		return nil, apperrors.ErrEmptyFRCTeam
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	alliance := models.Alliance(req.Alliance)
	if !alliance.IsValid() {
		return nil, apperrors.NewValidationError("alliance", fmt.Sprintf("unknown alliance %q", req.Alliance))
	}
	endgame := models.EndgameStatus(req.EndgameStatus)
	if !endgame.IsValid() {
		return nil, apperrors.NewValidationError("endgame_status", fmt.Sprintf("unknown endgame status %q", req.EndgameStatus))
	}

	// Ratings default to the midpoint when the form leaves them unset
	defense := req.DefenseRating
	if defense == 0 {
		defense = 3
	}
	skill := req.DriverSkill
	if skill == 0 {
		skill = 3
	}

	score := &models.MatchScore{
		SessionID:     sessionID,
		MatchNumber:   req.MatchNumber,
		FRCTeam:       req.FRCTeam,
		Alliance:      alliance,
		AutoLeave:     req.AutoLeave,
		AutoHigh:      req.AutoHigh,
		AutoLow:       req.AutoLow,
		TeleopHigh:    req.TeleopHigh,
		TeleopLow:     req.TeleopLow,
		TeleopCycles:  req.TeleopCycles,
		EndgameStatus: endgame,
		TrapScored:    req.TrapScored,
		DefenseRating: defense,
		DriverSkill:   skill,
		DiedOnField:   req.DiedOnField,
		TippedOver:    req.TippedOver,
		Exploded:      req.Exploded,
		MatchNotes:    req.MatchNotes,
		ScouterName:   req.ScouterName,
	}

	if err := s.repo.Insert(score); err != nil {
		return nil, fmt.Errorf("failed to record match score: %w", err)
	}
	logger.WithSession(sessionID.String()).WithFields(map[string]interface{}{
		"match_number": score.MatchNumber,
		"frc_team":     score.FRCTeam,
	}).Info("match score recorded")
	resp := toMatchResponse(score)
	return &resp, nil
}

// List retrieves all match scores for a session
func (s *MatchService) List(sessionID uuid.UUID) ([]MatchResponse, error) {
	scores, err := s.repo.ListBySession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list match scores: %w", err)
	}
	responses := make([]MatchResponse, len(scores))
	for i := range scores {
		responses[i] = toMatchResponse(&scores[i])
	}
	return responses, nil
}

func toMatchResponse(score *models.MatchScore) MatchResponse {
	return MatchResponse{
		ID:            score.ID,
		MatchNumber:   score.MatchNumber,
		FRCTeam:       score.FRCTeam,
		Alliance:      score.Alliance,
		AutoLeave:     score.AutoLeave,
		AutoHigh:      score.AutoHigh,
		AutoLow:       score.AutoLow,
		TeleopHigh:    score.TeleopHigh,
		TeleopLow:     score.TeleopLow,
		TeleopCycles:  score.TeleopCycles,
		EndgameStatus: score.EndgameStatus,
		TrapScored:    score.TrapScored,
		DefenseRating: score.DefenseRating,
		DriverSkill:   score.DriverSkill,
		DiedOnField:   score.DiedOnField,
		TippedOver:    score.TippedOver,
		Exploded:      score.Exploded,
		MatchNotes:    score.MatchNotes,
		ScouterName:   score.ScouterName,
		CreatedAt:     score.CreatedAt,
	}
}
