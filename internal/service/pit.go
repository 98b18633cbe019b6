package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"frc-scout-backend/internal/database/models"
	apperrors "frc-scout-backend/internal/errors"
	"frc-scout-backend/internal/logger"
	"frc-scout-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PitService provides pit scouting business logic
type PitService struct {
	repo          repository.PitScoutingRepositoryInterface
	validator     *validator.Validate
	maxPhotoBytes int64
}

// Ensure PitService implements PitServiceInterface
var _ PitServiceInterface = (*PitService)(nil)

// NewPitService creates a new PitService
func NewPitService(repo repository.PitScoutingRepositoryInterface, validator *validator.Validate, maxPhotoBytes int64) *PitService {
	return &PitService{
		repo:          repo,
		validator:     validator,
		maxPhotoBytes: maxPhotoBytes,
	}
}

// UpsertPitRequest carries one pit scouting form submission. Photo and
// PhotoFilename are optional; when absent, an existing photo is preserved.
type UpsertPitRequest struct {
	FRCTeam  string `json:"frc_team" form:"frc_team" validate:"required,max=20"`
	TeamName string `json:"team_name" form:"team_name" validate:"max=100"`

	Drivetrain      string `json:"drivetrain" form:"drivetrain"`
	RobotWeight     int    `json:"robot_weight" form:"robot_weight" validate:"min=0,max=150"`
	RobotHeight     int    `json:"robot_height" form:"robot_height" validate:"min=0,max=60"`
	ProgrammingLang string `json:"programming_lang" form:"programming_lang"`
	YearsExperience int    `json:"years_experience" form:"years_experience" validate:"min=0,max=30"`

	AutoScoring  bool `json:"auto_scoring" form:"auto_scoring"`
	AutoMobility bool `json:"auto_mobility" form:"auto_mobility"`
	AutoPaths    int  `json:"auto_paths" form:"auto_paths" validate:"min=0,max=10"`

	CanClimb        bool `json:"can_climb" form:"can_climb"`
	CanIntakeGround bool `json:"can_intake_ground" form:"can_intake_ground"`
	CanIntakeSource bool `json:"can_intake_source" form:"can_intake_source"`
	CanShootSpeaker bool `json:"can_shoot_speaker" form:"can_shoot_speaker"`
	CanScoreAmp     bool `json:"can_score_amp" form:"can_score_amp"`
	HasVision       bool `json:"has_vision" form:"has_vision"`

	Strengths     string `json:"strengths" form:"strengths"`
	Weaknesses    string `json:"weaknesses" form:"weaknesses"`
	StrategyNotes string `json:"strategy_notes" form:"strategy_notes"`
	ScouterName   string `json:"scouter_name" form:"scouter_name" validate:"max=100"`

	Photo         []byte `json:"-" form:"-"`
	PhotoFilename string `json:"-" form:"-"`
}

// PitResponse represents a pit scouting entry in API responses. The photo
// blob itself is served by a dedicated endpoint, so only its presence is
// reported here.
type PitResponse struct {
	ID       uuid.UUID `json:"id"`
	FRCTeam  string    `json:"frc_team"`
	TeamName string    `json:"team_name"`

	Drivetrain      models.Drivetrain          `json:"drivetrain"`
	RobotWeight     int                        `json:"robot_weight"`
	RobotHeight     int                        `json:"robot_height"`
	ProgrammingLang models.ProgrammingLanguage `json:"programming_lang"`
	YearsExperience int                        `json:"years_experience"`

	AutoScoring  bool `json:"auto_scoring"`
	AutoMobility bool `json:"auto_mobility"`
	AutoPaths    int  `json:"auto_paths"`

	CanClimb        bool `json:"can_climb"`
	CanIntakeGround bool `json:"can_intake_ground"`
	CanIntakeSource bool `json:"can_intake_source"`
	CanShootSpeaker bool `json:"can_shoot_speaker"`
	CanScoreAmp     bool `json:"can_score_amp"`
	HasVision       bool `json:"has_vision"`

	Strengths     string `json:"strengths"`
	Weaknesses    string `json:"weaknesses"`
	StrategyNotes string `json:"strategy_notes"`
	ScouterName   string `json:"scouter_name"`

	HasPhoto      bool      `json:"has_photo"`
	PhotoFilename string    `json:"photo_filename,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Upsert validates and writes a robot profile for (session, frc_team)
func (s *PitService) Upsert(sessionID uuid.UUID, req *UpsertPitRequest) (*PitResponse, error) {
	req.FRCTeam = strings.TrimSpace(req.FRCTeam)
	if req.FRCTeam == "" {
		return nil, apperrors.ErrEmptyFRCTeam
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	drivetrain := models.Drivetrain(req.Drivetrain)
	if !drivetrain.IsValid() {
		return nil, apperrors.NewValidationError("drivetrain", fmt.Sprintf("unknown drivetrain %q", req.Drivetrain))
	}
	lang := models.ProgrammingLanguage(req.ProgrammingLang)
	if !lang.IsValid() {
		return nil, apperrors.NewValidationError("programming_lang", fmt.Sprintf("unknown programming language %q", req.ProgrammingLang))
	}
	if s.maxPhotoBytes > 0 && int64(len(req.Photo)) > s.maxPhotoBytes {
		return nil, apperrors.ErrPhotoTooLarge
	}

	entry := &models.PitScouting{
		SessionID:       sessionID,
		FRCTeam:         req.FRCTeam,
		TeamName:        req.TeamName,
		Drivetrain:      drivetrain,
		RobotWeight:     req.RobotWeight,
		RobotHeight:     req.RobotHeight,
		ProgrammingLang: lang,
		YearsExperience: req.YearsExperience,
		AutoScoring:     req.AutoScoring,
		AutoMobility:    req.AutoMobility,
		AutoPaths:       req.AutoPaths,
		CanClimb:        req.CanClimb,
		CanIntakeGround: req.CanIntakeGround,
		CanIntakeSource: req.CanIntakeSource,
		CanShootSpeaker: req.CanShootSpeaker,
		CanScoreAmp:     req.CanScoreAmp,
		HasVision:       req.HasVision,
		Strengths:       req.Strengths,
		Weaknesses:      req.Weaknesses,
		StrategyNotes:   req.StrategyNotes,
		ScouterName:     req.ScouterName,
		RobotPhoto:      req.Photo,
		PhotoFilename:   req.PhotoFilename,
	}

	saved, err := s.repo.Upsert(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to save pit entry: %w", err)
	}
	logger.WithSession(sessionID.String()).WithField("frc_team", saved.FRCTeam).Info("pit entry saved")
	resp := toPitResponse(saved)
	return &resp, nil
}

// List retrieves all pit entries for a session
func (s *PitService) List(sessionID uuid.UUID) ([]PitResponse, error) {
	entries, err := s.repo.ListBySession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pit entries: %w", err)
	}
	responses := make([]PitResponse, len(entries))
	for i := range entries {
		responses[i] = toPitResponse(&entries[i])
	}
	return responses, nil
}

// GetPhoto returns the stored robot photo bytes and filename for a team
func (s *PitService) GetPhoto(sessionID uuid.UUID, frcTeam string) ([]byte, string, error) {
	entry, err := s.repo.GetByTeam(sessionID, strings.TrimSpace(frcTeam))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.ErrPitEntryNotFound
		}
		return nil, "", fmt.Errorf("failed to load pit entry: %w", err)
	}
	if !entry.HasPhoto() {
		return nil, "", apperrors.ErrPhotoNotFound
	}
	return entry.RobotPhoto, entry.PhotoFilename, nil
}

func toPitResponse(entry *models.PitScouting) PitResponse {
	return PitResponse{
		ID:              entry.ID,
		FRCTeam:         entry.FRCTeam,
		TeamName:        entry.TeamName,
		Drivetrain:      entry.Drivetrain,
		RobotWeight:     entry.RobotWeight,
		RobotHeight:     entry.RobotHeight,
		ProgrammingLang: entry.ProgrammingLang,
		YearsExperience: entry.YearsExperience,
		AutoScoring:     entry.AutoScoring,
		AutoMobility:    entry.AutoMobility,
		AutoPaths:       entry.AutoPaths,
		CanClimb:        entry.CanClimb,
		CanIntakeGround: entry.CanIntakeGround,
		CanIntakeSource: entry.CanIntakeSource,
		CanShootSpeaker: entry.CanShootSpeaker,
		CanScoreAmp:     entry.CanScoreAmp,
		HasVision:       entry.HasVision,
		Strengths:       entry.Strengths,
		Weaknesses:      entry.Weaknesses,
		StrategyNotes:   entry.StrategyNotes,
		ScouterName:     entry.ScouterName,
		HasPhoto:        entry.HasPhoto(),
		PhotoFilename:   entry.PhotoFilename,
		UpdatedAt:       entry.UpdatedAt,
	}
}
