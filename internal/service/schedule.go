package service

import (
	"fmt"
	"time"

	"frc-scout-backend/internal/database/models"
	apperrors "frc-scout-backend/internal/errors"
	"frc-scout-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ScheduleService provides match schedule business logic
type ScheduleService struct {
	repo      repository.MatchScheduleRepositoryInterface
	validator *validator.Validate
}

// Ensure ScheduleService implements ScheduleServiceInterface
var _ ScheduleServiceInterface = (*ScheduleService)(nil)

// NewScheduleService creates a new ScheduleService
func NewScheduleService(repo repository.MatchScheduleRepositoryInterface, validator *validator.Validate) *ScheduleService {
	return &ScheduleService{repo: repo, validator: validator}
}

// AddScheduleRequest carries one schedule entry. MatchType defaults to
// Qualification when omitted; ScheduledTime is optional RFC 3339.
type AddScheduleRequest struct {
	MatchNumber int    `json:"match_number" validate:"required,min=1,max=200"`
	MatchType   string `json:"match_type"`

	Red1  string `json:"red_1" validate:"max=20"`
	Red2  string `json:"red_2" validate:"max=20"`
	Red3  string `json:"red_3" validate:"max=20"`
	Blue1 string `json:"blue_1" validate:"max=20"`
	Blue2 string `json:"blue_2" validate:"max=20"`
	Blue3 string `json:"blue_3" validate:"max=20"`

	ScheduledTime *time.Time `json:"scheduled_time,omitempty"`
}

// ScheduleResponse represents a scheduled match in API responses
type ScheduleResponse struct {
	ID          uuid.UUID        `json:"id"`
	MatchNumber int              `json:"match_number"`
	MatchType   models.MatchType `json:"match_type"`

	Red1  string `json:"red_1"`
	Red2  string `json:"red_2"`
	Red3  string `json:"red_3"`
	Blue1 string `json:"blue_1"`
	Blue2 string `json:"blue_2"`
	Blue3 string `json:"blue_3"`

	ScheduledTime *time.Time `json:"scheduled_time,omitempty"`
	IsCompleted   bool       `json:"is_completed"`
}

// Add validates and inserts a schedule entry. Duplicate match numbers are
// allowed by design; corrections are entered as additional rows.
func (s *ScheduleService) Add(sessionID uuid.UUID, req *AddScheduleRequest) (*ScheduleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	matchType := models.MatchType(req.MatchType)
	if req.MatchType == "" {
		matchType = models.MatchTypeQualification
	}
	if !matchType.IsValid() {
		return nil, apperrors.NewValidationError("match_type", fmt.Sprintf("unknown match type %q", req.MatchType))
	}

	row := &models.MatchSchedule{
		SessionID:     sessionID,
		MatchNumber:   req.MatchNumber,
		MatchType:     matchType,
		Red1:          req.Red1,
		Red2:          req.Red2,
		Red3:          req.Red3,
		Blue1:         req.Blue1,
		Blue2:         req.Blue2,
		Blue3:         req.Blue3,
		ScheduledTime: req.ScheduledTime,
	}

	if err := s.repo.Add(row); err != nil {
		return nil, fmt.Errorf("failed to add schedule entry: %w", err)
	}
	resp := toScheduleResponse(row)
	return &resp, nil
}

// List retrieves the schedule ordered ascending by match number
func (s *ScheduleService) List(sessionID uuid.UUID) ([]ScheduleResponse, error) {
	rows, err := s.repo.ListBySession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule: %w", err)
	}
	responses := make([]ScheduleResponse, len(rows))
	for i := range rows {
		responses[i] = toScheduleResponse(&rows[i])
	}
	return responses, nil
}

// MarkCompleted flips is_completed for the given schedule row. Marking an
// already-completed or missing row is a no-op, not an error.
func (s *ScheduleService) MarkCompleted(matchID uuid.UUID) error {
	if err := s.repo.MarkCompleted(matchID); err != nil {
		return fmt.Errorf("failed to mark match completed: %w", err)
	}
	return nil
}

func toScheduleResponse(row *models.MatchSchedule) ScheduleResponse {
	return ScheduleResponse{
		ID:            row.ID,
		MatchNumber:   row.MatchNumber,
		MatchType:     row.MatchType,
		Red1:          row.Red1,
		Red2:          row.Red2,
		Red3:          row.Red3,
		Blue1:         row.Blue1,
		Blue2:         row.Blue2,
		Blue3:         row.Blue3,
		ScheduledTime: row.ScheduledTime,
		IsCompleted:   row.IsCompleted,
	}
}
