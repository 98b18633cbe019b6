package service

import (
	"fmt"
	"strings"
	"time"

	apperrors "frc-scout-backend/internal/errors"
	"frc-scout-backend/internal/logger"
	"frc-scout-backend/internal/repository"

	"github.com/google/uuid"
)

// SessionService resolves team codes to scouting sessions
type SessionService struct {
	repo repository.SessionRepositoryInterface
}

// Ensure SessionService implements SessionServiceInterface
var _ SessionServiceInterface = (*SessionService)(nil)

// NewSessionService creates a new SessionService
func NewSessionService(repo repository.SessionRepositoryInterface) *SessionService {
	return &SessionService{repo: repo}
}

// SessionResponse represents a scouting session in API responses
type SessionResponse struct {
	SessionID uuid.UUID `json:"session_id"`
	TeamCode  string    `json:"team_code"`
	CreatedAt time.Time `json:"created_at"`
}

// NormalizeTeamCode trims whitespace and lowercases a team code. Two codes
// that normalize identically always resolve to the same session.
func NormalizeTeamCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// Join resolves a team code to its session id, creating the session on first
// use. An empty code (after trimming) is rejected before reaching storage.
func (s *SessionService) Join(teamCode string) (*SessionResponse, error) {
	normalized := NormalizeTeamCode(teamCode)
	if normalized == "" {
		return nil, apperrors.ErrEmptyTeamCode
	}

	session, err := s.repo.GetOrCreate(normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}
	logger.WithSession(session.ID.String()).WithField("team_code", session.TeamCode).Info("session resolved")

	return &SessionResponse{
		SessionID: session.ID,
		TeamCode:  session.TeamCode,
		CreatedAt: session.CreatedAt,
	}, nil
}

// Get retrieves a session by id
func (s *SessionService) Get(sessionID uuid.UUID) (*SessionResponse, error) {
	session, err := s.repo.GetByID(sessionID)
	if err != nil {
		return nil, apperrors.ErrSessionNotFound
	}
	return &SessionResponse{
		SessionID: session.ID,
		TeamCode:  session.TeamCode,
		CreatedAt: session.CreatedAt,
	}, nil
}
