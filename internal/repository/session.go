package repository

import (
	"errors"

	"frc-scout-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionRepository handles database operations for scouting sessions
type SessionRepository struct {
	db *gorm.DB
}

// Ensure SessionRepository implements SessionRepositoryInterface
var _ SessionRepositoryInterface = (*SessionRepository)(nil)

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// GetOrCreate resolves an already-normalized team code to its session,
// creating one on first use. team_code carries a unique index, so when two
// first-joins race the loser's insert fails and the winner's row is returned
// by the re-query (first-writer-wins).
func (r *SessionRepository) GetOrCreate(teamCode string) (*models.ScoutingSession, error) {
	var session models.ScoutingSession
	err := r.db.First(&session, "team_code = ?", teamCode).Error
	if err == nil {
		return &session, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	session = models.ScoutingSession{TeamCode: teamCode}
	if createErr := r.db.Create(&session).Error; createErr != nil {
		// Likely a concurrent first-join hit the unique index; return the winner.
		var winner models.ScoutingSession
		if err := r.db.First(&winner, "team_code = ?", teamCode).Error; err == nil {
			return &winner, nil
		}
		return nil, createErr
	}
	return &session, nil
}

// GetByCode retrieves a session by its normalized team code
func (r *SessionRepository) GetByCode(teamCode string) (*models.ScoutingSession, error) {
	var session models.ScoutingSession
	if err := r.db.First(&session, "team_code = ?", teamCode).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// GetByID retrieves a session by ID
func (r *SessionRepository) GetByID(id uuid.UUID) (*models.ScoutingSession, error) {
	var session models.ScoutingSession
	if err := r.db.First(&session, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}
