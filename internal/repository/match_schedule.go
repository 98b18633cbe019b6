package repository

import (
	"frc-scout-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchScheduleRepository handles database operations for the match schedule
type MatchScheduleRepository struct {
	db *gorm.DB
}

// Ensure MatchScheduleRepository implements MatchScheduleRepositoryInterface
var _ MatchScheduleRepositoryInterface = (*MatchScheduleRepository)(nil)

// NewMatchScheduleRepository creates a new match schedule repository
func NewMatchScheduleRepository(db *gorm.DB) *MatchScheduleRepository {
	return &MatchScheduleRepository{db: db}
}

// Add inserts a new scheduled match. Duplicate match numbers are permitted.
func (r *MatchScheduleRepository) Add(row *models.MatchSchedule) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(row).Error
	})
}

// ListBySession retrieves the schedule for a session ordered by match number
func (r *MatchScheduleRepository) ListBySession(sessionID uuid.UUID) ([]models.MatchSchedule, error) {
	var rows []models.MatchSchedule
	err := r.db.
		Where("session_id = ?", sessionID).
		Order("match_number ASC").
		Find(&rows).Error
	return rows, err
}

// MarkCompleted flips is_completed on the given row. Idempotent, and a no-op
// when the row does not exist: marking nothing is not an error.
func (r *MatchScheduleRepository) MarkCompleted(matchID uuid.UUID) error {
	return r.db.Model(&models.MatchSchedule{}).
		Where("id = ?", matchID).
		Update("is_completed", true).Error
}
