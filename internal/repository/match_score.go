package repository

import (
	"frc-scout-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchScoreRepository handles database operations for match scores
type MatchScoreRepository struct {
	db *gorm.DB
}

// Ensure MatchScoreRepository implements MatchScoreRepositoryInterface
var _ MatchScoreRepositoryInterface = (*MatchScoreRepository)(nil)

// NewMatchScoreRepository creates a new match score repository
func NewMatchScoreRepository(db *gorm.DB) *MatchScoreRepository {
	return &MatchScoreRepository{db: db}
}

// Insert records a new match observation. There is deliberately no upsert or
// uniqueness check here: re-scouting the same match and team produces
// additional rows.
func (r *MatchScoreRepository) Insert(score *models.MatchScore) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(score).Error
	})
}

// ListBySession retrieves all match scores for a session
func (r *MatchScoreRepository) ListBySession(sessionID uuid.UUID) ([]models.MatchScore, error) {
	var scores []models.MatchScore
	err := r.db.
		Where("session_id = ?", sessionID).
		Order("match_number ASC, frc_team ASC").
		Find(&scores).Error
	return scores, err
}

// ListByTeam retrieves match scores for an exact team number within a session
func (r *MatchScoreRepository) ListByTeam(sessionID uuid.UUID, frcTeam string) ([]models.MatchScore, error) {
	var scores []models.MatchScore
	err := r.db.
		Where("session_id = ? AND frc_team = ?", sessionID, frcTeam).
		Order("match_number ASC").
		Find(&scores).Error
	return scores, err
}

// SearchByTeam retrieves match scores whose team number contains the query as a substring
func (r *MatchScoreRepository) SearchByTeam(sessionID uuid.UUID, query string) ([]models.MatchScore, error) {
	var scores []models.MatchScore
	err := r.db.
		Where("session_id = ? AND frc_team LIKE ?", sessionID, "%"+query+"%").
		Order("match_number ASC, frc_team ASC").
		Find(&scores).Error
	return scores, err
}

// CountDistinctTeams returns how many distinct teams have match data in a session
func (r *MatchScoreRepository) CountDistinctTeams(sessionID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.MatchScore{}).
		Where("session_id = ?", sessionID).
		Distinct("frc_team").
		Count(&count).Error
	return count, err
}
