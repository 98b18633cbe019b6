package repository

import (
	"errors"
	"fmt"

	"frc-scout-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// capabilityColumns whitelists the boolean pit columns usable as quick filters.
// Anything else is rejected before it can reach the query builder.
var capabilityColumns = map[string]string{
	"auto_scoring":      "auto_scoring",
	"auto_mobility":     "auto_mobility",
	"can_climb":         "can_climb",
	"can_intake_ground": "can_intake_ground",
	"can_intake_source": "can_intake_source",
	"can_shoot_speaker": "can_shoot_speaker",
	"can_score_amp":     "can_score_amp",
	"has_vision":        "has_vision",
}

// PitScoutingRepository handles database operations for pit scouting entries
type PitScoutingRepository struct {
	db *gorm.DB
}

// Ensure PitScoutingRepository implements PitScoutingRepositoryInterface
var _ PitScoutingRepositoryInterface = (*PitScoutingRepository)(nil)

// NewPitScoutingRepository creates a new pit scouting repository
func NewPitScoutingRepository(db *gorm.DB) *PitScoutingRepository {
	return &PitScoutingRepository{db: db}
}

// Upsert writes a robot profile. A row matched by exact (session_id, frc_team)
// equality is overwritten field by field; otherwise a new row is inserted.
// The photo columns are replaced only when the incoming entry carries photo
// bytes, so re-submitting the form without a photo preserves the stored one.
// Runs in a transaction so the read-then-write pair commits or rolls back as
// a unit.
func (r *PitScoutingRepository) Upsert(entry *models.PitScouting) (*models.PitScouting, error) {
	var result *models.PitScouting
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.PitScouting
		err := tx.First(&existing, "session_id = ? AND frc_team = ?", entry.SessionID, entry.FRCTeam).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if createErr := tx.Create(entry).Error; createErr != nil {
				return createErr
			}
			result = entry
			return nil
		}
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"team_name":         entry.TeamName,
			"drivetrain":        entry.Drivetrain,
			"robot_weight":      entry.RobotWeight,
			"robot_height":      entry.RobotHeight,
			"programming_lang":  entry.ProgrammingLang,
			"years_experience":  entry.YearsExperience,
			"auto_scoring":      entry.AutoScoring,
			"auto_mobility":     entry.AutoMobility,
			"auto_paths":        entry.AutoPaths,
			"can_climb":         entry.CanClimb,
			"can_intake_ground": entry.CanIntakeGround,
			"can_intake_source": entry.CanIntakeSource,
			"can_shoot_speaker": entry.CanShootSpeaker,
			"can_score_amp":     entry.CanScoreAmp,
			"has_vision":        entry.HasVision,
			"strengths":         entry.Strengths,
			"weaknesses":        entry.Weaknesses,
			"strategy_notes":    entry.StrategyNotes,
			"scouter_name":      entry.ScouterName,
		}
		if len(entry.RobotPhoto) > 0 {
			updates["robot_photo"] = entry.RobotPhoto
			updates["photo_filename"] = entry.PhotoFilename
		}
		if err := tx.Model(&existing).Updates(updates).Error; err != nil {
			return err
		}

		var refreshed models.PitScouting
		if err := tx.First(&refreshed, "id = ?", existing.ID).Error; err != nil {
			return err
		}
		result = &refreshed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListBySession retrieves all pit entries for a session
func (r *PitScoutingRepository) ListBySession(sessionID uuid.UUID) ([]models.PitScouting, error) {
	var entries []models.PitScouting
	err := r.db.Where("session_id = ?", sessionID).Order("created_at ASC").Find(&entries).Error
	return entries, err
}

// GetByTeam retrieves the single pit entry for a team within a session
func (r *PitScoutingRepository) GetByTeam(sessionID uuid.UUID, frcTeam string) (*models.PitScouting, error) {
	var entry models.PitScouting
	if err := r.db.First(&entry, "session_id = ? AND frc_team = ?", sessionID, frcTeam).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// SearchByTeam retrieves pit entries whose team number contains the query as a substring
func (r *PitScoutingRepository) SearchByTeam(sessionID uuid.UUID, query string) ([]models.PitScouting, error) {
	var entries []models.PitScouting
	err := r.db.
		Where("session_id = ? AND frc_team LIKE ?", sessionID, "%"+query+"%").
		Order("frc_team ASC").
		Find(&entries).Error
	return entries, err
}

// ListWithCapability retrieves pit entries where the given capability flag is set
func (r *PitScoutingRepository) ListWithCapability(sessionID uuid.UUID, capability string) ([]models.PitScouting, error) {
	column, ok := capabilityColumns[capability]
	if !ok {
		return nil, fmt.Errorf("unknown capability filter: %q", capability)
	}

	var entries []models.PitScouting
	err := r.db.
		Where("session_id = ?", sessionID).
		Where(fmt.Sprintf("%s = ?", column), true).
		Order("frc_team ASC").
		Find(&entries).Error
	return entries, err
}
