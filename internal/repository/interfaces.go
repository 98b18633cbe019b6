package repository

import (
	"frc-scout-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// SessionRepositoryInterface defines the interface for scouting session repository operations
type SessionRepositoryInterface interface {
	GetOrCreate(teamCode string) (*models.ScoutingSession, error)
	GetByCode(teamCode string) (*models.ScoutingSession, error)
	GetByID(id uuid.UUID) (*models.ScoutingSession, error)
}

// PitScoutingRepositoryInterface defines the interface for pit scouting repository operations
type PitScoutingRepositoryInterface interface {
	Upsert(entry *models.PitScouting) (*models.PitScouting, error)
	ListBySession(sessionID uuid.UUID) ([]models.PitScouting, error)
	GetByTeam(sessionID uuid.UUID, frcTeam string) (*models.PitScouting, error)
	SearchByTeam(sessionID uuid.UUID, query string) ([]models.PitScouting, error)
	ListWithCapability(sessionID uuid.UUID, capability string) ([]models.PitScouting, error)
}

// MatchScoreRepositoryInterface defines the interface for match score repository operations
type MatchScoreRepositoryInterface interface {
	Insert(score *models.MatchScore) error
	ListBySession(sessionID uuid.UUID) ([]models.MatchScore, error)
	ListByTeam(sessionID uuid.UUID, frcTeam string) ([]models.MatchScore, error)
	SearchByTeam(sessionID uuid.UUID, query string) ([]models.MatchScore, error)
	CountDistinctTeams(sessionID uuid.UUID) (int64, error)
}

// MatchScheduleRepositoryInterface defines the interface for match schedule repository operations
type MatchScheduleRepositoryInterface interface {
	Add(row *models.MatchSchedule) error
	ListBySession(sessionID uuid.UUID) ([]models.MatchSchedule, error)
	MarkCompleted(matchID uuid.UUID) error
}
