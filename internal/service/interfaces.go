package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// SessionServiceInterface defines the interface for the session service
type SessionServiceInterface interface {
	Join(teamCode string) (*SessionResponse, error)
	Get(sessionID uuid.UUID) (*SessionResponse, error)
}

// PitServiceInterface defines the interface for the pit scouting service
type PitServiceInterface interface {
	Upsert(sessionID uuid.UUID, req *UpsertPitRequest) (*PitResponse, error)
	List(sessionID uuid.UUID) ([]PitResponse, error)
	GetPhoto(sessionID uuid.UUID, frcTeam string) ([]byte, string, error)
}

// MatchServiceInterface defines the interface for the match scoring service
type MatchServiceInterface interface {
	Record(sessionID uuid.UUID, req *RecordMatchRequest) (*MatchResponse, error)
	List(sessionID uuid.UUID) ([]MatchResponse, error)
}

// ScheduleServiceInterface defines the interface for the match schedule service
type ScheduleServiceInterface interface {
	Add(sessionID uuid.UUID, req *AddScheduleRequest) (*ScheduleResponse, error)
	List(sessionID uuid.UUID) ([]ScheduleResponse, error)
	MarkCompleted(matchID uuid.UUID) error
}

// AnalysisServiceInterface defines the interface for dashboard, search and comparison views
type AnalysisServiceInterface interface {
	Dashboard(sessionID uuid.UUID) (*DashboardResponse, error)
	SearchByTeam(sessionID uuid.UUID, query string) (*SearchResponse, error)
	FilterByCapability(sessionID uuid.UUID, capability string) ([]PitResponse, error)
	Compare(sessionID uuid.UUID, teams []string) (*ComparisonResponse, error)
}

// ExportServiceInterface defines the interface for tabular exports
type ExportServiceInterface interface {
	PitCSV(sessionID uuid.UUID) ([]byte, error)
	MatchCSV(sessionID uuid.UUID) ([]byte, error)
	ReportXLSX(sessionID uuid.UUID) ([]byte, error)
}
