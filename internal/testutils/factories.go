package testutils

import (
	"time"

	"frc-scout-backend/internal/database/models"

	"github.com/google/uuid"
)

// SessionFactory provides methods to create test ScoutingSession data
type SessionFactory struct{}

// NewSessionFactory creates a new SessionFactory
func NewSessionFactory() *SessionFactory {
	return &SessionFactory{}
}

// Create creates a test ScoutingSession with default values
func (f *SessionFactory) Create() *models.ScoutingSession {
	id := uuid.New()
	return &models.ScoutingSession{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Unique code per session to avoid unique-index collisions across tests
		TeamCode: "team-" + id.String()[:8],
	}
}

// WithCode sets a custom team code for the session
func (f *SessionFactory) WithCode(code string) *models.ScoutingSession {
	session := f.Create()
	session.TeamCode = code
	return session
}

// PitScoutingFactory provides methods to create test PitScouting data
type PitScoutingFactory struct{}

// NewPitScoutingFactory creates a new PitScoutingFactory
func NewPitScoutingFactory() *PitScoutingFactory {
	return &PitScoutingFactory{}
}

// Create creates a test PitScouting entry with default values
func (f *PitScoutingFactory) Create(sessionID uuid.UUID) *models.PitScouting {
	return &models.PitScouting{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SessionID:       sessionID,
		FRCTeam:         "254",
		TeamName:        "The Cheesy Poofs",
		Drivetrain:      models.DrivetrainSwerve,
		RobotWeight:     115,
		RobotHeight:     28,
		ProgrammingLang: models.ProgrammingLanguageJava,
		YearsExperience: 20,
		AutoScoring:     true,
		AutoMobility:    true,
		AutoPaths:       3,
		CanClimb:        true,
		CanIntakeGround: true,
		CanShootSpeaker: true,
		HasVision:       true,
		Strengths:       "Fast cycles",
		Weaknesses:      "None observed",
		ScouterName:     "Alex",
	}
}

// WithTeam sets a custom team number for the pit entry
func (f *PitScoutingFactory) WithTeam(sessionID uuid.UUID, frcTeam string) *models.PitScouting {
	entry := f.Create(sessionID)
	entry.FRCTeam = frcTeam
	return entry
}

// WithPhoto attaches photo bytes to the pit entry
func (f *PitScoutingFactory) WithPhoto(sessionID uuid.UUID, photo []byte, filename string) *models.PitScouting {
	entry := f.Create(sessionID)
	entry.RobotPhoto = photo
	entry.PhotoFilename = filename
	return entry
}

// MatchScoreFactory provides methods to create test MatchScore data
type MatchScoreFactory struct{}

// NewMatchScoreFactory creates a new MatchScoreFactory
func NewMatchScoreFactory() *MatchScoreFactory {
	return &MatchScoreFactory{}
}

// Create creates a test MatchScore with default values
func (f *MatchScoreFactory) Create(sessionID uuid.UUID) *models.MatchScore {
	return &models.MatchScore{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SessionID:     sessionID,
		MatchNumber:   1,
		FRCTeam:       "254",
		Alliance:      models.AllianceRed,
		AutoLeave:     true,
		AutoHigh:      2,
		AutoLow:       1,
		TeleopHigh:    5,
		TeleopLow:     2,
		TeleopCycles:  7,
		EndgameStatus: models.EndgameClimbedHigh,
		DefenseRating: 3,
		DriverSkill:   4,
		ScouterName:   "Alex",
	}
}

// WithMatch sets the match number and team for the score
func (f *MatchScoreFactory) WithMatch(sessionID uuid.UUID, matchNumber int, frcTeam string) *models.MatchScore {
	score := f.Create(sessionID)
	score.MatchNumber = matchNumber
	score.FRCTeam = frcTeam
	return score
}

// MatchScheduleFactory provides methods to create test MatchSchedule data
type MatchScheduleFactory struct{}

// NewMatchScheduleFactory creates a new MatchScheduleFactory
func NewMatchScheduleFactory() *MatchScheduleFactory {
	return &MatchScheduleFactory{}
}

// Create creates a test MatchSchedule row with default values
func (f *MatchScheduleFactory) Create(sessionID uuid.UUID) *models.MatchSchedule {
	scheduled := time.Now().Add(time.Hour).Truncate(time.Second)
	return &models.MatchSchedule{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SessionID:     sessionID,
		MatchNumber:   1,
		MatchType:     models.MatchTypeQualification,
		Red1:          "254",
		Red2:          "1678",
		Red3:          "118",
		Blue1:         "2056",
		Blue2:         "1114",
		Blue3:         "971",
		ScheduledTime: &scheduled,
	}
}

// WithMatchNumber sets the match number for the schedule row
func (f *MatchScheduleFactory) WithMatchNumber(sessionID uuid.UUID, matchNumber int) *models.MatchSchedule {
	row := f.Create(sessionID)
	row.MatchNumber = matchNumber
	return row
}

// FactorySet provides access to all factories
type FactorySet struct {
	Session       *SessionFactory
	PitScouting   *PitScoutingFactory
	MatchScore    *MatchScoreFactory
	MatchSchedule *MatchScheduleFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Session:       NewSessionFactory(),
		PitScouting:   NewPitScoutingFactory(),
		MatchScore:    NewMatchScoreFactory(),
		MatchSchedule: NewMatchScheduleFactory(),
	}
}
