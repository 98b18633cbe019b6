package models

import (
	"github.com/google/uuid"
)

// PitScouting is one robot profile per (session, frc_team) pair. Repeated
// submissions for the same team number update the existing row in place;
// the photo columns are only touched when new bytes are supplied.
type PitScouting struct {
	BaseModel
	SessionID uuid.UUID `json:"session_id" gorm:"type:uuid;not null;index" validate:"required"`

	FRCTeam  string `json:"frc_team" gorm:"size:20;not null;index" validate:"required,max=20"`
	TeamName string `json:"team_name" gorm:"size:100" validate:"max=100"`

	Drivetrain      Drivetrain          `json:"drivetrain" gorm:"size:50"`
	RobotWeight     int                 `json:"robot_weight"`
	RobotHeight     int                 `json:"robot_height"`
	ProgrammingLang ProgrammingLanguage `json:"programming_lang" gorm:"size:50"`
	YearsExperience int                 `json:"years_experience"`

	AutoScoring  bool `json:"auto_scoring" gorm:"default:false"`
	AutoMobility bool `json:"auto_mobility" gorm:"default:false"`
	AutoPaths    int  `json:"auto_paths" gorm:"default:0"`

	CanClimb        bool `json:"can_climb" gorm:"default:false"`
	CanIntakeGround bool `json:"can_intake_ground" gorm:"default:false"`
	CanIntakeSource bool `json:"can_intake_source" gorm:"default:false"`
	CanShootSpeaker bool `json:"can_shoot_speaker" gorm:"default:false"`
	CanScoreAmp     bool `json:"can_score_amp" gorm:"default:false"`
	HasVision       bool `json:"has_vision" gorm:"default:false"`

	Strengths     string `json:"strengths" gorm:"type:text"`
	Weaknesses    string `json:"weaknesses" gorm:"type:text"`
	StrategyNotes string `json:"strategy_notes" gorm:"type:text"`
	ScouterName   string `json:"scouter_name" gorm:"size:100" validate:"max=100"`

	RobotPhoto    []byte `json:"-" gorm:"type:bytea"`
	PhotoFilename string `json:"photo_filename" gorm:"size:255"`
}

// TableName returns the table name for PitScouting
func (PitScouting) TableName() string {
	return "pit_scouting"
}

// HasPhoto reports whether a robot photo is stored for this entry
func (p *PitScouting) HasPhoto() bool {
	return len(p.RobotPhoto) > 0
}
