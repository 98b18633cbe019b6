package models

import (
	"github.com/google/uuid"
)

// MatchScore is one observational record of a team's performance in a match.
// Every submission inserts a new row; duplicates for the same (match, team)
// are intentional, since re-scouting is allowed.
type MatchScore struct {
	BaseModel
	SessionID uuid.UUID `json:"session_id" gorm:"type:uuid;not null;index" validate:"required"`

	MatchNumber int      `json:"match_number" gorm:"not null" validate:"required,min=1"`
	FRCTeam     string   `json:"frc_team" gorm:"size:20;not null;index" validate:"required,max=20"`
	Alliance    Alliance `json:"alliance" gorm:"size:10"`

	AutoLeave bool `json:"auto_leave" gorm:"default:false"`
	AutoHigh  int  `json:"auto_high" gorm:"default:0"`
	AutoLow   int  `json:"auto_low" gorm:"default:0"`

	TeleopHigh   int `json:"teleop_high" gorm:"default:0"`
	TeleopLow    int `json:"teleop_low" gorm:"default:0"`
	TeleopCycles int `json:"teleop_cycles" gorm:"default:0"`

	EndgameStatus EndgameStatus `json:"endgame_status" gorm:"size:50"`
	TrapScored    bool          `json:"trap_scored" gorm:"default:false"`

	DefenseRating int  `json:"defense_rating" gorm:"default:3" validate:"min=1,max=5"`
	DriverSkill   int  `json:"driver_skill" gorm:"default:3" validate:"min=1,max=5"`
	DiedOnField   bool `json:"died_on_field" gorm:"default:false"`
	TippedOver    bool `json:"tipped_over" gorm:"default:false"`
	Exploded      bool `json:"exploded" gorm:"default:false"`

	MatchNotes  string `json:"match_notes" gorm:"type:text"`
	ScouterName string `json:"scouter_name" gorm:"size:100" validate:"max=100"`
}

// TableName returns the table name for MatchScore
func (MatchScore) TableName() string {
	return "match_scores"
}
