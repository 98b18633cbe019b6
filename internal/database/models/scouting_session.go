package models

// ScoutingSession is a shared scouting workspace identified by a team code.
// The code is normalized (trimmed, lowercased) before it reaches the model,
// and is the entire access-control mechanism: anyone holding it can read and
// write every record in the session.
type ScoutingSession struct {
	BaseModel
	TeamCode string `json:"team_code" gorm:"size:50;uniqueIndex;not null" validate:"required,min=1,max=50"`

	// Relationships
	PitEntries    []PitScouting   `json:"pit_entries,omitempty" gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
	MatchScores   []MatchScore    `json:"match_scores,omitempty" gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
	ScheduledRows []MatchSchedule `json:"scheduled_rows,omitempty" gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ScoutingSession
func (ScoutingSession) TableName() string {
	return "scouting_sessions"
}
