package models

import (
	"time"

	"github.com/google/uuid"
)

// MatchSchedule is one planned match with its six alliance slots. Scheduling
// is provisional and deliberately not linked to MatchScore rows: marking a
// match completed is an explicit action, never derived from recorded scores.
type MatchSchedule struct {
	BaseModel
	SessionID uuid.UUID `json:"session_id" gorm:"type:uuid;not null;index" validate:"required"`

	MatchNumber int       `json:"match_number" gorm:"not null" validate:"required,min=1"`
	MatchType   MatchType `json:"match_type" gorm:"size:20;default:'Qualification'"`

	Red1  string `json:"red_1" gorm:"size:20"`
	Red2  string `json:"red_2" gorm:"size:20"`
	Red3  string `json:"red_3" gorm:"size:20"`
	Blue1 string `json:"blue_1" gorm:"size:20"`
	Blue2 string `json:"blue_2" gorm:"size:20"`
	Blue3 string `json:"blue_3" gorm:"size:20"`

	ScheduledTime *time.Time `json:"scheduled_time,omitempty"`
	IsCompleted   bool       `json:"is_completed" gorm:"default:false"`
}

// TableName returns the table name for MatchSchedule
func (MatchSchedule) TableName() string {
	return "match_schedule"
}
