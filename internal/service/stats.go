package service

import (
	"frc-scout-backend/internal/database/models"
)

// TeamAverages holds the derived per-team match metrics. It is only ever
// built from a non-empty row set; callers that have no rows present a
// "no data" state instead.
type TeamAverages struct {
	MatchCount    int     `json:"match_count"`
	AverageHigh   float64 `json:"average_high"`
	AverageLow    float64 `json:"average_low"`
	AverageCycles float64 `json:"average_cycles"`
	AverageSkill  float64 `json:"average_skill"`
}

// ComputeTeamAverages reproduces the dashboard arithmetic over a filtered
// set of match rows:
//
//	average_high   = sum(teleop_high + auto_high) / n
//	average_low    = sum(teleop_low + auto_low) / n
//	average_cycles = sum(teleop_cycles) / n
//	average_skill  = sum(driver_skill, unset counts as 3) / n
//
// Returns nil for an empty set; the division is never performed with n = 0.
func ComputeTeamAverages(rows []models.MatchScore) *TeamAverages {
	n := len(rows)
	if n == 0 {
		return nil
	}

	var high, low, cycles, skill int
	for _, m := range rows {
		high += m.TeleopHigh + m.AutoHigh
		low += m.TeleopLow + m.AutoLow
		cycles += m.TeleopCycles
		if m.DriverSkill == 0 {
			skill += 3
		} else {
			skill += m.DriverSkill
		}
	}

	return &TeamAverages{
		MatchCount:    n,
		AverageHigh:   float64(high) / float64(n),
		AverageLow:    float64(low) / float64(n),
		AverageCycles: float64(cycles) / float64(n),
		AverageSkill:  float64(skill) / float64(n),
	}
}
