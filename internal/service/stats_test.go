package service_test

import (
	"testing"

	"frc-scout-backend/internal/database/models"
	"frc-scout-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestComputeTeamAveragesEmpty tests that no averages are derived from zero rows
func TestComputeTeamAveragesEmpty(t *testing.T) {
	assert.Nil(t, service.ComputeTeamAverages(nil))
	assert.Nil(t, service.ComputeTeamAverages([]models.MatchScore{}))
}

// TestComputeTeamAveragesSingleRow tests the single-observation case
func TestComputeTeamAveragesSingleRow(t *testing.T) {
	rows := []models.MatchScore{
		{AutoHigh: 2, TeleopHigh: 5, AutoLow: 1, TeleopLow: 2, TeleopCycles: 7, DriverSkill: 4},
	}

	avg := service.ComputeTeamAverages(rows)

	require.NotNil(t, avg)
	assert.Equal(t, 1, avg.MatchCount)
	assert.InDelta(t, 7.0, avg.AverageHigh, 1e-9)
	assert.InDelta(t, 3.0, avg.AverageLow, 1e-9)
	assert.InDelta(t, 7.0, avg.AverageCycles, 1e-9)
	assert.InDelta(t, 4.0, avg.AverageSkill, 1e-9)
}

// TestComputeTeamAveragesCombinesAutoAndTeleop tests that the high and low
// averages sum both game phases before dividing
func TestComputeTeamAveragesCombinesAutoAndTeleop(t *testing.T) {
	rows := []models.MatchScore{
		{AutoHigh: 2, TeleopHigh: 3, AutoLow: 0, TeleopLow: 1, TeleopCycles: 5, DriverSkill: 4},
		{AutoHigh: 2, TeleopHigh: 3, AutoLow: 2, TeleopLow: 1, TeleopCycles: 7, DriverSkill: 2},
	}

	avg := service.ComputeTeamAverages(rows)

	require.NotNil(t, avg)
	assert.Equal(t, 2, avg.MatchCount)
	assert.InDelta(t, 5.0, avg.AverageHigh, 1e-9)
	assert.InDelta(t, 2.0, avg.AverageLow, 1e-9)
	assert.InDelta(t, 6.0, avg.AverageCycles, 1e-9)
	assert.InDelta(t, 3.0, avg.AverageSkill, 1e-9)
}

// TestComputeTeamAveragesUnsetSkillCountsAsMidpoint tests that a zero driver
// skill contributes 3 to the average
func TestComputeTeamAveragesUnsetSkillCountsAsMidpoint(t *testing.T) {
	rows := []models.MatchScore{
		{DriverSkill: 0},
		{DriverSkill: 5},
	}

	avg := service.ComputeTeamAverages(rows)

	require.NotNil(t, avg)
	assert.InDelta(t, 4.0, avg.AverageSkill, 1e-9)
}
