package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)
	u := mustRegister(t, "alice", 30, "女", "减重", "跑步")

	out, err := svc.Progress(u.UserID)
	require.NoError(t, err)
	assert.False(t, out.HasData)
	assert.Empty(t, out.RecentRecords)
}

func TestProgressRecentAndDistribution(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)
	u := mustRegister(t, "alice", 30, "女", "减重", "跑步")

	for i := 0; i < 7; i++ {
		insertRecord(t, db, u.UserID, "跑步", 30, "中", 200, i)
	}
	insertRecord(t, db, u.UserID, "游泳", 45, "高", 300, 8)

	out, err := svc.Progress(u.UserID)
	require.NoError(t, err)
	assert.True(t, out.HasData)
	assert.Len(t, out.RecentRecords, 5)
	assert.Equal(t, 7, out.TypeDistribution["跑步"])
	assert.Equal(t, 1, out.TypeDistribution["游泳"])
	// oldest first in the trend
	assert.Len(t, out.DurationTrend, 8)
	assert.Equal(t, 45, out.DurationTrend[0].Duration)
}

func TestAnalysisTotals(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)
	u := mustRegister(t, "alice", 30, "女", "减重", "跑步")

	insertRecord(t, db, u.UserID, "跑步", 30, "中", 200, 0)
	insertRecord(t, db, u.UserID, "游泳", 50, "高", 400, 1)

	out, err := svc.Analysis(u.UserID)
	require.NoError(t, err)
	assert.True(t, out.HasData)
	assert.Equal(t, 2, out.TotalWorkouts)
	assert.Equal(t, 80, out.TotalDuration)
	assert.Equal(t, 600.0, out.TotalCalories)
	assert.Equal(t, 40.0, out.AvgDuration)
	assert.NotEmpty(t, out.WeeklyStats)

	var weeklyDuration int
	for _, w := range out.WeeklyStats {
		weeklyDuration += w.Duration
	}
	assert.Equal(t, out.TotalDuration, weeklyDuration)
}

func TestAnalysisEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)
	u := mustRegister(t, "alice", 30, "女", "减重", "跑步")

	out, err := svc.Analysis(u.UserID)
	require.NoError(t, err)
	assert.False(t, out.HasData)
	assert.Zero(t, out.TotalWorkouts)
}
