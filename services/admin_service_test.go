package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminService(t *testing.T) *AdminService {
	db := newTestDB(t)
	return NewAdminService(db, NewCache(time.Minute))
}

func TestListUsersSummaries(t *testing.T) {
	svc := newAdminService(t)

	alice := mustRegister(t, "alice", 30, "女", "减重", "跑步")
	mustRegister(t, "bob", 25, "男", "增肌", "力量训练")

	insertRecord(t, svc.db, alice.UserID, "跑步", 30, "中", 200, 0)
	insertRecord(t, svc.db, alice.UserID, "游泳", 45, "高", 300, 2)

	users, err := svc.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)

	byName := map[string]UserOverview{}
	for _, u := range users {
		byName[u.Username] = u
	}

	assert.Equal(t, int64(2), byName["alice"].RecordCount)
	assert.Equal(t, 75, byName["alice"].TotalDuration)
	assert.Equal(t, dayStart(time.Now()).Format("2006-01-02"), byName["alice"].LastExercise)

	assert.Equal(t, int64(0), byName["bob"].RecordCount)
	assert.Empty(t, byName["bob"].LastExercise)
}

func TestTopUsersNeverExceedsThree(t *testing.T) {
	svc := newAdminService(t)

	names := []string{"u1", "u2", "u3", "u4", "u5"}
	for i, name := range names {
		u := mustRegister(t, name, 20+i, "男", "保持健康", "跑步")
		// strictly increasing effort so the ranking is unambiguous
		insertRecord(t, svc.db, u.UserID, "跑步", 10*(i+1), "中", float64(100*(i+1)), 1)
	}

	top, err := svc.TopUsers()
	require.NoError(t, err)
	require.Len(t, top, 3)

	assert.Equal(t, "u5", top[0].Username)
	assert.Equal(t, "u4", top[1].Username)
	assert.Equal(t, "u3", top[2].Username)

	// the partial order holds: everyone excluded scored no higher than the tail
	assert.True(t, top[0].Score >= top[1].Score)
	assert.True(t, top[1].Score >= top[2].Score)
}

func TestTopUsersTieBreakByUsername(t *testing.T) {
	svc := newAdminService(t)

	for _, name := range []string{"zoe", "amy", "meg"} {
		u := mustRegister(t, name, 30, "女", "保持健康", "跑步")
		insertRecord(t, svc.db, u.UserID, "跑步", 60, "中", 400, 1)
	}

	top, err := svc.TopUsers()
	require.NoError(t, err)
	require.Len(t, top, 3)

	assert.Equal(t, "amy", top[0].Username)
	assert.Equal(t, "meg", top[1].Username)
	assert.Equal(t, "zoe", top[2].Username)
	assert.Equal(t, top[0].Score, top[2].Score)
}

func TestTopUsersEmptyWindow(t *testing.T) {
	svc := newAdminService(t)

	u := mustRegister(t, "alice", 30, "女", "减重", "跑步")
	insertRecord(t, svc.db, u.UserID, "跑步", 60, "中", 400, 15) // outside the 10-day window

	top, err := svc.TopUsers()
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestDailyBreakdownWindowAndCache(t *testing.T) {
	svc := newAdminService(t)

	u := mustRegister(t, "alice", 30, "女", "减重", "跑步")
	insertRecord(t, svc.db, u.UserID, "跑步", 30, "中", 200, 1)
	insertRecord(t, svc.db, u.UserID, "跑步", 30, "中", 200, 1)
	insertRecord(t, svc.db, u.UserID, "游泳", 45, "高", 300, 15) // excluded

	rows, err := svc.DailyBreakdown()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "跑步", rows[0].ExerciseType)
	assert.Equal(t, 2, rows[0].Count)

	// cached: a new record is invisible until the cache is cleared
	insertRecord(t, svc.db, u.UserID, "瑜伽", 20, "低", 100, 0)
	rows, err = svc.DailyBreakdown()
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	svc.cache.Clear()
	rows, err = svc.DailyBreakdown()
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
