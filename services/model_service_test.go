package services

import (
	"math"
	"testing"

	"github.com/junler/fitnessTracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() Hyperparams {
	return Hyperparams{NEstimators: 100, MaxDepth: 10, MinSamplesSplit: 2}
}

func TestRetrainInsufficientRows(t *testing.T) {
	db := newTestDB(t)
	svc := NewModelService(db)

	u := mustRegister(t, "alice", 30, "女", "减重", "跑步")
	for i := 0; i < 9; i++ {
		insertRecord(t, db, u.UserID, "跑步", 30+i, "中", float64(200+i), i%5)
	}

	_, err := svc.Retrain(validParams())
	assert.ErrorIs(t, err, ErrInsufficientData)

	var auditCount int64
	require.NoError(t, db.Model(&models.ModelParams{}).Count(&auditCount).Error)
	assert.Equal(t, int64(0), auditCount)
}

func TestRetrainAppendsOneAuditRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewModelService(db)

	alice := mustRegister(t, "alice", 30, "女", "减重", "跑步")
	bob := mustRegister(t, "bob", 45, "男", "增肌", "力量训练")
	carol := mustRegister(t, "carol", 28, "女", "保持健康", "游泳")

	intensities := []string{"低", "中", "高"}
	for i := 0; i < 4; i++ {
		insertRecord(t, db, alice.UserID, "跑步", 20+5*i, intensities[i%3], float64(150+20*i), i%6)
		insertRecord(t, db, bob.UserID, "力量训练", 30+7*i, intensities[(i+1)%3], float64(250+15*i), i%6)
		insertRecord(t, db, carol.UserID, "游泳", 25+6*i, intensities[(i+2)%3], float64(180+18*i), i%6)
	}

	result, err := svc.Retrain(validParams())
	require.NoError(t, err)
	assert.Equal(t, 12, result.RowsUsed)
	require.Len(t, result.Coefficients, 5)
	for _, c := range result.Coefficients {
		assert.False(t, math.IsNaN(c))
		assert.False(t, math.IsInf(c, 0))
	}

	var audits []models.ModelParams
	require.NoError(t, db.Find(&audits).Error)
	require.Len(t, audits, 1)
	assert.Equal(t, 100, audits[0].NEstimators)
	assert.Equal(t, 10, audits[0].MaxDepth)
	assert.Equal(t, 2, audits[0].MinSamplesSplit)
}

func TestRetrainSingleGenderData(t *testing.T) {
	db := newTestDB(t)
	svc := NewModelService(db)

	// one user only: the age and gender feature columns are constant, which
	// must not prevent the fit or the audit row
	u := mustRegister(t, "alice", 30, "男", "减重", "跑步")
	intensities := []string{"低", "中", "高"}
	for i := 0; i < 12; i++ {
		insertRecord(t, db, u.UserID, "跑步", 20+5*i, intensities[i%3], float64(150+25*i), i%6)
	}

	result, err := svc.Retrain(validParams())
	require.NoError(t, err)
	assert.Equal(t, 12, result.RowsUsed)
	for _, c := range result.Coefficients {
		assert.False(t, math.IsNaN(c))
		assert.False(t, math.IsInf(c, 0))
	}

	var auditCount int64
	require.NoError(t, db.Model(&models.ModelParams{}).Count(&auditCount).Error)
	assert.Equal(t, int64(1), auditCount)
}

func TestRetrainRejectsBadHyperparams(t *testing.T) {
	db := newTestDB(t)
	svc := NewModelService(db)

	cases := []Hyperparams{
		{NEstimators: 5, MaxDepth: 10, MinSamplesSplit: 2},
		{NEstimators: 100, MaxDepth: 2, MinSamplesSplit: 2},
		{NEstimators: 100, MaxDepth: 10, MinSamplesSplit: 11},
	}
	for _, params := range cases {
		_, err := svc.Retrain(params)
		assert.ErrorIs(t, err, ErrBadHyperparams)
	}

	var auditCount int64
	require.NoError(t, db.Model(&models.ModelParams{}).Count(&auditCount).Error)
	assert.Equal(t, int64(0), auditCount)
}
