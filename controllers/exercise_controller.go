package controllers

import (
	"errors"
	"net/http"

	"github.com/junler/fitnessTracker/services"

	"github.com/gin-gonic/gin"
)

func AddRecord(c *gin.Context) {
	claims, ok := sessionFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.RecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := services.AddExerciseRecord(claims.UserID, input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDuration) ||
			errors.Is(err, services.ErrInvalidCalories) ||
			errors.Is(err, services.ErrInvalidIntensity) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "添加失败：" + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "记录添加成功",
		"record_id": record.RecordID,
	})
}

func RandomRecord(c *gin.Context) {
	claims, ok := sessionFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	record, err := services.GenerateRandomRecord(claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "生成失败：" + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "随机记录生成成功",
		"record": gin.H{
			"record_id":       record.RecordID,
			"exercise_type":   record.ExerciseType,
			"duration":        record.Duration,
			"intensity":       record.Intensity,
			"calories_burned": record.CaloriesBurned,
			"date":            record.Date.Format("2006-01-02"),
		},
	})
}

func ListRecords(c *gin.Context) {
	claims, ok := sessionFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	records, err := services.ListExerciseRecords(claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(records))
	for _, r := range records {
		out = append(out, gin.H{
			"record_id":       r.RecordID,
			"exercise_type":   r.ExerciseType,
			"duration":        r.Duration,
			"intensity":       r.Intensity,
			"calories_burned": r.CaloriesBurned,
			"notes":           r.Notes,
			"date":            r.Date.Format("2006-01-02"),
		})
	}
	c.JSON(http.StatusOK, gin.H{"records": out})
}
