package controllers

import (
	"errors"
	"net/http"

	"github.com/junler/fitnessTracker/services"

	"github.com/gin-gonic/gin"
)

// GetRecommendations recomputes the suggestion on every call; the client's
// refresh button simply calls it again.
func GetRecommendations(c *gin.Context) {
	claims, ok := sessionFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	recSvc := services.NewRecService()
	rec, err := recSvc.GetRecommendation(claims.UserID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}
