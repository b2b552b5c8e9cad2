package controllers

import (
	"github.com/junler/fitnessTracker/utils"

	"github.com/gin-gonic/gin"
)

func sessionFromCtx(c *gin.Context) (*utils.SessionClaims, bool) {
	v, ok := c.Get("session")
	if !ok {
		return nil, false
	}
	claims, ok := v.(*utils.SessionClaims)
	return claims, ok && claims != nil
}

// sessionKeyFor keys the session store: users by id, the administrator (who
// has no user row) by name.
func sessionKeyFor(claims *utils.SessionClaims) string {
	if claims.IsAdmin {
		return "admin:" + claims.Username
	}
	return claims.UserID
}
