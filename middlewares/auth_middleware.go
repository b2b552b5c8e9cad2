package middlewares

import (
	"net/http"
	"strings"
	"time"

	"github.com/junler/fitnessTracker/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and stores the decoded session
// snapshot in the request context for the handlers downstream.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		claims, err := utils.ParseJWT(secret, strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("session", claims)
		c.Next()
	}
}

// AdminOnly gates the admin routes; it assumes AuthMiddleware ran first.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get("session")
		claims, _ := v.(*utils.SessionClaims)
		if !ok || claims == nil || !claims.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "请使用管理员账号登录"})
			return
		}
		c.Next()
	}
}

// RequestLogger logs one line per request through the colored logger.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		utils.Request(c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
