package routes

import (
	"time"

	"github.com/junler/fitnessTracker/config"
	"github.com/junler/fitnessTracker/controllers"
	"github.com/junler/fitnessTracker/middlewares"
	"github.com/junler/fitnessTracker/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg *config.Settings) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))

	sessions := services.NewSessionStore()
	cache := services.NewCache(time.Minute)

	authCtl := controllers.NewAuthController(cfg, sessions)
	statsCtl := controllers.NewStatsController(services.NewStatsService(config.DB))
	adminCtl := controllers.NewAdminController(
		cfg,
		services.NewAdminService(config.DB, cache),
		services.NewModelService(config.DB),
		cache,
	)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.POST("/admin/login", authCtl.AdminLogin)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		user.POST("/logout", authCtl.Logout)
		user.GET("/session", authCtl.GetSession)
		user.PUT("/page", authCtl.SetActivePage)

		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)

		user.POST("/records", controllers.AddRecord)
		user.POST("/records/random", controllers.RandomRecord)
		user.GET("/records", controllers.ListRecords)

		user.GET("/recommendations", controllers.GetRecommendations)

		user.GET("/stats/progress", statsCtl.GetProgress)
		user.GET("/stats/analysis", statsCtl.GetAnalysis)
	}

	// Protected admin routes
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(cfg.JWTSecret), middlewares.AdminOnly())
	{
		admin.GET("/users", adminCtl.ListUsers)
		admin.GET("/analytics/daily", adminCtl.GetDailyBreakdown)
		admin.GET("/analytics/top", adminCtl.GetTopUsers)

		admin.POST("/model/retrain", adminCtl.RetrainModel)
		admin.POST("/system/backup", adminCtl.BackupDatabase)
		admin.POST("/system/clear-cache", adminCtl.ClearCache)
		admin.POST("/system/shutdown", adminCtl.Shutdown)
	}

	return r
}
