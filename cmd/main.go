package main

import (
	"github.com/junler/fitnessTracker/config"
	"github.com/junler/fitnessTracker/routes"
	"github.com/junler/fitnessTracker/utils"
)

func main() {
	cfg := config.Load()

	config.InitDB(cfg.DBPath)
	utils.InitS3(cfg.AWSRegion)

	r := routes.SetupRouter(cfg)

	utils.Success("健身追踪系统 listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.Error("Server failed: %v", err)
	}
}
