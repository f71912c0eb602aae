package main

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/menu-app/config"
	"github.com/yeremiapane/menu-app/router"
	"github.com/yeremiapane/menu-app/services"
	"github.com/yeremiapane/menu-app/utils"
)

func init() {
	utils.InitLogger()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load config: %v", err)
	}

	if err := utils.SetLogLevel(cfg.LogLevel); err != nil {
		utils.ErrorLogger.Printf("Unknown LOG_LEVEL %q, keeping info: %v", cfg.LogLevel, err)
	}

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.UsesDefaultSecret() {
		utils.InfoLogger.Warn("SNAPSHOT_SECRET not set, using development secret")
	}

	seed, err := cfg.StoreConfig()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load menu seed: %v", err)
	}
	utils.InfoLogger.Printf("New sessions start with %d menu entries (samples: %t)",
		services.NewMenuStore(seed).Len(), seed.IncludeSamples)

	r := router.SetupRouter(cfg, seed)

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
