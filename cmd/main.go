package main

import (
	"log"

	"github.com/xiao1992/WellnessTracker/config"
	"github.com/xiao1992/WellnessTracker/routes"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional outside local development.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := config.InitLogger(cfg.LogDir); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer config.Logger.Sync()

	if err := config.InitDB(cfg); err != nil {
		config.Logger.Fatalw("Failed to connect to database", "error", err)
	}

	r := routes.SetupRouter()
	config.Logger.Infow("server starting", "port", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		config.Logger.Fatalw("server stopped", "error", err)
	}
}
