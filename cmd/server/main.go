package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"video-catalog/cmd/config"
	"video-catalog/pkg/database"
	"video-catalog/pkg/handlers"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	config.Load()

	logrus.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if err := database.Init(config.DatabaseDialect, config.DatabaseURL); err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}
	defer database.DB.Close()

	r := gin.Default()
	r.Use(handlers.CORS())
	r.Use(handlers.RequestID())

	// Handlers dispatch on method themselves, mirroring the original
	// function-per-endpoint contract (unsupported verbs answer 405).
	r.Any("/auth", handlers.Auth)
	r.Any("/seed-data", handlers.SeedData)
	r.Any("/videos", handlers.Videos)
	r.Any("/videos/images", handlers.UploadImage)

	logrus.Infof("starting server on :%s", config.Port)
	if err := r.Run(":" + config.Port); err != nil {
		logrus.Fatalf("server failed: %v", err)
	}
}
