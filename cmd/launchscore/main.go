package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/launchscore-dev/launchscore/db"
	"github.com/launchscore-dev/launchscore/internal/auth"
	"github.com/launchscore-dev/launchscore/internal/keepalive"
	"github.com/launchscore-dev/launchscore/internal/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dsn := os.Getenv("DATABASE_URL")

	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	if err := db.ConnectDatabase(dsn); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := auth.InitJWTSecret(); err != nil {
		log.Fatalf("Failed to initialize JWT secret: %v", err)
	}

	if raw := os.Getenv("KEEP_ALIVE_INTERVAL"); raw != "" {
		interval, err := time.ParseDuration(raw)

		if err != nil {
			log.Fatalf("Invalid KEEP_ALIVE_INTERVAL: %v", err)
		}

		pinger := keepalive.NewPinger(interval)
		pinger.Start()
		defer pinger.Stop()
	}

	r := router.NewRouter()

	var port string

	if port = os.Getenv("PORT"); port == "" {
		port = "5000"
		log.Println("PORT not set, defaulting to 5000")
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
