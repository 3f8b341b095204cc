package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"hotelier/internal/database"
	"hotelier/internal/repository"
)

func main() {
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	tokens := repository.NewRevokedTokenRepository(db)
	purged, err := tokens.PurgeExpired(context.Background(), time.Now())
	if err != nil {
		log.Fatalf("cleanup revoked_tokens failed: %v", err)
	}

	log.Printf("token cleanup completed: revoked_tokens=%d", purged)
}
