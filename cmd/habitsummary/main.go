package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/andrewpjlewis/habit-tracker-api/internal/adapters/repository/postgres"
	"github.com/andrewpjlewis/habit-tracker-api/internal/config"
	"github.com/andrewpjlewis/habit-tracker-api/internal/core/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	db, err := sql.Open("postgres", cfg.PostgresConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	habitRepo := postgres.NewHabitRepository(db)
	statsRepo := postgres.NewHabitStatsRepository(db)
	summaryService := services.NewSummaryService(habitRepo, statsRepo)

	// Use a timeout for the job execution to prevent it from hanging indefinitely
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	log.Println("Starting habit summarization job...")

	if err := summaryService.SummarizeAllHabits(ctx); err != nil {
		log.Fatalf("Error summarizing habits: %v", err)
	}

	log.Println("Habit summarization completed successfully.")
}
