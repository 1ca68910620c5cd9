package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	stdhttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	handler "github.com/andrewpjlewis/habit-tracker-api/internal/adapters/handler/http"
	"github.com/andrewpjlewis/habit-tracker-api/internal/adapters/hasher/bcrypt"
	"github.com/andrewpjlewis/habit-tracker-api/internal/adapters/oauth/google"
	repo "github.com/andrewpjlewis/habit-tracker-api/internal/adapters/repository/postgres"
	"github.com/andrewpjlewis/habit-tracker-api/internal/config"
	"github.com/andrewpjlewis/habit-tracker-api/internal/core/ports"
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

	userRepo := repo.NewUserRepository(db)
	habitRepo := repo.NewHabitRepository(db)
	logRepo := repo.NewHabitLogRepository(db)
	statsRepo := repo.NewHabitStatsRepository(db)

	tokenService, err := services.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		log.Fatalf("failed to initialize token service: %v", err)
	}

	hasher := bcrypt.NewHasher(cfg.BcryptCost)
	authService := services.NewAuthService(userRepo, hasher, tokenService)
	userService := services.NewUserService(userRepo)
	habitService := services.NewHabitService(habitRepo, statsRepo)
	logService := services.NewHabitLogService(logRepo, habitRepo)

	var provider ports.OAuthProvider
	googleEnabled := cfg.GoogleEnabled()
	if googleEnabled {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		p, err := google.NewProvider(ctx, cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleCallbackURL)
		cancel()
		if err != nil {
			log.Fatalf("failed to initialize google provider: %v", err)
		}
		provider = p
	} else {
		log.Println("Google sign-in disabled: client id/secret/callback not configured")
	}

	router := handler.NewHandler(handler.RouterConfig{
		AuthHandler:    handler.NewAuthHandler(authService, provider, cfg.FrontendURL),
		UserHandler:    handler.NewUserHandler(userService),
		HabitHandler:   handler.NewHabitHandler(habitService),
		LogHandler:     handler.NewHabitLogHandler(logService),
		AuthMiddleware: handler.NewAuthMiddleware(tokenService, userRepo),
		GoogleEnabled:  googleEnabled,
	})

	server := &stdhttp.Server{Addr: "0.0.0.0:" + cfg.Port, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}
