package integration

import (
	"context"
	"database/sql"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gobcrypt "golang.org/x/crypto/bcrypt"

	handler "github.com/andrewpjlewis/habit-tracker-api/internal/adapters/handler/http"
	"github.com/andrewpjlewis/habit-tracker-api/internal/adapters/hasher/bcrypt"
	repo "github.com/andrewpjlewis/habit-tracker-api/internal/adapters/repository/postgres"
	"github.com/andrewpjlewis/habit-tracker-api/internal/core/ports"
	"github.com/andrewpjlewis/habit-tracker-api/internal/core/services"
)

const testJWTSecret = "test-secret"

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	dbName := "testdb"
	user := "user"
	password := "password"

	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(user),
		postgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

func applyMigrations(db *sql.DB) error {
	dirPath := "../../internal/adapters/repository/postgres/migrations"

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), "up.sql") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		content, err := os.ReadFile(filepath.Join(dirPath, name))
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", name, err)
		}
		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", name, err)
		}
	}

	return nil
}

type TestApp struct {
	DB          *sql.DB
	Server      *httptest.Server
	Client      *httpClient
	SummarySvc  ports.SummaryService
	DBContainer testcontainers.Container
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()
	ctx := context.Background()

	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)

	require.NoError(t, applyMigrations(db))

	userRepo := repo.NewUserRepository(db)
	habitRepo := repo.NewHabitRepository(db)
	logRepo := repo.NewHabitLogRepository(db)
	statsRepo := repo.NewHabitStatsRepository(db)

	tokenService, err := services.NewTokenService(testJWTSecret, time.Hour)
	require.NoError(t, err)

	hasher := bcrypt.NewHasher(gobcrypt.MinCost)
	authSvc := services.NewAuthService(userRepo, hasher, tokenService)
	userSvc := services.NewUserService(userRepo)
	habitSvc := services.NewHabitService(habitRepo, statsRepo)
	logSvc := services.NewHabitLogService(logRepo, habitRepo)
	summarySvc := services.NewSummaryService(habitRepo, statsRepo)

	router := handler.NewHandler(handler.RouterConfig{
		AuthHandler:    handler.NewAuthHandler(authSvc, nil, "https://example.com/app"),
		UserHandler:    handler.NewUserHandler(userSvc),
		HabitHandler:   handler.NewHabitHandler(habitSvc),
		LogHandler:     handler.NewHabitLogHandler(logSvc),
		AuthMiddleware: handler.NewAuthMiddleware(tokenService, userRepo),
		GoogleEnabled:  false,
	})

	server := httptest.NewServer(router)

	return &TestApp{
		DB:          db,
		Server:      server,
		Client:      newHTTPClient(server),
		SummarySvc:  summarySvc,
		DBContainer: dbContainer,
	}
}

func (app *TestApp) Teardown(t *testing.T) {
	t.Helper()
	app.Server.Close()
	require.NoError(t, app.DB.Close())
	require.NoError(t, app.DBContainer.Terminate(context.Background()))
}

// createUserAndToken seeds a user directly and signs a token the way
// the server would, so protected routes can be exercised without going
// through /auth/login.
func createUserAndToken(t *testing.T, db *sql.DB) (uuid.UUID, string) {
	t.Helper()

	userID := uuid.New()
	email := fmt.Sprintf("user-%s@example.com", userID)
	name := fmt.Sprintf("User %s", userID)
	_, err := db.Exec("INSERT INTO users (id, name, email) VALUES ($1, $2, $3)", userID, name, email)
	require.NoError(t, err)

	claims := jwt.MapClaims{
		"sub":   userID.String(),
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return userID, signed
}
