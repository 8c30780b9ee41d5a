package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/nucleobets/backend/internal/config"
	"github.com/nucleobets/backend/internal/database"
	"github.com/nucleobets/backend/internal/dto"
	"github.com/nucleobets/backend/internal/handlers"
	"github.com/nucleobets/backend/internal/models"
	"github.com/nucleobets/backend/internal/routes"
	"github.com/nucleobets/backend/internal/services"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const adminPassword = "admin123"

// newTestApp builds the full HTTP surface against an in-memory database
// with the deployment admin seeded.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:           "test-secret",
		JWTAccessExpiry:     30 * time.Minute,
		JWTRefreshExpiry:    168 * time.Hour,
		AccountValidityDays: 31,
		AdminUsername:       "admin",
		AdminEmail:          "admin@nucleobets.com",
		AdminPassword:       adminPassword,
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	database.DB = db
	require.NoError(t, database.Migrate())
	require.NoError(t, database.SeedAdmin(cfg))

	authService := services.NewAuthService(db, cfg)
	accountService := services.NewAccountService(db, cfg)
	analysisService := services.NewAnalysisService(db)
	tipService := services.NewTipService(db)
	statsService := services.NewStatsService(db)

	app := fiber.New()
	routes.Setup(app, cfg,
		authService,
		handlers.NewAuthHandler(authService),
		handlers.NewAccountHandler(accountService),
		handlers.NewAnalysisHandler(analysisService),
		handlers.NewTipHandler(tipService),
		handlers.NewStatsHandler(statsService),
		handlers.NewHealthHandler(),
	)

	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// seedApprovedMember inserts an approved, active member straight into the
// database so tests don't spend auth rate-limit budget on register+approve.
func seedApprovedMember(t *testing.T, db *gorm.DB, username, password string) *models.Account {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	expires := time.Now().Add(31 * 24 * time.Hour)
	account := &models.Account{
		ID:              uuid.New(),
		Username:        username,
		Email:           username + "@example.com",
		PasswordHash:    string(hash),
		Role:            models.RoleUser,
		ApprovedByAdmin: true,
		IsActive:        true,
		ExpiresAt:       &expires,
	}
	require.NoError(t, db.Create(account).Error)
	return account
}

func login(t *testing.T, app *fiber.App, username, password string) dto.AuthResponse {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var auth dto.AuthResponse
	decode(t, resp, &auth)
	return auth
}
