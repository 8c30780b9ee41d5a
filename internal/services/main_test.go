package services_test

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/nucleobets/backend/internal/config"
	"github.com/nucleobets/backend/internal/models"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Account{},
		&models.RefreshToken{},
		&models.Analysis{},
		&models.ValuableTip{},
		&models.SystemLog{},
	))

	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		JWTSecret:           "test-secret",
		JWTAccessExpiry:     30 * time.Minute,
		JWTRefreshExpiry:    168 * time.Hour,
		AccountValidityDays: 31,
	}
}

// seedAccount inserts an account with a bcrypt-hashed password.
func seedAccount(t *testing.T, db *gorm.DB, username string, password string, mutate func(*models.Account)) *models.Account {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	account := &models.Account{
		ID:              uuid.New(),
		Username:        username,
		Email:           username + "@example.com",
		PasswordHash:    string(hash),
		Role:            models.RoleUser,
		ApprovedByAdmin: true,
		IsActive:        true,
	}
	if mutate != nil {
		mutate(account)
	}
	// gorm's Create replaces a zero value for a column with a declared
	// default (IsActive has default:true) both in the INSERT and on the
	// struct itself, so capture the flag and persist it explicitly.
	isActive := account.IsActive
	require.NoError(t, db.Create(account).Error)
	require.NoError(t, db.Model(account).UpdateColumn("is_active", isActive).Error)
	account.IsActive = isActive
	return account
}

func timePtr(ts time.Time) *time.Time {
	return &ts
}
