package database

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/nucleobets/backend/internal/config"
	"github.com/nucleobets/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the deployment admin if no admin account exists yet.
func SeedAdmin(cfg *config.Config) error {
	var admin models.Account
	err := DB.Where("role = ?", models.RoleAdmin).First(&admin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up admin account: %w", err)
	}

	password := cfg.AdminPassword
	if password == "" {
		password = "admin123"
		slog.Warn("ADMIN_PASSWORD not set, seeding admin with the default password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin = models.Account{
		ID:              uuid.New(),
		Username:        cfg.AdminUsername,
		Email:           cfg.AdminEmail,
		PasswordHash:    string(hash),
		Role:            models.RoleAdmin,
		ApprovedByAdmin: true,
		IsActive:        true,
	}

	if err := DB.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	slog.Info("admin account created", "username", admin.Username)
	return nil
}
