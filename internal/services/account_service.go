package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nucleobets/backend/internal/config"
	"github.com/nucleobets/backend/internal/dto"
	"github.com/nucleobets/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrAdminProtected guards admin accounts against deletion through the
// user-management surface.
var ErrAdminProtected = errors.New("admin accounts cannot be deleted")

// AccountService covers the admin side of the account lifecycle:
// listing, direct creation, approval, deactivation and deletion.
type AccountService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAccountService(db *gorm.DB, cfg *config.Config) *AccountService {
	return &AccountService{db: db, cfg: cfg}
}

func (s *AccountService) List() ([]models.Account, error) {
	var accounts []models.Account
	if err := s.db.Order("created_at DESC, id DESC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *AccountService) Get(id uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := s.db.First(&account, "id = ?", id).Error; err != nil {
		return nil, ErrAccountNotFound
	}
	return &account, nil
}

// Create is the admin direct-creation path: any role, approval may be
// granted immediately. Non-admin accounts still get the validity window.
func (s *AccountService) Create(req *dto.AdminCreateAccountRequest) (*models.Account, error) {
	var existing models.Account
	err := s.db.Where("username = ? OR email = ?", req.Username, req.Email).First(&existing).Error
	if err == nil {
		return nil, ErrAccountExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := models.RoleUser
	if req.Role == string(models.RoleAdmin) {
		role = models.RoleAdmin
	}

	approved := true
	if req.Approved != nil {
		approved = *req.Approved
	}

	account := models.Account{
		ID:              uuid.New(),
		Username:        req.Username,
		Email:           req.Email,
		PasswordHash:    string(hash),
		Role:            role,
		ApprovedByAdmin: approved,
		IsActive:        true,
	}
	if role != models.RoleAdmin {
		expiresAt := time.Now().UTC().AddDate(0, 0, s.cfg.AccountValidityDays)
		account.ExpiresAt = &expiresAt
	}

	if err := s.db.Create(&account).Error; err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &account, nil
}

// Approve grants login and re-activates the account. Idempotent.
func (s *AccountService) Approve(id uuid.UUID) (*models.Account, error) {
	account, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"approved_by_admin": true, "is_active": true}
	if err := s.db.Model(account).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to approve account: %w", err)
	}
	return account, nil
}

// Deactivate revokes login without touching approval. Idempotent.
func (s *AccountService) Deactivate(id uuid.UUID) (*models.Account, error) {
	account, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(account).Update("is_active", false).Error; err != nil {
		return nil, fmt.Errorf("failed to deactivate account: %w", err)
	}
	return account, nil
}

// Delete permanently removes a non-admin account together with its refresh
// tokens, so outstanding sessions die with it.
func (s *AccountService) Delete(id uuid.UUID) error {
	account, err := s.Get(id)
	if err != nil {
		return err
	}

	if account.Role == models.RoleAdmin {
		return ErrAdminProtected
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ?", id).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}
		return tx.Delete(account).Error
	})
}
