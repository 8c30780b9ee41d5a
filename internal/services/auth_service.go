package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/nucleobets/backend/internal/config"
	"github.com/nucleobets/backend/internal/dto"
	"github.com/nucleobets/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrAccountExists = errors.New("username or email already exists")
	// ErrInvalidCredentials deliberately covers both a wrong password and an
	// account that is not yet approved, inactive or expired, so login does
	// not leak account state.
	ErrInvalidCredentials = errors.New("invalid credentials or account not approved")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
	ErrAccountNotFound    = errors.New("account not found")
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// Register creates an unapproved user account expiring after the configured
// validity window. The account cannot log in until an admin approves it.
func (s *AuthService) Register(req *dto.RegisterRequest) (*models.Account, error) {
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

	expiresAt := time.Now().UTC().AddDate(0, 0, s.cfg.AccountValidityDays)
	account := models.Account{
		ID:              uuid.New(),
		Username:        req.Username,
		Email:           req.Email,
		PasswordHash:    string(hash),
		Role:            models.RoleUser,
		ApprovedByAdmin: false,
		IsActive:        true,
		ExpiresAt:       &expiresAt,
	}

	if err := s.db.Create(&account).Error; err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &account, nil
}

// Login verifies the password and the full authentication gate. Every
// failure surfaces as ErrInvalidCredentials.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var account models.Account
	if err := s.db.Where("username = ?", req.Username).First(&account).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !account.CanAuthenticate(time.Now().UTC()) {
		return nil, ErrInvalidCredentials
	}

	return s.generateTokenPair(&account)
}

// Resolve maps an access-token subject back to a live account and re-checks
// the authentication gate. It never mutates state, so it is safe to call
// concurrently from every request.
func (s *AuthService) Resolve(accountID uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := s.db.First(&account, "id = ?", accountID).Error; err != nil {
		return nil, ErrAccountNotFound
	}
	if !account.CanAuthenticate(time.Now().UTC()) {
		return nil, ErrAccountNotFound
	}
	return &account, nil
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued.
func (s *AuthService) Refresh(req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	tokenHash := hashToken(req.RefreshToken)

	var stored models.RefreshToken
	if err := s.db.Where("token_hash = ? AND revoked = false", tokenHash).First(&stored).Error; err != nil {
		return nil, ErrInvalidToken
	}

	if time.Now().After(stored.ExpiresAt) {
		s.db.Model(&stored).Update("revoked", true)
		return nil, ErrInvalidToken
	}

	s.db.Model(&stored).Update("revoked", true)

	var account models.Account
	if err := s.db.First(&account, "id = ?", stored.AccountID).Error; err != nil {
		return nil, ErrInvalidToken
	}
	if !account.CanAuthenticate(time.Now().UTC()) {
		return nil, ErrInvalidToken
	}

	return s.generateTokenPair(&account)
}

func (s *AuthService) Logout(req *dto.LogoutRequest) error {
	tokenHash := hashToken(req.RefreshToken)
	return s.db.Model(&models.RefreshToken{}).
		Where("token_hash = ?", tokenHash).
		Update("revoked", true).Error
}

// ChangePassword is self-service and requires the current password.
func (s *AuthService) ChangePassword(accountID uuid.UUID, req *dto.ChangePasswordRequest) error {
	var account models.Account
	if err := s.db.First(&account, "id = ?", accountID).Error; err != nil {
		return ErrAccountNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.db.Model(&account).Update("password_hash", string(hash)).Error
}

func (s *AuthService) generateTokenPair(account *models.Account) (*dto.AuthResponse, error) {
	accessToken, err := s.generateAccessToken(account)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateRefreshToken(account)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		Account:      dto.NewAccountResponse(account),
	}, nil
}

func (s *AuthService) generateAccessToken(account *models.Account) (string, error) {
	claims := jwt.MapClaims{
		"sub":  account.ID.String(),
		"role": string(account.Role),
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) generateRefreshToken(account *models.Account) (string, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	rawToken := base64.URLEncoding.EncodeToString(rawBytes)

	record := models.RefreshToken{
		ID:        uuid.New(),
		AccountID: account.ID,
		TokenHash: hashToken(rawToken),
		ExpiresAt: time.Now().Add(s.cfg.JWTRefreshExpiry),
	}

	if err := s.db.Create(&record).Error; err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return rawToken, nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
