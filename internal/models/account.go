package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Account is a dashboard login. Self-registered accounts start unapproved
// and expire after the configured validity window; admin accounts never expire.
type Account struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Username        string     `gorm:"size:100;not null;uniqueIndex" json:"username"`
	Email           string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash    string     `gorm:"not null" json:"-"`
	Role            Role       `gorm:"size:20;not null;default:'user'" json:"role"`
	ApprovedByAdmin bool       `gorm:"not null;default:false" json:"approved_by_admin"`
	IsActive        bool       `gorm:"not null;default:true" json:"is_active"`
	ExpiresAt       *time.Time `json:"expires_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// CanAuthenticate reports whether the account passes the login gate:
// active, approved (admins are implicitly approved) and not expired.
func (a *Account) CanAuthenticate(now time.Time) bool {
	if !a.IsActive {
		return false
	}
	if a.Role != RoleAdmin && !a.ApprovedByAdmin {
		return false
	}
	if a.ExpiresAt != nil && !a.ExpiresAt.After(now) {
		return false
	}
	return true
}

// DaysRemaining returns the whole days left until expiry, rounded up.
// permanent is true for non-expiring accounts; days <= 0 means expired.
func (a *Account) DaysRemaining(now time.Time) (days int, permanent bool) {
	if a.ExpiresAt == nil {
		return 0, true
	}
	return int(math.Ceil(a.ExpiresAt.Sub(now).Hours() / 24)), false
}
