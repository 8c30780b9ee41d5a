package models

import (
	"time"

	"github.com/google/uuid"
)

// ValuableTip is an admin-curated multi-game bundle with combined odds.
// Purely informational: unlike Analysis it carries no result state.
type ValuableTip struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string    `gorm:"size:255;not null" json:"title"`
	Description     string    `gorm:"type:text" json:"description"`
	Games           string    `gorm:"type:text" json:"games"` // one game per line
	TotalOdds       string    `gorm:"size:20" json:"total_odds"`
	StakeSuggestion string    `gorm:"size:255" json:"stake_suggestion"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
