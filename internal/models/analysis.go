package models

import (
	"time"

	"github.com/google/uuid"
)

type BetType string

const (
	BetHome             BetType = "home"
	BetDraw             BetType = "draw"
	BetAway             BetType = "away"
	BetOver             BetType = "over"
	BetUnder            BetType = "under"
	BetDoubleChanceHome BetType = "double-chance-home"
	BetDoubleChanceAway BetType = "double-chance-away"
)

type AnalysisResult string

const (
	ResultPending AnalysisResult = "pending"
	ResultGreen   AnalysisResult = "green"
	ResultRed     AnalysisResult = "red"
)

// Analysis is a single published prediction for one match. Result starts
// pending and may be moved between pending/green/red freely by an admin.
type Analysis struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title            string         `gorm:"size:255;not null" json:"title"`
	MatchInfo        string         `gorm:"type:text" json:"match_info"`
	BetType          BetType        `gorm:"size:30;not null" json:"bet_type"`
	Confidence       float64        `json:"confidence"`
	DetailedAnalysis string         `gorm:"type:text" json:"detailed_analysis"`
	Odds             string         `gorm:"size:20" json:"odds,omitempty"`
	MatchDate        time.Time      `gorm:"not null;index" json:"match_date"`
	Result           AnalysisResult `gorm:"size:10;not null;default:'pending';index" json:"result"`
	CreatedAt        time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// betTypeCodes maps the legacy wire codes older clients still send to the
// canonical bet types. Kept as a lookup so the mapping lives in one place.
var betTypeCodes = map[string]BetType{
	"1":     BetHome,
	"X":     BetDraw,
	"x":     BetDraw,
	"2":     BetAway,
	"over":  BetOver,
	"under": BetUnder,
	"1x":    BetDoubleChanceHome,
	"2x":    BetDoubleChanceAway,
}

var betTypeLabels = map[BetType]string{
	BetHome:             "1",
	BetDraw:             "X",
	BetAway:             "2",
	BetOver:             "Over",
	BetUnder:            "Under",
	BetDoubleChanceHome: "1X",
	BetDoubleChanceAway: "2X",
}

// ParseBetType accepts both canonical names and legacy codes.
func ParseBetType(s string) (BetType, bool) {
	switch BetType(s) {
	case BetHome, BetDraw, BetAway, BetOver, BetUnder, BetDoubleChanceHome, BetDoubleChanceAway:
		return BetType(s), true
	}
	if bt, ok := betTypeCodes[s]; ok {
		return bt, true
	}
	return "", false
}

// Label returns the short display code used by the dashboard.
func (b BetType) Label() string {
	return betTypeLabels[b]
}

func ParseResult(s string) (AnalysisResult, bool) {
	switch AnalysisResult(s) {
	case ResultPending, ResultGreen, ResultRed:
		return AnalysisResult(s), true
	}
	return "", false
}
