package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/nucleobets/backend/internal/models"
)

type CreateAnalysisRequest struct {
	Title            string    `json:"title" validate:"required"`
	MatchInfo        string    `json:"match_info" validate:"required"`
	BetType          string    `json:"bet_type" validate:"required"`
	Confidence       float64   `json:"confidence"`
	DetailedAnalysis string    `json:"detailed_analysis"`
	Odds             string    `json:"odds"`
	MatchDate        time.Time `json:"match_date" validate:"required"`
}

// UpdateAnalysisRequest is a partial update; nil fields are left untouched.
// The quick-result control sends only Result.
type UpdateAnalysisRequest struct {
	Title            *string    `json:"title"`
	MatchInfo        *string    `json:"match_info"`
	BetType          *string    `json:"bet_type"`
	Confidence       *float64   `json:"confidence"`
	DetailedAnalysis *string    `json:"detailed_analysis"`
	Odds             *string    `json:"odds"`
	MatchDate        *time.Time `json:"match_date"`
	Result           *string    `json:"result"`
}

type AnalysisResponse struct {
	ID               uuid.UUID             `json:"id"`
	Title            string                `json:"title"`
	MatchInfo        string                `json:"match_info"`
	BetType          models.BetType        `json:"bet_type"`
	BetTypeLabel     string                `json:"bet_type_label"`
	Confidence       float64               `json:"confidence"`
	DetailedAnalysis string                `json:"detailed_analysis"`
	Odds             string                `json:"odds,omitempty"`
	MatchDate        time.Time             `json:"match_date"`
	Result           models.AnalysisResult `json:"result"`
	CreatedAt        time.Time             `json:"created_at"`
}

func NewAnalysisResponse(a *models.Analysis) AnalysisResponse {
	return AnalysisResponse{
		ID:               a.ID,
		Title:            a.Title,
		MatchInfo:        a.MatchInfo,
		BetType:          a.BetType,
		BetTypeLabel:     a.BetType.Label(),
		Confidence:       a.Confidence,
		DetailedAnalysis: a.DetailedAnalysis,
		Odds:             a.Odds,
		MatchDate:        a.MatchDate,
		Result:           a.Result,
		CreatedAt:        a.CreatedAt,
	}
}

func NewAnalysisListResponse(analyses []models.Analysis) []AnalysisResponse {
	out := make([]AnalysisResponse, len(analyses))
	for i := range analyses {
		out[i] = NewAnalysisResponse(&analyses[i])
	}
	return out
}
