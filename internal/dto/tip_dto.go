package dto

type CreateTipRequest struct {
	Title           string `json:"title" validate:"required"`
	Description     string `json:"description"`
	Games           string `json:"games" validate:"required"` // one game per line
	TotalOdds       string `json:"total_odds"`
	StakeSuggestion string `json:"stake_suggestion"`
}

type UpdateTipRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	Games           *string `json:"games"`
	TotalOdds       *string `json:"total_odds"`
	StakeSuggestion *string `json:"stake_suggestion"`
}
