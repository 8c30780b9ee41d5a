package dto

// StatsResponse mirrors the dashboard stats widget: counts per result plus
// accuracy over resolved analyses, as a percentage rounded to two decimals.
type StatsResponse struct {
	TotalAnalyses int64   `json:"total_analyses"`
	Green         int64   `json:"green"`
	Red           int64   `json:"red"`
	Pending       int64   `json:"pending"`
	Accuracy      float64 `json:"accuracy"`
}
