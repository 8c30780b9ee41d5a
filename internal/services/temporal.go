package services

import (
	"time"

	"github.com/nucleobets/backend/internal/models"
)

// DayFilter classifies analyses by the calendar day of their match date
// relative to "now".
type DayFilter string

const (
	DayAll       DayFilter = "all"
	DayYesterday DayFilter = "yesterday"
	DayToday     DayFilter = "today"
	DayTomorrow  DayFilter = "tomorrow"
)

func ParseDayFilter(s string) (DayFilter, bool) {
	switch DayFilter(s) {
	case DayAll, DayYesterday, DayToday, DayTomorrow:
		return DayFilter(s), true
	case "":
		return DayAll, true
	}
	return "", false
}

// FilterByDay keeps the analyses whose match date falls on the requested
// calendar day in loc. DayAll returns the input unchanged; order is
// preserved in every mode.
func FilterByDay(analyses []models.Analysis, mode DayFilter, now time.Time, loc *time.Location) []models.Analysis {
	if mode == DayAll {
		return analyses
	}

	var offset int
	switch mode {
	case DayYesterday:
		offset = -1
	case DayTomorrow:
		offset = 1
	}
	target := now.In(loc).AddDate(0, 0, offset)
	targetY, targetM, targetD := target.Date()

	filtered := make([]models.Analysis, 0, len(analyses))
	for _, a := range analyses {
		y, m, d := a.MatchDate.In(loc).Date()
		if y == targetY && m == targetM && d == targetD {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
