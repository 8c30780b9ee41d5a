package services

import (
	"fmt"
	"math"

	"github.com/nucleobets/backend/internal/dto"
	"github.com/nucleobets/backend/internal/models"
	"gorm.io/gorm"
)

// StatsService derives outcome statistics from the analyses table. Nothing
// is cached: every call recounts so a result flip is visible immediately.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

func (s *StatsService) Compute() (*dto.StatsResponse, error) {
	var total, green, red int64

	if err := s.db.Model(&models.Analysis{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count analyses: %w", err)
	}
	if err := s.db.Model(&models.Analysis{}).Where("result = ?", models.ResultGreen).Count(&green).Error; err != nil {
		return nil, fmt.Errorf("failed to count green analyses: %w", err)
	}
	if err := s.db.Model(&models.Analysis{}).Where("result = ?", models.ResultRed).Count(&red).Error; err != nil {
		return nil, fmt.Errorf("failed to count red analyses: %w", err)
	}

	return &dto.StatsResponse{
		TotalAnalyses: total,
		Green:         green,
		Red:           red,
		Pending:       total - green - red,
		Accuracy:      Accuracy(green, red),
	}, nil
}

// Accuracy is the percentage of resolved analyses that came in green,
// rounded to two decimals. Zero when nothing is resolved yet.
func Accuracy(green, red int64) float64 {
	resolved := green + red
	if resolved == 0 {
		return 0
	}
	pct := float64(green) / float64(resolved) * 100
	return math.Round(pct*100) / 100
}
