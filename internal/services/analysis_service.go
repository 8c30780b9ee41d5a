package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nucleobets/backend/internal/dto"
	"github.com/nucleobets/backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrAnalysisNotFound = errors.New("analysis not found")
	ErrInvalidBetType   = errors.New("invalid bet type")
	ErrInvalidResult    = errors.New("invalid result")
)

// publicAnalysisLimit caps the public feed at the most recent entries;
// admin listings are unbounded.
const publicAnalysisLimit = 50

type AnalysisService struct {
	db *gorm.DB
}

func NewAnalysisService(db *gorm.DB) *AnalysisService {
	return &AnalysisService{db: db}
}

// Create stores a new prediction. The result always starts pending, whatever
// the client sent.
func (s *AnalysisService) Create(req *dto.CreateAnalysisRequest) (*models.Analysis, error) {
	betType, ok := models.ParseBetType(req.BetType)
	if !ok {
		return nil, ErrInvalidBetType
	}

	analysis := models.Analysis{
		ID:               uuid.New(),
		Title:            req.Title,
		MatchInfo:        req.MatchInfo,
		BetType:          betType,
		Confidence:       req.Confidence,
		DetailedAnalysis: req.DetailedAnalysis,
		Odds:             req.Odds,
		MatchDate:        req.MatchDate,
		Result:           models.ResultPending,
	}

	if err := s.db.Create(&analysis).Error; err != nil {
		return nil, fmt.Errorf("failed to create analysis: %w", err)
	}

	return &analysis, nil
}

// Update applies a partial update. Result transitions are unrestricted:
// an admin may move any result to any other to correct mistakes.
func (s *AnalysisService) Update(id uuid.UUID, req *dto.UpdateAnalysisRequest) (*models.Analysis, error) {
	var analysis models.Analysis
	if err := s.db.First(&analysis, "id = ?", id).Error; err != nil {
		return nil, ErrAnalysisNotFound
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.MatchInfo != nil {
		updates["match_info"] = *req.MatchInfo
	}
	if req.BetType != nil {
		betType, ok := models.ParseBetType(*req.BetType)
		if !ok {
			return nil, ErrInvalidBetType
		}
		updates["bet_type"] = betType
	}
	if req.Confidence != nil {
		updates["confidence"] = *req.Confidence
	}
	if req.DetailedAnalysis != nil {
		updates["detailed_analysis"] = *req.DetailedAnalysis
	}
	if req.Odds != nil {
		updates["odds"] = *req.Odds
	}
	if req.MatchDate != nil {
		updates["match_date"] = *req.MatchDate
	}
	if req.Result != nil {
		result, ok := models.ParseResult(*req.Result)
		if !ok {
			return nil, ErrInvalidResult
		}
		updates["result"] = result
	}

	if len(updates) > 0 {
		if err := s.db.Model(&analysis).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update analysis: %w", err)
		}
	}

	return &analysis, nil
}

func (s *AnalysisService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Analysis{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete analysis: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAnalysisNotFound
	}
	return nil
}

// List returns all analyses, most recent first.
func (s *AnalysisService) List() ([]models.Analysis, error) {
	var analyses []models.Analysis
	if err := s.db.Order("created_at DESC, id DESC").Find(&analyses).Error; err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	return analyses, nil
}

// ListPublic returns the most recent analyses for the member feed.
func (s *AnalysisService) ListPublic() ([]models.Analysis, error) {
	var analyses []models.Analysis
	err := s.db.Order("created_at DESC, id DESC").Limit(publicAnalysisLimit).Find(&analyses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	return analyses, nil
}
