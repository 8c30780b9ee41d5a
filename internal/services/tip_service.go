package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nucleobets/backend/internal/dto"
	"github.com/nucleobets/backend/internal/models"
	"gorm.io/gorm"
)

var ErrTipNotFound = errors.New("valuable tip not found")

const publicTipLimit = 10

// TipService manages the admin-curated multi-game bundles shown on the
// valuable-tips board.
type TipService struct {
	db *gorm.DB
}

func NewTipService(db *gorm.DB) *TipService {
	return &TipService{db: db}
}

func (s *TipService) Create(req *dto.CreateTipRequest) (*models.ValuableTip, error) {
	tip := models.ValuableTip{
		ID:              uuid.New(),
		Title:           req.Title,
		Description:     req.Description,
		Games:           req.Games,
		TotalOdds:       req.TotalOdds,
		StakeSuggestion: req.StakeSuggestion,
	}

	if err := s.db.Create(&tip).Error; err != nil {
		return nil, fmt.Errorf("failed to create tip: %w", err)
	}

	return &tip, nil
}

func (s *TipService) Update(id uuid.UUID, req *dto.UpdateTipRequest) (*models.ValuableTip, error) {
	var tip models.ValuableTip
	if err := s.db.First(&tip, "id = ?", id).Error; err != nil {
		return nil, ErrTipNotFound
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Games != nil {
		updates["games"] = *req.Games
	}
	if req.TotalOdds != nil {
		updates["total_odds"] = *req.TotalOdds
	}
	if req.StakeSuggestion != nil {
		updates["stake_suggestion"] = *req.StakeSuggestion
	}

	if len(updates) > 0 {
		if err := s.db.Model(&tip).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update tip: %w", err)
		}
	}

	return &tip, nil
}

func (s *TipService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.ValuableTip{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete tip: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTipNotFound
	}
	return nil
}

func (s *TipService) List() ([]models.ValuableTip, error) {
	var tips []models.ValuableTip
	if err := s.db.Order("created_at DESC, id DESC").Find(&tips).Error; err != nil {
		return nil, fmt.Errorf("failed to list tips: %w", err)
	}
	return tips, nil
}

func (s *TipService) ListPublic() ([]models.ValuableTip, error) {
	var tips []models.ValuableTip
	err := s.db.Order("created_at DESC, id DESC").Limit(publicTipLimit).Find(&tips).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tips: %w", err)
	}
	return tips, nil
}
