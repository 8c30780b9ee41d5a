package services_test

import (
	"testing"
	"time"

	"github.com/nucleobets/backend/internal/dto"
	"github.com/nucleobets/backend/internal/models"
	"github.com/nucleobets/backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccuracy(t *testing.T) {
	tests := []struct {
		name  string
		green int64
		red   int64
		want  float64
	}{
		{"no_resolved", 0, 0, 0},
		{"all_green", 3, 0, 100},
		{"all_red", 0, 3, 0},
		{"half", 1, 1, 50},
		{"third_rounds", 1, 2, 33.33},
		{"two_thirds_rounds", 2, 1, 66.67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.Accuracy(tt.green, tt.red))
		})
	}
}

func TestComputeReflectsMutationsImmediately(t *testing.T) {
	db := newTestDB(t)
	analyses := services.NewAnalysisService(db)
	stats := services.NewStatsService(db)

	// Empty store.
	got, err := stats.Compute()
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.TotalAnalyses)
	assert.Equal(t, float64(0), got.Accuracy)

	a1, err := analyses.Create(&dto.CreateAnalysisRequest{
		Title: "first", MatchInfo: "m", BetType: "home", MatchDate: time.Now(),
	})
	require.NoError(t, err)

	got, err = stats.Compute()
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.TotalAnalyses)
	assert.Equal(t, int64(1), got.Pending)
	assert.Equal(t, float64(0), got.Accuracy)

	// Flip to green: stats must reflect the change on the next read.
	green := string(models.ResultGreen)
	_, err = analyses.Update(a1.ID, &dto.UpdateAnalysisRequest{Result: &green})
	require.NoError(t, err)

	got, err = stats.Compute()
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Green)
	assert.Equal(t, int64(0), got.Pending)
	assert.Equal(t, float64(100), got.Accuracy)

	a2, err := analyses.Create(&dto.CreateAnalysisRequest{
		Title: "second", MatchInfo: "m", BetType: "away", MatchDate: time.Now(),
	})
	require.NoError(t, err)

	red := string(models.ResultRed)
	_, err = analyses.Update(a2.ID, &dto.UpdateAnalysisRequest{Result: &red})
	require.NoError(t, err)

	got, err = stats.Compute()
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.TotalAnalyses)
	assert.Equal(t, int64(1), got.Green)
	assert.Equal(t, int64(1), got.Red)
	assert.Equal(t, float64(50), got.Accuracy)
}
