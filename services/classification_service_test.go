package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		categoryTags  []string
		packagingTags []string
		want          string
	}{
		{
			name:         "organic category is compostable",
			categoryTags: []string{"en:organic"},
			want:         DisposalCompostable,
		},
		{
			name:          "plastic packaging is recyclable",
			packagingTags: []string{"en:plastic"},
			want:          DisposalRecyclable,
		},
		{
			name: "no tags defaults to e-waste",
			want: DisposalEWaste,
		},
		{
			name:          "organic wins over plastic packaging",
			categoryTags:  []string{"en:food-storage"},
			packagingTags: []string{"en:plastic"},
			want:          DisposalCompostable,
		},
		{
			name:          "cardboard packaging is recyclable",
			packagingTags: []string{"en:cardboard", "en:box"},
			want:          DisposalRecyclable,
		},
		{
			name:          "tetra packaging is recyclable",
			packagingTags: []string{"en:tetra-pak"},
			want:          DisposalRecyclable,
		},
		{
			name:          "matching is case-insensitive",
			packagingTags: []string{"EN:GLASS"},
			want:          DisposalRecyclable,
		},
		{
			name:          "unrelated packaging falls through",
			categoryTags:  []string{"en:smartphones"},
			packagingTags: []string{"en:blister"},
			want:          DisposalEWaste,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ClassifyTags(tt.categoryTags, tt.packagingTags))
		})
	}
}

func TestRecordConfirmationDerivesCorrectness(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClassificationService(db)
	ctx := context.Background()

	match, err := svc.RecordConfirmation(ctx, 1, "Yogurt cup", DisposalRecyclable, DisposalRecyclable, 0.9, "123")
	require.NoError(t, err)
	require.True(t, match.IsCorrect)

	miss, err := svc.RecordConfirmation(ctx, 1, "Banana peel", DisposalRecyclable, DisposalCompostable, 0.5, "")
	require.NoError(t, err)
	require.False(t, miss.IsCorrect)

	stats, err := svc.AccuracyStats(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(2), stats.Total)
	require.Equal(t, int64(1), stats.Correct)
	require.InDelta(t, 50.0, stats.AccuracyPct, 0.001)
}

func TestAccuracyStatsEmpty(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClassificationService(db)

	stats, err := svc.AccuracyStats(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, int64(0), stats.Total)
	require.Equal(t, 0.0, stats.AccuracyPct)
}
