package services

import (
	"context"
	"testing"
	"time"

	"github.com/Pragathi1123/eco-hive-smart/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedCategory(t *testing.T, db *gorm.DB, name string, carbonPerKg float64) models.WasteCategory {
	t.Helper()
	cat := models.WasteCategory{Name: name, CarbonSavingsKg: carbonPerKg, Color: "#10b981"}
	require.NoError(t, db.Create(&cat).Error)
	return cat
}

func TestCreateLogRejectsNonPositiveWeight(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWasteLogService(db, nil)
	ctx := context.Background()

	cat := seedCategory(t, db, "Plastic", 1.5)

	for _, weight := range []float64{0, -0.5} {
		_, err := svc.CreateLog(ctx, 1, cat.ID, weight, "")
		require.ErrorIs(t, err, ErrInvalidWeight)
	}

	var count int64
	require.NoError(t, db.Model(&models.WasteLog{}).Count(&count).Error)
	require.Zero(t, count, "rejected entries must never reach storage")
}

func TestCreateLogUnknownCategory(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWasteLogService(db, nil)

	_, err := svc.CreateLog(context.Background(), 1, 999, 1.0, "")
	require.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCreateLogFoldsIntoStats(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWasteLogService(db, nil)
	ctx := context.Background()

	cat := seedCategory(t, db, "Metal", 2.0)

	entry, err := svc.CreateLog(ctx, 7, cat.ID, 1.5, "soda cans")
	require.NoError(t, err)
	require.Equal(t, "Metal", entry.Category.Name)

	var stats models.UserStats
	require.NoError(t, db.Where("user_id = ?", 7).First(&stats).Error)
	require.InDelta(t, 1.5, stats.TotalWeightKg, 1e-9)
	require.InDelta(t, 3.0, stats.TotalCarbonSavedKg, 1e-9, "carbon = weight x category coefficient")
	require.Equal(t, 10, stats.TotalPoints)
	require.Equal(t, 1, stats.CurrentStreakDays)

	// A second log the same day accumulates totals but keeps the streak.
	_, err = svc.CreateLog(ctx, 7, cat.ID, 0.5, "")
	require.NoError(t, err)
	require.NoError(t, db.Where("user_id = ?", 7).First(&stats).Error)
	require.InDelta(t, 2.0, stats.TotalWeightKg, 1e-9)
	require.Equal(t, 20, stats.TotalPoints)
	require.Equal(t, 1, stats.CurrentStreakDays)
}

func TestNextStreak(t *testing.T) {
	t.Parallel()

	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		require.NoError(t, err)
		return d
	}

	tests := []struct {
		name    string
		current int
		lastLog time.Time
		today   time.Time
		want    int
	}{
		{name: "first ever log", current: 0, today: day("2026-03-10"), want: 1},
		{name: "second log same day", current: 3, lastLog: day("2026-03-10"), today: day("2026-03-10"), want: 3},
		{name: "consecutive day extends", current: 3, lastLog: day("2026-03-10"), today: day("2026-03-11"), want: 4},
		{name: "gap resets", current: 9, lastLog: day("2026-03-10"), today: day("2026-03-13"), want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, nextStreak(tt.current, tt.lastLog, tt.today))
		})
	}
}

func TestListLogsNewestFirstWithCategory(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWasteLogService(db, nil)
	ctx := context.Background()

	cat := seedCategory(t, db, "Paper", 0.9)

	old := models.WasteLog{UserID: 3, CategoryID: cat.ID, WeightKg: 1.0}
	old.CreatedAt = time.Now().Add(-48 * time.Hour)
	require.NoError(t, db.Create(&old).Error)
	recent := models.WasteLog{UserID: 3, CategoryID: cat.ID, WeightKg: 2.0}
	require.NoError(t, db.Create(&recent).Error)

	logs, err := svc.ListLogs(ctx, 3)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	require.Equal(t, 2.0, logs[0].WeightKg)
	require.Equal(t, "Paper", logs[0].Category.Name)
}
