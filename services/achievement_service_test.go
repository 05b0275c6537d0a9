package services

import (
	"context"
	"testing"

	"github.com/Pragathi1123/eco-hive-smart/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedAchievement(t *testing.T, db *gorm.DB, name, reqType string, reqValue float64, points int) models.Achievement {
	t.Helper()
	a := models.Achievement{
		Name:             name,
		Icon:             "award",
		Points:           points,
		RequirementType:  reqType,
		RequirementValue: reqValue,
	}
	require.NoError(t, db.Create(&a).Error)
	return a
}

func seedStats(t *testing.T, db *gorm.DB, stats models.UserStats) {
	t.Helper()
	require.NoError(t, db.Create(&stats).Error)
}

func TestCheckAchievementsMissingStats(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAchievementService(db)

	_, err := svc.CheckAchievements(context.Background(), 123)
	require.ErrorIs(t, err, ErrStatsNotFound)
}

func TestCheckAchievementsAwardsAllQualified(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAchievementService(db)
	ctx := context.Background()

	seedAchievement(t, db, "First Steps", models.RequirementTotalWeight, 1, 10)
	seedAchievement(t, db, "Waste Warrior", models.RequirementTotalWeight, 10, 25)
	seedAchievement(t, db, "Streak Star", models.RequirementStreak, 7, 30)

	seedStats(t, db, models.UserStats{UserID: 1, TotalWeightKg: 12, TotalPoints: 40, CurrentStreakDays: 2})

	earned, err := svc.CheckAchievements(ctx, 1)
	require.NoError(t, err)
	require.Len(t, earned, 2)
	require.Equal(t, "First Steps", earned[0].Name)
	require.Equal(t, "Waste Warrior", earned[1].Name)

	// Both bonuses land: 40 + 10 + 25. Awarding against a stale snapshot
	// would have kept only one of them.
	var stats models.UserStats
	require.NoError(t, db.Where("user_id = ?", 1).First(&stats).Error)
	require.Equal(t, 75, stats.TotalPoints)

	var rows int64
	require.NoError(t, db.Model(&models.UserAchievement{}).Where("user_id = ?", 1).Count(&rows).Error)
	require.Equal(t, int64(2), rows)
}

func TestCheckAchievementsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAchievementService(db)
	ctx := context.Background()

	seedAchievement(t, db, "First Steps", models.RequirementTotalWeight, 1, 10)
	seedStats(t, db, models.UserStats{UserID: 2, TotalWeightKg: 5})

	first, err := svc.CheckAchievements(ctx, 2)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.CheckAchievements(ctx, 2)
	require.NoError(t, err)
	require.Empty(t, second, "immediate re-run must award nothing")

	var stats models.UserStats
	require.NoError(t, db.Where("user_id = ?", 2).First(&stats).Error)
	require.Equal(t, 10, stats.TotalPoints, "points credited exactly once")
}

func TestCheckAchievementsPointsThresholdUsesSnapshot(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAchievementService(db)
	ctx := context.Background()

	seedAchievement(t, db, "First Steps", models.RequirementTotalWeight, 1, 20)
	seedAchievement(t, db, "Point Collector", models.RequirementPoints, 50, 100)

	// 40 points before the pass. The weight award pushes the stored total to
	// 60, but threshold checks read the stats as they were when the pass
	// started, so Point Collector waits for the next evaluation.
	seedStats(t, db, models.UserStats{UserID: 3, TotalWeightKg: 2, TotalPoints: 40})

	earned, err := svc.CheckAchievements(ctx, 3)
	require.NoError(t, err)
	require.Len(t, earned, 1)
	require.Equal(t, "First Steps", earned[0].Name)

	earned, err = svc.CheckAchievements(ctx, 3)
	require.NoError(t, err)
	require.Len(t, earned, 1)
	require.Equal(t, "Point Collector", earned[0].Name)

	var stats models.UserStats
	require.NoError(t, db.Where("user_id = ?", 3).First(&stats).Error)
	require.Equal(t, 160, stats.TotalPoints)
}

func TestListWithProgress(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAchievementService(db)
	ctx := context.Background()

	cheap := seedAchievement(t, db, "First Steps", models.RequirementTotalWeight, 10, 10)
	seedAchievement(t, db, "Carbon Hero", models.RequirementCarbonSaved, 100, 50)

	seedStats(t, db, models.UserStats{UserID: 4, TotalWeightKg: 10, TotalCarbonSavedKg: 25})
	_, err := svc.CheckAchievements(ctx, 4)
	require.NoError(t, err)

	list, err := svc.ListWithProgress(ctx, 4)
	require.NoError(t, err)
	require.Len(t, list, 2)

	require.Equal(t, cheap.Name, list[0].Name, "catalog ordered cheapest first")
	require.True(t, list[0].Earned)
	require.NotNil(t, list[0].EarnedAt)
	require.Equal(t, 100.0, list[0].ProgressPct)

	require.False(t, list[1].Earned)
	require.Equal(t, 25.0, list[1].ProgressPct)
}

func TestListWithProgressCapsAt100(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAchievementService(db)

	seedAchievement(t, db, "Streak Star", models.RequirementStreak, 7, 30)
	seedStats(t, db, models.UserStats{UserID: 5, CurrentStreakDays: 30})

	list, err := svc.ListWithProgress(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.False(t, list[0].Earned)
	require.Equal(t, 100.0, list[0].ProgressPct)
}
