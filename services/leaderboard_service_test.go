package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/Pragathi1123/eco-hive-smart/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedRankedUser(t *testing.T, db *gorm.DB, name string, stats models.UserStats) uint {
	t.Helper()
	user := models.User{Email: fmt.Sprintf("%s@example.com", name), Password: "x", FullName: name}
	require.NoError(t, db.Create(&user).Error)
	stats.UserID = user.ID
	require.NoError(t, db.Create(&stats).Error)
	return user.ID
}

func TestLeaderboardsRankDescending(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLeaderboardService(db)

	alice := seedRankedUser(t, db, "alice", models.UserStats{TotalPoints: 300, TotalWeightKg: 5, TotalCarbonSavedKg: 8, CurrentStreakDays: 2})
	bob := seedRankedUser(t, db, "bob", models.UserStats{TotalPoints: 100, TotalWeightKg: 20, TotalCarbonSavedKg: 4, CurrentStreakDays: 9})
	carol := seedRankedUser(t, db, "carol", models.UserStats{TotalPoints: 200, TotalWeightKg: 10, TotalCarbonSavedKg: 30, CurrentStreakDays: 5})

	set, err := svc.Leaderboards(context.Background())
	require.NoError(t, err)

	require.Len(t, set.ByPoints, 3)
	require.Equal(t, alice, set.ByPoints[0].UserID)
	require.Equal(t, 1, set.ByPoints[0].Rank)
	require.Equal(t, carol, set.ByPoints[1].UserID)
	require.Equal(t, bob, set.ByPoints[2].UserID)
	require.Equal(t, 3, set.ByPoints[2].Rank)

	require.Equal(t, bob, set.ByWeight[0].UserID)
	require.Equal(t, carol, set.ByCarbon[0].UserID)
	require.Equal(t, bob, set.ByStreak[0].UserID)

	require.Equal(t, "alice", set.ByPoints[0].FullName)
}

func TestLeaderboardsTiesBreakOnUserID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLeaderboardService(db)

	first := seedRankedUser(t, db, "first", models.UserStats{TotalPoints: 100})
	second := seedRankedUser(t, db, "second", models.UserStats{TotalPoints: 100})

	set, err := svc.Leaderboards(context.Background())
	require.NoError(t, err)
	require.Equal(t, first, set.ByPoints[0].UserID)
	require.Equal(t, second, set.ByPoints[1].UserID)

	// Identical data, identical ordering on a repeat call.
	again, err := svc.Leaderboards(context.Background())
	require.NoError(t, err)
	require.Equal(t, set.ByPoints, again.ByPoints)
}

func TestLeaderboardsEmpty(t *testing.T) {
	db := setupTestDB(t)
	svc := NewLeaderboardService(db)

	set, err := svc.Leaderboards(context.Background())
	require.NoError(t, err)
	require.Empty(t, set.ByPoints)
	require.Empty(t, set.ByStreak)
}
