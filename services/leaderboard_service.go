package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/Pragathi1123/eco-hive-smart/models"

	"gorm.io/gorm"
)

type LeaderboardService struct{ db *gorm.DB }

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{db: db}
}

type LeaderboardEntry struct {
	UserID             uint    `json:"user_id"`
	Rank               int     `json:"rank"`
	FullName           string  `json:"full_name"`
	Email              string  `json:"email"`
	TotalPoints        int     `json:"total_points"`
	TotalWeightKg      float64 `json:"total_weight_kg"`
	TotalCarbonSavedKg float64 `json:"total_carbon_saved_kg"`
	CurrentStreakDays  int     `json:"current_streak_days"`
}

type LeaderboardSet struct {
	ByPoints []LeaderboardEntry `json:"by_points"`
	ByWeight []LeaderboardEntry `json:"by_weight"`
	ByCarbon []LeaderboardEntry `json:"by_carbon"`
	ByStreak []LeaderboardEntry `json:"by_streak"`
}

// Leaderboards loads every user's stats once and produces four independent
// descending rankings with 1-based ranks. Ties break on user id ascending so
// repeated calls over identical data return identical orderings. The full
// in-memory sort is fine at current user counts and nothing more.
func (s *LeaderboardService) Leaderboards(ctx context.Context) (*LeaderboardSet, error) {
	type row struct {
		models.UserStats
		FullName string
		Email    string
	}
	var rows []row
	if err := s.db.WithContext(ctx).
		Model(&models.UserStats{}).
		Select("user_stats.*, users.full_name, users.email").
		Joins("JOIN users ON users.id = user_stats.user_id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("load leaderboard stats: %w", err)
	}

	entries := make([]LeaderboardEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, LeaderboardEntry{
			UserID:             r.UserID,
			FullName:           r.FullName,
			Email:              r.Email,
			TotalPoints:        r.TotalPoints,
			TotalWeightKg:      r.TotalWeightKg,
			TotalCarbonSavedKg: r.TotalCarbonSavedKg,
			CurrentStreakDays:  r.CurrentStreakDays,
		})
	}

	return &LeaderboardSet{
		ByPoints: rankBy(entries, func(e LeaderboardEntry) float64 { return float64(e.TotalPoints) }),
		ByWeight: rankBy(entries, func(e LeaderboardEntry) float64 { return e.TotalWeightKg }),
		ByCarbon: rankBy(entries, func(e LeaderboardEntry) float64 { return e.TotalCarbonSavedKg }),
		ByStreak: rankBy(entries, func(e LeaderboardEntry) float64 { return float64(e.CurrentStreakDays) }),
	}, nil
}

func rankBy(entries []LeaderboardEntry, metric func(LeaderboardEntry) float64) []LeaderboardEntry {
	ranked := make([]LeaderboardEntry, len(entries))
	copy(ranked, entries)

	sort.Slice(ranked, func(i, j int) bool {
		mi, mj := metric(ranked[i]), metric(ranked[j])
		if mi != mj {
			return mi > mj
		}
		return ranked[i].UserID < ranked[j].UserID
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}
