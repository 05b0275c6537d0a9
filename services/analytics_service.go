package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/Pragathi1123/eco-hive-smart/models"

	"gorm.io/gorm"
)

// ErrStatsNotFound signals a missing user_stats row. Callers must surface
// this rather than defaulting to zeros: a user without a stats row is a data
// integrity problem, not a new user with empty totals.
var ErrStatsNotFound = errors.New("user stats not found")

type AnalyticsService struct{ db *gorm.DB }

func NewAnalyticsService(db *gorm.DB) *AnalyticsService { return &AnalyticsService{db: db} }

// ---------- Dashboard stats ----------

func (s *AnalyticsService) GetStats(ctx context.Context, userID uint) (*models.UserStats, error) {
	var stats models.UserStats
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&stats).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStatsNotFound
		}
		return nil, err
	}
	return &stats, nil
}

// ---------- Aggregated series ----------

type DailyWaste struct {
	Date          string  `json:"date"`
	WeightKg      float64 `json:"weight_kg"`
	CarbonSavedKg float64 `json:"carbon_saved_kg"`
}

type CategoryWaste struct {
	Name     string  `json:"name"`
	WeightKg float64 `json:"weight_kg"`
	Color    string  `json:"color"`
}

type WasteSeries struct {
	Daily      []DailyWaste    `json:"daily"`
	Categories []CategoryWaste `json:"categories"`
}

// Series buckets the user's full log history two ways: per calendar day in
// the given location {date, weight, carbon} and per category {name, weight,
// color}. Carbon per log = weight_kg × category coefficient. Sums accumulate
// in full precision and are rounded to 2 decimals only on output. A user
// with zero logs gets empty slices, not an error.
func (s *AnalyticsService) Series(ctx context.Context, userID uint, loc *time.Location) (*WasteSeries, error) {
	if loc == nil {
		loc = time.Local
	}

	var logs []models.WasteLog
	if err := s.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}

	type dailyAcc struct{ weight, carbon float64 }
	type categoryAcc struct {
		weight float64
		color  string
	}

	dailyIdx := map[string]*dailyAcc{}
	var dayOrder []string
	categoryIdx := map[string]*categoryAcc{}
	var categoryOrder []string

	for _, l := range logs {
		day := l.CreatedAt.In(loc).Format("2006-01-02")
		carbon := l.WeightKg * l.Category.CarbonSavingsKg

		if _, ok := dailyIdx[day]; !ok {
			dailyIdx[day] = &dailyAcc{}
			dayOrder = append(dayOrder, day)
		}
		dailyIdx[day].weight += l.WeightKg
		dailyIdx[day].carbon += carbon

		name := l.Category.Name
		if _, ok := categoryIdx[name]; !ok {
			categoryIdx[name] = &categoryAcc{color: l.Category.Color}
			categoryOrder = append(categoryOrder, name)
		}
		categoryIdx[name].weight += l.WeightKg
	}

	out := &WasteSeries{
		Daily:      make([]DailyWaste, 0, len(dayOrder)),
		Categories: make([]CategoryWaste, 0, len(categoryOrder)),
	}
	for _, day := range dayOrder {
		acc := dailyIdx[day]
		out.Daily = append(out.Daily, DailyWaste{
			Date:          day,
			WeightKg:      round2(acc.weight),
			CarbonSavedKg: round2(acc.carbon),
		})
	}
	for _, name := range categoryOrder {
		acc := categoryIdx[name]
		out.Categories = append(out.Categories, CategoryWaste{
			Name:     name,
			WeightKg: round2(acc.weight),
			Color:    acc.color,
		})
	}

	return out, nil
}

// ---------- internals ----------

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
