package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Pragathi1123/eco-hive-smart/models"

	"gorm.io/gorm"
)

var (
	// ErrInvalidWeight is returned before anything reaches storage.
	ErrInvalidWeight = errors.New("weight_kg must be greater than zero")
	// ErrCategoryNotFound is returned for an unknown category id.
	ErrCategoryNotFound = errors.New("waste category not found")
)

// Points credited for every logged entry, independent of achievements.
const pointsPerLog = 10

type WasteLogService struct {
	db *gorm.DB
	rt *RealtimeHub
}

func NewWasteLogService(db *gorm.DB, rt *RealtimeHub) *WasteLogService {
	return &WasteLogService{db: db, rt: rt}
}

// CreateLog validates and inserts one waste entry, then folds it into the
// user's denormalized stats in the same transaction: total weight, carbon
// saved (weight × category coefficient), participation points and streak.
func (s *WasteLogService) CreateLog(ctx context.Context, userID, categoryID uint, weightKg float64, notes string) (*models.WasteLog, error) {
	if weightKg <= 0 {
		return nil, ErrInvalidWeight
	}

	var category models.WasteCategory
	if err := s.db.WithContext(ctx).First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("load category: %w", err)
	}

	entry := &models.WasteLog{
		UserID:     userID,
		CategoryID: categoryID,
		WeightKg:   weightKg,
		Notes:      notes,
	}
	carbonSaved := weightKg * category.CarbonSavingsKg

	var stats models.UserStats
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("insert waste log: %w", err)
		}

		if err := tx.Where("user_id = ?", userID).First(&stats).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("load stats: %w", err)
			}
			stats = models.UserStats{UserID: userID}
		}

		today := dayStart(entry.CreatedAt)
		stats.TotalWeightKg += weightKg
		stats.TotalCarbonSavedKg += carbonSaved
		stats.TotalPoints += pointsPerLog
		stats.CurrentStreakDays = nextStreak(stats.CurrentStreakDays, stats.LastLogDate, today)
		stats.LastLogDate = today

		if err := tx.Save(&stats).Error; err != nil {
			return fmt.Errorf("update stats: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	entry.Category = category

	if s.rt != nil {
		s.rt.BroadcastEvent(userID, "waste_log.created", entry)
		s.rt.BroadcastEvent(userID, "stats.updated", stats)
	}

	return entry, nil
}

// nextStreak advances the consecutive-day counter: a second log on the same
// day keeps it, a log the day after the last one extends it, a gap resets it.
func nextStreak(current int, lastLog, today time.Time) int {
	if lastLog.IsZero() {
		return 1
	}
	switch {
	case lastLog.Equal(today):
		if current == 0 {
			return 1
		}
		return current
	case dayStart(lastLog.AddDate(0, 0, 1)).Equal(today):
		return current + 1
	default:
		return 1
	}
}

// ListLogs returns the user's entries newest first with categories attached.
func (s *WasteLogService) ListLogs(ctx context.Context, userID uint) ([]models.WasteLog, error) {
	var logs []models.WasteLog
	if err := s.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list waste logs: %w", err)
	}
	return logs, nil
}

// ListCategories returns the seeded category catalog ordered by name.
func (s *WasteLogService) ListCategories(ctx context.Context) ([]models.WasteCategory, error) {
	var categories []models.WasteCategory
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}
