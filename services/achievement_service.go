package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Pragathi1123/eco-hive-smart/models"

	"gorm.io/gorm"
)

type AchievementService struct {
	db *gorm.DB
}

func NewAchievementService(db *gorm.DB) *AchievementService {
	return &AchievementService{db: db}
}

type EarnedAchievement struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
	Icon   string `json:"icon"`
}

// CheckAchievements evaluates the full catalog against the user's current
// stats and awards everything newly qualified. Each award inserts one
// user_achievements row and adds its points to a running total, so several
// achievements unlocking in the same pass all count (awarding against the
// pre-loop snapshot would silently drop all but the last bonus). The whole
// evaluation runs in one transaction and the (user_id, achievement_id)
// unique index rejects a concurrent double-award; immediately re-running is
// a no-op.
func (s *AchievementService) CheckAchievements(ctx context.Context, userID uint) ([]EarnedAchievement, error) {
	var newlyEarned []EarnedAchievement

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stats models.UserStats
		if err := tx.Where("user_id = ?", userID).First(&stats).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStatsNotFound
			}
			return fmt.Errorf("load stats: %w", err)
		}

		var catalog []models.Achievement
		if err := tx.Order("id ASC").Find(&catalog).Error; err != nil {
			return fmt.Errorf("load achievement catalog: %w", err)
		}

		var earned []models.UserAchievement
		if err := tx.Where("user_id = ?", userID).Find(&earned).Error; err != nil {
			return fmt.Errorf("load earned achievements: %w", err)
		}
		earnedIDs := make(map[uint]struct{}, len(earned))
		for _, ua := range earned {
			earnedIDs[ua.AchievementID] = struct{}{}
		}

		runningPoints := stats.TotalPoints

		for _, a := range catalog {
			if _, already := earnedIDs[a.ID]; already {
				continue
			}
			if currentStatValue(&stats, a.RequirementType) < a.RequirementValue {
				continue
			}

			award := models.UserAchievement{
				UserID:        userID,
				AchievementID: a.ID,
				EarnedAt:      time.Now(),
			}
			if err := tx.Create(&award).Error; err != nil {
				// A concurrent evaluation got there first; the unique index
				// makes that row theirs. Skip, don't fail the pass.
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					continue
				}
				return fmt.Errorf("award achievement %q: %w", a.Name, err)
			}

			runningPoints += a.Points
			newlyEarned = append(newlyEarned, EarnedAchievement{
				Name:   a.Name,
				Points: a.Points,
				Icon:   a.Icon,
			})
		}

		if runningPoints != stats.TotalPoints {
			if err := tx.Model(&models.UserStats{}).
				Where("user_id = ?", userID).
				Update("total_points", runningPoints).Error; err != nil {
				return fmt.Errorf("apply achievement points: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, ea := range newlyEarned {
		EmitAlert(userID, "achievement", fmt.Sprintf("Achievement unlocked: %s (+%d points)", ea.Name, ea.Points))
	}

	return newlyEarned, nil
}

func currentStatValue(stats *models.UserStats, requirementType string) float64 {
	switch requirementType {
	case models.RequirementTotalWeight:
		return stats.TotalWeightKg
	case models.RequirementCarbonSaved:
		return stats.TotalCarbonSavedKg
	case models.RequirementStreak:
		return float64(stats.CurrentStreakDays)
	case models.RequirementPoints:
		return float64(stats.TotalPoints)
	default:
		return 0
	}
}

type AchievementWithProgress struct {
	models.Achievement
	Earned      bool       `json:"earned"`
	EarnedAt    *time.Time `json:"earned_at,omitempty"`
	ProgressPct float64    `json:"progress_pct"`
}

// ListWithProgress returns the whole catalog (cheapest first) merged with
// the user's earned rows and a capped progress percentage for the rest.
func (s *AchievementService) ListWithProgress(ctx context.Context, userID uint) ([]AchievementWithProgress, error) {
	var catalog []models.Achievement
	if err := s.db.WithContext(ctx).Order("points ASC").Find(&catalog).Error; err != nil {
		return nil, fmt.Errorf("load achievement catalog: %w", err)
	}

	var earned []models.UserAchievement
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&earned).Error; err != nil {
		return nil, fmt.Errorf("load earned achievements: %w", err)
	}
	earnedAt := make(map[uint]time.Time, len(earned))
	for _, ua := range earned {
		earnedAt[ua.AchievementID] = ua.EarnedAt
	}

	var stats models.UserStats
	statsErr := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&stats).Error
	if statsErr != nil && !errors.Is(statsErr, gorm.ErrRecordNotFound) {
		return nil, statsErr
	}

	out := make([]AchievementWithProgress, 0, len(catalog))
	for _, a := range catalog {
		item := AchievementWithProgress{Achievement: a}
		if at, ok := earnedAt[a.ID]; ok {
			item.Earned = true
			t := at
			item.EarnedAt = &t
			item.ProgressPct = 100
		} else if statsErr == nil && a.RequirementValue > 0 {
			pct := currentStatValue(&stats, a.RequirementType) / a.RequirementValue * 100
			if pct > 100 {
				pct = 100
			}
			item.ProgressPct = round2(pct)
		}
		out = append(out, item)
	}
	return out, nil
}
