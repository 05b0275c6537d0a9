package models

import (
    "time"

    "gorm.io/gorm"
)

// Requirement types an achievement threshold is evaluated against.
const (
    RequirementTotalWeight = "total_weight"
    RequirementCarbonSaved = "carbon_saved"
    RequirementStreak      = "streak"
    RequirementPoints      = "points"
)

// Achievement is a static catalog entry seeded at startup.
type Achievement struct {
    gorm.Model
    Name             string `gorm:"uniqueIndex;not null"`
    Description      string
    Icon             string `gorm:"size:32"`
    Points           int
    RequirementType  string `gorm:"size:20;not null"`
    RequirementValue float64
}

// UserAchievement records an earned achievement. Append-only; the composite
// unique index enforces at most one row per (user, achievement) even when
// two evaluations race.
type UserAchievement struct {
    ID            uint `gorm:"primaryKey"`
    UserID        uint `gorm:"uniqueIndex:idx_user_achievement;not null"`
    AchievementID uint `gorm:"uniqueIndex:idx_user_achievement;not null"`
    EarnedAt      time.Time
}
