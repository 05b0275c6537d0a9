package models

import (
    "time"

    "gorm.io/gorm"
)

// UserStats is the denormalized per-user aggregate, one row per user.
// Updated in the same transaction as each WasteLog insert.
type UserStats struct {
    gorm.Model
    UserID             uint `gorm:"uniqueIndex;not null"`
    TotalWeightKg      float64
    TotalCarbonSavedKg float64
    TotalPoints        int
    CurrentStreakDays  int
    LastLogDate        time.Time // truncated to YYYY-MM-DD, drives streak updates
}
