package models

import "time"

// ClassificationLog is an append-only audit trail of user confirmations
// versus automated disposal-bucket detection.
type ClassificationLog struct {
    ID                    uint   `gorm:"primaryKey"`
    UserID                uint   `gorm:"index"`
    ItemName              string
    DetectedCategory      string `gorm:"size:20"`
    UserConfirmedCategory string `gorm:"size:20"`
    IsCorrect             bool   // derived: detected == confirmed
    Confidence            float64
    Barcode               string `gorm:"size:32"`
    CreatedAt             time.Time
}
