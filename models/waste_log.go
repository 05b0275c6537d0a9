package models

import (
    "gorm.io/gorm"
)

// One logged waste entry. Immutable after creation; never deleted by the app.
type WasteLog struct {
    gorm.Model
    UserID     uint    `gorm:"index;not null"`
    CategoryID uint    `gorm:"index;not null"`
    Category   WasteCategory `gorm:"foreignKey:CategoryID"`
    WeightKg   float64 `gorm:"not null"` // validated > 0 before insert
    Notes      string  `gorm:"type:text"`
}
