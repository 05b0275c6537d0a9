package models

import "gorm.io/gorm"

// WasteCategory is static reference data seeded at startup.
// CarbonSavingsKg is the per-kilogram CO₂-equivalent reduction
// credited when waste in this category is logged.
type WasteCategory struct {
    gorm.Model
    Name            string `gorm:"uniqueIndex;not null"`
    Description     string
    Icon            string `gorm:"size:32"` // fixed icon key, see services.EducationTopics
    Color           string `gorm:"size:16"` // hex, e.g. "#10b981"
    CarbonSavingsKg float64
}
