package config

import (
	"github.com/Pragathi1123/eco-hive-smart/models"

	"gorm.io/gorm"
)

// SeedCatalogs inserts the static waste-category and achievement catalogs.
// Idempotent: existing rows (matched by name) are left untouched.
func SeedCatalogs(db *gorm.DB) error {
	categories := []models.WasteCategory{
		{Name: "Plastic", Description: "Bottles, containers, packaging film", Icon: "recycle", Color: "#3b82f6", CarbonSavingsKg: 1.5},
		{Name: "Paper", Description: "Newspapers, cardboard, office paper", Icon: "file-text", Color: "#f59e0b", CarbonSavingsKg: 0.9},
		{Name: "Glass", Description: "Bottles and jars, rinsed and dry", Icon: "wine", Color: "#06b6d4", CarbonSavingsKg: 0.3},
		{Name: "Metal", Description: "Cans, foil, scrap metal", Icon: "box", Color: "#64748b", CarbonSavingsKg: 2.0},
		{Name: "Organic", Description: "Food scraps, garden waste, compostables", Icon: "leaf", Color: "#10b981", CarbonSavingsKg: 0.25},
		{Name: "E-Waste", Description: "Electronics, batteries, cables", Icon: "cpu", Color: "#8b5cf6", CarbonSavingsKg: 3.5},
	}
	for _, c := range categories {
		if err := db.Where("name = ?", c.Name).FirstOrCreate(&c).Error; err != nil {
			return err
		}
	}

	achievements := []models.Achievement{
		{Name: "First Steps", Description: "Log your first kilogram of waste", Icon: "footprints", Points: 10, RequirementType: models.RequirementTotalWeight, RequirementValue: 1},
		{Name: "Waste Warrior", Description: "Log 10 kg of sorted waste", Icon: "shield", Points: 25, RequirementType: models.RequirementTotalWeight, RequirementValue: 10},
		{Name: "Heavy Lifter", Description: "Log 50 kg of sorted waste", Icon: "dumbbell", Points: 100, RequirementType: models.RequirementTotalWeight, RequirementValue: 50},
		{Name: "Carbon Saver", Description: "Save 5 kg of CO₂ emissions", Icon: "cloud", Points: 25, RequirementType: models.RequirementCarbonSaved, RequirementValue: 5},
		{Name: "Climate Champion", Description: "Save 25 kg of CO₂ emissions", Icon: "globe", Points: 100, RequirementType: models.RequirementCarbonSaved, RequirementValue: 25},
		{Name: "Consistent", Description: "Keep a 3-day logging streak", Icon: "flame", Points: 15, RequirementType: models.RequirementStreak, RequirementValue: 3},
		{Name: "Dedicated", Description: "Keep a 7-day logging streak", Icon: "calendar", Points: 50, RequirementType: models.RequirementStreak, RequirementValue: 7},
		{Name: "Point Collector", Description: "Earn 100 points", Icon: "star", Points: 20, RequirementType: models.RequirementPoints, RequirementValue: 100},
		{Name: "Point Hoarder", Description: "Earn 500 points", Icon: "trophy", Points: 75, RequirementType: models.RequirementPoints, RequirementValue: 500},
	}
	for _, a := range achievements {
		if err := db.Where("name = ?", a.Name).FirstOrCreate(&a).Error; err != nil {
			return err
		}
	}

	return nil
}
