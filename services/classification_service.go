package services

import (
	"context"
	"strings"
	"time"

	"github.com/Pragathi1123/eco-hive-smart/models"

	"gorm.io/gorm"
)

// Disposal buckets returned by the classifier.
const (
	DisposalRecyclable  = "Recyclable"
	DisposalCompostable = "Compostable"
	DisposalEWaste      = "E-Waste"
)

// Keyword tables for the tag heuristic. The rule order below is load-bearing:
// organic category tags win over packaging material tags ("plastic food
// container" classifies as Compostable because the category rule runs first),
// and anything unmatched falls through to E-Waste.
var (
	compostableKeywords = []string{"food", "organic", "fruit", "vegetable", "compost", "plant-based"}
	recyclableKeywords  = []string{"plastic", "metal", "glass", "paper", "cardboard", "tetra", "aluminium", "aluminum", "steel", "tin"}
)

// ClassifyTags maps product tags from a lookup (or labels from photo
// detection) to exactly one disposal bucket. Matching is case-insensitive
// substring search over the concatenated tag strings.
func ClassifyTags(categoryTags, packagingTags []string) string {
	categories := strings.ToLower(strings.Join(categoryTags, " "))
	for _, kw := range compostableKeywords {
		if strings.Contains(categories, kw) {
			return DisposalCompostable
		}
	}

	packaging := strings.ToLower(strings.Join(packagingTags, " "))
	for _, kw := range recyclableKeywords {
		if strings.Contains(packaging, kw) {
			return DisposalRecyclable
		}
	}

	return DisposalEWaste
}

type ClassificationService struct {
	db *gorm.DB
}

func NewClassificationService(db *gorm.DB) *ClassificationService {
	return &ClassificationService{db: db}
}

// RecordConfirmation appends one audit row comparing what the classifier
// detected with what the user confirmed. IsCorrect is derived here, never
// supplied by the caller.
func (s *ClassificationService) RecordConfirmation(
	ctx context.Context, userID uint,
	itemName, detected, confirmed string,
	confidence float64, barcode string,
) (*models.ClassificationLog, error) {
	entry := &models.ClassificationLog{
		UserID:                userID,
		ItemName:              itemName,
		DetectedCategory:      detected,
		UserConfirmedCategory: confirmed,
		IsCorrect:             detected == confirmed,
		Confidence:            confidence,
		Barcode:               barcode,
		CreatedAt:             time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

type ClassificationAccuracy struct {
	Total       int64   `json:"total"`
	Correct     int64   `json:"correct"`
	AccuracyPct float64 `json:"accuracy_pct"`
}

// AccuracyStats summarizes how often automated detection matched the user's
// confirmation. Zero confirmations reports 0% rather than an error.
func (s *ClassificationService) AccuracyStats(ctx context.Context, userID uint) (*ClassificationAccuracy, error) {
	base := s.db.WithContext(ctx).Model(&models.ClassificationLog{}).Where("user_id = ?", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, err
	}
	var correct int64
	if err := base.Where("is_correct = ?", true).Count(&correct).Error; err != nil {
		return nil, err
	}

	out := &ClassificationAccuracy{Total: total, Correct: correct}
	if total > 0 {
		out.AccuracyPct = round2(float64(correct) / float64(total) * 100.0)
	}
	return out, nil
}
