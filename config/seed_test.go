package config

import (
	"testing"

	"github.com/Pragathi1123/eco-hive-smart/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestSeedCatalogsIdempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:seedtest?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	require.NoError(t, SeedCatalogs(db))
	require.NoError(t, SeedCatalogs(db))

	var categories int64
	require.NoError(t, db.Model(&models.WasteCategory{}).Count(&categories).Error)
	require.Equal(t, int64(6), categories)

	var achievements int64
	require.NoError(t, db.Model(&models.Achievement{}).Count(&achievements).Error)
	require.Equal(t, int64(9), achievements)

	var organic models.WasteCategory
	require.NoError(t, db.Where("name = ?", "Organic").First(&organic).Error)
	require.Equal(t, 0.25, organic.CarbonSavingsKg)
}
