package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rephone-next/internal/catalog"
	"github.com/rephone-next/internal/constants"
	"github.com/rephone-next/internal/models"
	"github.com/rephone-next/internal/repository"
)

func newTestCatalog() *catalog.Catalog {
	return catalog.New([]models.Product{
		{
			ID:          "1",
			Name:        "iPhone 13 Pro",
			Brand:       "Apple",
			PriceAmount: models.NewMoneyFromInt(699),
			Images:      models.StringArray{"/images/1.jpg"},
			Condition:   constants.ConditionExcellent,
			Category:    "iPhone",
			InStock:     true,
		},
		{
			ID:          "2",
			Name:        "Galaxy S22 Ultra",
			Brand:       "Samsung",
			PriceAmount: models.NewMoneyFromInt(599),
			Images:      models.StringArray{"/images/2.jpg"},
			Condition:   constants.ConditionVeryGood,
			Category:    "Samsung",
			InStock:     true,
		},
		{
			ID:          "3",
			Name:        "Pixel 7 Pro",
			Brand:       "Google",
			PriceAmount: models.NewMoneyFromInt(449),
			Images:      models.StringArray{"/images/3.jpg"},
			Condition:   constants.ConditionExcellent,
			Category:    "Google",
			InStock:     true,
		},
		{
			ID:          "4",
			Name:        "OnePlus 10 Pro",
			Brand:       "OnePlus",
			PriceAmount: models.NewMoneyFromInt(399),
			Images:      models.StringArray{"/images/4.jpg"},
			Condition:   constants.ConditionGood,
			Category:    "OnePlus",
			InStock:     true,
		},
		{
			ID:          "5",
			Name:        "iPhone 12",
			Brand:       "Apple",
			PriceAmount: models.NewMoneyFromInt(379),
			Images:      models.StringArray{"/images/5.jpg"},
			Condition:   constants.ConditionFair,
			Category:    "iPhone",
			InStock:     true,
		},
	})
}

func newTestSnapshots(t *testing.T) repository.SnapshotRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.StoreSnapshot{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repository.NewSnapshotRepository(db)
}
