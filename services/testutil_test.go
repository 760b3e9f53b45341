package services

import (
	"testing"

	"aura-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// A second pooled connection would see a different in-memory DB.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := models.MigrateTables(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func openRegisterFor(t *testing.T, db *gorm.DB, operatorID uint, openingAmount int64) *models.CashRegister {
	t.Helper()

	register, err := NewRegisterService(db).Open(operatorID, openingAmount)
	if err != nil {
		t.Fatalf("open register: %v", err)
	}
	return register
}

func seedProduct(t *testing.T, db *gorm.DB, name string, quantity int, costPrice, salePrice int64) *models.InventoryRecord {
	t.Helper()

	record := models.InventoryRecord{
		Name:         name,
		BusinessUnit: "bakery",
		Quantity:     quantity,
		CostPrice:    costPrice,
		SalePrice:    salePrice,
	}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return &record
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()

	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return n
}
