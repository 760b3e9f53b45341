package services

import (
	"errors"
	"testing"

	"aura-api/dtos"
	"aura-api/models"
)

func TestRestockAdditivity(t *testing.T) {
	db := openTestDB(t)
	record := seedProduct(t, db, "Espresso Beans", 5, 4500, 8900)
	svc := NewInventoryService(db)

	if _, err := svc.Restock(record.ID, dtos.RestockInput{Quantity: 3}); err != nil {
		t.Fatalf("first restock: %v", err)
	}
	if _, err := svc.Restock(record.ID, dtos.RestockInput{Quantity: 4}); err != nil {
		t.Fatalf("second restock: %v", err)
	}

	var reloaded models.InventoryRecord
	if err := db.First(&reloaded, record.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Quantity != 12 {
		t.Fatalf("quantity = %d, want 12", reloaded.Quantity)
	}

	if n := countRows(t, db, &models.InventoryRestock{}); n != 2 {
		t.Fatalf("restock history rows = %d, want 2", n)
	}
}

func TestRestockPostsExpenseWhenCostGiven(t *testing.T) {
	db := openTestDB(t)
	record := seedProduct(t, db, "Pomade", 2, 1500, 3500)
	svc := NewInventoryService(db)

	cost := int64(200)
	if _, err := svc.Restock(record.ID, dtos.RestockInput{Quantity: 3, CostPrice: &cost}); err != nil {
		t.Fatalf("restock: %v", err)
	}

	var ledger []models.Transaction
	if err := db.Find(&ledger).Error; err != nil {
		t.Fatalf("load ledger: %v", err)
	}
	if len(ledger) != 1 {
		t.Fatalf("ledger rows = %d, want 1", len(ledger))
	}
	if ledger[0].Type != models.TransactionExpense || ledger[0].Category != models.CategoryInventory {
		t.Fatalf("ledger entry = %s/%s, want expense/inventory", ledger[0].Type, ledger[0].Category)
	}
	if ledger[0].Amount != 600 {
		t.Fatalf("amount = %d, want 600 (cost x qty)", ledger[0].Amount)
	}

	// Without a cost no expense is posted.
	if _, err := svc.Restock(record.ID, dtos.RestockInput{Quantity: 1}); err != nil {
		t.Fatalf("restock without cost: %v", err)
	}
	if n := countRows(t, db, &models.Transaction{}); n != 1 {
		t.Fatalf("ledger rows = %d, want still 1", n)
	}
}

func TestRestockMissingRecord(t *testing.T) {
	db := openTestDB(t)

	if _, err := NewInventoryService(db).Restock(42, dtos.RestockInput{Quantity: 1}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestUpsertRejectsDuplicateBarcode(t *testing.T) {
	db := openTestDB(t)
	svc := NewInventoryService(db)

	barcode := "7891000100011"
	first, err := svc.Upsert(dtos.UpsertInventoryInput{
		Name:         "Baguette",
		BusinessUnit: "bakery",
		Quantity:     10,
		Barcode:      &barcode,
	})
	if err != nil {
		t.Fatalf("create first: %v", err)
	}

	_, err = svc.Upsert(dtos.UpsertInventoryInput{
		Name:         "Croissant",
		BusinessUnit: "bakery",
		Quantity:     5,
		Barcode:      &barcode,
	})
	if !errors.Is(err, ErrDuplicateBarcode) {
		t.Fatalf("want ErrDuplicateBarcode, got %v", err)
	}

	if n := countRows(t, db, &models.InventoryRecord{}); n != 1 {
		t.Fatalf("record rows = %d, want 1", n)
	}

	var reloaded models.InventoryRecord
	if err := db.First(&reloaded, first.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Name != "Baguette" || reloaded.Quantity != 10 {
		t.Fatalf("existing record mutated: %+v", reloaded)
	}
}

func TestUpsertUpdatesInPlace(t *testing.T) {
	db := openTestDB(t)
	svc := NewInventoryService(db)

	barcode := "7891000100028"
	created, err := svc.Upsert(dtos.UpsertInventoryInput{
		Name:         "Cake Slice",
		BusinessUnit: "bakery",
		Quantity:     8,
		CostPrice:    400,
		SalePrice:    1200,
		Barcode:      &barcode,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// History written against the original id.
	if _, err := svc.Restock(created.ID, dtos.RestockInput{Quantity: 2}); err != nil {
		t.Fatalf("restock: %v", err)
	}

	updated, err := svc.Upsert(dtos.UpsertInventoryInput{
		ID:           &created.ID,
		Name:         "Chocolate Cake Slice",
		BusinessUnit: "bakery",
		Quantity:     10,
		CostPrice:    450,
		SalePrice:    1300,
		Barcode:      &barcode, // keeping one's own barcode is not a collision
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.ID != created.ID {
		t.Fatalf("id changed on update: %d -> %d", created.ID, updated.ID)
	}
	if updated.Name != "Chocolate Cake Slice" || updated.CostPrice != 450 {
		t.Fatalf("fields not updated: %+v", updated)
	}

	// Restock history still points at a live row.
	var restocks []models.InventoryRestock
	if err := db.Where("inventory_id = ?", created.ID).Find(&restocks).Error; err != nil {
		t.Fatalf("load restocks: %v", err)
	}
	if len(restocks) != 1 {
		t.Fatalf("restock rows = %d, want 1", len(restocks))
	}

	if n := countRows(t, db, &models.InventoryRecord{}); n != 1 {
		t.Fatalf("record rows = %d, want 1 (no delete-then-insert)", n)
	}
}

func TestUpsertUnknownID(t *testing.T) {
	db := openTestDB(t)

	missing := uint(404)
	_, err := NewInventoryService(db).Upsert(dtos.UpsertInventoryInput{
		ID:           &missing,
		Name:         "Ghost",
		BusinessUnit: "bakery",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestDeleteReleasesBarcode(t *testing.T) {
	db := openTestDB(t)
	svc := NewInventoryService(db)

	barcode := "7891000100035"
	retired, err := svc.Upsert(dtos.UpsertInventoryInput{
		Name:         "Day-old Bread",
		BusinessUnit: "bakery",
		Quantity:     3,
		Barcode:      &barcode,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(retired.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// The unique index spans soft-deleted rows too; the freed barcode
	// must be usable again all the way down to the insert.
	replacement, err := svc.Upsert(dtos.UpsertInventoryInput{
		Name:         "Fresh Bread",
		BusinessUnit: "bakery",
		Quantity:     10,
		Barcode:      &barcode,
	})
	if err != nil {
		t.Fatalf("reuse barcode after delete: %v", err)
	}
	if replacement.ID == retired.ID {
		t.Fatal("replacement reused the deleted row's id")
	}

	if _, err := svc.Get(retired.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted record still visible: %v", err)
	}
}

func TestLowStock(t *testing.T) {
	db := openTestDB(t)
	svc := NewInventoryService(db)

	low := models.InventoryRecord{Name: "Beard Oil", BusinessUnit: "barbershop", Quantity: 2, MinStock: 4}
	ok := models.InventoryRecord{Name: "Pomade", BusinessUnit: "barbershop", Quantity: 20, MinStock: 4}
	untracked := models.InventoryRecord{Name: "Gift Bag", BusinessUnit: "barbershop", Quantity: 0, MinStock: 0}
	for _, r := range []*models.InventoryRecord{&low, &ok, &untracked} {
		if err := db.Create(r).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	records, err := svc.LowStock()
	if err != nil {
		t.Fatalf("low stock: %v", err)
	}
	if len(records) != 1 || records[0].Name != "Beard Oil" {
		t.Fatalf("low stock = %+v, want only Beard Oil", records)
	}
}
