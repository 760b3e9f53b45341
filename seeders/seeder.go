package seeders

import (
	"log"

	"aura-api/config"
	"aura-api/dtos"
	"aura-api/models"

	"golang.org/x/crypto/bcrypt"
)

func ptrString(s string) *string {
	return &s
}

func Seed() {
	// ============= Seed Users =============
	users := []models.User{
		{Username: "admin", Password: "admin123", Name: "Administrator", Role: "admin"},
		{Username: "cashier1", Password: "cashier123", Name: "Front Cashier", Role: "cashier"},
	}

	for _, user := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			continue
		}
		user.Password = string(hash)
		config.DB.FirstOrCreate(&user, models.User{Username: user.Username})
	}

	// ============= Seed Inventory =============
	records := []models.InventoryRecord{
		{Name: "French Baguette", BusinessUnit: dtos.UnitBakery, Unit: "un", Quantity: 40, CostPrice: 250, SalePrice: 800, Barcode: ptrString("7891000100011"), MinStock: 10},
		{Name: "Chocolate Cake Slice", BusinessUnit: dtos.UnitBakery, Unit: "un", Quantity: 24, CostPrice: 400, SalePrice: 1200, Barcode: ptrString("7891000100028"), MinStock: 6},
		{Name: "Croissant", BusinessUnit: dtos.UnitBakery, Unit: "un", Quantity: 30, CostPrice: 300, SalePrice: 950, Barcode: ptrString("7891000100035"), MinStock: 8},
		{Name: "Espresso Beans 1kg", BusinessUnit: dtos.UnitBakery, Unit: "pkg", ItemsPerPackage: 1, Quantity: 12, CostPrice: 4500, SalePrice: 8900, Barcode: ptrString("7891000100042"), MinStock: 3},
		{Name: "Pomade Matte", BusinessUnit: dtos.UnitBarbershop, Unit: "un", Quantity: 18, CostPrice: 1500, SalePrice: 3500, Barcode: ptrString("7891000200018"), MinStock: 5},
		{Name: "Beard Oil 30ml", BusinessUnit: dtos.UnitBarbershop, Unit: "un", Quantity: 15, CostPrice: 1200, SalePrice: 2900, Barcode: ptrString("7891000200025"), MinStock: 4},
		{Name: "Razor Blades 10-pack", BusinessUnit: dtos.UnitBarbershop, Unit: "pkg", ItemsPerPackage: 10, Quantity: 20, CostPrice: 800, SalePrice: 2000, Barcode: ptrString("7891000200032"), MinStock: 5},
	}

	for _, record := range records {
		config.DB.FirstOrCreate(&record, models.InventoryRecord{Name: record.Name})
	}

	// ============= Seed Queue States =============
	for _, unit := range []string{dtos.UnitBarbershop, dtos.UnitBakery} {
		state := models.QueueState{BusinessUnit: unit, ServingNumber: 0, NextTicketNumber: 1}
		config.DB.FirstOrCreate(&state, models.QueueState{BusinessUnit: unit})
	}

	log.Println("seeding done: 2 users, 7 inventory records, 2 queue states")
}
