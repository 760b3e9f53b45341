package models

import "gorm.io/gorm"

func MigrateTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&CashRegister{},
		&Sale{},
		&SaleItem{},
		&Payment{},
		&InventoryRecord{},
		&InventoryMovement{},
		&InventoryRestock{},
		&Transaction{},
		&QueueState{},
		&Ticket{},
		&AuditLog{},
	)
}
