package models

import "time"

const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"

	CategorySales     = "sales"
	CategoryInventory = "inventory"
)

// Transaction is a financial ledger entry. Rows are append-only: nothing
// in the codebase updates or deletes them, reporting only aggregates.
type Transaction struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	BusinessUnit string    `gorm:"size:20;not null;index" json:"business_unit"`
	Type         string    `gorm:"size:10;not null" json:"type"`
	Category     string    `gorm:"size:50;not null" json:"category"`
	Description  string    `gorm:"size:255" json:"description"`
	Amount       int64     `gorm:"not null" json:"amount"`
	OccurredAt   time.Time `gorm:"not null;index" json:"occurred_at"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}
