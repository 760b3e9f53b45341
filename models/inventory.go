package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	MovementIn  = "in"
	MovementOut = "out"
)

// InventoryRecord tracks one SKU. Quantity is counted in packages;
// the per-unit cost is CostPrice / ItemsPerPackage and is derived for
// display only, never stored.
type InventoryRecord struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Name            string     `gorm:"size:150;not null" json:"name"`
	BusinessUnit    string     `gorm:"size:20;not null;index" json:"business_unit"`
	Unit            string     `gorm:"size:20;default:'un'" json:"unit"`
	ItemsPerPackage int        `gorm:"default:1" json:"items_per_package"`
	Quantity        int        `gorm:"not null;default:0" json:"quantity"`
	CostPrice       int64      `gorm:"not null;default:0" json:"cost_price"`
	SalePrice       int64      `gorm:"not null;default:0" json:"sale_price"`
	Barcode         *string    `gorm:"size:64;uniqueIndex" json:"barcode,omitempty"`
	ExpiryDate      *time.Time `json:"expiry_date,omitempty"`
	MinStock        int        `gorm:"default:0" json:"min_stock"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type InventoryMovement struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	InventoryID uint      `gorm:"not null;index" json:"inventory_id"`
	Type        string    `gorm:"size:5;not null" json:"type"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	Reason      string    `gorm:"size:150" json:"reason"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// InventoryRestock rows are append-only history; they are never updated
// or deleted once written.
type InventoryRestock struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	InventoryID   uint      `gorm:"not null;index" json:"inventory_id"`
	QuantityAdded int       `gorm:"not null" json:"quantity_added"`
	CostPrice     *int64    `json:"cost_price,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}
