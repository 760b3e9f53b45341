package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	SaleCompleted = "completed"
	SaleCancelled = "cancelled"

	FiscalNone    = "none"
	FiscalPending = "pending"
	FiscalIssued  = "issued"

	PaymentCash = "cash"
	PaymentCard = "card"
	PaymentPix  = "pix"

	ItemTypeProduct = "product"
	ItemTypeService = "service"
	ItemTypeCustom  = "custom"
)

type Sale struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	RegisterID    uint    `gorm:"not null;index" json:"register_id"`
	OperatorID    uint    `gorm:"not null;index" json:"operator_id"`
	BusinessUnit  string  `gorm:"size:20;not null;index" json:"business_unit"`
	TotalAmount   int64   `gorm:"not null;default:0" json:"total_amount"`
	ChangeAmount  int64   `gorm:"not null;default:0" json:"change_amount"`
	CustomerName  *string `gorm:"size:150" json:"customer_name,omitempty"`
	CustomerTaxID *string `gorm:"size:20" json:"customer_tax_id,omitempty"`
	FiscalStatus  string  `gorm:"size:10;default:'none'" json:"fiscal_status"`
	Status        string  `gorm:"size:10;default:'completed';index" json:"status"`
	TicketID      *uint   `json:"ticket_id,omitempty"`

	Items    []SaleItem `json:"items"`
	Payments []Payment  `json:"payments"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type SaleItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	SaleID      uint    `gorm:"not null;index" json:"sale_id"`
	ItemType    string  `gorm:"size:10;not null" json:"item_type"`
	ItemID      *uint   `json:"item_id,omitempty"`
	Description *string `gorm:"size:150" json:"description,omitempty"`
	Quantity    int     `gorm:"not null" json:"quantity"`
	UnitPrice   int64   `gorm:"not null" json:"unit_price"`
	TotalPrice  int64   `gorm:"not null" json:"total_price"`
}

type Payment struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	SaleID uint   `gorm:"not null;index" json:"sale_id"`
	Method string `gorm:"size:10;not null" json:"method"`
	Amount int64  `gorm:"not null" json:"amount"`
}
