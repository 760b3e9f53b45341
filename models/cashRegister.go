package models

import "time"

// CashRegister is one drawer session for one operator. Amounts are cents.
type CashRegister struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	OperatorID     uint       `gorm:"not null;index" json:"operator_id"`
	OpeningAmount  int64      `gorm:"not null" json:"opening_amount"`
	ClosingAmount  *int64     `json:"closing_amount,omitempty"`
	ExpectedAmount *int64     `json:"expected_amount,omitempty"`
	Difference     *int64     `json:"difference,omitempty"`
	Status         string     `gorm:"size:10;default:'open';index" json:"status"`
	OpenedAt       time.Time  `gorm:"not null" json:"opened_at"`
	ClosedAt       *time.Time `json:"closed_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

const (
	RegisterOpen   = "open"
	RegisterClosed = "closed"
)
