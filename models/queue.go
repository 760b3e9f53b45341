package models

import "time"

const (
	TicketWaiting = "waiting"
	TicketServed  = "served"
	TicketDone    = "done"
)

// QueueState holds the serving counter for one business unit. The
// counters are only ever moved with SQL expression updates
// (serving_number = serving_number + 1) so concurrent calls cannot
// lose increments.
type QueueState struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	BusinessUnit     string    `gorm:"size:20;uniqueIndex;not null" json:"business_unit"`
	ServingNumber    int       `gorm:"not null;default:0" json:"serving_number"`
	NextTicketNumber int       `gorm:"not null;default:1" json:"next_ticket_number"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type Ticket struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	BusinessUnit string    `gorm:"size:20;not null;index" json:"business_unit"`
	Number       int       `gorm:"not null" json:"number"`
	CustomerName *string   `gorm:"size:150" json:"customer_name,omitempty"`
	Status       string    `gorm:"size:10;default:'waiting';index" json:"status"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
