package services

import (
	"testing"

	"aura-api/models"
)

func TestIssueTicketSequence(t *testing.T) {
	db := openTestDB(t)
	svc := NewQueueService(db)

	for want := 1; want <= 3; want++ {
		ticket, err := svc.IssueTicket("barbershop", nil)
		if err != nil {
			t.Fatalf("issue ticket %d: %v", want, err)
		}
		if ticket.Number != want {
			t.Fatalf("ticket number = %d, want %d", ticket.Number, want)
		}
		if ticket.Status != models.TicketWaiting {
			t.Fatalf("ticket status = %q, want waiting", ticket.Status)
		}
	}

	state, waiting, err := svc.State("barbershop")
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if state.NextTicketNumber != 4 {
		t.Fatalf("next ticket number = %d, want 4", state.NextTicketNumber)
	}
	if len(waiting) != 3 {
		t.Fatalf("waiting tickets = %d, want 3", len(waiting))
	}
}

func TestQueueUnitsAreIndependent(t *testing.T) {
	db := openTestDB(t)
	svc := NewQueueService(db)

	if _, err := svc.IssueTicket("barbershop", nil); err != nil {
		t.Fatalf("issue barbershop: %v", err)
	}
	ticket, err := svc.IssueTicket("bakery", nil)
	if err != nil {
		t.Fatalf("issue bakery: %v", err)
	}
	if ticket.Number != 1 {
		t.Fatalf("bakery ticket number = %d, want 1", ticket.Number)
	}
}

func TestNextMarksTicketServed(t *testing.T) {
	db := openTestDB(t)
	svc := NewQueueService(db)

	ticket, err := svc.IssueTicket("bakery", nil)
	if err != nil {
		t.Fatalf("issue ticket: %v", err)
	}

	state, err := svc.Next("bakery")
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if state.ServingNumber != 1 {
		t.Fatalf("serving number = %d, want 1", state.ServingNumber)
	}

	var reloaded models.Ticket
	if err := db.First(&reloaded, ticket.ID).Error; err != nil {
		t.Fatalf("reload ticket: %v", err)
	}
	if reloaded.Status != models.TicketServed {
		t.Fatalf("ticket status = %q, want served", reloaded.Status)
	}
}

func TestPrevFloorsAtZero(t *testing.T) {
	db := openTestDB(t)
	svc := NewQueueService(db)

	if _, err := svc.Next("bakery"); err != nil {
		t.Fatalf("next: %v", err)
	}

	state, err := svc.Prev("bakery")
	if err != nil {
		t.Fatalf("prev: %v", err)
	}
	if state.ServingNumber != 0 {
		t.Fatalf("serving number = %d, want 0", state.ServingNumber)
	}

	// Another prev stays at the floor.
	state, err = svc.Prev("bakery")
	if err != nil {
		t.Fatalf("prev at floor: %v", err)
	}
	if state.ServingNumber != 0 {
		t.Fatalf("serving number = %d, want 0 (floor)", state.ServingNumber)
	}
}

func TestSetServingNumber(t *testing.T) {
	db := openTestDB(t)
	svc := NewQueueService(db)

	state, err := svc.Set("barbershop", 17)
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if state.ServingNumber != 17 {
		t.Fatalf("serving number = %d, want 17", state.ServingNumber)
	}
}
