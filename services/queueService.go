package services

import (
	"errors"

	"aura-api/models"

	"gorm.io/gorm"
)

type QueueService struct {
	db *gorm.DB
}

func NewQueueService(db *gorm.DB) *QueueService {
	return &QueueService{db: db}
}

// The serving counters are moved with SQL expression updates only, so
// two concurrent calls both land: the database serializes the increments
// and neither overwrites the other.

func (s *QueueService) IssueTicket(unit string, customerName *string) (*models.Ticket, error) {
	var ticket models.Ticket

	err := s.db.Transaction(func(tx *gorm.DB) error {
		state, err := ensureQueueState(tx, unit)
		if err != nil {
			return err
		}

		if err := tx.Model(&models.QueueState{}).
			Where("id = ?", state.ID).
			UpdateColumn("next_ticket_number", gorm.Expr("next_ticket_number + 1")).Error; err != nil {
			return err
		}
		if err := tx.First(state, state.ID).Error; err != nil {
			return err
		}

		ticket = models.Ticket{
			BusinessUnit: unit,
			Number:       state.NextTicketNumber - 1,
			CustomerName: customerName,
			Status:       models.TicketWaiting,
		}
		return tx.Create(&ticket).Error
	})
	if err != nil {
		return nil, err
	}

	return &ticket, nil
}

func (s *QueueService) Next(unit string) (*models.QueueState, error) {
	var state *models.QueueState

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		state, err = ensureQueueState(tx, unit)
		if err != nil {
			return err
		}

		if err := tx.Model(&models.QueueState{}).
			Where("id = ?", state.ID).
			UpdateColumn("serving_number", gorm.Expr("serving_number + 1")).Error; err != nil {
			return err
		}
		if err := tx.First(state, state.ID).Error; err != nil {
			return err
		}

		// The ticket with the now-serving number moves to served.
		return tx.Model(&models.Ticket{}).
			Where("business_unit = ? AND number = ? AND status = ?",
				unit, state.ServingNumber, models.TicketWaiting).
			Update("status", models.TicketServed).Error
	})
	if err != nil {
		return nil, err
	}

	return state, nil
}

func (s *QueueService) Prev(unit string) (*models.QueueState, error) {
	var state *models.QueueState

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		state, err = ensureQueueState(tx, unit)
		if err != nil {
			return err
		}

		if err := tx.Model(&models.QueueState{}).
			Where("id = ? AND serving_number > 0", state.ID).
			UpdateColumn("serving_number", gorm.Expr("serving_number - 1")).Error; err != nil {
			return err
		}
		return tx.First(state, state.ID).Error
	})
	if err != nil {
		return nil, err
	}

	return state, nil
}

func (s *QueueService) Set(unit string, servingNumber int) (*models.QueueState, error) {
	var state *models.QueueState

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		state, err = ensureQueueState(tx, unit)
		if err != nil {
			return err
		}

		if err := tx.Model(&models.QueueState{}).
			Where("id = ?", state.ID).
			UpdateColumn("serving_number", servingNumber).Error; err != nil {
			return err
		}
		return tx.First(state, state.ID).Error
	})
	if err != nil {
		return nil, err
	}

	return state, nil
}

func (s *QueueService) State(unit string) (*models.QueueState, []models.Ticket, error) {
	state, err := ensureQueueState(s.db, unit)
	if err != nil {
		return nil, nil, err
	}

	var waiting []models.Ticket
	err = s.db.Where("business_unit = ? AND status = ?", unit, models.TicketWaiting).
		Order("number").
		Find(&waiting).Error
	if err != nil {
		return nil, nil, err
	}

	return state, waiting, nil
}

func ensureQueueState(db *gorm.DB, unit string) (*models.QueueState, error) {
	var state models.QueueState
	err := db.Where("business_unit = ?", unit).First(&state).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		state = models.QueueState{
			BusinessUnit:     unit,
			ServingNumber:    0,
			NextTicketNumber: 1,
		}
		err = db.Create(&state).Error
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}
