package services

import (
	"errors"
	"time"

	"aura-api/models"

	"gorm.io/gorm"
)

type RegisterService struct {
	db *gorm.DB
}

func NewRegisterService(db *gorm.DB) *RegisterService {
	return &RegisterService{db: db}
}

// Open creates a new drawer session. At most one open register per
// operator: the existence check and the insert run in one transaction.
func (s *RegisterService) Open(operatorID uint, openingAmount int64) (*models.CashRegister, error) {
	var register models.CashRegister

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.CashRegister
		err := tx.Where("operator_id = ? AND status = ?", operatorID, models.RegisterOpen).
			First(&existing).Error
		if err == nil {
			return ErrRegisterAlreadyOpen
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		register = models.CashRegister{
			OperatorID:    operatorID,
			OpeningAmount: openingAmount,
			Status:        models.RegisterOpen,
			OpenedAt:      time.Now(),
		}
		return tx.Create(&register).Error
	})
	if err != nil {
		return nil, err
	}

	return &register, nil
}

// Close settles the operator's open register. The expected balance is
// the opening float plus cash tendered on completed sales, minus the
// change handed back; card and pix reconcile externally. A wrong count
// just records a signed difference for review.
func (s *RegisterService) Close(operatorID uint, countedAmount int64) (*models.CashRegister, error) {
	var register models.CashRegister
	if err := s.db.Where("operator_id = ? AND status = ?", operatorID, models.RegisterOpen).
		First(&register).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoOpenRegister
		}
		return nil, err
	}

	cashTotal, err := s.cashSalesTotal(register.ID)
	if err != nil {
		return nil, err
	}

	expected := register.OpeningAmount + cashTotal
	difference := countedAmount - expected
	now := time.Now()

	register.ClosingAmount = &countedAmount
	register.ExpectedAmount = &expected
	register.Difference = &difference
	register.Status = models.RegisterClosed
	register.ClosedAt = &now

	if err := s.db.Save(&register).Error; err != nil {
		return nil, err
	}

	return &register, nil
}

func (s *RegisterService) Current(operatorID uint) (*models.CashRegister, error) {
	var register models.CashRegister
	if err := s.db.Where("operator_id = ? AND status = ?", operatorID, models.RegisterOpen).
		First(&register).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &register, nil
}

// cashSalesTotal is the drawer movement from sales: cash tendered on
// the register's completed sales minus the change given back out of it.
func (s *RegisterService) cashSalesTotal(registerID uint) (int64, error) {
	var cashIn int64
	err := s.db.Model(&models.Payment{}).
		Select("COALESCE(SUM(payments.amount), 0)").
		Joins("JOIN sales ON sales.id = payments.sale_id").
		Where("sales.register_id = ? AND sales.status = ? AND payments.method = ?",
			registerID, models.SaleCompleted, models.PaymentCash).
		Scan(&cashIn).Error
	if err != nil {
		return 0, err
	}

	var changeOut int64
	err = s.db.Model(&models.Sale{}).
		Select("COALESCE(SUM(change_amount), 0)").
		Where("register_id = ? AND status = ?", registerID, models.SaleCompleted).
		Scan(&changeOut).Error
	return cashIn - changeOut, err
}
