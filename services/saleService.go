package services

import (
	"errors"
	"fmt"
	"time"

	"aura-api/config"
	"aura-api/dtos"
	"aura-api/models"
	"aura-api/utils"
	"aura-api/utils/common"

	"gorm.io/gorm"
)

type SaleService struct {
	db *gorm.DB
}

func NewSaleService(db *gorm.DB) *SaleService {
	return &SaleService{db: db}
}

// Create records a sale with its items and payments as one transaction.
// Product stock is decremented inside the same transaction; going
// negative is allowed and reported back as a warning instead of failing
// the sale. The webhook notification fires after commit and never rolls
// anything back.
func (s *SaleService) Create(operatorID uint, input dtos.CreateSaleInput) (*models.Sale, []string, error) {
	var register models.CashRegister
	if err := s.db.Where("operator_id = ? AND status = ?", operatorID, models.RegisterOpen).
		First(&register).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNoOpenRegister
		}
		return nil, nil, err
	}

	var total int64
	saleItems := make([]models.SaleItem, 0, len(input.Items))
	for _, it := range input.Items {
		lineTotal := int64(it.Quantity) * it.UnitPrice
		total += lineTotal
		saleItems = append(saleItems, models.SaleItem{
			ItemType:    it.ItemType,
			ItemID:      it.ItemID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  lineTotal,
		})
	}

	var paid, cashPaid int64
	payments := make([]models.Payment, 0, len(input.Payments))
	for _, p := range input.Payments {
		paid += p.Amount
		if p.Method == models.PaymentCash {
			cashPaid += p.Amount
		}
		payments = append(payments, models.Payment{
			Method: p.Method,
			Amount: p.Amount,
		})
	}
	if paid < total {
		return nil, nil, ErrPaymentShort
	}

	// Change is handed back from the drawer, so only cash can be
	// tendered above the total. Card and pix charge exact amounts.
	change := paid - total
	if change > cashPaid {
		return nil, nil, ErrChangeExceedsCash
	}

	fiscalStatus := models.FiscalNone
	if input.Sale.CustomerTaxID != nil && *input.Sale.CustomerTaxID != "" {
		fiscalStatus = models.FiscalPending
	}

	sale := models.Sale{
		RegisterID:    register.ID,
		OperatorID:    operatorID,
		BusinessUnit:  input.Sale.BusinessUnit,
		TotalAmount:   total,
		ChangeAmount:  change,
		CustomerName:  input.Sale.CustomerName,
		CustomerTaxID: input.Sale.CustomerTaxID,
		FiscalStatus:  fiscalStatus,
		Status:        models.SaleCompleted,
		TicketID:      input.TicketID,
		Items:         saleItems,
		Payments:      payments,
	}

	var warnings []string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sale).Error; err != nil {
			return err
		}

		for _, it := range sale.Items {
			if it.ItemType != models.ItemTypeProduct || it.ItemID == nil {
				continue
			}

			var record models.InventoryRecord
			err := tx.First(&record, *it.ItemID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			if err != nil {
				return err
			}

			record.Quantity -= it.Quantity
			if record.Quantity < 0 {
				warnings = append(warnings,
					fmt.Sprintf("stock of '%s' went negative (now %d)", record.Name, record.Quantity))
			}
			if err := tx.Save(&record).Error; err != nil {
				return err
			}

			movement := models.InventoryMovement{
				InventoryID: record.ID,
				Type:        models.MovementOut,
				Quantity:    it.Quantity,
				Reason:      fmt.Sprintf("Sale #%d", sale.ID),
			}
			if err := tx.Create(&movement).Error; err != nil {
				return err
			}
		}

		ledger := models.Transaction{
			BusinessUnit: sale.BusinessUnit,
			Type:         models.TransactionIncome,
			Category:     models.CategorySales,
			Description:  fmt.Sprintf("Sale #%d", sale.ID),
			Amount:       total,
			OccurredAt:   time.Now(),
		}
		if err := tx.Create(&ledger).Error; err != nil {
			return err
		}

		if sale.TicketID != nil {
			result := tx.Model(&models.Ticket{}).
				Where("id = ?", *sale.TicketID).
				Update("status", models.TicketDone)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrTicketNotFound
			}
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.notify(&sale)

	return &sale, warnings, nil
}

func (s *SaleService) notify(sale *models.Sale) {
	lines := make([]string, 0, len(sale.Items))
	for _, it := range sale.Items {
		name := common.GetStringValue(it.Description)
		if name == "" && it.ItemID != nil {
			name = fmt.Sprintf("%s #%d", it.ItemType, *it.ItemID)
		} else if name == "" {
			name = it.ItemType
		}
		lines = append(lines, fmt.Sprintf("%dx %s", it.Quantity, name))
	}

	go func() {
		err := utils.SendSaleNotification(utils.SaleNotification{
			SaleID:       sale.ID,
			BusinessUnit: sale.BusinessUnit,
			TotalAmount:  sale.TotalAmount,
			Items:        lines,
			CreatedAt:    sale.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			config.LogError(config.GetLogger(), "services", "notify", "sale webhook", sale.ID, err)
		}
	}()
}

// Cancel flips a completed sale to cancelled, restores product stock and
// posts a compensating expense entry. The original income row stays: the
// ledger is append-only.
func (s *SaleService) Cancel(saleID uint, userID *uint, ipAddress string) (*models.Sale, error) {
	var sale models.Sale
	if err := s.db.Preload("Items").First(&sale, saleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if sale.Status != models.SaleCompleted {
		return nil, ErrNotCancellable
	}

	oldCopy := sale

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, it := range sale.Items {
			if it.ItemType != models.ItemTypeProduct || it.ItemID == nil {
				continue
			}

			var record models.InventoryRecord
			err := tx.First(&record, *it.ItemID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			if err != nil {
				return err
			}

			record.Quantity += it.Quantity
			if err := tx.Save(&record).Error; err != nil {
				return err
			}

			movement := models.InventoryMovement{
				InventoryID: record.ID,
				Type:        models.MovementIn,
				Quantity:    it.Quantity,
				Reason:      fmt.Sprintf("Cancel #%d", sale.ID),
			}
			if err := tx.Create(&movement).Error; err != nil {
				return err
			}
		}

		sale.Status = models.SaleCancelled
		if err := tx.Model(&models.Sale{}).Where("id = ?", sale.ID).
			Update("status", models.SaleCancelled).Error; err != nil {
			return err
		}

		ledger := models.Transaction{
			BusinessUnit: sale.BusinessUnit,
			Type:         models.TransactionExpense,
			Category:     models.CategorySales,
			Description:  fmt.Sprintf("Cancel sale #%d", sale.ID),
			Amount:       sale.TotalAmount,
			OccurredAt:   time.Now(),
		}
		if err := tx.Create(&ledger).Error; err != nil {
			return err
		}

		description := fmt.Sprintf("Sale #%d cancelled", sale.ID)
		return utils.CreateSaleAuditLog(tx, "update", sale.ID, &oldCopy, &sale, userID, ipAddress, description)
	})
	if err != nil {
		return nil, err
	}

	return &sale, nil
}

// IssueFiscal moves the simulated fiscal document from pending to issued.
func (s *SaleService) IssueFiscal(saleID uint, userID *uint, ipAddress string) (*models.Sale, error) {
	var sale models.Sale
	if err := s.db.First(&sale, saleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if sale.FiscalStatus != models.FiscalPending {
		return nil, ErrFiscalNotPending
	}

	oldCopy := sale

	err := s.db.Transaction(func(tx *gorm.DB) error {
		sale.FiscalStatus = models.FiscalIssued
		if err := tx.Model(&models.Sale{}).Where("id = ?", sale.ID).
			Update("fiscal_status", models.FiscalIssued).Error; err != nil {
			return err
		}

		description := fmt.Sprintf("Fiscal document issued for sale #%d", sale.ID)
		return utils.CreateSaleAuditLog(tx, "update", sale.ID, &oldCopy, &sale, userID, ipAddress, description)
	})
	if err != nil {
		return nil, err
	}

	return &sale, nil
}

func (s *SaleService) List(start, end time.Time) ([]models.Sale, error) {
	var sales []models.Sale
	err := s.db.Preload("Items").Preload("Payments").
		Where("created_at BETWEEN ? AND ?", start, end).
		Order("created_at DESC").
		Find(&sales).Error
	return sales, err
}

func (s *SaleService) Get(saleID uint) (*models.Sale, error) {
	var sale models.Sale
	if err := s.db.Preload("Items").Preload("Payments").First(&sale, saleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sale, nil
}
