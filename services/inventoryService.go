package services

import (
	"errors"
	"fmt"
	"time"

	"aura-api/dtos"
	"aura-api/models"
	"aura-api/utils/pagination"

	"gorm.io/gorm"
)

type InventoryService struct {
	db *gorm.DB
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db}
}

// Upsert creates a record when no id is given and updates the existing
// row in place otherwise, so restock history and sale items keep
// pointing at the same id. Barcode uniqueness is checked against all
// other rows inside the same transaction.
func (s *InventoryService) Upsert(input dtos.UpsertInventoryInput) (*models.InventoryRecord, error) {
	expiry, err := parseOptionalDate(input.ExpiryDate)
	if err != nil {
		return nil, err
	}

	var record models.InventoryRecord

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if input.Barcode != nil && *input.Barcode != "" {
			query := tx.Model(&models.InventoryRecord{}).Where("barcode = ?", *input.Barcode)
			if input.ID != nil {
				query = query.Where("id != ?", *input.ID)
			}
			var count int64
			if err := query.Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return ErrDuplicateBarcode
			}
		}

		if input.ID == nil {
			record = models.InventoryRecord{
				Name:         input.Name,
				BusinessUnit: input.BusinessUnit,
				Quantity:     input.Quantity,
				CostPrice:    input.CostPrice,
				SalePrice:    input.SalePrice,
				Barcode:      input.Barcode,
				ExpiryDate:   expiry,
				MinStock:     input.MinStock,
			}
			if input.Unit != nil {
				record.Unit = *input.Unit
			}
			if input.ItemsPerPackage != nil {
				record.ItemsPerPackage = *input.ItemsPerPackage
			}
			return tx.Create(&record).Error
		}

		if err := tx.First(&record, *input.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		record.Name = input.Name
		record.BusinessUnit = input.BusinessUnit
		record.Quantity = input.Quantity
		record.CostPrice = input.CostPrice
		record.SalePrice = input.SalePrice
		record.Barcode = input.Barcode
		record.ExpiryDate = expiry
		record.MinStock = input.MinStock
		if input.Unit != nil {
			record.Unit = *input.Unit
		}
		if input.ItemsPerPackage != nil {
			record.ItemsPerPackage = *input.ItemsPerPackage
		}

		return tx.Save(&record).Error
	})
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// Restock adds quantity to an existing record, appends an immutable
// history row and, when a positive cost was supplied, posts the expense
// to the ledger. All of it in one transaction.
func (s *InventoryService) Restock(inventoryID uint, input dtos.RestockInput) (*models.InventoryRecord, error) {
	expiry, err := parseOptionalDate(input.ExpiryDate)
	if err != nil {
		return nil, err
	}

	var record models.InventoryRecord

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&record, inventoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		record.Quantity += input.Quantity
		if input.Unit != nil {
			record.Unit = *input.Unit
		}
		if input.ItemsPerPackage != nil {
			record.ItemsPerPackage = *input.ItemsPerPackage
		}
		if input.CostPrice != nil {
			record.CostPrice = *input.CostPrice
		}
		if expiry != nil {
			record.ExpiryDate = expiry
		}

		if err := tx.Save(&record).Error; err != nil {
			return err
		}

		restock := models.InventoryRestock{
			InventoryID:   record.ID,
			QuantityAdded: input.Quantity,
			CostPrice:     input.CostPrice,
		}
		if err := tx.Create(&restock).Error; err != nil {
			return err
		}

		movement := models.InventoryMovement{
			InventoryID: record.ID,
			Type:        models.MovementIn,
			Quantity:    input.Quantity,
			Reason:      fmt.Sprintf("Restock #%d", restock.ID),
		}
		if err := tx.Create(&movement).Error; err != nil {
			return err
		}

		if input.CostPrice != nil && *input.CostPrice > 0 {
			ledger := models.Transaction{
				BusinessUnit: record.BusinessUnit,
				Type:         models.TransactionExpense,
				Category:     models.CategoryInventory,
				Description:  fmt.Sprintf("Restock '%s' x%d", record.Name, input.Quantity),
				Amount:       *input.CostPrice * int64(input.Quantity),
				OccurredAt:   time.Now(),
			}
			if err := tx.Create(&ledger).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (s *InventoryService) List(p pagination.Pagination) ([]models.InventoryRecord, int64, error) {
	var records []models.InventoryRecord
	var total int64

	if err := s.db.Model(&models.InventoryRecord{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := s.db.Offset(p.Offset).Limit(p.PageSize).Order("name").Find(&records).Error
	return records, total, err
}

func (s *InventoryService) Get(inventoryID uint) (*models.InventoryRecord, error) {
	var record models.InventoryRecord
	if err := s.db.First(&record, inventoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (s *InventoryService) Movements(inventoryID uint) ([]models.InventoryMovement, error) {
	if _, err := s.Get(inventoryID); err != nil {
		return nil, err
	}

	var movements []models.InventoryMovement
	err := s.db.Where("inventory_id = ?", inventoryID).
		Order("created_at DESC").
		Find(&movements).Error
	return movements, err
}

func (s *InventoryService) Restocks(inventoryID uint) ([]models.InventoryRestock, error) {
	if _, err := s.Get(inventoryID); err != nil {
		return nil, err
	}

	var restocks []models.InventoryRestock
	err := s.db.Where("inventory_id = ?", inventoryID).
		Order("created_at DESC").
		Find(&restocks).Error
	return restocks, err
}

func (s *InventoryService) LowStock() ([]models.InventoryRecord, error) {
	var records []models.InventoryRecord
	err := s.db.Where("min_stock > 0 AND quantity <= min_stock").
		Order("quantity").
		Find(&records).Error
	return records, err
}

func (s *InventoryService) BulkCreate(inputs []dtos.UpsertInventoryInput) ([]models.InventoryRecord, error) {
	records := make([]models.InventoryRecord, 0, len(inputs))

	err := s.db.Transaction(func(tx *gorm.DB) error {
		svc := NewInventoryService(tx)
		for i := range inputs {
			inputs[i].ID = nil
			record, err := svc.Upsert(inputs[i])
			if err != nil {
				return err
			}
			records = append(records, *record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// Delete soft-deletes the record. The barcode is released first: the
// unique index spans soft-deleted rows, and a retired barcode must stay
// reusable for new stock.
func (s *InventoryService) Delete(inventoryID uint) error {
	record, err := s.Get(inventoryID)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if record.Barcode != nil {
			if err := tx.Model(record).Update("barcode", nil).Error; err != nil {
				return err
			}
		}
		return tx.Delete(record).Error
	})
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, *s)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q", *s)
		}
	}
	return &t, nil
}
