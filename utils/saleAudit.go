package utils

import (
	"encoding/json"

	"aura-api/models"

	"gorm.io/gorm"
)

func CreateSaleAuditLog(
	db *gorm.DB,
	action string,
	entityID uint,
	oldSale, newSale *models.Sale,
	userID *uint,
	ipAddress string,
	description string,
) error {
	auditLog := models.AuditLog{
		EntityType:  "sale",
		EntityID:    entityID,
		Action:      action,
		UserID:      userID,
		OldValue:    toJSONString(oldSale),
		NewValue:    toJSONString(newSale),
		Changes:     calculateSaleChanges(action, oldSale, newSale),
		IPAddress:   &ipAddress,
		Description: description,
	}

	return db.Create(&auditLog).Error
}

func calculateSaleChanges(action string, oldSale, newSale *models.Sale) *string {
	if action != "update" || oldSale == nil || newSale == nil {
		return nil
	}

	changes := make(map[string]interface{})

	if oldSale.Status != newSale.Status {
		changes["status"] = map[string]string{
			"old": oldSale.Status,
			"new": newSale.Status,
		}
	}

	if oldSale.FiscalStatus != newSale.FiscalStatus {
		changes["fiscal_status"] = map[string]string{
			"old": oldSale.FiscalStatus,
			"new": newSale.FiscalStatus,
		}
	}

	if oldSale.TotalAmount != newSale.TotalAmount {
		changes["total_amount"] = map[string]int64{
			"old": oldSale.TotalAmount,
			"new": newSale.TotalAmount,
		}
	}

	if len(changes) == 0 {
		return nil
	}

	return toJSONString(changes)
}

func toJSONString(v interface{}) *string {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	s := string(b)
	return &s
}
