package controllers

import (
	"net/http"
	"time"

	"aura-api/config"
	"aura-api/dtos"
	"aura-api/models"
	"aura-api/utils"

	"github.com/gin-gonic/gin"
)

func GetTransactions(c *gin.Context) {
	var filter dtos.TransactionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, end, err := utils.ParseRange(filter.Start, filter.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query := config.DB.Where("occurred_at BETWEEN ? AND ?", start, end)
	if filter.BusinessType != "" {
		query = query.Where("business_unit = ?", filter.BusinessType)
	}

	var transactions []models.Transaction
	if err := query.Order("occurred_at DESC").Find(&transactions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// CreateTransaction records a manual ledger entry (e.g. a supplier
// payment or an off-register income). Sales post their own entries.
func CreateTransaction(c *gin.Context) {
	var input dtos.CreateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	occurredAt := time.Now()
	if input.OccurredAt != "" {
		t, err := time.Parse(time.RFC3339, input.OccurredAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid occurredAt"})
			return
		}
		occurredAt = t
	}

	transaction := models.Transaction{
		BusinessUnit: input.BusinessUnit,
		Type:         input.Type,
		Category:     input.Category,
		Description:  input.Description,
		Amount:       input.Amount,
		OccurredAt:   occurredAt,
	}

	if err := config.DB.Create(&transaction).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, transaction)
}
