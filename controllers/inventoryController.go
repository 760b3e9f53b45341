package controllers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"aura-api/config"
	"aura-api/dtos"
	"aura-api/models"
	"aura-api/services"
	"aura-api/utils/common"
	"aura-api/utils/pagination"

	"github.com/gin-gonic/gin"
)

func UpsertInventory(c *gin.Context) {
	var input dtos.UpsertInventoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	service := services.NewInventoryService(config.DB)
	record, err := service.Upsert(input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateBarcode):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "inventory record not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	status := http.StatusOK
	if input.ID == nil {
		status = http.StatusCreated
	}
	c.JSON(status, record)
}

func RestockInventory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid inventory id"})
		return
	}

	var input dtos.RestockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	service := services.NewInventoryService(config.DB)
	record, err := service.Restock(uint(id), input)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "inventory record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, record)
}

func GetInventory(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	p := pagination.New(page, pageSize)

	service := services.NewInventoryService(config.DB)
	records, total, err := service.List(p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": records,
		"meta": pagination.BuildMeta(p.Page, p.PageSize, total),
	})
}

func GetInventoryByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid inventory id"})
		return
	}

	service := services.NewInventoryService(config.DB)
	record, err := service.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "inventory record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, record)
}

func GetInventoryMovements(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid inventory id"})
		return
	}

	service := services.NewInventoryService(config.DB)
	movements, err := service.Movements(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "inventory record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, movements)
}

func GetInventoryRestocks(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid inventory id"})
		return
	}

	service := services.NewInventoryService(config.DB)
	restocks, err := service.Restocks(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "inventory record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, restocks)
}

func GetLowStock(c *gin.Context) {
	service := services.NewInventoryService(config.DB)
	records, err := service.LowStock()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

func BulkCreateInventory(c *gin.Context) {
	var inputs []dtos.UpsertInventoryInput
	if err := c.ShouldBindJSON(&inputs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	service := services.NewInventoryService(config.DB)
	records, err := service.BulkCreate(inputs)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateBarcode) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, records)
}

func DeleteInventory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid inventory id"})
		return
	}

	service := services.NewInventoryService(config.DB)
	if err := service.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "inventory record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Inventory record deleted"})
}

func ExportInventory(c *gin.Context) {
	var records []models.InventoryRecord
	if err := config.DB.Order("name").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)

	writer.Write([]string{"id", "name", "business_unit", "unit", "items_per_package", "quantity", "cost_price", "sale_price", "barcode", "min_stock"})
	for _, r := range records {
		writer.Write([]string{
			fmt.Sprintf("%d", r.ID),
			r.Name,
			r.BusinessUnit,
			r.Unit,
			fmt.Sprintf("%d", r.ItemsPerPackage),
			fmt.Sprintf("%d", r.Quantity),
			fmt.Sprintf("%d", r.CostPrice),
			fmt.Sprintf("%d", r.SalePrice),
			common.GetStringValue(r.Barcode),
			fmt.Sprintf("%d", r.MinStock),
		})
	}
	writer.Flush()

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", `attachment; filename="inventory.csv"`)
	c.Data(http.StatusOK, "text/csv", buffer.Bytes())
}
