package controllers

import (
	"net/http"

	"aura-api/config"
	"aura-api/dtos"
	"aura-api/services"
	"aura-api/utils"

	"github.com/gin-gonic/gin"
)

func GetReportSummary(c *gin.Context) {
	var filter dtos.RangeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, end, err := utils.ParseRange(filter.Start, filter.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	service := services.NewReportService(config.DB)
	summary, err := service.Summary(start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

func GetDashboard(c *gin.Context) {
	service := services.NewReportService(config.DB)
	dashboard, err := service.Dashboard()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
