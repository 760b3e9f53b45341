package controllers

import (
	"net/http"

	"aura-api/config"
	"aura-api/dtos"
	"aura-api/services"

	"github.com/gin-gonic/gin"
)

func queueUnit(c *gin.Context) (string, bool) {
	unit := c.Param("unit")
	if unit != dtos.UnitBarbershop && unit != dtos.UnitBakery {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown business unit"})
		return "", false
	}
	return unit, true
}

func GetQueueState(c *gin.Context) {
	unit, ok := queueUnit(c)
	if !ok {
		return
	}

	service := services.NewQueueService(config.DB)
	state, waiting, err := service.State(unit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":   state,
		"waiting": waiting,
	})
}

func IssueTicket(c *gin.Context) {
	unit, ok := queueUnit(c)
	if !ok {
		return
	}

	var input dtos.IssueTicketInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	service := services.NewQueueService(config.DB)
	ticket, err := service.IssueTicket(unit, input.CustomerName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, ticket)
}

func NextInQueue(c *gin.Context) {
	unit, ok := queueUnit(c)
	if !ok {
		return
	}

	service := services.NewQueueService(config.DB)
	state, err := service.Next(unit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, state)
}

func PrevInQueue(c *gin.Context) {
	unit, ok := queueUnit(c)
	if !ok {
		return
	}

	service := services.NewQueueService(config.DB)
	state, err := service.Prev(unit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, state)
}

func SetQueue(c *gin.Context) {
	unit, ok := queueUnit(c)
	if !ok {
		return
	}

	var input dtos.SetQueueInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	service := services.NewQueueService(config.DB)
	state, err := service.Set(unit, input.ServingNumber)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, state)
}
