package controllers

import (
	"errors"
	"net/http"

	"aura-api/config"
	"aura-api/dtos"
	"aura-api/services"
	"aura-api/utils"

	"github.com/gin-gonic/gin"
)

func OpenRegister(c *gin.Context) {
	operatorID := c.MustGet("user_id").(uint)

	var input dtos.OpenRegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	service := services.NewRegisterService(config.DB)
	register, err := service.Open(operatorID, utils.ToCents(input.OpeningAmount))
	if err != nil {
		if errors.Is(err, services.ErrRegisterAlreadyOpen) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, register)
}

func CloseRegister(c *gin.Context) {
	operatorID := c.MustGet("user_id").(uint)

	var input dtos.CloseRegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	service := services.NewRegisterService(config.DB)
	register, err := service.Close(operatorID, utils.ToCents(input.ClosingAmount))
	if err != nil {
		if errors.Is(err, services.ErrNoOpenRegister) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, register)
}

func GetCurrentRegister(c *gin.Context) {
	operatorID := c.MustGet("user_id").(uint)

	service := services.NewRegisterService(config.DB)
	register, err := service.Current(operatorID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no open cash register"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, register)
}
