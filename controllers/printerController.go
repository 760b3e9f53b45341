package controllers

import (
	"errors"
	"net/http"

	"aura-api/config"
	"aura-api/dtos"
	"aura-api/printer"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var printerHub = printer.NewHub()

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// PrinterSocket upgrades the label-printer client connection and keeps
// it in the hub until it disconnects.
func PrinterSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		config.LogError(config.GetLogger(), "controllers", "PrinterSocket", "upgrade", nil, err)
		return
	}

	printerHub.Register(conn)
	config.GetLogger().WithField("clients", printerHub.Count()).Info("printer client connected")

	go func() {
		defer func() {
			printerHub.Unregister(conn)
			config.GetLogger().WithField("clients", printerHub.Count()).Info("printer client disconnected")
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func PrintLabel(c *gin.Context) {
	var input dtos.PrintLabelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Copies == 0 {
		input.Copies = 1
	}

	if err := printerHub.Broadcast(input); err != nil {
		if errors.Is(err, printer.ErrNoClients) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no printer client connected"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Label sent to printer"})
}
