package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

type SaleNotification struct {
	SaleID       uint     `json:"sale_id"`
	BusinessUnit string   `json:"business_unit"`
	TotalAmount  int64    `json:"total_amount"`
	Items        []string `json:"items"`
	CreatedAt    string   `json:"created_at"`
}

// SendSaleNotification posts a sale summary to SALE_WEBHOOK_URL. Callers
// run it in a goroutine and log the error; it must never block or fail
// the sale itself.
func SendSaleNotification(n SaleNotification) error {
	webhookURL := os.Getenv("SALE_WEBHOOK_URL")
	if webhookURL == "" {
		return nil
	}

	jsonData, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %v", err)
	}

	req, err := http.NewRequest("POST", webhookURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status: %d", resp.StatusCode)
	}

	return nil
}
