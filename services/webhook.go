package services

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
)

// PostWebhook POSTs the payload as JSON to the automation endpoint. Success
// is a 2xx response; every failure mode (no URL configured, marshal error,
// transport error, non-2xx) is logged and reported as false, never raised.
func PostWebhook(url string, payload interface{}) bool {
	if url == "" {
		log.Println("⚠️  Webhook URL not configured, skipping")
		return false
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		log.Printf("❌ Webhook marshal error: %v", err)
		return false
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		log.Printf("❌ Webhook request error: %v", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		log.Printf("❌ Webhook send error: %v", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		log.Printf("✅ Webhook delivered to %s", url)
		return true
	}
	log.Printf("⚠️  Webhook returned status %d from %s", resp.StatusCode, url)
	return false
}
