package utils

import (
	"log"

	"github.com/go-resty/resty/v2"

	"praxis/config"
)

// PushMessage is the payload posted to the push-notification gateway.
type PushMessage struct {
	UserID uint   `json:"user_id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// SendPush delivers one push notification through the configured gateway.
// Delivery is best-effort: failures are logged and never surfaced to the
// request that triggered them.
func SendPush(userID uint, title, body string) {
	if config.AppConfig.PushGatewayURL == "" {
		return
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.PushGatewayKey).
		SetBody(PushMessage{UserID: userID, Title: title, Body: body}).
		Post(config.AppConfig.PushGatewayURL)
	if err != nil {
		log.Printf("[PUSH] Failed to send push to user %d: %v", userID, err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Printf("[PUSH] Gateway rejected push for user %d: %s", userID, resp.Status())
	}
}
