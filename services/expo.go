// services/expo.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultExpoPushURL = "https://exp.host/--/api/v2/push/send"

	// The Expo push API caps a single request at 100 messages.
	expoChunkLimit = 100
)

// ExpoClient talks to the Expo push gateway. It implements PushGateway.
type ExpoClient struct {
	url         string
	accessToken string
	client      *http.Client
}

func NewExpoClient() *ExpoClient {
	url := os.Getenv("EXPO_PUSH_URL")
	if url == "" {
		url = defaultExpoPushURL
	}
	return &ExpoClient{
		url:         url,
		accessToken: os.Getenv("EXPO_ACCESS_TOKEN"),
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *ExpoClient) IsValidToken(token string) bool {
	return (strings.HasPrefix(token, "ExponentPushToken[") ||
		strings.HasPrefix(token, "ExpoPushToken[")) &&
		strings.HasSuffix(token, "]")
}

func (c *ExpoClient) ChunkLimit() int {
	return expoChunkLimit
}

type expoPushMessage struct {
	To    string                 `json:"to"`
	Title string                 `json:"title,omitempty"`
	Body  string                 `json:"body"`
	Data  map[string]interface{} `json:"data,omitempty"`
	Sound string                 `json:"sound,omitempty"`
}

type expoPushResponse struct {
	Data []struct {
		Status  string `json:"status"`
		ID      string `json:"id"`
		Message string `json:"message"`
	} `json:"data"`
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

// SendBatch posts one chunk of messages. Errors are per-chunk; individual
// per-receipt failures inside an accepted chunk surface in the ticket
// status and are the provider's concern.
func (c *ExpoClient) SendBatch(ctx context.Context, messages []PushMessage) ([]PushTicket, error) {
	payload := make([]expoPushMessage, 0, len(messages))
	for _, m := range messages {
		payload = append(payload, expoPushMessage{
			To:    m.To,
			Title: m.Title,
			Body:  m.Body,
			Data:  m.Data,
			Sound: "default",
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal push batch: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send push batch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("push gateway returned status %d", resp.StatusCode)
	}

	var parsed expoPushResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode push response: %w", err)
	}
	if len(parsed.Errors) > 0 {
		return nil, fmt.Errorf("push gateway error %s: %s", parsed.Errors[0].Code, parsed.Errors[0].Message)
	}

	tickets := make([]PushTicket, 0, len(parsed.Data))
	for _, t := range parsed.Data {
		if t.Status != "ok" {
			continue
		}
		tickets = append(tickets, PushTicket{ID: t.ID, Status: t.Status})
	}
	return tickets, nil
}
