package zns

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultEndpoint is the provider's template-message endpoint.
const DefaultEndpoint = "https://business.openapi.zalo.me/message/template"

// Sender sends one templated message. The dispatcher depends on this
// interface so tests can swap in a fake provider.
type Sender interface {
	Send(ctx context.Context, token string, msg Message) error
}

type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

type response struct {
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// Send posts the message to the provider. A non-2xx status or a non-zero
// error code in the response body is a failure.
func (c *Client) Send(ctx context.Context, token string, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal zns message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build zns request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("access_token", token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send zns message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("zns endpoint returned status %d", resp.StatusCode)
	}

	var parsed response
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return fmt.Errorf("decode zns response: %w", err)
	}
	if parsed.Error != 0 {
		return fmt.Errorf("zns error %d: %s", parsed.Error, parsed.Message)
	}
	return nil
}
