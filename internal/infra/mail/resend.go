package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"event-coupon-admin/internal/pkg/config"
	"event-coupon-admin/internal/pkg/errs"
)

// APIError is a non-2xx response from the Resend API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("resend api error: status %d: %s", e.StatusCode, e.Message)
}

type Message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// ResendClient talks to the Resend HTTP API directly.
type ResendClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewResendClient(cfg config.MailConfig) *ResendClient {
	return &ResendClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Send delivers one email and returns the provider's message ID.
func (c *ResendClient) Send(ctx context.Context, apiKey string, msg Message) (string, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return "", errs.Wrap(err, "failed to encode email payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return "", errs.Wrap(err, "failed to build resend request")
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "resend request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &APIError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", errs.Wrap(err, "failed to decode resend response")
	}
	return result.ID, nil
}
