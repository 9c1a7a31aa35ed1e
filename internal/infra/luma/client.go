package luma

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"event-coupon-admin/internal/pkg/config"
	"event-coupon-admin/internal/pkg/errs"
	"event-coupon-admin/internal/usecase/commands"
)

const (
	apiKeyHeader = "x-luma-api-key"

	maxRateLimitRetries = 3
	maxRetryAfter       = 10 * time.Second
)

// APIError is a non-2xx response from the Luma API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("luma api error: status %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewFactory builds clients bound to the API key stored in settings.
func NewFactory(cfg config.LumaConfig) commands.LumaClientFactory {
	return func(apiKey string) commands.LumaClient {
		return &Client{
			baseURL: cfg.BaseURL,
			apiKey:  apiKey,
			httpClient: &http.Client{
				Timeout: cfg.Timeout,
			},
		}
	}
}

type eventResponse struct {
	Event struct {
		APIID       string  `json:"api_id"`
		Name        string  `json:"name"`
		Description *string `json:"description"`
		StartAt     *string `json:"start_at"`
		EndAt       *string `json:"end_at"`
		Timezone    *string `json:"timezone"`
		URL         *string `json:"url"`
		CoverURL    *string `json:"cover_url"`
		Visibility  *string `json:"visibility"`
		GuestCount  *int32  `json:"guest_count"`
	} `json:"event"`
}

type guestEntry struct {
	Guest struct {
		APIID              string  `json:"api_id"`
		GuestKey           string  `json:"guest_key"`
		Name               string  `json:"name"`
		Email              string  `json:"email"`
		RegistrationStatus string  `json:"registration_status"`
		ApprovalStatus     *string `json:"approval_status"`
		CheckedInAt        *string `json:"checked_in_at"`
		RegisteredAt       *string `json:"registered_at"`
	} `json:"guest"`
}

type guestsResponse struct {
	Entries    []guestEntry `json:"entries"`
	HasMore    bool         `json:"has_more"`
	NextCursor string       `json:"next_cursor"`
}

func (c *Client) GetSelf(ctx context.Context) error {
	return c.getJSON(ctx, "/v1/user/get-self", nil, &struct{}{})
}

func (c *Client) GetEvent(ctx context.Context, lumaEventID string) (*commands.RemoteEvent, error) {
	params := url.Values{"api_id": {lumaEventID}}

	var resp eventResponse
	if err := c.getJSON(ctx, "/v1/event/get", params, &resp); err != nil {
		return nil, err
	}

	return &commands.RemoteEvent{
		LumaEventID: resp.Event.APIID,
		Name:        resp.Event.Name,
		Description: resp.Event.Description,
		StartAt:     parseTimePtr(resp.Event.StartAt),
		EndAt:       parseTimePtr(resp.Event.EndAt),
		Timezone:    resp.Event.Timezone,
		URL:         resp.Event.URL,
		CoverURL:    resp.Event.CoverURL,
		GuestCount:  resp.Event.GuestCount,
		Visibility:  resp.Event.Visibility,
	}, nil
}

func (c *Client) ListGuests(ctx context.Context, lumaEventID, status, cursor string) (*commands.GuestPage, error) {
	params := url.Values{"event_api_id": {lumaEventID}}
	if status != "" {
		params.Set("status", status)
	}
	if cursor != "" {
		params.Set("pagination_cursor", cursor)
	}

	var resp guestsResponse
	if err := c.getJSON(ctx, "/v1/event/get-guests", params, &resp); err != nil {
		return nil, err
	}

	page := &commands.GuestPage{
		HasMore:    resp.HasMore,
		NextCursor: resp.NextCursor,
	}
	for _, entry := range resp.Entries {
		g := entry.Guest
		page.Guests = append(page.Guests, commands.RemoteGuest{
			LumaGuestID:        g.APIID,
			GuestKey:           g.GuestKey,
			Name:               g.Name,
			Email:              g.Email,
			RegistrationStatus: g.RegistrationStatus,
			ApprovalStatus:     g.ApprovalStatus,
			AttendanceStatus:   attendanceFromCheckIn(g.CheckedInAt),
			RegisteredAt:       parseTimePtr(g.RegisteredAt),
		})
	}
	return page, nil
}

// getJSON retries 429 responses honoring Retry-After, with a cap so a
// hostile header cannot stall the sync.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	for attempt := 0; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return errs.Wrap(err, "failed to build luma request")
		}
		req.Header.Set(apiKeyHeader, c.apiKey)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return errs.Wrap(err, "luma request failed")
		}

		if resp.StatusCode == http.StatusTooManyRequests && attempt < maxRateLimitRetries {
			wait := retryAfter(resp)
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
			continue
		}

		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			return &APIError{StatusCode: resp.StatusCode, Message: string(body)}
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errs.Wrap(err, "failed to decode luma response")
		}
		return nil
	}
}

func retryAfter(resp *http.Response) time.Duration {
	wait := time.Second
	if v := resp.Header.Get("Retry-After"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			wait = time.Duration(seconds) * time.Second
		}
	}
	if wait > maxRetryAfter {
		wait = maxRetryAfter
	}
	return wait
}

func parseTimePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	return &t
}

func attendanceFromCheckIn(checkedInAt *string) *string {
	if checkedInAt == nil || *checkedInAt == "" {
		return nil
	}
	status := "checked_in"
	return &status
}
