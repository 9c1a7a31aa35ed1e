//go:build unit

package mail

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"event-coupon-admin/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResendClient(t *testing.T, handler http.HandlerFunc) *ResendClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewResendClient(config.MailConfig{BaseURL: server.URL, Timeout: 5 * time.Second})
}

func TestResendSend(t *testing.T) {
	msg := Message{
		From:    "Cafe Cursor Toronto <onboarding@resend.dev>",
		To:      []string{"ada@example.com"},
		Subject: "Your coupon code",
		HTML:    "<p>CURSOR-TORONTO-001</p>",
	}

	t.Run("posts the message with bearer auth", func(t *testing.T) {
		var gotAuth string
		var gotMsg Message
		client := newTestResendClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/emails", r.URL.Path)
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotMsg))
			w.Write([]byte(`{"id": "email-123"}`))
		})

		id, err := client.Send(context.Background(), "re_test_key", msg)

		require.NoError(t, err)
		assert.Equal(t, "email-123", id)
		assert.Equal(t, "Bearer re_test_key", gotAuth)
		assert.Equal(t, msg, gotMsg)
	})

	t.Run("non-2xx becomes an APIError", func(t *testing.T) {
		client := newTestResendClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"message":"invalid from address"}`))
		})

		_, err := client.Send(context.Background(), "re_test_key", msg)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
		assert.Contains(t, apiErr.Message, "invalid from address")
	})
}
