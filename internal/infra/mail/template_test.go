//go:build unit

package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCouponEmail(t *testing.T) {
	t.Run("renders greeting, code, and redeem link", func(t *testing.T) {
		subject, html, err := RenderCouponEmail(
			"Cafe Cursor Toronto", "Ada Lovelace", "CURSOR-TORONTO-001", "https://cursor.com/referral")

		require.NoError(t, err)
		assert.Equal(t, "Your Cafe Cursor Toronto coupon code", subject)
		assert.Contains(t, html, "Hi Ada,")
		assert.Contains(t, html, "CURSOR-TORONTO-001")
		assert.Contains(t, html, "https://cursor.com/referral?code=CURSOR-TORONTO-001")
	})

	t.Run("single-word names are used as-is", func(t *testing.T) {
		_, html, err := RenderCouponEmail("Toronto", "Madonna", "CODE-1", "https://example.com/redeem")

		require.NoError(t, err)
		assert.Contains(t, html, "Hi Madonna,")
	})

	t.Run("codes are URL-escaped in the redeem link", func(t *testing.T) {
		_, html, err := RenderCouponEmail("Toronto", "Ada", "CODE_WITH-CHARS", "https://example.com/redeem")

		require.NoError(t, err)
		assert.Contains(t, html, "?code=CODE_WITH-CHARS")
	})

	t.Run("html in the recipient name is escaped", func(t *testing.T) {
		_, html, err := RenderCouponEmail("Toronto", "<script>alert(1)</script>", "CODE-1", "https://example.com/redeem")

		require.NoError(t, err)
		assert.NotContains(t, html, "<script>")
	})
}
