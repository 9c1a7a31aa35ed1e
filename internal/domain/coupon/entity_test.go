//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"event-coupon-admin/internal/domain/coupon"
	"event-coupon-admin/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCouponCode(t *testing.T) {
	t.Run("basic construction", func(t *testing.T) {
		actual, err := builder.NewCouponCodeBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "CURSOR-TORONTO-001", actual.Code().String())
		assert.False(t, actual.IsUsed())
		assert.Nil(t, actual.UsedAt())
		assert.Nil(t, actual.UsedByKind())
	})

	t.Run("mark used binds claimant", func(t *testing.T) {
		c, err := builder.NewCouponCodeBuilder().BuildDomain()
		require.NoError(t, err)

		usedAt := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)
		require.NoError(t, c.MarkUsed(coupon.ClaimantAttendee, "attendee-id", usedAt))

		assert.True(t, c.IsUsed())
		assert.Equal(t, usedAt, *c.UsedAt())
		assert.Equal(t, coupon.ClaimantAttendee, *c.UsedByKind())
		assert.Equal(t, "attendee-id", *c.UsedByRef())

		err = c.MarkUsed(coupon.ClaimantGuest, "other", usedAt)
		require.ErrorIs(t, err, coupon.ErrCouponAlreadyUsed)
	})

	t.Run("release clears usage", func(t *testing.T) {
		c, err := builder.NewCouponCodeBuilder().BuildDomain()
		require.NoError(t, err)

		require.ErrorIs(t, c.Release(), coupon.ErrCouponNotUsed)

		require.NoError(t, c.MarkUsed(coupon.ClaimantGuest, "guest-id", time.Now()))
		require.NoError(t, c.Release())

		assert.False(t, c.IsUsed())
		assert.Nil(t, c.UsedAt())
		assert.Nil(t, c.UsedByKind())
		assert.Nil(t, c.UsedByRef())
	})
}

func TestNewCode(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "plain code ok", input: "SAVE20", want: "SAVE20"},
		{name: "lowercase is uppercased", input: "save20", want: "SAVE20"},
		{name: "surrounding whitespace trimmed", input: "  SAVE20  ", want: "SAVE20"},
		{name: "hyphens and underscores ok", input: "CURSOR-2026_A", want: "CURSOR-2026_A"},
		{name: "single character ok", input: "A", want: "A"},
		{name: "two characters ok", input: "X1", want: "X1"},
		{name: "empty rejected", input: "", errIs: coupon.ErrInvalidCouponCode},
		{name: "over 32 characters rejected", input: "C-123456789012345678901234567890123", errIs: coupon.ErrInvalidCouponCode},
		{name: "inner whitespace rejected", input: "SAVE 20", errIs: coupon.ErrInvalidCouponCode},
		{name: "leading hyphen rejected", input: "-SAVE20", errIs: coupon.ErrInvalidCouponCode},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			code, err := coupon.NewCode(c.input)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, code.String())
		})
	}
}

func TestParseBulk(t *testing.T) {
	t.Run("splits, trims and uppercases", func(t *testing.T) {
		codes, invalid := coupon.ParseBulk("save20\n  CURSOR-001  \n\nCURSOR-002\n")
		require.Empty(t, invalid)

		want := []coupon.Code{"SAVE20", "CURSOR-001", "CURSOR-002"}
		if diff := cmp.Diff(want, codes); diff != "" {
			t.Errorf("codes mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("keeps invalid lines with positions", func(t *testing.T) {
		codes, invalid := coupon.ParseBulk("SAVE20\nbad code\n!!\nCURSOR-001")

		assert.Equal(t, []coupon.Code{"SAVE20", "CURSOR-001"}, codes)
		require.Len(t, invalid, 2)
		assert.Equal(t, 2, invalid[0].LineNo)
		assert.Equal(t, "bad code", invalid[0].Text)
		assert.Equal(t, 3, invalid[1].LineNo)
	})

	t.Run("short codes and repeats pass through", func(t *testing.T) {
		codes, invalid := coupon.ParseBulk("X1\nX2\nX2")

		assert.Empty(t, invalid)
		assert.Equal(t, []coupon.Code{"X1", "X2", "X2"}, codes)
	})

	t.Run("empty input yields nothing", func(t *testing.T) {
		codes, invalid := coupon.ParseBulk("\n\n  \n")
		assert.Empty(t, codes)
		assert.Empty(t, invalid)
	})
}
