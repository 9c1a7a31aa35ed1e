package coupon

import (
	"regexp"
	"strings"

	"event-coupon-admin/internal/pkg/errs"
)

var ErrInvalidCouponCode = errs.New("invalid coupon code format")

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9][A-Z0-9_\-]{0,31}$`)

type Code string

func NewCode(s string) (Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !couponCodeRegex.MatchString(s) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(s), nil
}

func (c Code) String() string {
	return string(c)
}

// InvalidLine is a rejected line from a bulk import, kept with its
// 1-based position so the caller can report it.
type InvalidLine struct {
	LineNo int
	Text   string
}

// ParseBulk splits newline-separated text into codes. Blank lines are
// skipped; malformed lines are returned alongside the valid codes.
func ParseBulk(text string) ([]Code, []InvalidLine) {
	var codes []Code
	var invalid []InvalidLine

	for i, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		code, err := NewCode(trimmed)
		if err != nil {
			invalid = append(invalid, InvalidLine{LineNo: i + 1, Text: trimmed})
			continue
		}
		codes = append(codes, code)
	}
	return codes, invalid
}
