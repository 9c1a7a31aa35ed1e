package mail

import (
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"event-coupon-admin/internal/pkg/errs"
)

var couponTemplate = template.Must(template.New("coupon").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: -apple-system, sans-serif; color: #1a1a1a; max-width: 560px; margin: 0 auto; padding: 24px;">
    <h2>{{.CityName}}</h2>
    <p>Hi {{.FirstName}},</p>
    <p>Thanks for registering. Here is your coupon code:</p>
    <p style="font-size: 24px; font-weight: bold; letter-spacing: 2px; background: #f4f4f5; padding: 16px; text-align: center;">{{.Code}}</p>
    <p><a href="{{.RedeemURL}}">Redeem your code</a></p>
    <p>See you there!</p>
  </body>
</html>`))

type couponEmailData struct {
	CityName  string
	FirstName string
	Code      string
	RedeemURL string
}

// RenderCouponEmail builds the subject and HTML body for a coupon
// delivery to the given recipient.
func RenderCouponEmail(cityName, recipientName, code, redeemBaseURL string) (subject, html string, err error) {
	data := couponEmailData{
		CityName:  cityName,
		FirstName: firstName(recipientName),
		Code:      code,
		RedeemURL: redeemURL(redeemBaseURL, code),
	}

	var buf strings.Builder
	if err := couponTemplate.Execute(&buf, data); err != nil {
		return "", "", errs.Wrap(err, "failed to render coupon email")
	}

	subject = fmt.Sprintf("Your %s coupon code", cityName)
	return subject, buf.String(), nil
}

func firstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return name
	}
	return fields[0]
}

func redeemURL(base, code string) string {
	return base + "?code=" + url.QueryEscape(code)
}
