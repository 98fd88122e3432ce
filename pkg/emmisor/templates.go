package emmisor

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/shopspring/decimal"
)

type OrderEmailItem struct {
	Name            string
	Quantity        int
	Price           decimal.Decimal
	SelectedOptions []string
}

func (i OrderEmailItem) LineTotal() string {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity))).StringFixed(2)
}

func (i OrderEmailItem) Options() string {
	return strings.Join(i.SelectedOptions, " · ")
}

type OrderEmailData struct {
	OrderID      string
	CustomerName string
	Date         string
	Items        []OrderEmailItem
	Subtotal     decimal.Decimal
	ShippingCost decimal.Decimal
	Tax          decimal.Decimal
	Total        decimal.Decimal
	Address      string
	City         string
	Region       string
	ZipCode      string
	Country      string
}

func (d OrderEmailData) SubtotalFixed() string { return d.Subtotal.StringFixed(2) }
func (d OrderEmailData) ShippingFixed() string { return d.ShippingCost.StringFixed(2) }
func (d OrderEmailData) TaxFixed() string      { return d.Tax.StringFixed(2) }
func (d OrderEmailData) TotalFixed() string    { return d.Total.StringFixed(2) }

var orderConfirmationTmpl = template.Must(template.New("order_confirmation").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8" />
  <title>Order Confirmation - {{.OrderID}}</title>
</head>
<body style="margin:0;padding:0;background-color:#f5f5f7;font-family:Arial,sans-serif;">
  <table role="presentation" width="100%" cellpadding="0" cellspacing="0">
    <tr><td align="center" style="padding:40px 16px;">
      <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="max-width:640px;background:#ffffff;border:1px solid #e0e0e0;">
        <tr><td style="background-color:#014086;padding:32px 36px;">
          <div style="font-size:24px;font-weight:900;color:#ffffff;text-transform:uppercase;">Apple Treats</div>
          <div style="font-size:13px;color:rgba(255,255,255,0.8);margin-top:6px;">Invoice {{.OrderID}} &middot; {{.Date}}</div>
        </td></tr>
        <tr><td style="padding:32px 36px 0;">
          <p style="font-size:16px;color:#1a1a1a;margin:0 0 8px;">Hi {{.CustomerName}},</p>
          <p style="font-size:14px;color:#666;margin:0;">Thank you for your order! Here's your confirmation and invoice.</p>
        </td></tr>
        <tr><td style="padding:24px 36px;">
          <table role="presentation" width="100%" cellpadding="0" cellspacing="0">
            {{range .Items}}
            <tr>
              <td style="padding:14px 16px;border-bottom:1px solid #f0f0f0;font-size:14px;color:#333;">
                {{.Name}}{{if .SelectedOptions}}<br/><span style="font-size:12px;color:#888;">{{.Options}}</span>{{end}}
              </td>
              <td style="padding:14px 16px;border-bottom:1px solid #f0f0f0;font-size:13px;color:#888;">{{.Quantity}}</td>
              <td style="padding:14px 16px;border-bottom:1px solid #f0f0f0;font-size:14px;color:#1a1a1a;text-align:right;">&#8373;{{.LineTotal}}</td>
            </tr>
            {{end}}
          </table>
          <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="margin-top:16px;">
            <tr><td style="font-size:13px;color:#888;padding:4px 16px;">Subtotal</td><td style="font-size:13px;color:#333;text-align:right;padding:4px 16px;">&#8373;{{.SubtotalFixed}}</td></tr>
            <tr><td style="font-size:13px;color:#888;padding:4px 16px;">Shipping</td><td style="font-size:13px;color:#333;text-align:right;padding:4px 16px;">&#8373;{{.ShippingFixed}}</td></tr>
            <tr><td style="font-size:13px;color:#888;padding:4px 16px;">Tax</td><td style="font-size:13px;color:#333;text-align:right;padding:4px 16px;">&#8373;{{.TaxFixed}}</td></tr>
            <tr><td style="font-size:15px;color:#1a1a1a;font-weight:700;padding:12px 16px;">Total</td><td style="font-size:15px;color:#1a1a1a;font-weight:700;text-align:right;padding:12px 16px;">&#8373;{{.TotalFixed}}</td></tr>
          </table>
        </td></tr>
        <tr><td style="padding:0 36px 32px;">
          <div style="font-size:12px;text-transform:uppercase;letter-spacing:1px;color:#888;margin-bottom:8px;">Shipping to</div>
          <div style="font-size:14px;color:#333;line-height:1.6;">{{.Address}}<br/>{{.City}}, {{.Region}} {{.ZipCode}}<br/>{{.Country}}</div>
        </td></tr>
      </table>
    </td></tr>
  </table>
</body>
</html>`))

// BuildOrderConfirmationEmail renders the confirmation email for a
// freshly created order.
func BuildOrderConfirmationEmail(data OrderEmailData) (subject, html string, err error) {
	subject = fmt.Sprintf("Order Confirmed — %s | Apple Treats", data.OrderID)

	var sb strings.Builder
	if err := orderConfirmationTmpl.Execute(&sb, data); err != nil {
		return "", "", fmt.Errorf("render order confirmation %s: %w", data.OrderID, err)
	}

	return subject, sb.String(), nil
}
