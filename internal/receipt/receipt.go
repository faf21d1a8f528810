package receipt

import (
	"context"
	"fmt"
	"strings"

	"neonburro-api/internal/domain"
	"neonburro-api/internal/forms"
)

// OrderNumber derives the public order number from the provider payment
// intent id. The intent id is unique on the provider side and is carried
// over without case-folding or truncation, so the derived number inherits
// that uniqueness; orders key on it.
func OrderNumber(paymentIntentID string) string {
	return "NB-" + strings.TrimPrefix(paymentIntentID, "pi_")
}

// Render produces the downloadable receipt document for an order. Plain
// text, stable layout; the SPA serves it as an attachment.
func Render(order domain.Order) []byte {
	var b strings.Builder
	line := strings.Repeat("=", 46)

	fmt.Fprintf(&b, "%s\nNEON BURRO\nRidgway, Colorado\n%s\n\n", line, line)
	fmt.Fprintf(&b, "Receipt %s\n", order.Number)
	fmt.Fprintf(&b, "Date: %s\n", order.CreatedAt.Format("January 2, 2006"))
	fmt.Fprintf(&b, "Payment: %s (%s)\n\n", order.PaymentIntentID, order.PaymentMethod)

	fmt.Fprintf(&b, "Billed to: %s\n", order.FirstName)
	if order.ProjectName != "" {
		fmt.Fprintf(&b, "Project: %s\n", order.ProjectName)
	}
	fmt.Fprintf(&b, "Email: %s\n\n", order.Email)

	for _, l := range order.Lines {
		desc := l.Name
		var opts []string
		if l.Size != "" {
			opts = append(opts, "size "+l.Size)
		}
		if l.Design != "" {
			opts = append(opts, l.Design)
		}
		if l.Tier != "" {
			opts = append(opts, l.Tier)
		}
		if len(opts) > 0 {
			desc += " (" + strings.Join(opts, ", ") + ")"
		}
		fmt.Fprintf(&b, "%-34s x%d  %s\n", desc, l.Quantity, dollars(l.PriceCents*int64(l.Quantity)))
	}

	fmt.Fprintf(&b, "\n%-37s %s\n", "TOTAL", dollars(order.TotalCents))
	fmt.Fprintf(&b, "%s\nThanks for fueling the burro.\n", line)
	return []byte(b.String())
}

func dollars(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

// Mailer relays receipt email requests through the forms service. Safe to
// call repeatedly; each call is an independent fire-and-forget submission.
type Mailer struct {
	forms *forms.Client
}

func NewMailer(formsClient *forms.Client) *Mailer {
	return &Mailer{forms: formsClient}
}

// RequestEmail asks the forms service to send a copy of the receipt to the
// given address. Defaults to the purchaser's email when to is empty.
func (m *Mailer) RequestEmail(ctx context.Context, order domain.Order, to string) {
	if to == "" {
		to = order.Email
	}
	m.forms.Submit(ctx, forms.FormEmailReceipt, map[string]string{
		"orderNumber": order.Number,
		"email":       to,
		"firstName":   order.FirstName,
		"total":       dollars(order.TotalCents),
	})
}

// TrackDownload records a receipt download through the forms service.
func (m *Mailer) TrackDownload(ctx context.Context, order domain.Order) {
	m.forms.Submit(ctx, forms.FormReceiptDownload, map[string]string{
		"orderNumber": order.Number,
		"email":       order.Email,
	})
}
