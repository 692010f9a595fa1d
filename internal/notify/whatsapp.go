// Package notify builds outbound reminder links for debtors. Delivery is
// fire-and-forget: the link opens a prefilled conversation in the messaging
// service, nothing is sent or confirmed from here.
package notify

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lendly/loan-tracker/internal/domain"
)

const waBaseURL = "https://wa.me/"

// WhatsAppLinker builds wa.me deep links carrying a payment reminder.
type WhatsAppLinker struct {
	CountryCode string
}

// ReminderLink returns the deep link for the debtor's phone with a reminder
// message interpolating name, due date and installment amount. The phone is
// reduced to bare digits; the country code is prepended.
func (l WhatsAppLinker) ReminderLink(d *domain.Debtor) string {
	var digits strings.Builder
	for _, r := range d.Phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	message := fmt.Sprintf("Olá %s, notamos que sua parcela venceu em %s no valor de %s!",
		d.Name,
		d.DueDate.Format("02/01/2006"),
		FormatBRL(d.MonthlyPayment),
	)

	return waBaseURL + l.CountryCode + digits.String() + "?text=" + url.QueryEscape(message)
}

// FormatBRL renders a monetary value in Brazilian currency notation,
// e.g. R$ 1.234,56.
func FormatBRL(value decimal.Decimal) string {
	fixed := value.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(r)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return sign + "R$ " + grouped.String() + "," + fracPart
}
