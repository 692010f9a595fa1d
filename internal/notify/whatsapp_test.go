package notify

import (
	"net/url"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lendly/loan-tracker/internal/domain"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		name     string
		value    decimal.Decimal
		expected string
	}{
		{"simple", decimal.NewFromInt(100), "R$ 100,00"},
		{"cents", decimal.NewFromFloat(99.9), "R$ 99,90"},
		{"thousands", decimal.NewFromFloat(1234.56), "R$ 1.234,56"},
		{"millions", decimal.NewFromInt(1000000), "R$ 1.000.000,00"},
		{"negative", decimal.NewFromFloat(-1234.5), "-R$ 1.234,50"},
		{"zero", decimal.Zero, "R$ 0,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatBRL(tt.value))
		})
	}
}

func TestReminderLink(t *testing.T) {
	linker := WhatsAppLinker{CountryCode: "55"}

	debtor := &domain.Debtor{
		Name:           "João da Silva",
		Phone:          "(11) 98765-4321",
		MonthlyPayment: decimal.NewFromFloat(350.75),
		DueDate:        time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local),
	}

	link := linker.ReminderLink(debtor)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", parsed.Host)
	assert.Equal(t, "/5511987654321", parsed.Path)

	text := parsed.Query().Get("text")
	assert.Contains(t, text, "João da Silva")
	assert.Contains(t, text, "10/03/2024")
	assert.Contains(t, text, "R$ 350,75")
}
