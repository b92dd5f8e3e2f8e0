package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velotours/invoice-service/internal/domain"
)

func TestFormat(t *testing.T) {
	amount := decimal.NewFromInt(100)

	tests := []struct {
		code string
		want string
	}{
		{"USD", "$100.00"},
		{"EUR", "€92.00"},
		{"GBP", "£79.00"},
		{"LKR", "Rs.31250.00"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := Format(amount, tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatUnsupportedCurrency(t *testing.T) {
	_, err := Format(decimal.NewFromInt(100), "JPY")
	assert.ErrorIs(t, err, domain.ErrUnsupportedCurrency)
}

func TestFormatOrDefaultFallsBackToBase(t *testing.T) {
	got := FormatOrDefault(decimal.NewFromFloat(12.5), "JPY")
	assert.Equal(t, "$12.50", got)
}

func TestConvertDoesNotRoundMidCalculation(t *testing.T) {
	// 10.555 * 0.79 = 8.33845, conversion must not round
	got, err := Convert(decimal.NewFromFloat(10.555), "GBP")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromFloat(8.33845)), "got %s", got)
}
