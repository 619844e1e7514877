package normalize

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestKey_Composition(t *testing.T) {
	key := Key(1, "2025-06-15", mustDecimal(t, "-50"), "CARREFOUR MARKET")
	assert.Equal(t, "1_2025-06-15_-50.00_carrefour market", key)
}

func TestKey_CaseAndWhitespaceInvariance(t *testing.T) {
	amount := mustDecimal(t, "-50.00")

	a := Key(1, "2025-06-15", amount, "CARREFOUR MARKET")
	b := Key(1, "2025-06-15", amount, "  carrefour   market ")
	c := Key(1, "2025-06-15", amount, "carrefour\tmarket")

	assert.Equal(t, a, b)
	assert.Equal(t, a, c)
}

func TestKey_AccountIsolation(t *testing.T) {
	amount := mustDecimal(t, "-50.00")
	a := Key(1, "2025-06-15", amount, "carrefour")
	b := Key(2, "2025-06-15", amount, "carrefour")
	assert.NotEqual(t, a, b)
}

func TestKey_AmountFixedPoint(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "integer gains two decimals", amount: "-50", want: "-50.00"},
		{name: "one decimal padded", amount: "12.5", want: "12.50"},
		{name: "already two decimals", amount: "-4.50", want: "-4.50"},
		{name: "extra precision rounded", amount: "3.005", want: "3.01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := Key(1, "2025-06-15", mustDecimal(t, tt.amount), "x")
			assert.Contains(t, key, "_"+tt.want+"_")
		})
	}
}

func TestDatePart(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "date only", in: "2025-06-15", want: "2025-06-15"},
		{name: "drops time of day", in: "2025-06-15 00:00:00", want: "2025-06-15"},
		{name: "drops T separator time", in: "2025-06-15T10:30:00", want: "2025-06-15"},
		{name: "trims surrounding space", in: "  2025-06-15  ", want: "2025-06-15"},
		{name: "empty yields empty segment", in: "", want: ""},
		{name: "blank yields empty segment", in: "   ", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DatePart(tt.in))
		})
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "cafe du coin", Label(" CAFE   DU\tCOIN "))
	assert.Equal(t, "", Label("   "))
}
