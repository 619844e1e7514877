package boursoparser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrichard/bourso-import/internal/logging"
)

const sampleCSV = "dateOp;dateVal;label;category;categoryParent;supplierFound;amount\n" +
	"2025-06-15;2025-06-15;\"CARREFOUR MARKET\";Alimentation;Vie quotidienne;Carrefour;-50,00\n" +
	"2025-06-16;2025-06-16;VIR SALAIRE;;Revenus;;\"2 500,00\"\n" +
	"2025-06-17;2025-06-17;PRLV NETFLIX;;Abonnements;Netflix;-13,49\n"

func TestParse(t *testing.T) {
	p := New(&logging.MockLogger{})
	rows, err := p.Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "2025-06-15", rows[0].OperationDate)
	assert.Equal(t, "CARREFOUR MARKET", rows[0].Label)
	assert.Equal(t, "Alimentation", rows[0].BankCategory)
	assert.Equal(t, "Vie quotidienne", rows[0].ParentCategory)
	assert.Equal(t, "Carrefour", rows[0].Merchant)
	assert.Equal(t, "-50.00", rows[0].Amount)

	// thousands separator stripped, decimal comma converted
	assert.Equal(t, "2500.00", rows[1].Amount)
	assert.Equal(t, "", rows[1].Merchant)
}

func TestParse_ByteOrderMark(t *testing.T) {
	p := New(&logging.MockLogger{})
	rows, err := p.Parse(strings.NewReader("\ufeff" + sampleCSV))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "2025-06-15", rows[0].OperationDate)
}

func TestParse_HeaderOnly(t *testing.T) {
	p := New(&logging.MockLogger{})
	rows, err := p.Parse(strings.NewReader("dateOp;dateVal;label;category;categoryParent;supplierFound;amount\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParse_PreservesFileOrder(t *testing.T) {
	csv := "dateOp;dateVal;label;category;categoryParent;supplierFound;amount\n" +
		"2025-06-15;2025-06-15;FIRST;;;;-1,00\n" +
		"2025-06-14;2025-06-14;SECOND;;;;-2,00\n"
	p := New(&logging.MockLogger{})
	rows, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "FIRST", rows[0].Label)
	assert.Equal(t, "SECOND", rows[1].Label)
}

func TestStandardizeAmount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "decimal comma", in: "-50,00", want: "-50.00"},
		{name: "thousands space", in: "2 500,00", want: "2500.00"},
		{name: "non-breaking space", in: "2\u00a0500,00", want: "2500.00"},
		{name: "narrow non-breaking space", in: "2\u202f500,00", want: "2500.00"},
		{name: "already standard", in: "-13.49", want: "-13.49"},
		{name: "empty stays empty", in: "", want: ""},
		{name: "surrounding blanks trimmed", in: "  -4,50 ", want: "-4.50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StandardizeAmount(tt.in))
		})
	}
}
