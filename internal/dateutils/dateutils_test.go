package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISODate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "valid date", in: "2025-06-15", want: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)},
		{name: "trims whitespace", in: " 2025-06-15 ", want: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)},
		{name: "european layout rejected", in: "15.06.2025", wantErr: true},
		{name: "empty rejected", in: "", wantErr: true},
		{name: "garbage rejected", in: "not-a-date", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseISODate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}
}

func TestToISODate(t *testing.T) {
	date := time.Date(2025, 2, 10, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-02-10", ToISODate(date))
}

func TestMonthBounds(t *testing.T) {
	date := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), StartOfMonth(date))
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), EndOfMonth(date))
}
