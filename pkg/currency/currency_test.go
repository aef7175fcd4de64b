package currency

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{name: "zero", amount: 0, want: "$0.00"},
		{name: "small", amount: 42.1, want: "$42.10"},
		{name: "thousands", amount: 1234.5, want: "$1,234.50"},
		{name: "millions", amount: 1234567.891, want: "$1,234,567.89"},
		{name: "rounding", amount: 999.999, want: "$1,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FormatUSD(tt.amount))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	require.Equal(t, "100.00", FormatPercent(100))
	require.Equal(t, "54.31", FormatPercent(434.5/800*100))
	require.Equal(t, "0.00", FormatPercent(0))
}
