package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToBaseUnits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount float64
		want   uint64
	}{
		{name: "whole amount", amount: 5, want: 5_000_000},
		{name: "fractional amount", amount: 1.5, want: 1_500_000},
		{name: "sub-unit precision floors", amount: 0.0000019, want: 1},
		{name: "smallest unit", amount: 0.000001, want: 1},
		{name: "zero", amount: 0, want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ToBaseUnits(tt.amount))
		})
	}
}

func TestTruncateBalance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      uint64
		decimals int
		want     float64
	}{
		{name: "stable truncates sixth decimal", raw: 1_234_567, decimals: StableDecimals, want: 1.23456},
		{name: "stable does not round up", raw: 999_999, decimals: StableDecimals, want: 0.99999},
		{name: "sol whole", raw: 1_500_000_000, decimals: SOLDecimals, want: 1.5},
		{name: "sol truncates below display precision", raw: 1_000_000_009, decimals: SOLDecimals, want: 1.0},
		{name: "zero", raw: 0, decimals: StableDecimals, want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, TruncateBalance(tt.raw, tt.decimals))
		})
	}
}
