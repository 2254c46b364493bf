package common

import "math"

const (
	// SOLDecimals is the native token precision (lamports).
	SOLDecimals = 9
	// StableDecimals is the precision of both stablecoins (micro units).
	StableDecimals = 6
	// DisplayDecimals is the precision balances are reported at.
	DisplayDecimals = 5
)

// ToBaseUnits converts a positive stablecoin amount to micro units,
// flooring like the on-chain encoding expects. The caller is responsible
// for having validated the amount as a finite positive number.
func ToBaseUnits(amount float64) uint64 {
	return uint64(math.Floor(amount * 1e6))
}

// TruncateBalance converts raw base units to a display amount truncated
// (not rounded) to 5 decimal places. The truncation is done in integer
// space so no float precision is lost before the cut.
func TruncateBalance(raw uint64, decimals int) float64 {
	for d := decimals; d > DisplayDecimals; d-- {
		raw /= 10
	}
	return float64(raw) / 1e5
}
