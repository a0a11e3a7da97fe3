// Package hbar holds the unit math shared by every service: tinybar/HBAR
// conversion and the client-side fee model.
package hbar

import (
	"math"

	"github.com/alvinthemax/hedera-wallet/internal/models"
)

// TinybarPerHbar is the fixed denomination factor of the ledger.
const TinybarPerHbar int64 = 100_000_000

// Fee model constants, in HBAR.
const (
	DefaultFeeHbar       = 0.0001  // substituted when the record fetch fails
	FallbackEstimateHbar = 0.0002  // returned when an estimate cannot be computed
	baseFeeHbar          = 0.0001
	amountFeeRate        = 0.0001
	minAmountFeeHbar     = 0.00005
	networkFeeHbar       = 0.00001
)

// ToHbar converts tinybars to a decimal HBAR figure.
func ToHbar(tinybar int64) float64 {
	return float64(tinybar) / float64(TinybarPerHbar)
}

// FromHbar converts a decimal HBAR amount to tinybars, rounding half away
// from zero. Integer tinybar inputs round-trip exactly through ToHbar.
func FromHbar(hbar float64) int64 {
	return int64(math.Round(hbar * float64(TinybarPerHbar)))
}

// EstimateFee computes the client-side fee approximation for a transfer of
// the given size: a base fee plus 0.01% of the amount with a floor, and a
// small fixed network fee in the breakdown.
func EstimateFee(amountHbar float64) models.FeeEstimate {
	amountFee := math.Max(amountHbar*amountFeeRate, minAmountFeeHbar)
	estimated := baseFeeHbar + amountFee
	return models.FeeEstimate{
		EstimatedFeeHbar:  estimated,
		MinFeeHbar:        baseFeeHbar,
		TotalRequiredHbar: amountHbar + estimated,
		Breakdown: models.FeeBreakdown{
			BaseFeeHbar:    baseFeeHbar,
			AmountFeeHbar:  amountFee,
			NetworkFeeHbar: networkFeeHbar,
		},
	}
}
