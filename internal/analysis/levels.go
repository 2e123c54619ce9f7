package analysis

import (
	"github.com/abk234/trading-advisor/internal/types"
)

// CalculateLevels derives the stop loss and target price for an entry.
//
// The stop is computed first from the configured method, then clamped so
// that it never sits within 5% of the entry. The target is derived from
// the final stop and clamped below resistance. The ordering matters:
// each step reads the output of the previous one.
func CalculateLevels(entry float64, snapshot types.IndicatorSnapshot, config Config) (stopLoss, target float64) {
	switch config.StopLossMethod {
	case types.StopLossMethodATR:
		stopLoss = entry - config.ATRMultiplier*snapshot.ATR
	case types.StopLossMethodPercentage:
		stopLoss = entry * (1 - config.StopLossPercentage/100)
	case types.StopLossMethodSupport:
		stopLoss = snapshot.Support * 0.98
	default:
		stopLoss = entry * 0.98
	}

	if stopLoss > entry*0.95 {
		stopLoss = entry * 0.97
	}

	target = entry + (entry-stopLoss)*config.RiskRewardRatio

	if target > snapshot.Resistance {
		target = snapshot.Resistance * 0.99
	}

	return stopLoss, target
}
