package analysis

import (
	"math"

	"github.com/abk234/trading-advisor/internal/types"
	"github.com/abk234/trading-advisor/pkg/errors"
)

// SizePosition computes how many shares to buy so that a stop-out loses
// at most riskPerTradePct of the account. A stop at or above the entry
// falls back to a 2% risk per share.
func SizePosition(accountValue, entryPrice, stopLoss, riskPerTradePct float64) (types.PositionSizing, error) {
	if accountValue <= 0 {
		return types.PositionSizing{}, errors.Newf(errors.ErrCodeInvalidParameter, "account value must be positive, got %.2f", accountValue)
	}
	if entryPrice <= 0 {
		return types.PositionSizing{}, errors.Newf(errors.ErrCodeInvalidParameter, "entry price must be positive, got %.2f", entryPrice)
	}
	if riskPerTradePct <= 0 || riskPerTradePct > 100 {
		return types.PositionSizing{}, errors.Newf(errors.ErrCodeInvalidParameter, "risk per trade must be in (0, 100], got %.2f", riskPerTradePct)
	}

	riskPerShare := entryPrice - stopLoss
	if riskPerShare <= 0 {
		riskPerShare = entryPrice * 0.02
	}

	totalRisk := accountValue * riskPerTradePct / 100
	shares := int(math.Floor(totalRisk / riskPerShare))
	if shares < 0 {
		shares = 0
	}

	return types.PositionSizing{
		AccountValue:    accountValue,
		RiskPerTradePct: riskPerTradePct,
		EntryPrice:      entryPrice,
		StopLoss:        stopLoss,
		NumShares:       shares,
		TotalCost:       float64(shares) * entryPrice,
		MaxLoss:         float64(shares) * riskPerShare,
		RiskPerShare:    riskPerShare,
	}, nil
}
