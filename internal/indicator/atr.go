package indicator

import (
	"math"

	"github.com/abk234/trading-advisor/internal/types"
	"github.com/abk234/trading-advisor/pkg/errors"
)

// ATR represents the Average True Range indicator.
type ATR struct {
	period int
}

// NewATR creates a new ATR indicator with default configuration.
func NewATR() *ATR {
	return &ATR{
		period: 14, // Default period
	}
}

// Name returns the name of the indicator.
func (a *ATR) Name() types.IndicatorType {
	return types.IndicatorTypeATR
}

// Config configures the ATR indicator. Expected parameters: period (int).
func (a *ATR) Config(params ...any) error {
	if len(params) != 1 {
		return errors.New(errors.ErrCodeMissingParameter, "Config expects 1 parameter: period (int)")
	}

	period, ok := params[0].(int)
	if !ok {
		return errors.New(errors.ErrCodeInvalidType, "invalid type for period parameter, expected int")
	}

	if period <= 0 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "period must be a positive integer, got %d", period)
	}

	a.period = period

	return nil
}

// Compute implements the Indicator interface.
func (a *ATR) Compute(bars []types.PriceBar) (map[string]Series, error) {
	return map[string]Series{"atr": a.Series(bars)}, nil
}

// Series returns the ATR series aligned with bars. The true range of the
// first bar has no previous close and falls back to high minus low.
func (a *ATR) Series(bars []types.PriceBar) Series {
	tr := make([]float64, len(bars))

	for i, b := range bars {
		if i == 0 {
			tr[i] = b.High - b.Low

			continue
		}

		prevClose := bars[i-1].Close
		tr[i] = math.Max(
			b.High-b.Low,
			math.Max(
				math.Abs(b.High-prevClose),
				math.Abs(b.Low-prevClose),
			),
		)
	}

	return rollingMean(tr, a.period)
}
