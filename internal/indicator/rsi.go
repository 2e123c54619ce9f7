package indicator

import (
	"math"

	"github.com/abk234/trading-advisor/internal/types"
	"github.com/abk234/trading-advisor/pkg/errors"
)

// RSI represents the Relative Strength Index indicator.
type RSI struct {
	period int
}

// NewRSI creates a new RSI indicator with default configuration.
func NewRSI() *RSI {
	return &RSI{
		period: 14, // Default period
	}
}

// Name returns the name of the indicator.
func (r *RSI) Name() types.IndicatorType {
	return types.IndicatorTypeRSI
}

// Config configures the RSI indicator. Expected parameters: period (int).
func (r *RSI) Config(params ...any) error {
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

	r.period = period

	return nil
}

// Compute implements the Indicator interface.
func (r *RSI) Compute(bars []types.PriceBar) (map[string]Series, error) {
	return map[string]Series{"rsi": r.Series(bars)}, nil
}

// Series returns the RSI series aligned with bars. Average gain and average
// loss are plain rolling means of the close deltas. A window with zero
// average loss and positive average gain saturates at 100; a window with no
// movement at all has an undefined ratio and yields NaN, which callers
// substitute with the neutral default of 50.
func (r *RSI) Series(bars []types.PriceBar) Series {
	gains := make([]float64, len(bars))
	losses := make([]float64, len(bars))

	for i := 1; i < len(bars); i++ {
		change := bars[i].Close - bars[i-1].Close
		if change > 0 {
			gains[i] = change
		} else {
			losses[i] = -change
		}
	}

	avgGain := rollingMean(gains, r.period)
	avgLoss := rollingMean(losses, r.period)

	out := make(Series, len(bars))

	for i := range out {
		switch {
		case !avgGain.Defined(i) || !avgLoss.Defined(i):
			out[i] = math.NaN()
		case avgLoss[i] == 0 && avgGain[i] == 0:
			out[i] = math.NaN()
		case avgLoss[i] == 0:
			out[i] = 100
		default:
			rs := avgGain[i] / avgLoss[i]
			out[i] = 100 - (100 / (1 + rs))
		}
	}

	return out
}
