package indicator

import (
	"math"

	"github.com/abk234/trading-advisor/internal/types"
	"github.com/abk234/trading-advisor/pkg/errors"
)

// SupportResistance finds historical support and resistance levels from
// local extrema of the low and high columns.
type SupportResistance struct {
	window int
}

// NewSupportResistance creates a new support/resistance indicator with default configuration.
func NewSupportResistance() *SupportResistance {
	return &SupportResistance{
		window: 20, // Default window
	}
}

// Name returns the name of the indicator.
func (sr *SupportResistance) Name() types.IndicatorType {
	return types.IndicatorTypeSupportResistance
}

// Config configures the indicator. Expected parameters: window (int).
func (sr *SupportResistance) Config(params ...any) error {
	if len(params) != 1 {
		return errors.New(errors.ErrCodeMissingParameter, "Config expects 1 parameter: window (int)")
	}

	window, ok := params[0].(int)
	if !ok {
		return errors.New(errors.ErrCodeInvalidType, "invalid type for window parameter, expected int")
	}

	if window <= 0 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "window must be a positive integer, got %d", window)
	}

	sr.window = window

	return nil
}

// Compute implements the Indicator interface. The support series flags each
// interior bar whose low equals the minimum low of the centered 2*window+1
// span; the resistance series is symmetric for highs. Unflagged bars are NaN.
func (sr *SupportResistance) Compute(bars []types.PriceBar) (map[string]Series, error) {
	support := make(Series, len(bars))
	resistance := make(Series, len(bars))

	for i := range bars {
		support[i] = math.NaN()
		resistance[i] = math.NaN()
	}

	for i := sr.window; i < len(bars)-sr.window; i++ {
		minLow := bars[i].Low
		maxHigh := bars[i].High

		for j := i - sr.window; j <= i+sr.window; j++ {
			minLow = math.Min(minLow, bars[j].Low)
			maxHigh = math.Max(maxHigh, bars[j].High)
		}

		if bars[i].Low == minLow {
			support[i] = bars[i].Low
		}

		if bars[i].High == maxHigh {
			resistance[i] = bars[i].High
		}
	}

	return map[string]Series{
		"support":    support,
		"resistance": resistance,
	}, nil
}

// Nearest returns the nearest support below and resistance above the last
// close. Without a flagged level on the relevant side it falls back to 5%
// below or above the current price.
func (sr *SupportResistance) Nearest(bars []types.PriceBar) (support, resistance float64) {
	if len(bars) == 0 {
		return 0, 0
	}

	currentPrice := bars[len(bars)-1].Close

	levels, _ := sr.Compute(bars)
	supports := levels["support"]
	resistances := levels["resistance"]

	support = math.NaN()
	resistance = math.NaN()

	for i := range bars {
		if supports.Defined(i) && supports[i] < currentPrice {
			if math.IsNaN(support) || supports[i] > support {
				support = supports[i]
			}
		}

		if resistances.Defined(i) && resistances[i] > currentPrice {
			if math.IsNaN(resistance) || resistances[i] < resistance {
				resistance = resistances[i]
			}
		}
	}

	if math.IsNaN(support) {
		support = currentPrice * 0.95
	}

	if math.IsNaN(resistance) {
		resistance = currentPrice * 1.05
	}

	return support, resistance
}
