package indicator

import (
	"math"

	"github.com/abk234/trading-advisor/internal/types"
	"github.com/abk234/trading-advisor/pkg/errors"
)

// BollingerBands implements the Indicator interface for Bollinger Bands.
type BollingerBands struct {
	period int     // Number of periods for moving average
	stdDev float64 // Number of standard deviations
}

// NewBollingerBands creates a new Bollinger Bands indicator with default configuration.
func NewBollingerBands() *BollingerBands {
	return &BollingerBands{
		period: 20,  // Default period
		stdDev: 2.0, // Default standard deviation
	}
}

// Name returns the name of the indicator.
func (bb *BollingerBands) Name() types.IndicatorType {
	return types.IndicatorTypeBollingerBands
}

// Config configures the Bollinger Bands indicator. Expected parameters: period (int), stdDev (float64).
func (bb *BollingerBands) Config(params ...any) error {
	if len(params) != 2 {
		return errors.New(errors.ErrCodeMissingParameter, "Config expects 2 parameters: period (int), stdDev (float64)")
	}

	period, ok := params[0].(int)
	if !ok {
		return errors.New(errors.ErrCodeInvalidType, "invalid type for period parameter, expected int")
	}

	if period <= 0 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "period must be a positive integer, got %d", period)
	}

	stdDev, ok := params[1].(float64)
	if !ok {
		return errors.New(errors.ErrCodeInvalidType, "invalid type for stdDev parameter, expected float64")
	}

	if stdDev <= 0 {
		return errors.Newf(errors.ErrCodeInvalidStdDev, "stdDev must be a positive number, got %f", stdDev)
	}

	bb.period = period
	bb.stdDev = stdDev

	return nil
}

// Compute implements the Indicator interface.
func (bb *BollingerBands) Compute(bars []types.PriceBar) (map[string]Series, error) {
	upper, middle, lower, percentB, bandwidth := bb.Series(bars)

	return map[string]Series{
		"upper":     upper,
		"middle":    middle,
		"lower":     lower,
		"percent_b": percentB,
		"bandwidth": bandwidth,
	}, nil
}

// Series returns the bands, %B, and bandwidth aligned with bars. The
// standard deviation uses the sample divisor. %B is undefined when the
// bands collapse to zero width.
func (bb *BollingerBands) Series(bars []types.PriceBar) (upper, middle, lower, percentB, bandwidth Series) {
	c := closes(bars)

	middle = rollingMean(c, bb.period)
	std := rollingStd(c, bb.period)

	upper = make(Series, len(bars))
	lower = make(Series, len(bars))
	percentB = make(Series, len(bars))
	bandwidth = make(Series, len(bars))

	for i := range bars {
		if !middle.Defined(i) || !std.Defined(i) {
			upper[i] = math.NaN()
			lower[i] = math.NaN()
			percentB[i] = math.NaN()
			bandwidth[i] = math.NaN()

			continue
		}

		upper[i] = middle[i] + bb.stdDev*std[i]
		lower[i] = middle[i] - bb.stdDev*std[i]

		width := upper[i] - lower[i]
		if width == 0 {
			percentB[i] = math.NaN()
		} else {
			percentB[i] = (c[i] - lower[i]) / width
		}

		if middle[i] == 0 {
			bandwidth[i] = math.NaN()
		} else {
			bandwidth[i] = width / middle[i]
		}
	}

	return upper, middle, lower, percentB, bandwidth
}
