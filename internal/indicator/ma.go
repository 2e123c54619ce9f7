package indicator

import (
	"github.com/abk234/trading-advisor/internal/types"
	"github.com/abk234/trading-advisor/pkg/errors"
)

// MA computes the short/long simple and exponential moving-average pairs
// used for trend classification.
type MA struct {
	shortPeriod int
	longPeriod  int
}

// NewMA creates a new MA indicator with default configuration.
func NewMA() *MA {
	return &MA{
		shortPeriod: 20, // Default short period
		longPeriod:  50, // Default long period
	}
}

// Name returns the name of the indicator.
func (m *MA) Name() types.IndicatorType {
	return types.IndicatorTypeMA
}

// Config configures the MA indicator. Expected parameters: shortPeriod (int), longPeriod (int).
func (m *MA) Config(params ...any) error {
	if len(params) != 2 {
		return errors.New(errors.ErrCodeMissingParameter, "Config expects 2 parameters: shortPeriod (int), longPeriod (int)")
	}

	shortPeriod, ok := params[0].(int)
	if !ok {
		return errors.New(errors.ErrCodeInvalidType, "invalid type for shortPeriod parameter, expected int")
	}

	longPeriod, ok := params[1].(int)
	if !ok {
		return errors.New(errors.ErrCodeInvalidType, "invalid type for longPeriod parameter, expected int")
	}

	if shortPeriod <= 0 || longPeriod <= 0 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "periods must be positive integers, got %d and %d", shortPeriod, longPeriod)
	}

	if shortPeriod >= longPeriod {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "shortPeriod %d must be smaller than longPeriod %d", shortPeriod, longPeriod)
	}

	m.shortPeriod = shortPeriod
	m.longPeriod = longPeriod

	return nil
}

// LongPeriod returns the configured long window, which is also the largest
// warm-up span any indicator in this package requires.
func (m *MA) LongPeriod() int {
	return m.longPeriod
}

// Compute implements the Indicator interface.
func (m *MA) Compute(bars []types.PriceBar) (map[string]Series, error) {
	smaShort, smaLong, emaShort, emaLong := m.Series(bars)

	return map[string]Series{
		"sma_short": smaShort,
		"sma_long":  smaLong,
		"ema_short": emaShort,
		"ema_long":  emaLong,
	}, nil
}

// Series returns the four moving-average series aligned with bars.
func (m *MA) Series(bars []types.PriceBar) (smaShort, smaLong, emaShort, emaLong Series) {
	c := closes(bars)

	smaShort = rollingMean(c, m.shortPeriod)
	smaLong = rollingMean(c, m.longPeriod)
	emaShort = ewm(c, m.shortPeriod)
	emaLong = ewm(c, m.longPeriod)

	return smaShort, smaLong, emaShort, emaLong
}
