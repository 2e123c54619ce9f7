package indicator

import (
	"github.com/abk234/trading-advisor/internal/types"
	"github.com/abk234/trading-advisor/pkg/errors"
)

// MACD represents the Moving Average Convergence Divergence indicator.
type MACD struct {
	fastPeriod   int
	slowPeriod   int
	signalPeriod int
}

// NewMACD creates a new MACD indicator with default configuration.
func NewMACD() *MACD {
	return &MACD{
		fastPeriod:   12, // Default fast period
		slowPeriod:   26, // Default slow period
		signalPeriod: 9,  // Default signal period
	}
}

// Name returns the name of the indicator.
func (m *MACD) Name() types.IndicatorType {
	return types.IndicatorTypeMACD
}

// Config configures the MACD indicator. Expected parameters: fastPeriod (int), slowPeriod (int), signalPeriod (int).
func (m *MACD) Config(params ...any) error {
	if len(params) != 3 {
		return errors.New(errors.ErrCodeMissingParameter, "Config expects 3 parameters: fastPeriod (int), slowPeriod (int), signalPeriod (int)")
	}

	periods := make([]int, 3)

	for i, p := range params {
		period, ok := p.(int)
		if !ok {
			return errors.New(errors.ErrCodeInvalidType, "invalid type for period parameter, expected int")
		}

		if period <= 0 {
			return errors.Newf(errors.ErrCodeInvalidPeriod, "period must be a positive integer, got %d", period)
		}

		periods[i] = period
	}

	if periods[0] >= periods[1] {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "fastPeriod %d must be smaller than slowPeriod %d", periods[0], periods[1])
	}

	m.fastPeriod = periods[0]
	m.slowPeriod = periods[1]
	m.signalPeriod = periods[2]

	return nil
}

// Compute implements the Indicator interface.
func (m *MACD) Compute(bars []types.PriceBar) (map[string]Series, error) {
	line, signal, histogram := m.Series(bars)

	return map[string]Series{
		"macd":      line,
		"signal":    signal,
		"histogram": histogram,
	}, nil
}

// Series returns the MACD line, signal line, and histogram aligned with
// bars. All three are defined from the first bar because the underlying
// EMAs are seeded by the first value.
func (m *MACD) Series(bars []types.PriceBar) (line, signal, histogram Series) {
	c := closes(bars)

	emaFast := ewm(c, m.fastPeriod)
	emaSlow := ewm(c, m.slowPeriod)

	line = make(Series, len(bars))
	for i := range line {
		line[i] = emaFast[i] - emaSlow[i]
	}

	signal = ewm(line, m.signalPeriod)

	histogram = make(Series, len(bars))
	for i := range histogram {
		histogram[i] = line[i] - signal[i]
	}

	return line, signal, histogram
}
