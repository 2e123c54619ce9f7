package indicator

import (
	"math"

	"github.com/abk234/trading-advisor/internal/types"
)

// Series is an indicator output aligned with the input bar series. Warm-up
// entries are NaN. Every computation is a single deterministic pass over a
// complete, already-materialized series; there is no streaming mode.
type Series []float64

// Last returns the final value of the series, or NaN if the series is empty.
func (s Series) Last() float64 {
	if len(s) == 0 {
		return math.NaN()
	}

	return s[len(s)-1]
}

// Defined reports whether the value at index i exists and is not NaN.
func (s Series) Defined(i int) bool {
	return i >= 0 && i < len(s) && !math.IsNaN(s[i])
}

// ValueOr returns the value at index i, or def when it is undefined.
// This is how callers absorb warm-up gaps with a documented default.
func (s Series) ValueOr(i int, def float64) float64 {
	if !s.Defined(i) {
		return def
	}

	return s[i]
}

// Indicator is a technical indicator computed over a complete price series.
// Compute returns one or more named series aligned with the input bars;
// a series shorter than the indicator's warm-up yields all-NaN output
// rather than an error.
type Indicator interface {
	// Name returns the name of the indicator.
	Name() types.IndicatorType
	// Config configures the indicator parameters.
	Config(params ...any) error
	// Compute calculates the indicator over the full bar series.
	Compute(bars []types.PriceBar) (map[string]Series, error)
}

// closes extracts the close column from a bar series.
func closes(bars []types.PriceBar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Close
	}

	return out
}

// rollingMean computes a simple rolling mean with a NaN warm-up of
// window-1 entries. A NaN inside the window propagates to the output.
func rollingMean(values []float64, window int) Series {
	out := make(Series, len(values))
	for i := range out {
		out[i] = math.NaN()
	}

	for i := window - 1; i < len(values); i++ {
		sum := 0.0
		defined := true

		for j := i - window + 1; j <= i; j++ {
			if math.IsNaN(values[j]) {
				defined = false

				break
			}

			sum += values[j]
		}

		if defined {
			out[i] = sum / float64(window)
		}
	}

	return out
}

// rollingStd computes the rolling sample standard deviation (n-1 divisor)
// with the same warm-up and NaN propagation as rollingMean.
func rollingStd(values []float64, window int) Series {
	out := make(Series, len(values))
	for i := range out {
		out[i] = math.NaN()
	}

	if window < 2 {
		return out
	}

	for i := window - 1; i < len(values); i++ {
		sum := 0.0
		defined := true

		for j := i - window + 1; j <= i; j++ {
			if math.IsNaN(values[j]) {
				defined = false

				break
			}

			sum += values[j]
		}

		if !defined {
			continue
		}

		mean := sum / float64(window)
		squaredDiffSum := 0.0

		for j := i - window + 1; j <= i; j++ {
			diff := values[j] - mean
			squaredDiffSum += diff * diff
		}

		out[i] = math.Sqrt(squaredDiffSum / float64(window-1))
	}

	return out
}

// ewm computes an exponential moving average with smoothing factor
// 2/(span+1), seeded by the first value. Defined from the first entry,
// matching a continuous recursive formulation rather than an SMA seed.
func ewm(values []float64, span int) Series {
	out := make(Series, len(values))
	if len(values) == 0 {
		return out
	}

	alpha := 2.0 / (float64(span) + 1.0)
	out[0] = values[0]

	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}

	return out
}
