package types

import (
	"time"

	"github.com/moznion/go-optional"

	"github.com/abk234/trading-advisor/pkg/errors"
)

// PriceBar is a single OHLCV bar. Series are ordered ascending by time with
// no duplicate timestamps and are immutable once loaded.
type PriceBar struct {
	Time   time.Time `yaml:"time" json:"time" csv:"time"`
	Open   float64   `yaml:"open" json:"open" csv:"open"`
	High   float64   `yaml:"high" json:"high" csv:"high"`
	Low    float64   `yaml:"low" json:"low" csv:"low"`
	Close  float64   `yaml:"close" json:"close" csv:"close"`
	Volume float64   `yaml:"volume" json:"volume" csv:"volume"`
}

// Period is a lookback period token understood by the price data source.
type Period string

const (
	Period1Mo  Period = "1mo"
	Period3Mo  Period = "3mo"
	Period6Mo  Period = "6mo"
	Period1Y   Period = "1y"
	Period2Y   Period = "2y"
	Period5Y   Period = "5y"
	Period10Y  Period = "10y"
	PeriodYTD  Period = "ytd"
	PeriodMax  Period = "max"
)

// Periods lists all valid period tokens.
func Periods() []Period {
	return []Period{
		Period1Mo, Period3Mo, Period6Mo,
		Period1Y, Period2Y, Period5Y, Period10Y,
		PeriodYTD, PeriodMax,
	}
}

// ParsePeriod validates a period token.
func ParsePeriod(s string) (Period, error) {
	for _, p := range Periods() {
		if string(p) == s {
			return p, nil
		}
	}

	return "", errors.Newf(errors.ErrCodeInvalidPeriod, "invalid period %q, expected one of %v", s, Periods())
}

// Start returns the window start implied by the period, relative to the
// reference time. PeriodMax has no start.
func (p Period) Start(reference time.Time) optional.Option[time.Time] {
	switch p {
	case Period1Mo:
		return optional.Some(reference.AddDate(0, -1, 0))
	case Period3Mo:
		return optional.Some(reference.AddDate(0, -3, 0))
	case Period6Mo:
		return optional.Some(reference.AddDate(0, -6, 0))
	case Period1Y:
		return optional.Some(reference.AddDate(-1, 0, 0))
	case Period2Y:
		return optional.Some(reference.AddDate(-2, 0, 0))
	case Period5Y:
		return optional.Some(reference.AddDate(-5, 0, 0))
	case Period10Y:
		return optional.Some(reference.AddDate(-10, 0, 0))
	case PeriodYTD:
		return optional.Some(time.Date(reference.Year(), 1, 1, 0, 0, 0, 0, reference.Location()))
	default:
		return optional.None[time.Time]()
	}
}

// ValidateBars checks the series invariants: ascending timestamps and no
// duplicates. An empty series is valid here; callers that require data
// surface ErrCodeDataUnavailable themselves.
func ValidateBars(bars []PriceBar) error {
	for i := 1; i < len(bars); i++ {
		if bars[i].Time.Equal(bars[i-1].Time) {
			return errors.Newf(errors.ErrCodeDuplicateTimestamp, "duplicate timestamp %s at index %d", bars[i].Time, i)
		}

		if bars[i].Time.Before(bars[i-1].Time) {
			return errors.Newf(errors.ErrCodeUnorderedSeries, "timestamps out of order at index %d: %s before %s", i, bars[i].Time, bars[i-1].Time)
		}
	}

	return nil
}
