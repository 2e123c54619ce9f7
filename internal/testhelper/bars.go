// Package testhelper generates synthetic price series for tests.
package testhelper

import (
	"time"

	"github.com/abk234/trading-advisor/internal/types"
)

// DefaultStart is the first timestamp of every generated series.
var DefaultStart = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

// BarsFromCloses builds a daily bar series from a list of closes. Open
// tracks the previous close, high and low bracket the close by 1%.
func BarsFromCloses(closes []float64) []types.PriceBar {
	bars := make([]types.PriceBar, len(closes))

	for i, c := range closes {
		open := c
		if i > 0 {
			open = closes[i-1]
		}

		bars[i] = types.PriceBar{
			Time:   DefaultStart.AddDate(0, 0, i),
			Open:   open,
			High:   c * 1.01,
			Low:    c * 0.99,
			Close:  c,
			Volume: 1000000,
		}
	}

	return bars
}

// FlatBars generates n bars whose open, high, low, and close all equal price.
func FlatBars(n int, price float64) []types.PriceBar {
	bars := make([]types.PriceBar, n)

	for i := range bars {
		bars[i] = types.PriceBar{
			Time:   DefaultStart.AddDate(0, 0, i),
			Open:   price,
			High:   price,
			Low:    price,
			Close:  price,
			Volume: 1000000,
		}
	}

	return bars
}

// RisingBars generates n bars whose close grows by pctPerBar each bar.
func RisingBars(n int, start, pctPerBar float64) []types.PriceBar {
	closes := make([]float64, n)
	price := start

	for i := range closes {
		closes[i] = price
		price *= 1 + pctPerBar/100
	}

	return BarsFromCloses(closes)
}

// ClimbCrashBars generates a series that climbs linearly from start to peak
// over climbBars, then falls linearly to trough over crashBars.
func ClimbCrashBars(start, peak, trough float64, climbBars, crashBars int) []types.PriceBar {
	closes := make([]float64, 0, climbBars+crashBars)

	for i := 0; i < climbBars; i++ {
		closes = append(closes, start+(peak-start)*float64(i)/float64(climbBars-1))
	}

	for i := 1; i <= crashBars; i++ {
		closes = append(closes, peak+(trough-peak)*float64(i)/float64(crashBars))
	}

	return BarsFromCloses(closes)
}
