package types

import "github.com/moznion/go-optional"

type IndicatorType string

const (
	IndicatorTypeATR               IndicatorType = "atr"
	IndicatorTypeRSI               IndicatorType = "rsi"
	IndicatorTypeMA                IndicatorType = "ma"
	IndicatorTypeMACD              IndicatorType = "macd"
	IndicatorTypeBollingerBands    IndicatorType = "bollinger_bands"
	IndicatorTypeSupportResistance IndicatorType = "support_resistance"
)

// Trend is the moving-average trend classification.
type Trend string

const (
	TrendBullish Trend = "BULLISH"
	TrendBearish Trend = "BEARISH"
)

// SignalStrength is the aggregated signal-strength label.
type SignalStrength string

const (
	SignalStrengthStrong   SignalStrength = "STRONG"
	SignalStrengthModerate SignalStrength = "MODERATE"
	SignalStrengthWeak     SignalStrength = "WEAK"
)

// Vote is a per-indicator-group directional verdict.
type Vote string

const (
	VoteBullish Vote = "BULLISH"
	VoteBearish Vote = "BEARISH"
	VoteNeutral Vote = "NEUTRAL"
)

// BollingerSignal classifies the price position relative to the bands.
type BollingerSignal string

const (
	BollingerOversold       BollingerSignal = "OVERSOLD"
	BollingerOverbought     BollingerSignal = "OVERBOUGHT"
	BollingerNeutralBullish BollingerSignal = "NEUTRAL-BULLISH"
	BollingerNeutralBearish BollingerSignal = "NEUTRAL-BEARISH"
)

// StopLossMethod selects how the Price-Level Calculator derives the stop.
type StopLossMethod string

const (
	StopLossMethodATR        StopLossMethod = "atr"
	StopLossMethodPercentage StopLossMethod = "percentage"
	StopLossMethodSupport    StopLossMethod = "support"
)

// MACDValues holds the latest MACD triple plus the previous histogram value,
// which the fusion engine needs to judge momentum direction.
type MACDValues struct {
	Line          float64 `yaml:"line" json:"line"`
	Signal        float64 `yaml:"signal" json:"signal"`
	Histogram     float64 `yaml:"histogram" json:"histogram"`
	PrevHistogram float64 `yaml:"prev_histogram" json:"prev_histogram"`
}

// Bullish reports whether the MACD line is above the signal line with an
// increasing histogram.
func (m MACDValues) Bullish() bool {
	return m.Line > m.Signal && m.Histogram > m.PrevHistogram
}

// BollingerValues holds the latest Bollinger Band readings.
type BollingerValues struct {
	Upper     float64 `yaml:"upper" json:"upper"`
	Middle    float64 `yaml:"middle" json:"middle"`
	Lower     float64 `yaml:"lower" json:"lower"`
	PercentB  float64 `yaml:"percent_b" json:"percent_b"`
	Bandwidth float64 `yaml:"bandwidth" json:"bandwidth"`
}

// Classify returns the band signal for the given price.
func (b BollingerValues) Classify(price float64) BollingerSignal {
	switch {
	case price < b.Lower:
		return BollingerOversold
	case price > b.Upper:
		return BollingerOverbought
	case price > b.Middle:
		return BollingerNeutralBullish
	default:
		return BollingerNeutralBearish
	}
}

// IndicatorSnapshot is the most-recent-bar value of every computed indicator.
// It is derived on each analysis call and never persisted. Undefined
// indicator values have already been substituted with their documented
// defaults (ATR: 2% of price, RSI: 50).
type IndicatorSnapshot struct {
	CurrentPrice float64 `yaml:"current_price" json:"current_price"`
	ATR          float64 `yaml:"atr" json:"atr"`
	RSI          float64 `yaml:"rsi" json:"rsi"`
	SMAShort     float64 `yaml:"sma_short" json:"sma_short"`
	SMALong      float64 `yaml:"sma_long" json:"sma_long"`
	EMAShort     float64 `yaml:"ema_short" json:"ema_short"`
	EMALong      float64 `yaml:"ema_long" json:"ema_long"`
	Support      float64 `yaml:"support" json:"support"`
	Resistance   float64 `yaml:"resistance" json:"resistance"`
	// MACD and Bollinger are only present when advanced indicators are enabled.
	MACD      optional.Option[MACDValues]      `yaml:"macd" json:"macd"`
	Bollinger optional.Option[BollingerValues] `yaml:"bollinger" json:"bollinger"`
}

// MABullish reports whether both moving-average pairs agree on an uptrend.
func (s IndicatorSnapshot) MABullish() bool {
	return s.SMAShort > s.SMALong && s.EMAShort > s.EMALong
}

// Trend classifies the snapshot's moving-average trend.
func (s IndicatorSnapshot) Trend() Trend {
	if s.MABullish() {
		return TrendBullish
	}

	return TrendBearish
}
