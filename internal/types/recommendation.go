package types

import (
	"github.com/go-playground/validator/v10"

	"github.com/abk234/trading-advisor/pkg/errors"
)

// EntryObservation is one structured entry-timing clause: which signal was
// examined, which way it leans, and a short human-readable note. The report
// layer renders these; the numeric recommendation never depends on them.
type EntryObservation struct {
	Signal  IndicatorType `yaml:"signal" json:"signal"`
	Verdict Vote          `yaml:"verdict" json:"verdict"`
	Note    string        `yaml:"note" json:"note"`
}

// TradeRecommendation is the structured output of the Signal Fusion Engine
// and Price-Level Calculator. It is consumed directly by the position sizer
// and forecast classifier; text rendering is a strictly final, one-way step.
type TradeRecommendation struct {
	Symbol       string         `yaml:"symbol" json:"symbol" validate:"required"`
	CurrentPrice float64        `yaml:"current_price" json:"current_price" validate:"gt=0"`
	Trend        Trend          `yaml:"trend" json:"trend" validate:"required,oneof=BULLISH BEARISH"`
	Strength     SignalStrength `yaml:"strength" json:"strength" validate:"required,oneof=STRONG MODERATE WEAK"`
	EntryPrice   float64        `yaml:"entry_price" json:"entry_price" validate:"gt=0"`
	StopLoss     float64        `yaml:"stop_loss" json:"stop_loss" validate:"gt=0,ltfield=EntryPrice"`
	TargetPrice  float64        `yaml:"target_price" json:"target_price" validate:"gt=0"`
	// RiskRewardRatio is the requested ratio, not the post-clamp realized one.
	RiskRewardRatio float64 `yaml:"risk_reward_ratio" json:"risk_reward_ratio" validate:"gt=0"`
	Support         float64 `yaml:"support" json:"support"`
	Resistance      float64 `yaml:"resistance" json:"resistance"`
	BullishCount    int     `yaml:"bullish_count" json:"bullish_count"`
	BearishCount    int     `yaml:"bearish_count" json:"bearish_count"`
	// EntryGuidance is the short entry-strategy sentence for the report.
	EntryGuidance string `yaml:"entry_guidance" json:"entry_guidance"`
	// Observations is the ordered entry-timing clause list.
	Observations []EntryObservation `yaml:"observations" json:"observations"`
}

// Risk returns the per-share risk, entry minus stop.
func (r TradeRecommendation) Risk() float64 {
	return r.EntryPrice - r.StopLoss
}

// Reward returns the per-share reward, target minus entry.
func (r TradeRecommendation) Reward() float64 {
	return r.TargetPrice - r.EntryPrice
}

// Validate validates the TradeRecommendation struct.
func (r *TradeRecommendation) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidRecommendation, "invalid trade recommendation", err)
	}

	return nil
}

// PositionSizing is the fixed fractional-risk sizing result. Computed once
// per recommendation and not retained.
type PositionSizing struct {
	AccountValue    float64 `yaml:"account_value" json:"account_value"`
	RiskPerTradePct float64 `yaml:"risk_per_trade_pct" json:"risk_per_trade_pct"`
	EntryPrice      float64 `yaml:"entry_price" json:"entry_price"`
	StopLoss        float64 `yaml:"stop_loss" json:"stop_loss"`
	// NumShares is floored; zero is a valid "do not trade" result.
	NumShares    int     `yaml:"num_shares" json:"num_shares"`
	TotalCost    float64 `yaml:"total_cost" json:"total_cost"`
	MaxLoss      float64 `yaml:"max_loss" json:"max_loss"`
	RiskPerShare float64 `yaml:"risk_per_share" json:"risk_per_share"`
}

// ForecastDirection is the qualitative price forecast direction.
type ForecastDirection string

const (
	ForecastUp             ForecastDirection = "UP"
	ForecastDownOrSideways ForecastDirection = "DOWN or SIDEWAYS"
	ForecastSideways       ForecastDirection = "SIDEWAYS"
)

// ForecastConfidence is the qualitative confidence label.
type ForecastConfidence string

const (
	ConfidenceHigh     ForecastConfidence = "HIGH"
	ConfidenceModerate ForecastConfidence = "MODERATE"
	ConfidenceLow      ForecastConfidence = "LOW"
)

// Forecast is the deterministic qualitative forecast derived from
// trend and signal strength.
type Forecast struct {
	Direction       ForecastDirection  `yaml:"direction" json:"direction"`
	Timeframe       string             `yaml:"timeframe" json:"timeframe"`
	Confidence      ForecastConfidence `yaml:"confidence" json:"confidence"`
	ExpectedMovePct float64            `yaml:"expected_move_pct" json:"expected_move_pct"`
}

// BuyAdvice is the overall buy classification for the composite analysis.
type BuyAdvice string

const (
	BuyAdviceStrongBuy BuyAdvice = "STRONG BUY"
	BuyAdviceBuy       BuyAdvice = "BUY"
	BuyAdviceWait      BuyAdvice = "WAIT"
	BuyAdviceCaution   BuyAdvice = "CAUTION"
)
