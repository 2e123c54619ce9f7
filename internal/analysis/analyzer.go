package analysis

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/abk234/trading-advisor/internal/indicator"
	"github.com/abk234/trading-advisor/internal/logger"
	"github.com/abk234/trading-advisor/internal/types"
	"github.com/abk234/trading-advisor/pkg/errors"
)

// Analyzer fuses the individual indicator signals into a single trade
// recommendation. The same bars and config always produce the same
// recommendation.
type Analyzer struct {
	config  Config
	builder *indicator.SnapshotBuilder
	logger  *logger.Logger
}

// NewAnalyzer creates an Analyzer backed by the given indicator registry.
func NewAnalyzer(config Config, registry indicator.Registry, log *logger.Logger) (*Analyzer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if log == nil {
		log = logger.NewNopLogger()
	}

	return &Analyzer{
		config:  config,
		builder: indicator.NewSnapshotBuilder(registry),
		logger:  log,
	}, nil
}

// Config returns the analyzer's configuration.
func (a *Analyzer) Config() Config {
	return a.config
}

// Analyze evaluates the full price history of a symbol and returns a
// trade recommendation together with the indicator snapshot it was
// derived from.
func (a *Analyzer) Analyze(symbol string, bars []types.PriceBar) (types.TradeRecommendation, types.IndicatorSnapshot, error) {
	if err := types.ValidateBars(bars); err != nil {
		return types.TradeRecommendation{}, types.IndicatorSnapshot{}, err
	}

	snapshot, err := a.builder.Build(bars, a.config.UseAdvancedIndicators)
	if err != nil {
		return types.TradeRecommendation{}, types.IndicatorSnapshot{}, errors.Wrapf(errors.ErrCodeAnalysisFailed, err, "analysis failed for %s", symbol)
	}

	trend := snapshot.Trend()
	bullish, bearish := tallyVotes(snapshot)

	entryPrice, guidance := selectEntry(snapshot, bullish, bearish, trend)
	stopLoss, target := CalculateLevels(entryPrice, snapshot, a.config)
	strength := classifyStrength(snapshot, bullish, bearish)
	observations := collectObservations(snapshot, bullish, bearish)

	a.logger.Debug("analysis complete",
		zap.String("symbol", symbol),
		zap.String("trend", string(trend)),
		zap.String("strength", string(strength)),
		zap.Int("bullish", bullish),
		zap.Int("bearish", bearish),
	)

	recommendation := types.TradeRecommendation{
		Symbol:          symbol,
		CurrentPrice:    snapshot.CurrentPrice,
		Trend:           trend,
		Strength:        strength,
		EntryPrice:      entryPrice,
		StopLoss:        stopLoss,
		TargetPrice:     target,
		RiskRewardRatio: a.config.RiskRewardRatio,
		Support:         snapshot.Support,
		Resistance:      snapshot.Resistance,
		BullishCount:    bullish,
		BearishCount:    bearish,
		EntryGuidance:   guidance,
		Observations:    observations,
	}

	return recommendation, snapshot, nil
}

// tallyVotes counts the bullish and bearish confirmations across the
// moving averages, MACD, and Bollinger Bands. The Bollinger
// NEUTRAL-BEARISH state abstains rather than voting bearish.
func tallyVotes(snapshot types.IndicatorSnapshot) (bullish, bearish int) {
	if snapshot.MABullish() {
		bullish++
	} else {
		bearish++
	}

	if macd, err := snapshot.MACD.Take(); err == nil {
		if macd.Bullish() {
			bullish++
		} else {
			bearish++
		}
	}

	if bb, err := snapshot.Bollinger.Take(); err == nil {
		switch bb.Classify(snapshot.CurrentPrice) {
		case types.BollingerOversold, types.BollingerNeutralBullish:
			bullish++
		case types.BollingerOverbought:
			bearish++
		}
	}

	return bullish, bearish
}

// selectEntry picks the entry price and the human guidance line. The
// pullback level is the higher of support and the short SMA, capped at
// the current price so the entry is never above the market.
func selectEntry(snapshot types.IndicatorSnapshot, bullish, bearish int, trend types.Trend) (float64, string) {
	switch {
	case bullish >= 2:
		if bb, err := snapshot.Bollinger.Take(); err == nil && bb.Classify(snapshot.CurrentPrice) == types.BollingerOversold {
			return bb.Lower, "BUY: Oversold condition with bullish momentum"
		}
		return pullbackEntry(snapshot), "BUY: Multiple bullish signals confirmed"
	case bearish >= 2:
		return snapshot.CurrentPrice, "CAUTION: Multiple bearish signals. Wait for reversal or avoid."
	case trend == types.TrendBullish:
		return pullbackEntry(snapshot), "BUY on pullback to support or moving average"
	default:
		return snapshot.CurrentPrice, "CAUTION: Bearish trend detected. Consider waiting for trend reversal."
	}
}

func pullbackEntry(snapshot types.IndicatorSnapshot) float64 {
	level := snapshot.Support
	if !math.IsNaN(snapshot.SMAShort) && snapshot.SMAShort > level {
		level = snapshot.SMAShort
	}

	return math.Min(snapshot.CurrentPrice, level)
}

// classifyStrength evaluates the strength clauses in order. Later
// clauses overwrite earlier ones on purpose, so an oversold Bollinger
// reading upgrades to STRONG even when the aggregate is bearish.
func classifyStrength(snapshot types.IndicatorSnapshot, bullish, bearish int) types.SignalStrength {
	strength := types.SignalStrengthModerate

	if snapshot.RSI < 30 && bullish >= 2 {
		strength = types.SignalStrengthStrong
	}

	if macd, err := snapshot.MACD.Take(); err == nil && macd.Bullish() && bullish >= 2 {
		strength = types.SignalStrengthStrong
	}

	if bb, err := snapshot.Bollinger.Take(); err == nil && bb.Classify(snapshot.CurrentPrice) == types.BollingerOversold {
		strength = types.SignalStrengthStrong
	}

	if bullish >= 2 {
		strength = types.SignalStrengthStrong
	} else if bearish >= 2 {
		strength = types.SignalStrengthWeak
	}

	return strength
}

// collectObservations builds the per-indicator commentary shown to the
// user alongside the recommendation.
func collectObservations(snapshot types.IndicatorSnapshot, bullish, bearish int) []types.EntryObservation {
	var observations []types.EntryObservation

	switch {
	case snapshot.RSI < 30:
		observations = append(observations, types.EntryObservation{
			Signal:  types.IndicatorTypeRSI,
			Verdict: types.VoteBullish,
			Note:    "RSI indicates OVERSOLD - Good entry opportunity",
		})
	case snapshot.RSI > 70:
		observations = append(observations, types.EntryObservation{
			Signal:  types.IndicatorTypeRSI,
			Verdict: types.VoteBearish,
			Note:    "RSI indicates OVERBOUGHT - Wait for pullback",
		})
	case snapshot.RSI >= 30 && snapshot.RSI <= 50:
		observations = append(observations, types.EntryObservation{
			Signal:  types.IndicatorTypeRSI,
			Verdict: types.VoteNeutral,
			Note:    "RSI in neutral zone - Good entry zone",
		})
	}

	if snapshot.EMAShort > snapshot.EMALong && snapshot.SMAShort > snapshot.SMALong {
		observations = append(observations, types.EntryObservation{
			Signal:  types.IndicatorTypeMA,
			Verdict: types.VoteBullish,
			Note:    "Moving averages show BULLISH momentum",
		})
	} else if snapshot.EMAShort < snapshot.EMALong && snapshot.SMAShort < snapshot.SMALong {
		observations = append(observations, types.EntryObservation{
			Signal:  types.IndicatorTypeMA,
			Verdict: types.VoteBearish,
			Note:    "Moving averages show BEARISH momentum - Wait for reversal",
		})
	}

	if macd, err := snapshot.MACD.Take(); err == nil {
		if macd.Bullish() {
			observations = append(observations, types.EntryObservation{
				Signal:  types.IndicatorTypeMACD,
				Verdict: types.VoteBullish,
				Note:    "MACD shows BULLISH crossover - Momentum building",
			})
		} else {
			observations = append(observations, types.EntryObservation{
				Signal:  types.IndicatorTypeMACD,
				Verdict: types.VoteBearish,
				Note:    "MACD shows BEARISH signal - Wait for reversal",
			})
		}
	}

	if bb, err := snapshot.Bollinger.Take(); err == nil {
		switch signal := bb.Classify(snapshot.CurrentPrice); signal {
		case types.BollingerOversold:
			observations = append(observations, types.EntryObservation{
				Signal:  types.IndicatorTypeBollingerBands,
				Verdict: types.VoteBullish,
				Note:    "Bollinger Bands: OVERSOLD - Potential bounce",
			})
		case types.BollingerOverbought:
			observations = append(observations, types.EntryObservation{
				Signal:  types.IndicatorTypeBollingerBands,
				Verdict: types.VoteBearish,
				Note:    "Bollinger Bands: OVERBOUGHT - Wait for pullback",
			})
		default:
			observations = append(observations, types.EntryObservation{
				Signal:  types.IndicatorTypeBollingerBands,
				Verdict: types.VoteNeutral,
				Note:    fmt.Sprintf("Bollinger Bands: %s", signal),
			})
		}
	}

	if snapshot.CurrentPrice < snapshot.SMAShort {
		observations = append(observations, types.EntryObservation{
			Signal:  types.IndicatorTypeMA,
			Verdict: types.VoteNeutral,
			Note:    "Price below short MA - Potential pullback entry",
		})
	} else if snapshot.CurrentPrice > snapshot.SMAShort {
		observations = append(observations, types.EntryObservation{
			Signal:  types.IndicatorTypeMA,
			Verdict: types.VoteNeutral,
			Note:    "Price above short MA - Momentum entry",
		})
	}

	return observations
}
