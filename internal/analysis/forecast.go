package analysis

import (
	"math"

	"github.com/abk234/trading-advisor/internal/types"
)

// ClassifyForecast maps trend and signal strength onto a qualitative
// price forecast. The expected move is the reward relative to the entry.
func ClassifyForecast(recommendation types.TradeRecommendation) types.Forecast {
	forecast := types.Forecast{
		ExpectedMovePct: math.Abs(recommendation.Reward() / recommendation.EntryPrice * 100),
	}

	switch {
	case recommendation.Trend == types.TrendBullish &&
		(recommendation.Strength == types.SignalStrengthStrong || recommendation.Strength == types.SignalStrengthModerate):
		forecast.Direction = types.ForecastUp
		forecast.Timeframe = "1-3 months"
		forecast.Confidence = types.ConfidenceModerate
		if recommendation.Strength == types.SignalStrengthStrong {
			forecast.Confidence = types.ConfidenceHigh
		}
	case recommendation.Trend == types.TrendBearish || recommendation.Strength == types.SignalStrengthWeak:
		forecast.Direction = types.ForecastDownOrSideways
		forecast.Timeframe = "Wait for better entry"
		forecast.Confidence = types.ConfidenceLow
	default:
		forecast.Direction = types.ForecastSideways
		forecast.Timeframe = "1-2 months"
		forecast.Confidence = types.ConfidenceModerate
	}

	return forecast
}

// ClassifyBuyAdvice maps trend and signal strength onto a buy
// classification and a one-line timing hint.
func ClassifyBuyAdvice(recommendation types.TradeRecommendation) (types.BuyAdvice, string) {
	switch {
	case recommendation.Strength == types.SignalStrengthStrong && recommendation.Trend == types.TrendBullish:
		return types.BuyAdviceStrongBuy, "Buy now or on any small pullback"
	case recommendation.Strength == types.SignalStrengthModerate && recommendation.Trend == types.TrendBullish:
		return types.BuyAdviceBuy, "Buy on pullback to support or moving average"
	case recommendation.Strength == types.SignalStrengthWeak || recommendation.Trend == types.TrendBearish:
		return types.BuyAdviceWait, "Wait for trend reversal or stronger bullish signals"
	default:
		return types.BuyAdviceCaution, "Wait for clearer signals or better entry point"
	}
}
