package analysis

import (
	"github.com/moznion/go-optional"

	"github.com/abk234/trading-advisor/internal/backtest"
	"github.com/abk234/trading-advisor/internal/types"
)

// ResearchUnavailableNote is substituted when the external research text
// cannot be loaded. The technical analysis proceeds regardless.
const ResearchUnavailableNote = "Company research is unavailable. Recommendation is based on technical analysis only."

// ComprehensiveResult bundles everything one symbol analysis produces:
// the recommendation, the snapshot it came from, position sizing,
// forecast, buy advice, and a backtest of the recommended levels over
// the same history. The pieces flow between each other as structured
// data, never as rendered text.
type ComprehensiveResult struct {
	Recommendation types.TradeRecommendation
	Snapshot       types.IndicatorSnapshot
	Sizing         types.PositionSizing
	Forecast       types.Forecast
	Advice         types.BuyAdvice
	AdviceTiming   string
	Research       optional.Option[string]
	Trades         []types.SimulatedTrade
	Summary        types.BacktestSummary
}

// ComprehensiveRequest carries the inputs of a Comprehensive run.
type ComprehensiveRequest struct {
	Symbol          string
	Bars            []types.PriceBar
	AccountValue    float64
	RiskPerTradePct float64
	// Research is optional external research text; None renders as
	// ResearchUnavailableNote downstream.
	Research optional.Option[string]
}

// Comprehensive runs the full pipeline for one symbol: analyze, size
// the position, classify the forecast and buy advice, and backtest the
// recommended levels over the supplied history.
func (a *Analyzer) Comprehensive(simulator *backtest.Simulator, request ComprehensiveRequest) (ComprehensiveResult, error) {
	recommendation, snapshot, err := a.Analyze(request.Symbol, request.Bars)
	if err != nil {
		return ComprehensiveResult{}, err
	}

	sizing, err := SizePosition(request.AccountValue, recommendation.EntryPrice, recommendation.StopLoss, request.RiskPerTradePct)
	if err != nil {
		return ComprehensiveResult{}, err
	}

	forecast := ClassifyForecast(recommendation)
	advice, timing := ClassifyBuyAdvice(recommendation)

	result := ComprehensiveResult{
		Recommendation: recommendation,
		Snapshot:       snapshot,
		Sizing:         sizing,
		Forecast:       forecast,
		Advice:         advice,
		AdviceTiming:   timing,
		Research:       request.Research,
	}

	params := backtest.Params{
		EntryPrice:            recommendation.EntryPrice,
		StopLoss:              recommendation.StopLoss,
		TargetPrice:           recommendation.TargetPrice,
		UseAdvancedIndicators: a.config.UseAdvancedIndicators,
	}

	// A clamped target can land at or below a bearish entry. Such levels
	// are not tradeable, so the backtest is skipped rather than failed.
	if simulator != nil && params.Validate() == nil {
		trades, summary, err := simulator.Run(request.Symbol, request.Bars, params)
		if err != nil {
			return ComprehensiveResult{}, err
		}

		result.Trades = trades
		result.Summary = summary
	}

	return result, nil
}
