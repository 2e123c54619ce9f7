package backtest

import (
	"math"

	"go.uber.org/zap"

	"github.com/abk234/trading-advisor/internal/indicator"
	"github.com/abk234/trading-advisor/internal/logger"
	"github.com/abk234/trading-advisor/internal/types"
	"github.com/abk234/trading-advisor/pkg/errors"
)

// warmUpBars is the number of bars skipped before the simulator starts
// trading, so the long moving average is fully defined.
const warmUpBars = 50

// Params are the trade levels the simulator tests against history.
type Params struct {
	// EntryPrice is the level the strategy wants to enter near. A fill
	// happens at the bar close, not at this level.
	EntryPrice  float64
	StopLoss    float64
	TargetPrice float64
	// UseAdvancedIndicators adds the MACD and Bollinger gates on entry
	// and the indicator-driven exit rules.
	UseAdvancedIndicators bool
}

// Validate checks the params for a long trade.
func (p Params) Validate() error {
	if p.EntryPrice <= 0 {
		return errors.Newf(errors.ErrCodeInvalidParameter, "entry price must be positive, got %.2f", p.EntryPrice)
	}
	if p.StopLoss >= p.EntryPrice {
		return errors.Newf(errors.ErrCodeBacktestInvalidSpan, "stop loss %.2f must be below entry %.2f", p.StopLoss, p.EntryPrice)
	}
	if p.TargetPrice <= p.EntryPrice {
		return errors.Newf(errors.ErrCodeBacktestInvalidSpan, "target %.2f must be above entry %.2f", p.TargetPrice, p.EntryPrice)
	}

	return nil
}

// Simulator replays a recommendation over historical bars with a
// long-only, one-position state machine.
type Simulator struct {
	logger *logger.Logger

	// OnProgress, when set, is called once per simulated bar.
	OnProgress func(current, total int)
}

// NewSimulator creates a Simulator.
func NewSimulator(log *logger.Logger) *Simulator {
	if log == nil {
		log = logger.NewNopLogger()
	}

	return &Simulator{logger: log}
}

type position struct {
	open       bool
	entryPrice float64
	entryTime  int
}

// Run simulates the strategy over the bars and returns the closed
// trades with their summary. A window too short to trade yields zero
// trades and a zeroed summary, not an error.
func (s *Simulator) Run(symbol string, bars []types.PriceBar, params Params) ([]types.SimulatedTrade, types.BacktestSummary, error) {
	if err := params.Validate(); err != nil {
		return nil, types.BacktestSummary{}, err
	}
	if err := types.ValidateBars(bars); err != nil {
		return nil, types.BacktestSummary{}, err
	}

	series := computeSeries(bars, params.UseAdvancedIndicators)

	var trades []types.SimulatedTrade
	var pos position

	for i := warmUpBars; i < len(bars); i++ {
		price := bars[i].Close

		if !pos.open {
			if s.shouldEnter(series, params, i, price) {
				pos = position{open: true, entryPrice: price, entryTime: i}
			}
		} else {
			exitPrice, reason := s.checkExits(series, params, pos, i, price)
			if reason != "" {
				trades = append(trades, closeTrade(bars, pos, i, exitPrice, reason))
				pos = position{}
			}
		}

		if i == len(bars)-1 && pos.open {
			trades = append(trades, closeTrade(bars, pos, i, price, types.ExitReasonEndOfPeriod))
			pos = position{}
		}

		if s.OnProgress != nil {
			s.OnProgress(i-warmUpBars+1, len(bars)-warmUpBars)
		}
	}

	summary := Summarize(symbol, trades)

	s.logger.Debug("backtest complete",
		zap.String("symbol", symbol),
		zap.Int("trades", summary.TotalTrades),
		zap.Float64("win_rate", summary.WinRate),
	)

	return trades, summary, nil
}

type barSeries struct {
	smaShort indicator.Series
	smaLong  indicator.Series
	rsi      indicator.Series
	macdLine indicator.Series
	macdSig  indicator.Series
	bbUpper  indicator.Series
	bbLower  indicator.Series
}

func computeSeries(bars []types.PriceBar, advanced bool) barSeries {
	var series barSeries

	series.smaShort, series.smaLong, _, _ = indicator.NewMA().Series(bars)
	series.rsi = indicator.NewRSI().Series(bars)

	if advanced {
		series.macdLine, series.macdSig, _ = indicator.NewMACD().Series(bars)
		series.bbUpper, _, series.bbLower, _, _ = indicator.NewBollingerBands().Series(bars)
	}

	return series
}

// shouldEnter checks the entry gate: bullish moving averages, RSI not
// overbought, and the bar close within 2% of the recommended entry.
// Advanced mode also requires bullish MACD and the close at or above
// the lower Bollinger Band.
func (s *Simulator) shouldEnter(series barSeries, params Params, i int, price float64) bool {
	maBullish := series.smaShort[i] > series.smaLong[i]
	rsiOK := series.rsi.ValueOr(i, 50) < 70
	nearEntry := math.Abs(price-params.EntryPrice)/params.EntryPrice < 0.02

	if !maBullish || !rsiOK || !nearEntry {
		return false
	}

	if params.UseAdvancedIndicators {
		if !(series.macdLine[i] > series.macdSig[i]) {
			return false
		}
		if series.bbLower.Defined(i) && price < series.bbLower[i] {
			return false
		}
	}

	return true
}

// checkExits evaluates the exit rules for an open position. Hard level
// exits fill at the level itself; indicator exits fill at the bar
// close, and when several fire on the same bar the last one evaluated
// names the trade.
func (s *Simulator) checkExits(series barSeries, params Params, pos position, i int, price float64) (float64, types.ExitReason) {
	var exitPrice float64
	var reason types.ExitReason

	switch {
	case price <= params.StopLoss:
		return params.StopLoss, types.ExitReasonStopLoss
	case price >= params.TargetPrice:
		return params.TargetPrice, types.ExitReasonTargetReached
	case price > pos.entryPrice*1.1:
		trailing := price * 0.95
		if price < trailing {
			return trailing, types.ExitReasonTrailingStop
		}
	}

	if !params.UseAdvancedIndicators {
		return 0, ""
	}

	if series.smaShort[i] < series.smaLong[i] {
		exitPrice, reason = price, types.ExitReasonBearishReversal
	}
	if series.rsi.ValueOr(i, 50) > 70 {
		exitPrice, reason = price, types.ExitReasonRSIOverbought
	}
	if series.macdLine[i] < series.macdSig[i] {
		exitPrice, reason = price, types.ExitReasonMACDBearish
	}
	if series.bbUpper.Defined(i) && price > series.bbUpper[i] {
		exitPrice, reason = price, types.ExitReasonBollingerOverbought
	}

	return exitPrice, reason
}

func closeTrade(bars []types.PriceBar, pos position, i int, exitPrice float64, reason types.ExitReason) types.SimulatedTrade {
	return types.SimulatedTrade{
		EntryTime:  bars[pos.entryTime].Time,
		EntryPrice: pos.entryPrice,
		ExitTime:   bars[i].Time,
		ExitPrice:  exitPrice,
		Profit:     exitPrice - pos.entryPrice,
		ProfitPct:  (exitPrice - pos.entryPrice) / pos.entryPrice * 100,
		ExitReason: reason,
	}
}
