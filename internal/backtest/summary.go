package backtest

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/abk234/trading-advisor/internal/types"
)

// Summarize derives the summary statistics from a trade ledger in one
// pass. A zero-profit trade counts as a loss for the win rate but is
// excluded from the average loss.
func Summarize(symbol string, trades []types.SimulatedTrade) types.BacktestSummary {
	summary := types.BacktestSummary{
		ID:          uuid.NewString(),
		Timestamp:   time.Now(),
		Symbol:      symbol,
		TotalTrades: len(trades),
	}

	if len(trades) == 0 {
		return summary
	}

	total := decimal.Zero
	winSum := decimal.Zero
	lossSum := decimal.Zero

	for _, trade := range trades {
		profit := decimal.NewFromFloat(trade.Profit)
		total = total.Add(profit)

		if trade.Profit > 0 {
			summary.Wins++
			winSum = winSum.Add(profit)
		} else {
			summary.Losses++
			if trade.Profit < 0 {
				lossSum = lossSum.Add(profit)
			}
		}
	}

	summary.WinRate = float64(summary.Wins) / float64(summary.TotalTrades) * 100
	summary.TotalProfit = total.InexactFloat64()
	summary.AvgProfit = total.Div(decimal.NewFromInt(int64(summary.TotalTrades))).InexactFloat64()

	if summary.Wins > 0 {
		summary.AvgWin = winSum.Div(decimal.NewFromInt(int64(summary.Wins))).InexactFloat64()
	}
	if summary.Losses > 0 {
		summary.AvgLoss = lossSum.Div(decimal.NewFromInt(int64(summary.Losses))).InexactFloat64()
	}

	return summary
}
