// Package report renders analysis results for the terminal. Rendering
// is one-way: nothing downstream parses the text back.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abk234/trading-advisor/internal/analysis"
	"github.com/abk234/trading-advisor/internal/types"
)

// Style definitions.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Faint(true)
	bullishStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	bearishStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

func trendStyle(trend types.Trend) lipgloss.Style {
	if trend == types.TrendBullish {
		return bullishStyle
	}

	return bearishStyle
}

func adviceStyle(advice types.BuyAdvice) lipgloss.Style {
	switch advice {
	case types.BuyAdviceStrongBuy, types.BuyAdviceBuy:
		return bullishStyle
	case types.BuyAdviceWait:
		return bearishStyle
	default:
		return warnStyle
	}
}

func line(b *strings.Builder, label, format string, args ...any) {
	fmt.Fprintf(b, "  %s %s\n", labelStyle.Render(label+":"), fmt.Sprintf(format, args...))
}

// Recommendation renders a trade recommendation.
func Recommendation(r types.TradeRecommendation) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", titleStyle.Render(fmt.Sprintf("TRADE RECOMMENDATION: %s", r.Symbol)))
	line(&b, "Current Price", "$%.2f", r.CurrentPrice)
	line(&b, "Trend", "%s", trendStyle(r.Trend).Render(string(r.Trend)))
	line(&b, "Signal Strength", "%s", r.Strength)
	line(&b, "Entry Price", "$%.2f", r.EntryPrice)
	line(&b, "Stop Loss", "$%.2f (%.2f%%)", r.StopLoss, (r.StopLoss/r.EntryPrice-1)*100)
	line(&b, "Target Price", "$%.2f (%.2f%%)", r.TargetPrice, (r.TargetPrice/r.EntryPrice-1)*100)
	line(&b, "Risk-Reward Ratio", "%.1f:1", r.RiskRewardRatio)
	line(&b, "Risk", "$%.2f per share", r.Risk())
	line(&b, "Reward", "$%.2f per share", r.Reward())
	line(&b, "Support", "$%.2f", r.Support)
	line(&b, "Resistance", "$%.2f", r.Resistance)
	line(&b, "Signals", "%d bullish / %d bearish", r.BullishCount, r.BearishCount)
	line(&b, "Entry Strategy", "%s", r.EntryGuidance)

	if len(r.Observations) > 0 {
		fmt.Fprintf(&b, "%s\n", titleStyle.Render("ENTRY TIMING"))

		for _, observation := range r.Observations {
			fmt.Fprintf(&b, "  - %s\n", observation.Note)
		}
	}

	return b.String()
}

// Sizing renders a position sizing result.
func Sizing(s types.PositionSizing) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", titleStyle.Render("POSITION SIZING"))
	line(&b, "Account Value", "$%.2f", s.AccountValue)
	line(&b, "Risk Per Trade", "%.2f%%", s.RiskPerTradePct)
	line(&b, "Risk Per Share", "$%.2f", s.RiskPerShare)
	line(&b, "Shares To Buy", "%d", s.NumShares)
	line(&b, "Total Cost", "$%.2f", s.TotalCost)
	line(&b, "Max Loss", "$%.2f", s.MaxLoss)

	if s.NumShares == 0 {
		fmt.Fprintf(&b, "  %s\n", warnStyle.Render("Risk budget too small for one share at this stop."))
	}

	return b.String()
}

// ForecastSection renders a price forecast.
func ForecastSection(f types.Forecast) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", titleStyle.Render("PRICE FORECAST"))
	line(&b, "Direction", "%s", f.Direction)
	line(&b, "Expected Move", "%.2f%%", f.ExpectedMovePct)
	line(&b, "Timeframe", "%s", f.Timeframe)
	line(&b, "Confidence", "%s", f.Confidence)

	return b.String()
}

// Backtest renders a backtest summary.
func Backtest(s types.BacktestSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", titleStyle.Render(fmt.Sprintf("BACKTEST: %s", s.Symbol)))

	if s.TotalTrades == 0 {
		fmt.Fprintf(&b, "  %s\n", warnStyle.Render("No trades were triggered in the window."))

		return b.String()
	}

	line(&b, "Total Trades", "%d", s.TotalTrades)
	line(&b, "Wins / Losses", "%d / %d", s.Wins, s.Losses)
	line(&b, "Win Rate", "%.2f%%", s.WinRate)
	line(&b, "Total Profit", "$%.2f per share", s.TotalProfit)
	line(&b, "Avg Profit", "$%.2f", s.AvgProfit)
	line(&b, "Avg Win", "$%.2f", s.AvgWin)
	line(&b, "Avg Loss", "$%.2f", s.AvgLoss)

	return b.String()
}

// Trades renders the closed trade ledger.
func Trades(trades []types.SimulatedTrade) string {
	if len(trades) == 0 {
		return ""
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", titleStyle.Render("TRADES"))

	for _, t := range trades {
		style := bullishStyle
		if t.Profit <= 0 {
			style = bearishStyle
		}

		fmt.Fprintf(&b, "  %s -> %s  $%.2f -> $%.2f  %s  (%s)\n",
			t.EntryTime.Format("2006-01-02"),
			t.ExitTime.Format("2006-01-02"),
			t.EntryPrice,
			t.ExitPrice,
			style.Render(fmt.Sprintf("%+.2f (%+.2f%%)", t.Profit, t.ProfitPct)),
			t.ExitReason,
		)
	}

	return b.String()
}

// Comprehensive renders the full analysis bundle.
func Comprehensive(result analysis.ComprehensiveResult) string {
	var b strings.Builder

	b.WriteString(Recommendation(result.Recommendation))
	b.WriteString(Sizing(result.Sizing))
	b.WriteString(ForecastSection(result.Forecast))

	fmt.Fprintf(&b, "%s\n", titleStyle.Render("WHEN TO BUY"))
	line(&b, "Advice", "%s", adviceStyle(result.Advice).Render(string(result.Advice)))
	line(&b, "Timing", "%s", result.AdviceTiming)

	fmt.Fprintf(&b, "%s\n", titleStyle.Render("COMPANY RESEARCH"))
	fmt.Fprintf(&b, "  %s\n", result.Research.TakeOr(analysis.ResearchUnavailableNote))

	if result.Summary.TotalTrades > 0 || len(result.Trades) > 0 {
		b.WriteString(Backtest(result.Summary))
		b.WriteString(Trades(result.Trades))
	}

	return b.String()
}
