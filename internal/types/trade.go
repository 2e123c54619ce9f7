package types

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ExitReason records why the backtest simulator closed a position.
type ExitReason string

const (
	ExitReasonStopLoss            ExitReason = "stop_loss"
	ExitReasonTargetReached       ExitReason = "target_reached"
	ExitReasonTrailingStop        ExitReason = "trailing_stop"
	ExitReasonBearishReversal     ExitReason = "bearish_reversal"
	ExitReasonRSIOverbought       ExitReason = "rsi_overbought"
	ExitReasonMACDBearish         ExitReason = "macd_bearish"
	ExitReasonBollingerOverbought ExitReason = "bollinger_overbought"
	ExitReasonEndOfPeriod         ExitReason = "end_of_period"
)

// SimulatedTrade is one closed round trip from the backtest simulator.
type SimulatedTrade struct {
	EntryTime  time.Time  `yaml:"entry_time" json:"entry_time" csv:"entry_time"`
	ExitTime   time.Time  `yaml:"exit_time" json:"exit_time" csv:"exit_time"`
	EntryPrice float64    `yaml:"entry_price" json:"entry_price" csv:"entry_price"`
	ExitPrice  float64    `yaml:"exit_price" json:"exit_price" csv:"exit_price"`
	// Profit is exit minus entry per share.
	Profit float64 `yaml:"profit" json:"profit" csv:"profit"`
	// ProfitPct is the profit relative to the entry price, in percent.
	ProfitPct  float64    `yaml:"profit_pct" json:"profit_pct" csv:"profit_pct"`
	ExitReason ExitReason `yaml:"exit_reason" json:"exit_reason" csv:"exit_reason"`
}

// BacktestSummary aggregates a backtest run's trade ledger. It is derived
// from the full ledger in a single pass and never mutated in place.
type BacktestSummary struct {
	// ID is the unique identifier for this backtest run.
	ID string `yaml:"id" json:"id"`
	// Timestamp is when this backtest run was executed.
	Timestamp time.Time `yaml:"timestamp" json:"timestamp"`
	// Symbol of the instrument.
	Symbol      string  `yaml:"symbol" json:"symbol"`
	TotalTrades int     `yaml:"total_trades" json:"total_trades"`
	Wins        int     `yaml:"wins" json:"wins"`
	Losses      int     `yaml:"losses" json:"losses"`
	WinRate     float64 `yaml:"win_rate" json:"win_rate"`
	TotalProfit float64 `yaml:"total_profit" json:"total_profit"`
	AvgProfit   float64 `yaml:"avg_profit" json:"avg_profit"`
	AvgWin      float64 `yaml:"avg_win" json:"avg_win"`
	AvgLoss     float64 `yaml:"avg_loss" json:"avg_loss"`
}

// WriteBacktestSummary writes a summary to a YAML file.
func WriteBacktestSummary(path string, summary BacktestSummary) error {
	data, err := yaml.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal backtest summary to YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write backtest summary to file: %w", err)
	}

	return nil
}
