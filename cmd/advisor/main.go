package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/moznion/go-optional"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/abk234/trading-advisor/internal/analysis"
	"github.com/abk234/trading-advisor/internal/backtest"
	"github.com/abk234/trading-advisor/internal/datasource"
	"github.com/abk234/trading-advisor/internal/indicator"
	"github.com/abk234/trading-advisor/internal/logger"
	"github.com/abk234/trading-advisor/internal/report"
	"github.com/abk234/trading-advisor/internal/types"
	"github.com/abk234/trading-advisor/internal/version"
)

func dataFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "data",
			Aliases:  []string{"d"},
			Usage:    "Path to the price data file (.csv or .parquet)",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "symbol",
			Aliases:  []string{"s"},
			Usage:    "Ticker symbol the data belongs to",
			Required: true,
		},
		&cli.StringFlag{
			Name:    "period",
			Aliases: []string{"p"},
			Usage:   fmt.Sprintf("Lookback period, one of %v", types.Periods()),
			Value:   string(types.Period1Y),
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to an analysis config YAML file",
		},
	}
}

// loadBars opens the data file and returns the bars within the lookback
// window ending at the newest bar.
func loadBars(cmd *cli.Command, log *logger.Logger) ([]types.PriceBar, error) {
	period, err := types.ParsePeriod(cmd.String("period"))
	if err != nil {
		return nil, err
	}

	source, err := datasource.NewDuckDBDataSource("", log)
	if err != nil {
		return nil, err
	}
	defer source.Close()

	if err := source.Initialize(cmd.String("data")); err != nil {
		return nil, err
	}

	all, err := source.ReadAll(optional.None[time.Time](), optional.None[time.Time]())
	if err != nil {
		return nil, err
	}

	if len(all) == 0 {
		return all, nil
	}

	start := period.Start(all[len(all)-1].Time)
	if start.IsNone() {
		return all, nil
	}

	bars := all
	for i, bar := range all {
		if !bar.Time.Before(start.Unwrap()) {
			bars = all[i:]

			break
		}
	}

	return bars, nil
}

func loadConfig(cmd *cli.Command) (analysis.Config, error) {
	path := cmd.String("config")
	if path == "" {
		return analysis.DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return analysis.Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return analysis.ParseConfig(data)
}

func newAnalyzer(cmd *cli.Command, log *logger.Logger) (*analysis.Analyzer, error) {
	config, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	return analysis.NewAnalyzer(config, indicator.DefaultRegistry(), log)
}

func analyzeAction(ctx context.Context, cmd *cli.Command) error {
	log, err := logger.NewLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	analyzer, err := newAnalyzer(cmd, log)
	if err != nil {
		return err
	}

	bars, err := loadBars(cmd, log)
	if err != nil {
		return err
	}

	recommendation, _, err := analyzer.Analyze(cmd.String("symbol"), bars)
	if err != nil {
		return err
	}

	fmt.Print(report.Recommendation(recommendation))

	return nil
}

func sizeAction(ctx context.Context, cmd *cli.Command) error {
	log, err := logger.NewLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	analyzer, err := newAnalyzer(cmd, log)
	if err != nil {
		return err
	}

	bars, err := loadBars(cmd, log)
	if err != nil {
		return err
	}

	recommendation, _, err := analyzer.Analyze(cmd.String("symbol"), bars)
	if err != nil {
		return err
	}

	sizing, err := analysis.SizePosition(
		cmd.Float64("account"),
		recommendation.EntryPrice,
		recommendation.StopLoss,
		cmd.Float64("risk"),
	)
	if err != nil {
		return err
	}

	fmt.Print(report.Recommendation(recommendation))
	fmt.Print(report.Sizing(sizing))

	return nil
}

func backtestAction(ctx context.Context, cmd *cli.Command) error {
	log, err := logger.NewLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	analyzer, err := newAnalyzer(cmd, log)
	if err != nil {
		return err
	}

	bars, err := loadBars(cmd, log)
	if err != nil {
		return err
	}

	symbol := cmd.String("symbol")

	recommendation, _, err := analyzer.Analyze(symbol, bars)
	if err != nil {
		return err
	}

	simulator := backtest.NewSimulator(log)

	bar := progressbar.Default(int64(len(bars)))
	bar.Describe(fmt.Sprintf("Backtesting %s", symbol))
	simulator.OnProgress = func(current, total int) {
		bar.ChangeMax(total)
		_ = bar.Set(current)
	}

	trades, summary, err := simulator.Run(symbol, bars, backtest.Params{
		EntryPrice:            recommendation.EntryPrice,
		StopLoss:              recommendation.StopLoss,
		TargetPrice:           recommendation.TargetPrice,
		UseAdvancedIndicators: analyzer.Config().UseAdvancedIndicators,
	})
	if err != nil {
		return err
	}

	_ = bar.Finish()
	fmt.Println()

	fmt.Print(report.Backtest(summary))
	fmt.Print(report.Trades(trades))

	if output := cmd.String("output"); output != "" {
		if err := types.WriteBacktestSummary(output, summary); err != nil {
			return err
		}

		log.Info("wrote backtest summary", zap.String("path", output))
	}

	return nil
}

func comprehensiveAction(ctx context.Context, cmd *cli.Command) error {
	log, err := logger.NewLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	analyzer, err := newAnalyzer(cmd, log)
	if err != nil {
		return err
	}

	bars, err := loadBars(cmd, log)
	if err != nil {
		return err
	}

	research := optional.None[string]()

	if path := cmd.String("research-file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn("research file unavailable, continuing without it", zap.String("path", path), zap.Error(err))
		} else {
			research = optional.Some(string(data))
		}
	}

	result, err := analyzer.Comprehensive(backtest.NewSimulator(log), analysis.ComprehensiveRequest{
		Symbol:          cmd.String("symbol"),
		Bars:            bars,
		AccountValue:    cmd.Float64("account"),
		RiskPerTradePct: cmd.Float64("risk"),
		Research:        research,
	})
	if err != nil {
		return err
	}

	fmt.Print(report.Comprehensive(result))

	return nil
}

func main() {
	accountFlags := []cli.Flag{
		&cli.Float64Flag{
			Name:     "account",
			Aliases:  []string{"a"},
			Usage:    "Account value in dollars",
			Required: true,
		},
		&cli.Float64Flag{
			Name:    "risk",
			Aliases: []string{"r"},
			Usage:   "Risk per trade as a percentage of the account",
			Value:   2.0,
		},
	}

	backtestFlags := append(dataFlags(), &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write the backtest summary to a YAML file",
	})

	comprehensiveFlags := append(append(dataFlags(), accountFlags...), &cli.StringFlag{
		Name:  "research-file",
		Usage: "Optional text file with company research to include",
	})

	cmd := &cli.Command{
		Name:    "advisor",
		Usage:   "Technical analysis and trade recommendations from historical price data",
		Version: version.GetVersion(),
		Commands: []*cli.Command{
			{
				Name:   "analyze",
				Usage:  "Analyze a symbol and print a trade recommendation",
				Flags:  dataFlags(),
				Action: analyzeAction,
			},
			{
				Name:   "size",
				Usage:  "Analyze a symbol and size the position for an account",
				Flags:  append(dataFlags(), accountFlags...),
				Action: sizeAction,
			},
			{
				Name:   "backtest",
				Usage:  "Backtest the recommended levels over the same history",
				Flags:  backtestFlags,
				Action: backtestAction,
			},
			{
				Name:   "comprehensive",
				Usage:  "Full analysis: recommendation, sizing, forecast, and backtest",
				Flags:  comprehensiveFlags,
				Action: comprehensiveAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
