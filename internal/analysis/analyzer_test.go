package analysis

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/abk234/trading-advisor/internal/indicator"
	"github.com/abk234/trading-advisor/internal/logger"
	"github.com/abk234/trading-advisor/internal/testhelper"
	"github.com/abk234/trading-advisor/internal/types"
	"github.com/abk234/trading-advisor/pkg/errors"
)

type AnalyzerTestSuite struct {
	suite.Suite
	analyzer *Analyzer
}

func TestAnalyzerSuite(t *testing.T) {
	suite.Run(t, new(AnalyzerTestSuite))
}

func (suite *AnalyzerTestSuite) SetupTest() {
	analyzer, err := NewAnalyzer(DefaultConfig(), indicator.DefaultRegistry(), logger.NewNopLogger())
	suite.Require().NoError(err)
	suite.analyzer = analyzer
}

func (suite *AnalyzerTestSuite) TestRejectsInvalidConfig() {
	config := DefaultConfig()
	config.RiskRewardRatio = 0

	_, err := NewAnalyzer(config, indicator.DefaultRegistry(), nil)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
}

func (suite *AnalyzerTestSuite) TestEmptySeriesFails() {
	_, _, err := suite.analyzer.Analyze("AAPL", nil)
	suite.Error(err)
}

func (suite *AnalyzerTestSuite) TestFlatSeries() {
	recommendation, snapshot, err := suite.analyzer.Analyze("FLAT", testhelper.FlatBars(100, 100))
	suite.NoError(err)

	suite.Equal("FLAT", recommendation.Symbol)
	suite.Equal(types.TrendBearish, recommendation.Trend)
	suite.Equal(types.SignalStrengthWeak, recommendation.Strength)
	suite.Equal(0, recommendation.BullishCount)
	suite.Equal(2, recommendation.BearishCount)

	// No bullish setup, so the entry stays at the market.
	suite.InDelta(100.0, recommendation.EntryPrice, 1e-9)
	suite.Equal("CAUTION: Multiple bearish signals. Wait for reversal or avoid.", recommendation.EntryGuidance)

	// Zero ATR collapses the raw stop onto the entry, which the clamp
	// then pushes 3% below.
	suite.InDelta(97.0, recommendation.StopLoss, 1e-9)

	// Raw target 106 exceeds the default resistance of 105.
	suite.InDelta(103.95, recommendation.TargetPrice, 1e-9)

	suite.InDelta(95.0, recommendation.Support, 1e-9)
	suite.InDelta(105.0, recommendation.Resistance, 1e-9)
	suite.InDelta(95.0, snapshot.Support, 1e-9)
}

func (suite *AnalyzerTestSuite) TestFlatSeriesObservations() {
	recommendation, _, err := suite.analyzer.Analyze("FLAT", testhelper.FlatBars(100, 100))
	suite.NoError(err)

	notes := make([]string, 0, len(recommendation.Observations))
	for _, observation := range recommendation.Observations {
		notes = append(notes, observation.Note)
	}

	// Neutral RSI (defaulted to 50), bearish MACD, neutral Bollinger.
	// The moving averages are exactly equal and stay silent.
	suite.Equal([]string{
		"RSI in neutral zone - Good entry zone",
		"MACD shows BEARISH signal - Wait for reversal",
		"Bollinger Bands: NEUTRAL-BEARISH",
	}, notes)
}

func (suite *AnalyzerTestSuite) TestSteadyRiseIsStrongBullish() {
	recommendation, snapshot, err := suite.analyzer.Analyze("UP", testhelper.RisingBars(120, 100, 0.5))
	suite.NoError(err)

	suite.Equal(types.TrendBullish, recommendation.Trend)
	suite.Equal(types.SignalStrengthStrong, recommendation.Strength)
	suite.GreaterOrEqual(recommendation.BullishCount, 2)

	// Pullback entry sits at or below the market.
	suite.LessOrEqual(recommendation.EntryPrice, snapshot.CurrentPrice)
	suite.Equal("BUY: Multiple bullish signals confirmed", recommendation.EntryGuidance)

	suite.Less(recommendation.StopLoss, recommendation.EntryPrice)
	suite.Greater(recommendation.TargetPrice, recommendation.EntryPrice)

	suite.NoError(recommendation.Validate())
}

func (suite *AnalyzerTestSuite) TestAdvancedDisabledSkipsExtraVotes() {
	config := DefaultConfig()
	config.UseAdvancedIndicators = false

	analyzer, err := NewAnalyzer(config, indicator.DefaultRegistry(), nil)
	suite.Require().NoError(err)

	recommendation, snapshot, err := analyzer.Analyze("UP", testhelper.RisingBars(120, 100, 0.5))
	suite.NoError(err)

	suite.True(snapshot.MACD.IsNone())
	suite.True(snapshot.Bollinger.IsNone())
	// Only the moving average vote remains.
	suite.Equal(1, recommendation.BullishCount+recommendation.BearishCount)
}

func (suite *AnalyzerTestSuite) TestAnalyzeIsDeterministic() {
	bars := testhelper.RisingBars(120, 100, 0.5)

	first, _, err := suite.analyzer.Analyze("UP", bars)
	suite.NoError(err)
	second, _, err := suite.analyzer.Analyze("UP", bars)
	suite.NoError(err)

	suite.Equal(first, second)
}

func (suite *AnalyzerTestSuite) TestUnorderedBarsRejected() {
	bars := testhelper.FlatBars(60, 100)
	bars[10].Time = bars[40].Time

	_, _, err := suite.analyzer.Analyze("BAD", bars)
	suite.Error(err)
}
