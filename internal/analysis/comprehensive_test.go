package analysis

import (
	"testing"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/suite"

	"github.com/abk234/trading-advisor/internal/backtest"
	"github.com/abk234/trading-advisor/internal/indicator"
	"github.com/abk234/trading-advisor/internal/testhelper"
	"github.com/abk234/trading-advisor/internal/types"
)

type ComprehensiveTestSuite struct {
	suite.Suite
	analyzer *Analyzer
}

func TestComprehensiveSuite(t *testing.T) {
	suite.Run(t, new(ComprehensiveTestSuite))
}

func (suite *ComprehensiveTestSuite) SetupTest() {
	analyzer, err := NewAnalyzer(DefaultConfig(), indicator.DefaultRegistry(), nil)
	suite.Require().NoError(err)
	suite.analyzer = analyzer
}

func (suite *ComprehensiveTestSuite) TestBundlesAllSections() {
	result, err := suite.analyzer.Comprehensive(backtest.NewSimulator(nil), ComprehensiveRequest{
		Symbol:          "UP",
		Bars:            testhelper.RisingBars(120, 100, 0.5),
		AccountValue:    100000,
		RiskPerTradePct: 1,
	})
	suite.NoError(err)

	suite.Equal("UP", result.Recommendation.Symbol)
	suite.Equal(types.TrendBullish, result.Recommendation.Trend)
	suite.Equal(types.BuyAdviceStrongBuy, result.Advice)
	suite.Equal(types.ForecastUp, result.Forecast.Direction)
	suite.Equal(types.ConfidenceHigh, result.Forecast.Confidence)

	suite.Equal(result.Recommendation.EntryPrice, result.Sizing.EntryPrice)
	suite.Greater(result.Sizing.NumShares, 0)

	suite.Equal("UP", result.Summary.Symbol)
	suite.True(result.Research.IsNone())
}

func (suite *ComprehensiveTestSuite) TestResearchTextPassesThrough() {
	result, err := suite.analyzer.Comprehensive(nil, ComprehensiveRequest{
		Symbol:          "UP",
		Bars:            testhelper.RisingBars(120, 100, 0.5),
		AccountValue:    100000,
		RiskPerTradePct: 1,
		Research:        optional.Some("strong fundamentals"),
	})
	suite.NoError(err)
	suite.Equal("strong fundamentals", result.Research.TakeOr(""))
}

func (suite *ComprehensiveTestSuite) TestNilSimulatorSkipsBacktest() {
	result, err := suite.analyzer.Comprehensive(nil, ComprehensiveRequest{
		Symbol:          "UP",
		Bars:            testhelper.RisingBars(120, 100, 0.5),
		AccountValue:    100000,
		RiskPerTradePct: 1,
	})
	suite.NoError(err)
	suite.Empty(result.Trades)
	suite.Zero(result.Summary.TotalTrades)
}

func (suite *ComprehensiveTestSuite) TestInvalidSizingFailsRun() {
	_, err := suite.analyzer.Comprehensive(nil, ComprehensiveRequest{
		Symbol:          "UP",
		Bars:            testhelper.RisingBars(120, 100, 0.5),
		AccountValue:    0,
		RiskPerTradePct: 1,
	})
	suite.Error(err)
}
