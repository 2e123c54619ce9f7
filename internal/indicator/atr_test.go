package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/abk234/trading-advisor/internal/testhelper"
	"github.com/abk234/trading-advisor/internal/types"
)

type ATRTestSuite struct {
	suite.Suite
	atr *ATR
}

func TestATRSuite(t *testing.T) {
	suite.Run(t, new(ATRTestSuite))
}

func (suite *ATRTestSuite) SetupTest() {
	suite.atr = NewATR()
}

func (suite *ATRTestSuite) TestName() {
	suite.Equal(types.IndicatorTypeATR, suite.atr.Name())
}

func (suite *ATRTestSuite) TestConfig() {
	suite.NoError(suite.atr.Config(7))
	suite.Equal(7, suite.atr.period)

	suite.Error(suite.atr.Config())
	suite.Error(suite.atr.Config("14"))
	suite.Error(suite.atr.Config(0))
	suite.Error(suite.atr.Config(-3))
}

func (suite *ATRTestSuite) TestWarmUp() {
	bars := testhelper.RisingBars(30, 100, 1)
	series := suite.atr.Series(bars)

	suite.Len(series, 30)

	for i := 0; i < suite.atr.period-1; i++ {
		suite.True(math.IsNaN(series[i]), "index %d should be warm-up", i)
	}

	for i := suite.atr.period - 1; i < len(series); i++ {
		suite.True(series.Defined(i), "index %d should be defined", i)
	}
}

func (suite *ATRTestSuite) TestNonNegativity() {
	cases := []struct {
		name string
		bars []types.PriceBar
	}{
		{"flat", testhelper.FlatBars(60, 100)},
		{"rising", testhelper.RisingBars(100, 100, 1)},
		{"climb and crash", testhelper.ClimbCrashBars(100, 120, 80, 60, 40)},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			series := suite.atr.Series(tc.bars)
			for i := range series {
				if series.Defined(i) {
					suite.GreaterOrEqual(series[i], 0.0)
				}
			}
		})
	}
}

func (suite *ATRTestSuite) TestFlatSeriesConvergesToZero() {
	bars := testhelper.FlatBars(60, 100)
	series := suite.atr.Series(bars)

	suite.InDelta(0.0, series.Last(), 1e-12)
}

func (suite *ATRTestSuite) TestTrueRangeUsesPreviousClose() {
	// A gap down makes |low - prev close| the largest component.
	bars := []types.PriceBar{
		{High: 102, Low: 98, Close: 100},
		{High: 91, Low: 89, Close: 90},
	}

	suite.NoError(suite.atr.Config(2))
	series := suite.atr.Series(bars)

	// TR[0] = 4, TR[1] = max(2, 9, 11) = 11, ATR = 7.5.
	suite.InDelta(7.5, series[1], 1e-12)
}

func (suite *ATRTestSuite) TestShortSeriesAllUndefined() {
	bars := testhelper.FlatBars(5, 100)
	series := suite.atr.Series(bars)

	for i := range series {
		suite.False(series.Defined(i))
	}
}

func (suite *ATRTestSuite) TestCompute() {
	bars := testhelper.RisingBars(30, 100, 1)
	values, err := suite.atr.Compute(bars)
	suite.NoError(err)
	suite.Contains(values, "atr")
	suite.Len(values["atr"], 30)
}
