package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/abk234/trading-advisor/internal/testhelper"
	"github.com/abk234/trading-advisor/internal/types"
)

type RSITestSuite struct {
	suite.Suite
	rsi *RSI
}

func TestRSISuite(t *testing.T) {
	suite.Run(t, new(RSITestSuite))
}

func (suite *RSITestSuite) SetupTest() {
	suite.rsi = NewRSI()
}

func (suite *RSITestSuite) TestName() {
	suite.Equal(types.IndicatorTypeRSI, suite.rsi.Name())
}

func (suite *RSITestSuite) TestConfig() {
	suite.NoError(suite.rsi.Config(21))
	suite.Equal(21, suite.rsi.period)

	suite.Error(suite.rsi.Config())
	suite.Error(suite.rsi.Config(14.0))
	suite.Error(suite.rsi.Config(0))
}

func (suite *RSITestSuite) TestBounds() {
	cases := []struct {
		name string
		bars []types.PriceBar
	}{
		{"rising", testhelper.RisingBars(100, 100, 1)},
		{"climb and crash", testhelper.ClimbCrashBars(100, 120, 80, 60, 40)},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			series := suite.rsi.Series(tc.bars)
			for i := range series {
				if series.Defined(i) {
					suite.GreaterOrEqual(series[i], 0.0)
					suite.LessOrEqual(series[i], 100.0)
				}
			}
		})
	}
}

func (suite *RSITestSuite) TestPerfectUptrendSaturates() {
	bars := testhelper.RisingBars(60, 100, 1)
	series := suite.rsi.Series(bars)

	suite.InDelta(100.0, series.Last(), 1e-9)
}

func (suite *RSITestSuite) TestFlatSeriesUndefined() {
	// No movement at all: both averages are zero, the ratio is undefined,
	// and callers substitute the neutral 50.
	bars := testhelper.FlatBars(60, 100)
	series := suite.rsi.Series(bars)

	suite.True(math.IsNaN(series.Last()))
	suite.InDelta(50.0, series.ValueOr(len(series)-1, 50), 1e-12)
}

func (suite *RSITestSuite) TestWarmUp() {
	bars := testhelper.RisingBars(30, 100, 1)
	series := suite.rsi.Series(bars)

	for i := 0; i < suite.rsi.period-1; i++ {
		suite.False(series.Defined(i), "index %d should be warm-up", i)
	}

	suite.True(series.Defined(suite.rsi.period - 1))
}

func (suite *RSITestSuite) TestKnownAlternatingSeries() {
	// +2 then -1 alternating with period 2: each window holds one gain of 2
	// and one loss of 1, so RS = 2 and RSI = 100 - 100/3.
	suite.NoError(suite.rsi.Config(2))

	bars := testhelper.BarsFromCloses([]float64{100, 102, 101, 103, 102, 104})
	series := suite.rsi.Series(bars)

	for i := 2; i < len(series); i++ {
		suite.InDelta(100-100.0/3.0, series[i], 1e-9)
	}
}
