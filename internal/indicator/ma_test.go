package indicator

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/abk234/trading-advisor/internal/testhelper"
	"github.com/abk234/trading-advisor/internal/types"
)

type MATestSuite struct {
	suite.Suite
	ma *MA
}

func TestMASuite(t *testing.T) {
	suite.Run(t, new(MATestSuite))
}

func (suite *MATestSuite) SetupTest() {
	suite.ma = NewMA()
}

func (suite *MATestSuite) TestName() {
	suite.Equal(types.IndicatorTypeMA, suite.ma.Name())
}

func (suite *MATestSuite) TestConfig() {
	suite.NoError(suite.ma.Config(10, 30))
	suite.Equal(10, suite.ma.shortPeriod)
	suite.Equal(30, suite.ma.longPeriod)

	suite.Error(suite.ma.Config(10))
	suite.Error(suite.ma.Config("10", 30))
	suite.Error(suite.ma.Config(10, "30"))
	suite.Error(suite.ma.Config(0, 30))
	suite.Error(suite.ma.Config(30, 10))
	suite.Error(suite.ma.Config(20, 20))
}

func (suite *MATestSuite) TestSimpleMovingAverage() {
	suite.NoError(suite.ma.Config(3, 5))

	bars := testhelper.BarsFromCloses([]float64{1, 2, 3, 4, 5})
	smaShort, smaLong, _, _ := suite.ma.Series(bars)

	suite.False(smaShort.Defined(0))
	suite.False(smaShort.Defined(1))
	suite.InDelta(2.0, smaShort[2], 1e-12)
	suite.InDelta(3.0, smaShort[3], 1e-12)
	suite.InDelta(4.0, smaShort[4], 1e-12)

	for i := 0; i < 4; i++ {
		suite.False(smaLong.Defined(i))
	}

	suite.InDelta(3.0, smaLong[4], 1e-12)
}

func (suite *MATestSuite) TestExponentialMovingAverageSeed() {
	// Span 3 gives alpha 0.5; the EMA is seeded by the first value.
	suite.NoError(suite.ma.Config(3, 5))

	bars := testhelper.BarsFromCloses([]float64{2, 4, 4})
	_, _, emaShort, _ := suite.ma.Series(bars)

	suite.InDelta(2.0, emaShort[0], 1e-12)
	suite.InDelta(3.0, emaShort[1], 1e-12)
	suite.InDelta(3.5, emaShort[2], 1e-12)
}

func (suite *MATestSuite) TestFlatSeries() {
	bars := testhelper.FlatBars(60, 100)
	smaShort, smaLong, emaShort, emaLong := suite.ma.Series(bars)

	suite.InDelta(100.0, smaShort.Last(), 1e-12)
	suite.InDelta(100.0, smaLong.Last(), 1e-12)
	suite.InDelta(100.0, emaShort.Last(), 1e-12)
	suite.InDelta(100.0, emaLong.Last(), 1e-12)
}

func (suite *MATestSuite) TestRisingSeriesShortAboveLong() {
	bars := testhelper.RisingBars(100, 100, 1)
	smaShort, smaLong, emaShort, emaLong := suite.ma.Series(bars)

	suite.Greater(smaShort.Last(), smaLong.Last())
	suite.Greater(emaShort.Last(), emaLong.Last())
}

func (suite *MATestSuite) TestCompute() {
	bars := testhelper.RisingBars(60, 100, 1)
	values, err := suite.ma.Compute(bars)
	suite.NoError(err)

	for _, key := range []string{"sma_short", "sma_long", "ema_short", "ema_long"} {
		suite.Contains(values, key)
		suite.Len(values[key], 60)
	}
}
