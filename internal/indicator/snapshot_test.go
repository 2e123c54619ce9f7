package indicator

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/abk234/trading-advisor/internal/testhelper"
	"github.com/abk234/trading-advisor/pkg/errors"
)

type SnapshotTestSuite struct {
	suite.Suite
	builder *SnapshotBuilder
}

func TestSnapshotSuite(t *testing.T) {
	suite.Run(t, new(SnapshotTestSuite))
}

func (suite *SnapshotTestSuite) SetupTest() {
	suite.builder = NewSnapshotBuilder(DefaultRegistry())
}

func (suite *SnapshotTestSuite) TestEmptySeries() {
	_, err := suite.builder.Build(nil, true)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeDataUnavailable))
}

func (suite *SnapshotTestSuite) TestFlatSeries() {
	bars := testhelper.FlatBars(60, 100)
	snapshot, err := suite.builder.Build(bars, true)
	suite.NoError(err)

	suite.InDelta(100.0, snapshot.CurrentPrice, 1e-12)
	// ATR converges to zero on a constant series; RSI is undefined and
	// defaults to the neutral 50.
	suite.InDelta(0.0, snapshot.ATR, 1e-12)
	suite.InDelta(50.0, snapshot.RSI, 1e-12)
	suite.InDelta(100.0, snapshot.SMAShort, 1e-12)
	suite.InDelta(100.0, snapshot.SMALong, 1e-12)
	suite.InDelta(95.0, snapshot.Support, 1e-12)
	suite.InDelta(105.0, snapshot.Resistance, 1e-12)

	suite.True(snapshot.MACD.IsSome())
	suite.True(snapshot.Bollinger.IsSome())

	bb := snapshot.Bollinger.Unwrap()
	suite.InDelta(0.0, bb.Bandwidth, 1e-12)
}

func (suite *SnapshotTestSuite) TestShortSeriesDefaults() {
	bars := testhelper.FlatBars(5, 100)
	snapshot, err := suite.builder.Build(bars, false)
	suite.NoError(err)

	// Below every warm-up window: ATR defaults to 2% of price, RSI to 50.
	suite.InDelta(2.0, snapshot.ATR, 1e-12)
	suite.InDelta(50.0, snapshot.RSI, 1e-12)
}

func (suite *SnapshotTestSuite) TestAdvancedDisabled() {
	bars := testhelper.RisingBars(100, 100, 1)
	snapshot, err := suite.builder.Build(bars, false)
	suite.NoError(err)

	suite.True(snapshot.MACD.IsNone())
	suite.True(snapshot.Bollinger.IsNone())
}

func (suite *SnapshotTestSuite) TestRisingSeriesIsBullish() {
	bars := testhelper.RisingBars(100, 100, 1)
	snapshot, err := suite.builder.Build(bars, true)
	suite.NoError(err)

	suite.True(snapshot.MABullish())
	suite.Greater(snapshot.RSI, 70.0)
	suite.True(snapshot.MACD.IsSome())
}

func (suite *SnapshotTestSuite) TestIncompleteRegistry() {
	builder := NewSnapshotBuilder(NewRegistry())

	_, err := builder.Build(testhelper.FlatBars(60, 100), false)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeIndicatorNotFound))
}
