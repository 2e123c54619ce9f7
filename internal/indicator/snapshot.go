package indicator

import (
	"github.com/moznion/go-optional"

	"github.com/abk234/trading-advisor/internal/types"
	"github.com/abk234/trading-advisor/pkg/errors"
)

// SnapshotBuilder assembles the most-recent-bar IndicatorSnapshot from a
// complete price series, resolving indicators through a registry built at
// process startup.
type SnapshotBuilder struct {
	registry Registry
}

// NewSnapshotBuilder creates a snapshot builder over the given registry.
func NewSnapshotBuilder(registry Registry) *SnapshotBuilder {
	return &SnapshotBuilder{registry: registry}
}

// Build computes every indicator at the last bar of the series. Warm-up
// gaps are absorbed here with the documented defaults: ATR falls back to
// 2% of the current price and RSI to the neutral 50. MACD and Bollinger
// readings are only computed when advanced indicators are enabled.
func (b *SnapshotBuilder) Build(bars []types.PriceBar, advanced bool) (types.IndicatorSnapshot, error) {
	if len(bars) == 0 {
		return types.IndicatorSnapshot{}, errors.New(errors.ErrCodeDataUnavailable, "price series is empty")
	}

	currentPrice := bars[len(bars)-1].Close

	atr, err := b.atr()
	if err != nil {
		return types.IndicatorSnapshot{}, err
	}

	rsi, err := b.rsi()
	if err != nil {
		return types.IndicatorSnapshot{}, err
	}

	ma, err := b.ma()
	if err != nil {
		return types.IndicatorSnapshot{}, err
	}

	sr, err := b.supportResistance()
	if err != nil {
		return types.IndicatorSnapshot{}, err
	}

	smaShort, smaLong, emaShort, emaLong := ma.Series(bars)
	support, resistance := sr.Nearest(bars)

	last := len(bars) - 1
	snapshot := types.IndicatorSnapshot{
		CurrentPrice: currentPrice,
		ATR:          atr.Series(bars).ValueOr(last, currentPrice*0.02),
		RSI:          rsi.Series(bars).ValueOr(last, 50),
		SMAShort:     smaShort.Last(),
		SMALong:      smaLong.Last(),
		EMAShort:     emaShort.Last(),
		EMALong:      emaLong.Last(),
		Support:      support,
		Resistance:   resistance,
		MACD:         optional.None[types.MACDValues](),
		Bollinger:    optional.None[types.BollingerValues](),
	}

	if !advanced {
		return snapshot, nil
	}

	macd, err := b.macd()
	if err != nil {
		return types.IndicatorSnapshot{}, err
	}

	bb, err := b.bollinger()
	if err != nil {
		return types.IndicatorSnapshot{}, err
	}

	line, signal, histogram := macd.Series(bars)

	prevHistogram := 0.0
	if histogram.Defined(last - 1) {
		prevHistogram = histogram[last-1]
	}

	snapshot.MACD = optional.Some(types.MACDValues{
		Line:          line.Last(),
		Signal:        signal.Last(),
		Histogram:     histogram.Last(),
		PrevHistogram: prevHistogram,
	})

	upper, middle, lower, percentB, bandwidth := bb.Series(bars)
	snapshot.Bollinger = optional.Some(types.BollingerValues{
		Upper:     upper.Last(),
		Middle:    middle.Last(),
		Lower:     lower.Last(),
		PercentB:  percentB.Last(),
		Bandwidth: bandwidth.Last(),
	})

	return snapshot, nil
}

func (b *SnapshotBuilder) atr() (*ATR, error) {
	ind, err := b.registry.GetIndicator(types.IndicatorTypeATR)
	if err != nil {
		return nil, err
	}

	atr, ok := ind.(*ATR)
	if !ok {
		return nil, errors.Newf(errors.ErrCodeInvalidType, "indicator %s is not an ATR", ind.Name())
	}

	return atr, nil
}

func (b *SnapshotBuilder) rsi() (*RSI, error) {
	ind, err := b.registry.GetIndicator(types.IndicatorTypeRSI)
	if err != nil {
		return nil, err
	}

	rsi, ok := ind.(*RSI)
	if !ok {
		return nil, errors.Newf(errors.ErrCodeInvalidType, "indicator %s is not an RSI", ind.Name())
	}

	return rsi, nil
}

func (b *SnapshotBuilder) ma() (*MA, error) {
	ind, err := b.registry.GetIndicator(types.IndicatorTypeMA)
	if err != nil {
		return nil, err
	}

	ma, ok := ind.(*MA)
	if !ok {
		return nil, errors.Newf(errors.ErrCodeInvalidType, "indicator %s is not an MA", ind.Name())
	}

	return ma, nil
}

func (b *SnapshotBuilder) macd() (*MACD, error) {
	ind, err := b.registry.GetIndicator(types.IndicatorTypeMACD)
	if err != nil {
		return nil, err
	}

	macd, ok := ind.(*MACD)
	if !ok {
		return nil, errors.Newf(errors.ErrCodeInvalidType, "indicator %s is not a MACD", ind.Name())
	}

	return macd, nil
}

func (b *SnapshotBuilder) bollinger() (*BollingerBands, error) {
	ind, err := b.registry.GetIndicator(types.IndicatorTypeBollingerBands)
	if err != nil {
		return nil, err
	}

	bb, ok := ind.(*BollingerBands)
	if !ok {
		return nil, errors.Newf(errors.ErrCodeInvalidType, "indicator %s is not a BollingerBands", ind.Name())
	}

	return bb, nil
}

func (b *SnapshotBuilder) supportResistance() (*SupportResistance, error) {
	ind, err := b.registry.GetIndicator(types.IndicatorTypeSupportResistance)
	if err != nil {
		return nil, err
	}

	sr, ok := ind.(*SupportResistance)
	if !ok {
		return nil, errors.Newf(errors.ErrCodeInvalidType, "indicator %s is not a SupportResistance", ind.Name())
	}

	return sr, nil
}
