package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-kline/internal/types"
)

// macdState carries the running averages between bars.
type macdState struct {
	emaShort float64
	emaLong  float64
	dea      float64
}

// ema is the chart's recursive average: (2*value + (k-1)*prev) / (k+1).
func ema(prev, value float64, k int) float64 {
	return (2*value + float64(k-1)*prev) / float64(k+1)
}

func (s macdState) step(close float64, short, long, signal int) (macdState, types.MACDValue) {
	next := macdState{
		emaShort: ema(s.emaShort, close, short),
		emaLong:  ema(s.emaLong, close, long),
	}

	dif := next.emaShort - next.emaLong
	next.dea = ema(s.dea, dif, signal)

	return next, types.MACDValue{
		Dif:  dif,
		Dea:  next.dea,
		MACD: 2 * (dif - next.dea),
	}
}

// CalculateMACD folds the close series into DIF, DEA and the histogram.
// Both averages start at the first close and DEA starts at 0, so the first bar
// is all zeros.
func CalculateMACD(bars []types.Bar, short, long, signal int) []types.MACDValue {
	out := make([]types.MACDValue, len(bars))
	if len(bars) == 0 {
		return out
	}

	short, long, signal = atLeast(short, 1), atLeast(long, 1), atLeast(signal, 1)

	state := macdState{emaShort: bars[0].Close, emaLong: bars[0].Close}
	for i := 1; i < len(bars); i++ {
		state, out[i] = state.step(bars[i].Close, short, long, signal)
	}

	return out
}

// MACD fills DIF, DEA and the histogram when MACD is the sub indicator.
type MACD struct{}

// NewMACD creates the MACD indicator.
func NewMACD() Indicator {
	return &MACD{}
}

// Name returns the name of the indicator.
func (m *MACD) Name() types.IndicatorType {
	return types.IndicatorTypeMACD
}

// Enabled is true when MACD is the selected sub indicator.
func (m *MACD) Enabled(cfg types.IndicatorConfig) bool {
	return cfg.Sub == types.SubIndicatorMACD
}

// Apply writes MACD for macdS, macdL and macdM.
func (m *MACD) Apply(series []types.EnrichedBar, cfg types.IndicatorConfig) {
	values := CalculateMACD(barsOf(series), cfg.MACDS, cfg.MACDL, cfg.MACDM)
	for i := range series {
		series[i].MACD = optional.Some(values[i])
	}
}
