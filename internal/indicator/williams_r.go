package indicator

import (
	"github.com/rxtech-lab/argo-kline/internal/types"
)

const wrNeutral = -50.0

// CalculateWR returns Williams %R in [-100, 0]. Bars before the first full
// window and windows with no range are -50.
func CalculateWR(bars []types.Bar, period int) []float64 {
	period = atLeast(period, 1)
	out := make([]float64, len(bars))

	for i := range bars {
		if i < period-1 {
			out[i] = wrNeutral
			continue
		}

		highest, lowest := highestLowest(bars, i-period+1, i)
		if highest == lowest {
			out[i] = wrNeutral
			continue
		}

		out[i] = -(highest - bars[i].Close) / (highest - lowest) * 100
	}

	return out
}

// WilliamsR fills the WR slot.
type WilliamsR struct{}

// NewWilliamsR creates the Williams %R indicator.
func NewWilliamsR() Indicator {
	return &WilliamsR{}
}

// Name returns the name of the indicator.
func (w *WilliamsR) Name() types.IndicatorType {
	return types.IndicatorTypeWilliamsR
}

// Enabled is true when the WR slot is selected.
func (w *WilliamsR) Enabled(cfg types.IndicatorConfig) bool {
	return types.AnySelected(cfg.WRList)
}

// Apply writes one value per selected WR slot.
func (w *WilliamsR) Apply(series []types.EnrichedBar, cfg types.IndicatorConfig) {
	applySlots(series, cfg.WRList, CalculateWR, func(bar *types.EnrichedBar) *types.SlotValues {
		return &bar.WRList
	})
}
