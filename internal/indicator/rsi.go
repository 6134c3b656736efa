package indicator

import (
	"github.com/rxtech-lab/argo-kline/internal/types"
)

const (
	rsiNeutral = 50.0
	// rsiFlatLossRS is the relative strength used when the window has no losses.
	rsiFlatLossRS = 100.0
)

// CalculateRSI returns the relative strength index from simple sums of the
// last period close-to-close changes. Bars with fewer than period prior
// changes, the first bar included, are 50.
func CalculateRSI(bars []types.Bar, period int) []float64 {
	period = atLeast(period, 1)
	out := make([]float64, len(bars))

	for i := range bars {
		if i < period {
			out[i] = rsiNeutral
			continue
		}

		gains, losses := 0.0, 0.0
		for j := i - period + 1; j <= i; j++ {
			change := bars[j].Close - bars[j-1].Close
			if change > 0 {
				gains += change
			} else {
				losses -= change
			}
		}

		avgGain := gains / float64(period)
		avgLoss := losses / float64(period)

		rs := rsiFlatLossRS
		if avgLoss != 0 {
			rs = avgGain / avgLoss
		}

		out[i] = 100 - 100/(1+rs)
	}

	return out
}

// RSI fills the RSI slots.
type RSI struct{}

// NewRSI creates the RSI indicator.
func NewRSI() Indicator {
	return &RSI{}
}

// Name returns the name of the indicator.
func (r *RSI) Name() types.IndicatorType {
	return types.IndicatorTypeRSI
}

// Enabled is true when any RSI slot is selected.
func (r *RSI) Enabled(cfg types.IndicatorConfig) bool {
	return types.AnySelected(cfg.RSIList)
}

// Apply writes one value per selected RSI slot.
func (r *RSI) Apply(series []types.EnrichedBar, cfg types.IndicatorConfig) {
	applySlots(series, cfg.RSIList, CalculateRSI, func(bar *types.EnrichedBar) *types.SlotValues {
		return &bar.RSIList
	})
}
