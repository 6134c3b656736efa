package indicator

import (
	"github.com/montanaflynn/stats"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-kline/internal/types"
)

// CalculateBOLL returns Bollinger Bands over close with an n-bar window and a
// width of p sample standard deviations. Bars before the first full window
// have all three bands at their own close.
func CalculateBOLL(bars []types.Bar, n int, p float64) []types.BOLLValue {
	n = atLeast(n, 1)
	values := closes(bars)
	out := make([]types.BOLLValue, len(bars))

	for i, close := range values {
		if i < n-1 {
			out[i] = types.BOLLValue{Mid: close, Up: close, Dn: close}
			continue
		}

		window := stats.Float64Data(values[i-n+1 : i+1])
		mid := trailingMean(values, i, n)

		std := 0.0
		if n > 1 {
			// errors only on an empty window
			std, _ = stats.StandardDeviationSample(window)
		}

		out[i] = types.BOLLValue{
			Mid: mid,
			Up:  mid + p*std,
			Dn:  mid - p*std,
		}
	}

	return out
}

// BollingerBands fills the BOLL bands when BOLL is the main indicator.
type BollingerBands struct{}

// NewBollingerBands creates the Bollinger Bands indicator.
func NewBollingerBands() Indicator {
	return &BollingerBands{}
}

// Name returns the name of the indicator.
func (bb *BollingerBands) Name() types.IndicatorType {
	return types.IndicatorTypeBollingerBands
}

// Enabled is true when BOLL is the selected main indicator.
func (bb *BollingerBands) Enabled(cfg types.IndicatorConfig) bool {
	return cfg.Main == types.MainIndicatorBOLL
}

// Apply writes the bands for bollN and bollP.
func (bb *BollingerBands) Apply(series []types.EnrichedBar, cfg types.IndicatorConfig) {
	values := CalculateBOLL(barsOf(series), cfg.BOLLN, cfg.BOLLP)
	for i := range series {
		series[i].BOLL = optional.Some(values[i])
	}
}
