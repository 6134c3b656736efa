package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-kline/internal/types"
)

type kdjState struct {
	k float64
	d float64
}

// CalculateKDJ folds the series into the stochastic K, D and J lines.
// K and D start at 50. The RSV window is clamped at the first bar rather than
// waiting for n bars, and a flat window counts as RSV 50.
func CalculateKDJ(bars []types.Bar, n, m1, m2 int) []types.KDJValue {
	out := make([]types.KDJValue, len(bars))
	if len(bars) == 0 {
		return out
	}

	n, m1 = atLeast(n, 1), atLeast(m1, 1)

	state := kdjState{k: 50, d: 50}
	out[0] = types.KDJValue{K: state.k, D: state.d, J: 3*state.k - 2*state.d}

	for i := 1; i < len(bars); i++ {
		highest, lowest := highestLowest(bars, max(0, i-n+1), i)

		rsv := 50.0
		if highest != lowest {
			rsv = (bars[i].Close - lowest) / (highest - lowest) * 100
		}

		smoothing := float64(m1 - 1)
		state.k = (rsv + smoothing*state.k) / float64(m1)
		state.d = (state.k + smoothing*state.d) / float64(m1)

		out[i] = types.KDJValue{
			K: state.k,
			D: state.d,
			J: float64(m2)*state.k - 2*state.d,
		}
	}

	return out
}

// KDJ fills K, D and J when KDJ is the sub indicator.
type KDJ struct{}

// NewKDJ creates the KDJ indicator.
func NewKDJ() Indicator {
	return &KDJ{}
}

// Name returns the name of the indicator.
func (s *KDJ) Name() types.IndicatorType {
	return types.IndicatorTypeKDJ
}

// Enabled is true when KDJ is the selected sub indicator.
func (s *KDJ) Enabled(cfg types.IndicatorConfig) bool {
	return cfg.Sub == types.SubIndicatorKDJ
}

// Apply writes KDJ for kdjN, kdjM1 and kdjM2.
func (s *KDJ) Apply(series []types.EnrichedBar, cfg types.IndicatorConfig) {
	values := CalculateKDJ(barsOf(series), cfg.KDJN, cfg.KDJM1, cfg.KDJM2)
	for i := range series {
		series[i].KDJ = optional.Some(values[i])
	}
}
