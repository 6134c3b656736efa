package indicator

import (
	"github.com/rxtech-lab/argo-kline/internal/types"
)

// Indicator interface defines methods that any chart indicator must implement
type Indicator interface {
	// Name returns the name of the indicator
	Name() types.IndicatorType
	// Enabled reports whether cfg requests this indicator
	Enabled(cfg types.IndicatorConfig) bool
	// Apply computes the indicator over the whole series and writes its fields
	// onto every bar. It only touches its own family.
	Apply(series []types.EnrichedBar, cfg types.IndicatorConfig)
}

// Defaults returns one instance of every chart indicator.
func Defaults() []Indicator {
	return []Indicator{
		NewMA(),
		NewVolumeMA(),
		NewBollingerBands(),
		NewMACD(),
		NewKDJ(),
		NewRSI(),
		NewWilliamsR(),
	}
}
