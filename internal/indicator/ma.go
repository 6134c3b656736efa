package indicator

import (
	"github.com/rxtech-lab/argo-kline/internal/types"
)

// CalculateMA returns the simple moving average of close for every bar.
// Bars before the first full window carry their own close.
func CalculateMA(bars []types.Bar, period int) []float64 {
	return movingAverage(closes(bars), period)
}

// CalculateVolumeMA is CalculateMA over volume.
func CalculateVolumeMA(bars []types.Bar, period int) []float64 {
	return movingAverage(volumes(bars), period)
}

func movingAverage(values []float64, period int) []float64 {
	period = atLeast(period, 1)
	out := make([]float64, len(values))

	for i := range values {
		if i < period-1 {
			out[i] = values[i]
			continue
		}

		out[i] = trailingMean(values, i, period)
	}

	return out
}

// MA fills the price moving average slots.
type MA struct{}

// NewMA creates the price moving average indicator.
func NewMA() Indicator {
	return &MA{}
}

// Name returns the name of the indicator.
func (m *MA) Name() types.IndicatorType {
	return types.IndicatorTypeMA
}

// Enabled is true when any MA slot is selected.
func (m *MA) Enabled(cfg types.IndicatorConfig) bool {
	return types.AnySelected(cfg.MAList)
}

// Apply writes one value per selected MA slot.
func (m *MA) Apply(series []types.EnrichedBar, cfg types.IndicatorConfig) {
	applySlots(series, cfg.MAList, CalculateMA, func(bar *types.EnrichedBar) *types.SlotValues {
		return &bar.MAList
	})
}

// VolumeMA fills the volume moving average slots.
type VolumeMA struct{}

// NewVolumeMA creates the volume moving average indicator.
func NewVolumeMA() Indicator {
	return &VolumeMA{}
}

// Name returns the name of the indicator.
func (v *VolumeMA) Name() types.IndicatorType {
	return types.IndicatorTypeVolumeMA
}

// Enabled is true when any volume MA slot is selected.
func (v *VolumeMA) Enabled(cfg types.IndicatorConfig) bool {
	return types.AnySelected(cfg.MAVolumeList)
}

// Apply writes one value per selected volume MA slot.
func (v *VolumeMA) Apply(series []types.EnrichedBar, cfg types.IndicatorConfig) {
	applySlots(series, cfg.MAVolumeList, CalculateVolumeMA, func(bar *types.EnrichedBar) *types.SlotValues {
		return &bar.MAVolumeList
	})
}

// applySlots computes calc for every selected item and stores the result at the
// item's slot. Unselected slots are left untouched.
func applySlots(
	series []types.EnrichedBar,
	items []types.PeriodItem,
	calc func(bars []types.Bar, period int) []float64,
	family func(bar *types.EnrichedBar) *types.SlotValues,
) {
	if len(series) == 0 {
		return
	}

	bars := barsOf(series)
	for _, item := range items {
		if !item.Selected {
			continue
		}

		values := calc(bars, item.Period)
		for i := range series {
			slots := family(&series[i])
			if *slots == nil {
				*slots = types.SlotValues{}
			}

			(*slots)[item.Index] = types.NewSlotValue(values[i], item.Period)
		}
	}
}
