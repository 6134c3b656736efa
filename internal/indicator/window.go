package indicator

import "github.com/rxtech-lab/argo-kline/internal/types"

func closes(bars []types.Bar) []float64 {
	out := make([]float64, len(bars))
	for i, bar := range bars {
		out[i] = bar.Close
	}

	return out
}

func volumes(bars []types.Bar) []float64 {
	out := make([]float64, len(bars))
	for i, bar := range bars {
		out[i] = bar.Volume
	}

	return out
}

func barsOf(series []types.EnrichedBar) []types.Bar {
	out := make([]types.Bar, len(series))
	for i := range series {
		out[i] = series[i].Bar
	}

	return out
}

// trailingMean averages values[i-period+1 .. i]. The caller guarantees i >= period-1.
func trailingMean(values []float64, i, period int) float64 {
	sum := 0.0
	for j := i - period + 1; j <= i; j++ {
		sum += values[j]
	}

	return sum / float64(period)
}

// highestLowest scans bars[start .. end] for the highest high and lowest low.
func highestLowest(bars []types.Bar, start, end int) (float64, float64) {
	highest, lowest := bars[start].High, bars[start].Low
	for j := start + 1; j <= end; j++ {
		highest = max(highest, bars[j].High)
		lowest = min(lowest, bars[j].Low)
	}

	return highest, lowest
}

// atLeast clamps lengths and smoothing factors to floor.
func atLeast(v, floor int) int {
	if v < floor {
		return floor
	}

	return v
}
