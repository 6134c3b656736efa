package indicator

import "github.com/rxtech-lab/argo-kline/internal/types"

// barsFromCloses builds bars whose open, high and low all equal the close.
func barsFromCloses(values ...float64) []types.Bar {
	bars := make([]types.Bar, len(values))
	for i, v := range values {
		bars[i] = types.Bar{
			Time:   int64(i) * 60_000,
			Open:   v,
			High:   v,
			Low:    v,
			Close:  v,
			Volume: 1000,
		}
	}

	return bars
}

// rampBars returns closes start, start+1, ... with a one point range around each close.
func rampBars(start float64, count int) []types.Bar {
	bars := make([]types.Bar, count)
	for i := range bars {
		c := start + float64(i)
		bars[i] = types.Bar{
			Time:   int64(i) * 60_000,
			Open:   c - 0.5,
			High:   c + 0.5,
			Low:    c - 0.5,
			Close:  c,
			Volume: float64(100 * (i + 1)),
		}
	}

	return bars
}

// zigzagBars alternates up and down moves of different size.
func zigzagBars(count int) []types.Bar {
	bars := make([]types.Bar, count)
	price := 100.0
	for i := range bars {
		move := 1.5
		if i%3 == 2 {
			move = -2.25
		}

		open := price
		price += move
		bars[i] = types.Bar{
			Time:   int64(i) * 60_000,
			Open:   open,
			High:   max(open, price) + 0.75,
			Low:    min(open, price) - 0.5,
			Close:  price,
			Volume: 1000 + float64(i%5)*250,
		}
	}

	return bars
}

func enrich(bars []types.Bar) []types.EnrichedBar {
	series := make([]types.EnrichedBar, len(bars))
	for i, bar := range bars {
		series[i] = types.NewEnrichedBar(bar)
	}

	return series
}
