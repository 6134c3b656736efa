// Package generator produces synthetic candle series for demos and tests.
package generator

import (
	"math"
	"math/rand"
	"time"

	"github.com/rxtech-lab/argo-kline/internal/types"
)

// DataGenerator generates random-walk candles.
type DataGenerator struct {
	rng *rand.Rand
}

// NewDataGenerator creates a new DataGenerator with the given seed.
// Use a fixed seed for reproducible results in tests.
func NewDataGenerator(seed int64) *DataGenerator {
	return &DataGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// GeneratorConfig configures how candles are generated.
type GeneratorConfig struct {
	// Count is the number of bars to generate
	Count int
	// Interval is the duration between each bar
	Interval time.Duration
	// EndTime is the open time of the last bar. Zero means now.
	EndTime time.Time
	// InitialPrice is the open of the first bar
	InitialPrice float64
	// Volatility is the maximum relative move per bar (0.02 = ±1%)
	Volatility float64
	// VolumeBase is the average volume per bar
	VolumeBase float64
}

// DefaultConfig returns 200 quarter-hour bars around 50000.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		Count:        200,
		Interval:     15 * time.Minute,
		InitialPrice: 50000,
		Volatility:   0.02,
		VolumeBase:   1_000_000,
	}
}

// ConfigFor returns DefaultConfig spaced by the interval of tt.
func ConfigFor(tt types.TimeType) GeneratorConfig {
	config := DefaultConfig()
	config.Interval = tt.Interval()

	return config
}

// Generate creates config.Count bars in ascending time order, ending at
// config.EndTime. Each bar opens at the previous close and never closes
// below 95% of its open.
func (g *DataGenerator) Generate(config GeneratorConfig) []types.Bar {
	if config.Count <= 0 {
		return []types.Bar{}
	}

	end := config.EndTime
	if end.IsZero() {
		end = time.Now().Truncate(config.Interval)
	}

	start := end.Add(-time.Duration(config.Count-1) * config.Interval)
	bars := make([]types.Bar, config.Count)
	price := config.InitialPrice

	for i := range bars {
		open := price

		close := open + (g.rng.Float64()-0.5)*open*config.Volatility
		close = math.Max(close, open*0.95)

		high := math.Max(open, close) + g.rng.Float64()*open*0.01
		low := math.Min(open, close) - g.rng.Float64()*open*0.01

		volume := config.VolumeBase * (0.5 + g.rng.Float64())

		bars[i] = types.Bar{
			Time:   start.Add(time.Duration(i) * config.Interval).UnixMilli(),
			Open:   roundToDecimals(open, 2),
			High:   roundToDecimals(high, 2),
			Low:    roundToDecimals(low, 2),
			Close:  roundToDecimals(close, 2),
			Volume: roundToDecimals(volume, 2),
		}

		price = close
	}

	return bars
}

// GenerateSeries is a convenience wrapper for count bars of tt ending at end.
func GenerateSeries(seed int64, count int, tt types.TimeType, end time.Time) []types.Bar {
	config := ConfigFor(tt)
	config.Count = count
	config.EndTime = end

	return NewDataGenerator(seed).Generate(config)
}

// roundToDecimals rounds a float64 to the specified number of decimal places.
func roundToDecimals(val float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(val*pow) / pow
}
