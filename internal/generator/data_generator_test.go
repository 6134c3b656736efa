package generator

import (
	"testing"
	"time"

	"github.com/rxtech-lab/argo-kline/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEnd = time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)

func TestDataGenerator_Generate(t *testing.T) {
	gen := NewDataGenerator(42)
	config := DefaultConfig()
	config.EndTime = testEnd

	data := gen.Generate(config)
	require.Len(t, data, 200)

	assert.Equal(t, testEnd.UnixMilli(), data[len(data)-1].Time)

	for i, d := range data {
		assert.Positive(t, d.Low, "low at %d", i)
		assert.GreaterOrEqual(t, d.High, max(d.Open, d.Close), "high at %d", i)
		assert.LessOrEqual(t, d.Low, min(d.Open, d.Close), "low at %d", i)
		assert.GreaterOrEqual(t, d.Volume, 0.5*config.VolumeBase, "volume at %d", i)
		assert.LessOrEqual(t, d.Volume, 1.5*config.VolumeBase, "volume at %d", i)

		if i > 0 {
			assert.Equal(t, config.Interval.Milliseconds(), d.Time-data[i-1].Time, "interval at %d", i)
			assert.Equal(t, data[i-1].Close, d.Open, "open follows close at %d", i)
		}
	}

	assert.Equal(t, config.InitialPrice, data[0].Open)
}

func TestDataGenerator_Reproducibility(t *testing.T) {
	config := DefaultConfig()
	config.Count = 10
	config.EndTime = testEnd

	data1 := NewDataGenerator(42).Generate(config)
	data2 := NewDataGenerator(42).Generate(config)

	assert.Equal(t, data1, data2)
}

func TestDataGenerator_Different_Seeds(t *testing.T) {
	config := DefaultConfig()
	config.Count = 10
	config.EndTime = testEnd

	data1 := NewDataGenerator(42).Generate(config)
	data2 := NewDataGenerator(123).Generate(config)

	assert.NotEqual(t, data1, data2)
}

func TestDataGenerator_EmptyCount(t *testing.T) {
	config := DefaultConfig()
	config.Count = 0

	assert.Empty(t, NewDataGenerator(1).Generate(config))
}

func TestGenerateSeries(t *testing.T) {
	data := GenerateSeries(7, 30, types.TimeType1Hour, testEnd)
	require.Len(t, data, 30)

	assert.Equal(t, time.Hour.Milliseconds(), data[1].Time-data[0].Time)
	assert.Equal(t, testEnd.UnixMilli(), data[29].Time)
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, 200, config.Count)
	assert.Equal(t, 15*time.Minute, config.Interval)
	assert.Equal(t, 50000.0, config.InitialPrice)
	assert.Equal(t, 0.02, config.Volatility)
}
