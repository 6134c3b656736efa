package types

import "time"

// Bar is one OHLCV candle. Time is the bar open in epoch milliseconds.
type Bar struct {
	Time   int64   `json:"time" yaml:"time"`
	Open   float64 `json:"open" yaml:"open"`
	High   float64 `json:"high" yaml:"high"`
	Low    float64 `json:"low" yaml:"low"`
	Close  float64 `json:"close" yaml:"close"`
	Volume float64 `json:"volume" yaml:"volume"`
}

// Timestamp returns the bar time as a time.Time in the local zone.
func (b Bar) Timestamp() time.Time {
	return time.UnixMilli(b.Time)
}

// Change is close minus open.
func (b Bar) Change() float64 {
	return b.Close - b.Open
}

// ChangePercent is the change relative to open, in percent.
// A zero open yields NaN or ±Inf, which the formatter renders as unavailable.
func (b Bar) ChangePercent() float64 {
	return b.Change() / b.Open * 100
}

// IsIncrease reports whether the bar closed at or above its open.
func (b Bar) IsIncrease() bool {
	return b.Change() >= 0
}
