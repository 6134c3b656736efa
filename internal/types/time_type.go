package types

import (
	"time"

	"github.com/rxtech-lab/argo-kline/pkg/errors"
)

// TimeType is a chart period label such as "15min" or "1D".
type TimeType string

const (
	TimeTypeMinute TimeType = "minute"
	TimeType1Min   TimeType = "1min"
	TimeType3Min   TimeType = "3min"
	TimeType5Min   TimeType = "5min"
	TimeType15Min  TimeType = "15min"
	TimeType30Min  TimeType = "30min"
	TimeType1Hour  TimeType = "1h"
	TimeType4Hour  TimeType = "4h"
	TimeType6Hour  TimeType = "6h"
	TimeType1Day   TimeType = "1D"
	TimeType1Week  TimeType = "1W"
	TimeType1Month TimeType = "1M"
)

type timeTypeInfo struct {
	label    string
	native   int
	interval time.Duration
}

var timeTypeTable = map[TimeType]timeTypeInfo{
	TimeTypeMinute: {"Minute", -1, time.Minute},
	TimeType1Min:   {"1min", 1, time.Minute},
	TimeType3Min:   {"3min", 2, 3 * time.Minute},
	TimeType5Min:   {"5min", 3, 5 * time.Minute},
	TimeType15Min:  {"15min", 4, 15 * time.Minute},
	TimeType30Min:  {"30min", 5, 30 * time.Minute},
	TimeType1Hour:  {"1h", 6, time.Hour},
	TimeType4Hour:  {"4h", 7, 4 * time.Hour},
	TimeType6Hour:  {"6h", 8, 6 * time.Hour},
	TimeType1Day:   {"1D", 9, 24 * time.Hour},
	TimeType1Week:  {"1W", 10, 7 * 24 * time.Hour},
	TimeType1Month: {"1M", 11, 30 * 24 * time.Hour},
}

// TimeTypes lists every period in selector order.
func TimeTypes() []TimeType {
	return []TimeType{
		TimeTypeMinute, TimeType1Min, TimeType3Min, TimeType5Min, TimeType15Min, TimeType30Min,
		TimeType1Hour, TimeType4Hour, TimeType6Hour, TimeType1Day, TimeType1Week, TimeType1Month,
	}
}

// ParseTimeType resolves a period label.
func ParseTimeType(s string) (TimeType, error) {
	t := TimeType(s)
	if _, ok := timeTypeTable[t]; !ok {
		return "", errors.Newf(errors.ErrCodeInvalidTimeType, "unknown time type %q", s)
	}

	return t, nil
}

// IsValid reports whether t is a known period.
func (t TimeType) IsValid() bool {
	_, ok := timeTypeTable[t]

	return ok
}

// Label is the selector caption.
func (t TimeType) Label() string {
	return timeTypeTable[t].label
}

// NativeValue is the period code the native chart view expects.
// The minute (line) chart is -1.
func (t TimeType) NativeValue() int {
	return timeTypeTable[t].native
}

// Interval is the spacing between consecutive bars of this period.
func (t TimeType) Interval() time.Duration {
	return timeTypeTable[t].interval
}

// IsMinuteChart reports whether the period renders as a line chart.
func (t TimeType) IsMinuteChart() bool {
	return t == TimeTypeMinute
}

// Next returns the period after t, wrapping around.
func (t TimeType) Next() TimeType {
	all := TimeTypes()
	for i, v := range all {
		if v == t {
			return all[(i+1)%len(all)]
		}
	}

	return TimeType1Min
}
