// Package mobilekline is the gomobile surface of the chart pipeline.
// Every call takes and returns JSON strings so it can cross the Swift and
// Kotlin bindings.
package mobilekline

import (
	"encoding/json"
	"time"

	"github.com/rxtech-lab/argo-kline/internal/config"
	"github.com/rxtech-lab/argo-kline/internal/engine"
	"github.com/rxtech-lab/argo-kline/internal/generator"
	"github.com/rxtech-lab/argo-kline/internal/logger"
	"github.com/rxtech-lab/argo-kline/internal/types"
	"github.com/rxtech-lab/argo-kline/internal/version"
	"github.com/rxtech-lab/argo-kline/pkg/errors"
	"go.uber.org/zap"
)

// KLine builds chart payloads for a native chart view.
type KLine struct {
	engine engine.Engine
	log    *logger.Logger
}

// NewKLine creates a KLine that logs to stderr at info level.
func NewKLine() (*KLine, error) {
	log, err := logger.NewLogger()
	if err != nil {
		return nil, err
	}

	return NewKLineWithLogger(log)
}

// NewKLineWithLogger creates a KLine that logs through log.
func NewKLineWithLogger(log *logger.Logger) (*KLine, error) {
	eng, err := engine.NewEngine(log)
	if err != nil {
		return nil, err
	}

	return &KLine{
		engine: eng,
		log:    log,
	}, nil
}

// BuildOptionList runs the chart pass. barsJSON is an array of
// {time, open, high, low, close, volume}; configJSON is a chart config
// document and may be empty for the defaults.
func (k *KLine) BuildOptionList(barsJSON string, configJSON string) (string, error) {
	var bars []types.Bar
	if err := json.Unmarshal([]byte(barsJSON), &bars); err != nil {
		k.log.Error("Failed to decode bars", zap.Error(err))
		return "", errors.Wrap(errors.ErrCodeBarParseFailed, "failed to decode bars", err)
	}

	cfg, err := config.Parse([]byte(configJSON))
	if err != nil {
		k.log.Error("Failed to parse chart config", zap.Error(err))
		return "", err
	}

	optionList, err := k.engine.Process(bars, cfg)
	if err != nil {
		return "", err
	}

	out, err := json.Marshal(optionList)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeEncodeFailed, "failed to encode option list", err)
	}

	return string(out), nil
}

// GenerateMockBars returns count random bars of timeType ending now, as JSON.
func (k *KLine) GenerateMockBars(count int, seed int64, timeType string) (string, error) {
	tt, err := types.ParseTimeType(timeType)
	if err != nil {
		return "", err
	}

	if count < 0 {
		return "", errors.Newf(errors.ErrCodeInvalidParameter, "count must not be negative, got %d", count)
	}

	bars := generator.GenerateSeries(seed, count, tt, time.Now().Truncate(tt.Interval()))

	out, err := json.Marshal(bars)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeEncodeFailed, "failed to encode bars", err)
	}

	return string(out), nil
}

// ConfigSchema returns the JSON schema of the chart config document.
func (k *KLine) ConfigSchema() (string, error) {
	return config.Schema()
}

// SupportedTimeTypes lists the accepted period labels.
func (k *KLine) SupportedTimeTypes() *StringArray {
	out := NewStringArray()
	for _, tt := range types.TimeTypes() {
		out.Add(string(tt))
	}

	return out
}

// CheckCompatibility reports whether a chart view built against nativeVersion
// can consume this library's payloads.
func (k *KLine) CheckCompatibility(nativeVersion string) error {
	return version.CheckVersionCompatibility(version.GetVersion(), nativeVersion)
}

// Version returns the library version.
func (k *KLine) Version() string {
	return version.GetVersion()
}

// ErrorCode extracts the numeric code from an error returned by KLine, or 0.
func ErrorCode(err error) int {
	if err == nil {
		return 0
	}

	var collected errors.Errors
	if errors.As(err, &collected) && len(collected) > 0 {
		return int(collected[0].Code)
	}

	return int(errors.GetCode(err))
}
