package engine

import (
	"time"

	"github.com/rxtech-lab/argo-kline/internal/display"
	"github.com/rxtech-lab/argo-kline/internal/indicator"
	"github.com/rxtech-lab/argo-kline/internal/logger"
	"github.com/rxtech-lab/argo-kline/internal/theme"
	"github.com/rxtech-lab/argo-kline/internal/types"
	"github.com/rxtech-lab/argo-kline/internal/version"
	"go.uber.org/zap"
)

// Engine runs the full chart pass: enrichment, display rows and payload packing.
type Engine interface {
	// Process builds the payload for bars under cfg. bars is not modified.
	Process(bars []types.Bar, cfg types.ChartConfig) (types.OptionList, error)
}

// EngineV1 is the default Engine. It holds no per-call state and is safe for
// concurrent use.
type EngineV1 struct {
	orchestrator *Orchestrator
	log          *logger.Logger
	location     *time.Location
}

// Option customizes an EngineV1.
type Option func(*EngineV1)

// WithLocation renders display times in loc instead of local time.
func WithLocation(loc *time.Location) Option {
	return func(e *EngineV1) {
		e.location = loc
	}
}

// NewEngine creates an engine backed by every chart indicator.
func NewEngine(log *logger.Logger, opts ...Option) (Engine, error) {
	registry, err := indicator.NewDefaultRegistry()
	if err != nil {
		return nil, err
	}

	return NewEngineWithRegistry(registry, log, opts...), nil
}

// NewEngineWithRegistry creates an engine that resolves indicators from registry.
func NewEngineWithRegistry(registry indicator.IndicatorRegistry, log *logger.Logger, opts ...Option) Engine {
	e := &EngineV1{
		orchestrator: NewOrchestrator(registry, log),
		log:          log,
		location:     time.Local,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Process implements Engine.
func (e *EngineV1) Process(bars []types.Bar, cfg types.ChartConfig) (types.OptionList, error) {
	th, err := theme.Get(cfg.Theme)
	if err != nil {
		return types.OptionList{}, err
	}

	indicators := cfg.Indicators.Clone()
	if cfg.FollowSelection {
		indicators.ApplySelection()
	}

	series, err := e.orchestrator.Enrich(bars, indicators)
	if err != nil {
		e.log.Error("Failed to enrich series", zap.Error(err))
		return types.OptionList{}, err
	}

	builder := display.NewBuilder(display.Options{
		PricePrecision:  cfg.PricePrecision,
		VolumePrecision: cfg.VolumePrecision,
		ShowGrouping:    cfg.ShowGrouping,
		Colors:          th.ColorList(),
		Location:        e.location,
	})
	builder.Decorate(series, indicators.Main, indicators.Sub)

	return types.OptionList{
		ModelArray:        series,
		ShouldScrollToEnd: cfg.ShouldScrollToEnd,
		TargetList:        types.NewTargetList(indicators),
		Price:             cfg.PricePrecision,
		Volume:            cfg.VolumePrecision,
		Primary:           int(indicators.Main),
		Second:            int(indicators.Sub),
		Time:              cfg.TimeType.NativeValue(),
		ConfigList:        th.ConfigList(),
		Version:           version.GetVersion(),
	}, nil
}
