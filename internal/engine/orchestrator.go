package engine

import (
	"github.com/rxtech-lab/argo-kline/internal/indicator"
	"github.com/rxtech-lab/argo-kline/internal/logger"
	"github.com/rxtech-lab/argo-kline/internal/types"
	"github.com/rxtech-lab/argo-kline/pkg/errors"
	"go.uber.org/zap"
)

// EnrichmentOrder is the fixed order in which indicator families are applied.
var EnrichmentOrder = []types.IndicatorType{
	types.IndicatorTypeMA,
	types.IndicatorTypeVolumeMA,
	types.IndicatorTypeBollingerBands,
	types.IndicatorTypeMACD,
	types.IndicatorTypeKDJ,
	types.IndicatorTypeRSI,
	types.IndicatorTypeWilliamsR,
}

// Orchestrator turns a bar series into an enriched series, one indicator family at a time.
type Orchestrator struct {
	registry indicator.IndicatorRegistry
	log      *logger.Logger
}

// NewOrchestrator creates an orchestrator that resolves indicators from registry.
func NewOrchestrator(registry indicator.IndicatorRegistry, log *logger.Logger) *Orchestrator {
	return &Orchestrator{
		registry: registry,
		log:      log,
	}
}

// Enrich copies bars into a fresh enriched series and applies every indicator
// the configuration requests, in EnrichmentOrder. bars is never modified.
//
// Slot items with a non-positive period, a slot index outside the family
// capacity, or a slot already taken by an earlier item are skipped.
// The only error is an indicator missing from the registry.
func (o *Orchestrator) Enrich(bars []types.Bar, cfg types.IndicatorConfig) ([]types.EnrichedBar, error) {
	series := make([]types.EnrichedBar, len(bars))
	for i, bar := range bars {
		series[i] = types.NewEnrichedBar(bar)
	}

	cfg = o.sanitize(cfg)

	applied := make([]string, 0, len(EnrichmentOrder))
	for _, name := range EnrichmentOrder {
		ind, err := o.registry.GetIndicator(name)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeIndicatorNotFound, err, "failed to resolve indicator %s", name)
		}

		if !ind.Enabled(cfg) {
			continue
		}

		ind.Apply(series, cfg)
		applied = append(applied, string(name))
	}

	o.log.Debug("Enriched series",
		zap.Int("bars", len(bars)),
		zap.Strings("indicators", applied),
	)

	return series, nil
}

func (o *Orchestrator) sanitize(cfg types.IndicatorConfig) types.IndicatorConfig {
	out := cfg.Clone()
	out.MAList = o.usableItems("maList", out.MAList, types.MASlotCapacity)
	out.MAVolumeList = o.usableItems("maVolumeList", out.MAVolumeList, types.MAVolumeSlotCapacity)
	out.RSIList = o.usableItems("rsiList", out.RSIList, types.RSISlotCapacity)
	out.WRList = o.usableItems("wrList", out.WRList, types.WRSlotCapacity)

	return out
}

func (o *Orchestrator) usableItems(family string, items []types.PeriodItem, capacity int) []types.PeriodItem {
	out := make([]types.PeriodItem, 0, len(items))
	taken := make(map[int]bool, len(items))

	for _, item := range items {
		if !item.Selected {
			out = append(out, item)
			continue
		}

		reason := ""
		switch {
		case item.Period < 1:
			reason = "non-positive period"
		case item.Index < 0 || item.Index >= capacity:
			reason = "slot out of range"
		case taken[item.Index]:
			reason = "slot already taken"
		}

		if reason != "" {
			o.log.Warn("Skipping indicator item",
				zap.String("family", family),
				zap.Int("period", item.Period),
				zap.Int("slot", item.Index),
				zap.String("reason", reason),
			)

			continue
		}

		taken[item.Index] = true
		out = append(out, item)
	}

	return out
}
