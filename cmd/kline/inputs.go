package main

import (
	"encoding/json"
	"os"

	"github.com/rxtech-lab/argo-kline/internal/config"
	"github.com/rxtech-lab/argo-kline/internal/generator"
	"github.com/rxtech-lab/argo-kline/internal/logger"
	"github.com/rxtech-lab/argo-kline/internal/types"
	"github.com/rxtech-lab/argo-kline/pkg/errors"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// loadInputs resolves the config and bars named by the command flags.
func loadInputs(cmd *cli.Command, log *logger.Logger) ([]types.Bar, types.ChartConfig, error) {
	cfg := types.NewChartConfig()

	if path := cmd.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, types.ChartConfig{}, err
		}

		cfg = loaded
	}

	if err := applyOverrides(cmd, &cfg); err != nil {
		return nil, types.ChartConfig{}, err
	}

	if path := cmd.String("bars"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, types.ChartConfig{}, errors.Wrapf(errors.ErrCodeDataNotFound, err, "failed to read bars %s", path)
		}

		var bars []types.Bar
		if err := json.Unmarshal(data, &bars); err != nil {
			return nil, types.ChartConfig{}, errors.Wrapf(errors.ErrCodeBarParseFailed, err, "failed to decode bars %s", path)
		}

		log.Debug("Loaded bars", zap.String("path", path), zap.Int("count", len(bars)))

		return bars, cfg, nil
	}

	tt := cfg.TimeType
	if name := cmd.String("time-type"); name != "" {
		parsed, err := types.ParseTimeType(name)
		if err != nil {
			return nil, types.ChartConfig{}, err
		}

		tt = parsed
		cfg.TimeType = parsed
	}

	count := cmd.Int("count")
	if count < 0 {
		return nil, types.ChartConfig{}, errors.Newf(errors.ErrCodeInvalidParameter, "count must not be negative, got %d", count)
	}

	end := cmd.Timestamp("end").Truncate(tt.Interval())
	bars := generator.GenerateSeries(cmd.Int64("seed"), count, tt, end)

	log.Debug("Generated mock bars",
		zap.Int("count", len(bars)),
		zap.String("timeType", string(tt)),
		zap.Int64("seed", cmd.Int64("seed")),
	)

	return bars, cfg, nil
}

func applyOverrides(cmd *cli.Command, cfg *types.ChartConfig) error {
	if name := cmd.String("main"); name != "" {
		if err := cfg.Indicators.Main.UnmarshalText([]byte(name)); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidSelection, "invalid --main", err)
		}
	}

	if name := cmd.String("sub"); name != "" {
		if err := cfg.Indicators.Sub.UnmarshalText([]byte(name)); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidSelection, "invalid --sub", err)
		}
	}

	if name := cmd.String("theme"); name != "" {
		cfg.Theme = name
	}

	return cfg.Validate()
}

func newLogger(cmd *cli.Command) (*logger.Logger, error) {
	return logger.NewLoggerWithLevel(cmd.Root().String("log-level"))
}
