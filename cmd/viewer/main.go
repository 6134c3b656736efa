package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rxtech-lab/argo-kline/internal/config"
	"github.com/rxtech-lab/argo-kline/internal/engine"
	"github.com/rxtech-lab/argo-kline/internal/logger"
	"github.com/rxtech-lab/argo-kline/internal/types"
	"github.com/urfave/cli/v3"
)

func viewerAction(ctx context.Context, cmd *cli.Command) error {
	cfg := types.NewChartConfig()
	if path := cmd.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	// Logs would tear the alternate screen.
	eng, err := engine.NewEngine(logger.NewNopLogger())
	if err != nil {
		return err
	}

	model := NewModel(eng, cfg, cmd.Int64("seed"), cmd.Int("count"), time.Now())

	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()

	return err
}

func main() {
	cmd := &cli.Command{
		Name:  "viewer",
		Usage: "Browse indicator values of a mock candle series",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a chart config `FILE`",
			},
			&cli.IntFlag{
				Name:  "count",
				Usage: "Number of mock bars",
				Value: 200,
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "Seed of the mock generator",
				Value: time.Now().UnixNano(),
			},
		},
		Action: viewerAction,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render(err.Error()))
		os.Exit(1)
	}
}
