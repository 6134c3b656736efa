package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rxtech-lab/argo-kline/internal/types"
	"github.com/rxtech-lab/argo-kline/internal/version"
	"github.com/urfave/cli/v3"
)

// inputFlags are shared by the commands that run a chart pass.
func inputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to a chart config `FILE` (YAML or JSON). Defaults apply when omitted.",
		},
		&cli.StringFlag{
			Name:    "bars",
			Aliases: []string{"b"},
			Usage:   "Path to a JSON array of bars. Mock bars are generated when omitted.",
		},
		&cli.StringFlag{
			Name:  "main",
			Usage: "Override the main indicator (none, ma, boll)",
		},
		&cli.StringFlag{
			Name:  "sub",
			Usage: "Override the sub indicator (none, macd, kdj, rsi, wr)",
		},
		&cli.StringFlag{
			Name:  "theme",
			Usage: "Override the theme (light, dark)",
		},
		&cli.IntFlag{
			Name:  "count",
			Usage: "Number of mock bars",
			Value: 200,
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "Seed of the mock generator",
			Value: 42,
		},
		&cli.StringFlag{
			Name:  "time-type",
			Usage: "Period of the mock bars. Defaults to the config's time type.",
		},
		&cli.TimestampFlag{
			Name:  "end",
			Usage: "Open time of the last mock bar in `YYYY-MM-DD` format (or RFC3339). Defaults to now.",
			Value: time.Now(),
			Config: cli.TimestampConfig{
				Layouts: []string{"2006-01-02", time.RFC3339},
			},
		},
	}
}

func newApp(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:    "kline",
		Usage:   "Compute candlestick indicators and chart payloads",
		Version: version.GetVersion(),
		Writer:  stdout,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
				Value: "info",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "compute",
				Usage:  "Run a chart pass and write the payload as JSON",
				Flags:  append(inputFlags(), computeFlags()...),
				Action: computeAction,
			},
			{
				Name:   "tooltip",
				Usage:  "Render the display rows of one bar",
				Flags:  append(inputFlags(), tooltipFlags()...),
				Action: tooltipAction,
			},
			{
				Name:   "schema",
				Usage:  "Write the config JSON schema and a sample config",
				Flags:  schemaFlags(),
				Action: schemaAction,
			},
			{
				Name:  "time-types",
				Usage: "List the supported chart periods",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					for _, tt := range types.TimeTypes() {
						fmt.Fprintf(cmd.Root().Writer, "%-7s %-8s %s\n", tt, tt.Label(), tt.Interval())
					}

					return nil
				},
			},
		},
	}
}

func main() {
	if err := newApp(os.Stdout).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render(err.Error()))
		os.Exit(1)
	}
}
