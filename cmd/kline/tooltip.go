package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rxtech-lab/argo-kline/internal/engine"
	"github.com/rxtech-lab/argo-kline/internal/theme"
	"github.com/rxtech-lab/argo-kline/internal/types"
	"github.com/rxtech-lab/argo-kline/pkg/errors"
	"github.com/urfave/cli/v3"
)

func tooltipFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "index",
			Aliases: []string{"i"},
			Usage:   "Bar to inspect. Negative values count from the end.",
			Value:   -1,
		},
		&cli.BoolFlag{
			Name:  "plain",
			Usage: "Disable colors",
		},
	}
}

// tooltipAction prints the display rows of one bar.
func tooltipAction(ctx context.Context, cmd *cli.Command) error {
	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	bars, cfg, err := loadInputs(cmd, log)
	if err != nil {
		return err
	}

	eng, err := engine.NewEngine(log)
	if err != nil {
		return err
	}

	optionList, err := eng.Process(bars, cfg)
	if err != nil {
		return err
	}

	index := cmd.Int("index")
	if index < 0 {
		index += len(optionList.ModelArray)
	}

	if index < 0 || index >= len(optionList.ModelArray) {
		return errors.Newf(errors.ErrCodeInvalidParameter, "bar index %d out of range for %d bars", cmd.Int("index"), len(optionList.ModelArray))
	}

	_, err = fmt.Fprintln(cmd.Root().Writer, RenderTooltip(optionList.ModelArray[index].SelectedItemList, !cmd.Bool("plain")))

	return err
}

// RenderTooltip lays rows out as a two-column box. Rows carrying a color are
// rendered in it when colored is set.
func RenderTooltip(rows []types.DisplayRow, colored bool) string {
	titleWidth := 0
	for _, row := range rows {
		titleWidth = max(titleWidth, lipgloss.Width(row.Title))
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		detail := row.Detail
		if colored {
			if c, err := row.Color.Take(); err == nil {
				detail = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Color(c).Hex())).Render(detail)
			}
		}

		title := LabelStyle.Width(titleWidth).Render(row.Title)
		lines = append(lines, title+"  "+detail)
	}

	return BoxStyle.Render(strings.Join(lines, "\n"))
}
