package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/rxtech-lab/argo-kline/internal/types"
)

// listItem implements list.Item for the period list.
type listItem struct {
	timeType types.TimeType
}

func (i listItem) Title() string       { return i.timeType.Label() }
func (i listItem) Description() string { return fmt.Sprintf("%s candles", i.timeType.Interval()) }
func (i listItem) FilterValue() string { return string(i.timeType) }

// NewPeriodList creates a new list for period selection.
func NewPeriodList() list.Model {
	timeTypes := types.TimeTypes()
	items := make([]list.Item, 0, len(timeTypes))
	for _, tt := range timeTypes {
		items = append(items, listItem{timeType: tt})
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true

	l := list.New(items, delegate, 0, 0)
	l.Title = "Select Period"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return l
}

// NewRowTable creates the table listing the display rows of the inspected bar.
func NewRowTable() table.Model {
	columns := []table.Column{
		{Title: "Item", Width: 12},
		{Title: "Value", Width: 18},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(16),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell

	t.SetStyles(s)

	return t
}

// UpdateTableRows fills the table with the display rows of bar.
func UpdateTableRows(t table.Model, bar types.EnrichedBar) table.Model {
	rows := make([]table.Row, 0, len(bar.SelectedItemList))
	for _, item := range bar.SelectedItemList {
		rows = append(rows, table.Row{item.Title, item.Detail})
	}

	t.SetRows(rows)

	return t
}

// Summary is the one-line headline of bar: close and change, colored by direction.
func Summary(bar types.EnrichedBar) string {
	var change, percent, close string
	var color uint32

	for _, item := range bar.SelectedItemList {
		switch item.Title {
		case "Close":
			close = item.Detail
		case "Change":
			change = item.Detail
			if c, err := item.Color.Take(); err == nil {
				color = c
			}
		case "Change %":
			percent = item.Detail
		}
	}

	line := fmt.Sprintf("%s  %s (%s)", close, change, percent)
	if color == 0 {
		return line
	}

	return ColorStyle(color).Render(line)
}

// selectionLabel describes the active indicators, e.g. "MA / MACD".
func selectionLabel(cfg types.IndicatorConfig) string {
	return strings.ToUpper(fmt.Sprintf("%s / %s", cfg.Main, cfg.Sub))
}
