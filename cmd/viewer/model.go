package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rxtech-lab/argo-kline/internal/engine"
	"github.com/rxtech-lab/argo-kline/internal/generator"
	"github.com/rxtech-lab/argo-kline/internal/theme"
	"github.com/rxtech-lab/argo-kline/internal/types"
)

// Application states.
const (
	StatePeriodSelect = iota
	StateChart
)

// Model is the main Bubble Tea model of the chart viewer.
type Model struct {
	state      int
	periodList list.Model
	rowTable   table.Model

	engine  engine.Engine
	cfg     types.ChartConfig
	bars    []types.Bar
	payload types.OptionList
	cursor  int

	// seq numbers chart passes so stale results are dropped.
	seq   int
	seed  int64
	count int
	end   time.Time

	err    error
	width  int
	height int
}

// NewModel creates a new Model with initial state.
func NewModel(eng engine.Engine, cfg types.ChartConfig, seed int64, count int, end time.Time) Model {
	return Model{
		state:      StatePeriodSelect,
		periodList: NewPeriodList(),
		rowTable:   NewRowTable(),
		engine:     eng,
		cfg:        cfg,
		seed:       seed,
		count:      count,
		end:        end,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.state == StateChart {
				m.state = StatePeriodSelect
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.periodList.SetSize(msg.Width, msg.Height-4)
		m.rowTable.SetWidth(msg.Width)
		m.rowTable.SetHeight(msg.Height - 8)
		return m, nil

	case ChartComputedMsg:
		if msg.Seq != m.seq {
			return m, nil
		}

		m.err = nil
		m.payload = msg.Payload
		m.cursor = clampCursor(m.cursor, len(m.payload.ModelArray), m.cfg.ShouldScrollToEnd && m.cursor < 0)
		m.refreshTable()
		return m, nil

	case ComputeErrorMsg:
		if msg.Seq == m.seq {
			m.err = msg.Err
		}
		return m, nil
	}

	switch m.state {
	case StatePeriodSelect:
		return m.updatePeriodSelect(msg)
	case StateChart:
		return m.updateChart(msg)
	}

	return m, nil
}

func (m Model) updatePeriodSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		if item, ok := m.periodList.SelectedItem().(listItem); ok {
			m.cfg.TimeType = item.timeType
			m.state = StateChart
			m.regenerate()
			return m, m.recompute()
		}
	}

	var cmd tea.Cmd
	m.periodList, cmd = m.periodList.Update(msg)
	return m, cmd
}

func (m Model) updateChart(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "t":
		current, err := theme.Get(m.cfg.Theme)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.cfg.Theme = current.Toggle().Name
		return m, m.recompute()
	case "m":
		m.cfg.Indicators.Main = m.cfg.Indicators.Main.Next()
		return m, m.recompute()
	case "s":
		m.cfg.Indicators.Sub = m.cfg.Indicators.Sub.Next()
		return m, m.recompute()
	case "p":
		m.cfg.TimeType = m.cfg.TimeType.Next()
		m.seed++
		m.regenerate()
		return m, m.recompute()
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
			m.refreshTable()
		}
	case "right", "l":
		if m.cursor < len(m.payload.ModelArray)-1 {
			m.cursor++
			m.refreshTable()
		}
	}

	return m, nil
}

// regenerate replaces the bars with a fresh mock series for the current period.
func (m *Model) regenerate() {
	m.bars = generator.GenerateSeries(m.seed, m.count, m.cfg.TimeType, m.end.Truncate(m.cfg.TimeType.Interval()))
	m.cursor = -1
}

// recompute starts a full chart pass over the current bars and config.
func (m *Model) recompute() tea.Cmd {
	m.seq++
	seq, eng, bars, cfg := m.seq, m.engine, m.bars, m.cfg
	cfg.Indicators = cfg.Indicators.Clone()

	return func() tea.Msg {
		payload, err := eng.Process(bars, cfg)
		if err != nil {
			return ComputeErrorMsg{Seq: seq, Err: err}
		}

		return ChartComputedMsg{Seq: seq, Payload: payload}
	}
}

func (m *Model) refreshTable() {
	if m.cursor < 0 || m.cursor >= len(m.payload.ModelArray) {
		m.rowTable.SetRows(nil)
		return
	}

	m.rowTable = UpdateTableRows(m.rowTable, m.payload.ModelArray[m.cursor])
}

// clampCursor keeps cursor inside [0, n). toEnd jumps to the last bar.
func clampCursor(cursor, n int, toEnd bool) int {
	switch {
	case n == 0:
		return -1
	case toEnd || cursor >= n:
		return n - 1
	case cursor < 0:
		return 0
	}

	return cursor
}

// View implements tea.Model.
func (m Model) View() string {
	var s strings.Builder

	switch m.state {
	case StatePeriodSelect:
		s.WriteString(TitleStyle.Render("Argo KLine - Chart Viewer"))
		s.WriteString("\n\n")
		s.WriteString(m.periodList.View())
		s.WriteString("\n")
		s.WriteString(HelpStyle.Render("Press Enter to select, q to quit"))

	case StateChart:
		s.WriteString(TitleStyle.Render(fmt.Sprintf("%s | %s | %s theme",
			m.cfg.TimeType.Label(), selectionLabel(m.cfg.Indicators), m.cfg.Theme)))
		s.WriteString("\n\n")

		if m.err != nil {
			s.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			s.WriteString("\n\n")
		}

		if m.cursor < 0 || m.cursor >= len(m.payload.ModelArray) {
			s.WriteString("Computing...\n")
		} else {
			bar := m.payload.ModelArray[m.cursor]
			s.WriteString(fmt.Sprintf("Bar %d/%d  %s\n", m.cursor+1, len(m.payload.ModelArray), bar.DateString))
			s.WriteString(Summary(bar))
			s.WriteString("\n\n")
			s.WriteString(m.rowTable.View())
		}

		s.WriteString("\n")
		s.WriteString(HelpStyle.Render("←/→: bar | t: theme | m: main | s: sub | p: period | Esc: back | q: quit"))
	}

	return s.String()
}
