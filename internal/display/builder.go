// Package display builds the tooltip rows shown for a selected bar.
package display

import (
	"fmt"
	"math"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-kline/internal/format"
	"github.com/rxtech-lab/argo-kline/internal/types"
)

// DefaultTimePattern is the tooltip time layout.
const DefaultTimePattern = "MM-DD HH:mm"

const (
	macdPrecision       = 4
	oscillatorPrecision = 2
	percentPrecision    = 2
)

// Options controls how rows are formatted.
type Options struct {
	PricePrecision  int
	VolumePrecision int
	ShowGrouping    bool
	// Colors are applied to the change rows.
	Colors types.ColorList
	// Location is the zone times are rendered in. Nil means local time.
	Location *time.Location
	// TimePattern defaults to DefaultTimePattern.
	TimePattern string
}

// Builder formats enriched bars into display rows.
type Builder struct {
	opts Options
}

// NewBuilder creates a row builder.
func NewBuilder(opts Options) *Builder {
	if opts.Location == nil {
		opts.Location = time.Local
	}

	if opts.TimePattern == "" {
		opts.TimePattern = DefaultTimePattern
	}

	return &Builder{opts: opts}
}

// DateString renders the bar time with the configured pattern.
func (b *Builder) DateString(bar types.Bar) string {
	return format.FormatTimestampIn(bar.Time, b.opts.TimePattern, b.opts.Location)
}

// Rows returns the base rows followed by rows for the selected main and sub
// indicators. Families that are not selected, or were not computed, add nothing.
func (b *Builder) Rows(bar types.EnrichedBar, main types.MainIndicator, sub types.SubIndicator) []types.DisplayRow {
	rows := b.baseRows(bar)

	switch main {
	case types.MainIndicatorMA:
		rows = append(rows, slotRows("MA", bar.MAList, b.opts.PricePrecision)...)
	case types.MainIndicatorBOLL:
		if boll, err := bar.BOLL.Take(); err == nil {
			rows = append(rows,
				b.row("BOLL Upper", format.Round(boll.Up, b.opts.PricePrecision, false, false)),
				b.row("BOLL Mid", format.Round(boll.Mid, b.opts.PricePrecision, false, false)),
				b.row("BOLL Lower", format.Round(boll.Dn, b.opts.PricePrecision, false, false)),
			)
		}
	}

	switch sub {
	case types.SubIndicatorMACD:
		if macd, err := bar.MACD.Take(); err == nil {
			rows = append(rows,
				b.row("DIF", format.Round(macd.Dif, macdPrecision, false, false)),
				b.row("DEA", format.Round(macd.Dea, macdPrecision, false, false)),
				b.row("MACD", format.Round(macd.MACD, macdPrecision, false, false)),
			)
		}
	case types.SubIndicatorKDJ:
		if kdj, err := bar.KDJ.Take(); err == nil {
			rows = append(rows,
				b.row("K", format.Round(kdj.K, oscillatorPrecision, false, false)),
				b.row("D", format.Round(kdj.D, oscillatorPrecision, false, false)),
				b.row("J", format.Round(kdj.J, oscillatorPrecision, false, false)),
			)
		}
	case types.SubIndicatorRSI:
		rows = append(rows, slotRows("RSI", bar.RSIList, oscillatorPrecision)...)
	case types.SubIndicatorWR:
		rows = append(rows, slotRows("WR", bar.WRList, oscillatorPrecision)...)
	}

	return rows
}

// Decorate fills DateString and SelectedItemList on every bar in place.
func (b *Builder) Decorate(series []types.EnrichedBar, main types.MainIndicator, sub types.SubIndicator) {
	for i := range series {
		series[i].DateString = b.DateString(series[i].Bar)
		series[i].SelectedItemList = b.Rows(series[i], main, sub)
	}
}

func (b *Builder) baseRows(bar types.EnrichedBar) []types.DisplayRow {
	price := func(v float64) string {
		return format.Round(v, b.opts.PricePrecision, false, b.opts.ShowGrouping)
	}

	// The sign is written from the direction so a flat bar shows "+0.00".
	direction := "-"
	color := b.opts.Colors.DecreaseColor
	if bar.IsIncrease() {
		direction = "+"
		color = b.opts.Colors.IncreaseColor
	}

	change := math.Abs(bar.Change())
	changePercent := math.Abs(bar.ChangePercent())

	changeDetail := signed(direction, format.Round(change, b.opts.PricePrecision, false, b.opts.ShowGrouping))
	percentDetail := signed(direction, format.Round(changePercent, percentPrecision, false, b.opts.ShowGrouping))
	if percentDetail != format.Unavailable {
		percentDetail += "%"
	}

	return []types.DisplayRow{
		b.row("Time", b.DateString(bar.Bar)),
		b.row("Open", price(bar.Open)),
		b.row("High", price(bar.High)),
		b.row("Low", price(bar.Low)),
		b.row("Close", price(bar.Close)),
		{Title: "Change", Detail: changeDetail, Color: optional.Some(color)},
		{Title: "Change %", Detail: percentDetail, Color: optional.Some(color)},
		b.row("Volume", format.Round(bar.Volume, b.opts.VolumePrecision, false, b.opts.ShowGrouping)),
	}
}

func (b *Builder) row(title, detail string) types.DisplayRow {
	return types.DisplayRow{Title: title, Detail: detail, Color: optional.None[uint32]()}
}

func slotRows(prefix string, slots types.SlotValues, precision int) []types.DisplayRow {
	rows := make([]types.DisplayRow, 0, len(slots))
	for _, slot := range slots.Slots() {
		v := slots[slot]
		rows = append(rows, types.DisplayRow{
			Title:  fmt.Sprintf("%s%s", prefix, v.Title),
			Detail: format.Round(v.Value, precision, false, false),
			Color:  optional.None[uint32](),
		})
	}

	return rows
}

func signed(direction, magnitude string) string {
	if magnitude == format.Unavailable {
		return magnitude
	}

	return direction + magnitude
}
