// Package theme provides the light and dark chart palettes.
package theme

import (
	"fmt"
	"math"

	"github.com/rxtech-lab/argo-kline/internal/types"
	"github.com/rxtech-lab/argo-kline/pkg/errors"
)

// Color is a packed 0xAARRGGBB value, the form native chart views consume.
type Color uint32

// RGB builds an opaque color from channel intensities in [0, 1].
func RGB(r, g, b float64) Color {
	return RGBA(r, g, b, 1)
}

// RGBA builds a color from channel intensities and alpha in [0, 1].
func RGBA(r, g, b, a float64) Color {
	return Color(channel(a)<<24 | channel(r)<<16 | channel(g)<<8 | channel(b))
}

func channel(v float64) uint32 {
	return uint32(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// White is opaque white.
const White Color = 0xFFFFFFFF

// Hex renders the color as #RRGGBB, dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%06X", uint32(c)&0xFFFFFF)
}

// ARGB returns the packed value.
func (c Color) ARGB() uint32 {
	return uint32(c)
}

// Theme is the set of colors one chart appearance uses.
type Theme struct {
	Name string

	Increase        Color
	Decrease        Color
	MinuteLine      Color
	Background      Color
	Title           Color
	Detail          Color
	Grid            Color
	PanelBackground Color
}

const (
	NameLight = "light"
	NameDark  = "dark"
)

// Light is the default appearance.
var Light = Theme{
	Name:            NameLight,
	Increase:        RGB(0.0, 0.78, 0.32),
	Decrease:        RGB(1.0, 0.27, 0.27),
	MinuteLine:      RGB(0, 0.4, 0.93),
	Background:      White,
	Title:           RGB(0.08, 0.09, 0.12),
	Detail:          RGB(0.55, 0.62, 0.68),
	Grid:            RGB(0.91, 0.92, 0.93),
	PanelBackground: RGBA(1, 1, 1, 0.95),
}

// Dark is the night appearance.
var Dark = Theme{
	Name:            NameDark,
	Increase:        RGB(0.0, 1.0, 0.53),
	Decrease:        RGB(1.0, 0.4, 0.4),
	MinuteLine:      RGB(0.14, 0.51, 1),
	Background:      RGB(0.07, 0.12, 0.19),
	Title:           RGB(0.81, 0.83, 0.91),
	Detail:          RGB(0.43, 0.53, 0.66),
	Grid:            RGB(0.13, 0.2, 0.29),
	PanelBackground: RGBA(0.03, 0.09, 0.14, 0.9),
}

// TargetColors are the line colors of indicator slots, shared by both themes.
var TargetColors = []Color{
	RGB(0.96, 0.86, 0.58),
	RGB(0.38, 0.82, 0.75),
	RGB(0.8, 0.57, 1),
	RGB(1, 0.23, 0.24),
	RGB(0.44, 0.82, 0.03),
	RGB(0.44, 0.13, 1),
}

// Get resolves a theme by name.
func Get(name string) (Theme, error) {
	switch name {
	case NameLight, "":
		return Light, nil
	case NameDark:
		return Dark, nil
	default:
		return Theme{}, errors.Newf(errors.ErrCodeInvalidTheme, "unknown theme %q", name)
	}
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t.Name == NameDark {
		return Light
	}

	return Dark
}

// ColorList returns the rise and fall colors used for change rows.
func (t Theme) ColorList() types.ColorList {
	return types.ColorList{
		IncreaseColor: t.Increase.ARGB(),
		DecreaseColor: t.Decrease.ARGB(),
	}
}

// ConfigList returns the colors the native chart view draws with.
func (t Theme) ConfigList() types.ConfigList {
	targets := make([]uint32, len(TargetColors))
	for i, c := range TargetColors {
		targets[i] = c.ARGB()
	}

	return types.ConfigList{
		ColorList:            t.ColorList(),
		TargetColorList:      targets,
		MinuteLineColor:      t.MinuteLine.ARGB(),
		BackgroundColor:      t.Background.ARGB(),
		TextColor:            t.Detail.ARGB(),
		GridColor:            t.Grid.ARGB(),
		CandleTextColor:      t.Title.ARGB(),
		PanelBackgroundColor: t.PanelBackground.ARGB(),
		PanelBorderColor:     t.Detail.ARGB(),
		PanelTextColor:       t.Title.ARGB(),
	}
}
