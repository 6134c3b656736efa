// Package format renders indicator values and timestamps for the tooltip panel.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Unavailable is rendered in place of a value that is missing or not a number.
const Unavailable = "--"

// Round renders value with exactly precision fractional digits.
//
// NaN and ±Inf render as Unavailable. With showSign a "+" is prefixed to
// strictly positive values; negative values keep their own "-". With
// showGrouping the integer part gets "," thousands separators.
func Round(value float64, precision int, showSign bool, showGrouping bool) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Unavailable
	}

	if precision < 0 {
		precision = 0
	}

	text := decimal.NewFromFloat(value).StringFixed(int32(precision))

	if showGrouping {
		text = group(text)
	}

	if showSign && value > 0 {
		text = "+" + text
	}

	return text
}

func group(text string) string {
	sign := ""
	if strings.HasPrefix(text, "-") {
		sign, text = "-", text[1:]
	}

	integer, fraction, hasFraction := strings.Cut(text, ".")
	if len(integer) <= 3 {
		return sign + text
	}

	var b strings.Builder
	lead := len(integer) % 3
	if lead > 0 {
		b.WriteString(integer[:lead])
	}

	for i := lead; i < len(integer); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}

		b.WriteString(integer[i : i+3])
	}

	if hasFraction {
		b.WriteByte('.')
		b.WriteString(fraction)
	}

	return sign + b.String()
}

// FormatTimestamp renders epochMillis in the local zone. See FormatTimestampIn.
func FormatTimestamp(epochMillis int64, pattern string) string {
	return FormatTimestampIn(epochMillis, pattern, time.Local)
}

// FormatTimestampIn replaces the first occurrence of MM, DD, HH, mm and ss in
// pattern with the two-digit month, day, hour, minute and second of epochMillis
// in loc. Any other text is kept as is.
func FormatTimestampIn(epochMillis int64, pattern string, loc *time.Location) string {
	t := time.UnixMilli(epochMillis).In(loc)

	replacements := []struct {
		token string
		value int
	}{
		{"MM", int(t.Month())},
		{"DD", t.Day()},
		{"HH", t.Hour()},
		{"mm", t.Minute()},
		{"ss", t.Second()},
	}

	out := pattern
	for _, r := range replacements {
		out = strings.Replace(out, r.token, fmt.Sprintf("%02d", r.value), 1)
	}

	return out
}
