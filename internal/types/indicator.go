package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/invopop/jsonschema"
)

type IndicatorType string

const (
	IndicatorTypeMA             IndicatorType = "ma"
	IndicatorTypeVolumeMA       IndicatorType = "volume_ma"
	IndicatorTypeBollingerBands IndicatorType = "bollinger_bands"
	IndicatorTypeMACD           IndicatorType = "macd"
	IndicatorTypeKDJ            IndicatorType = "kdj"
	IndicatorTypeRSI            IndicatorType = "rsi"
	IndicatorTypeWilliamsR      IndicatorType = "williams_r"
)

// MainIndicator is the overlay drawn on the candle pane.
// The numeric values are the codes the native chart view expects.
type MainIndicator int

const (
	MainIndicatorNone MainIndicator = 0
	MainIndicatorMA   MainIndicator = 1
	MainIndicatorBOLL MainIndicator = 2
)

// SubIndicator is the oscillator drawn in the lower pane.
type SubIndicator int

const (
	SubIndicatorNone SubIndicator = 0
	SubIndicatorMACD SubIndicator = 3
	SubIndicatorKDJ  SubIndicator = 4
	SubIndicatorRSI  SubIndicator = 5
	SubIndicatorWR   SubIndicator = 6
)

var mainIndicatorNames = map[MainIndicator]string{
	MainIndicatorNone: "none",
	MainIndicatorMA:   "ma",
	MainIndicatorBOLL: "boll",
}

var subIndicatorNames = map[SubIndicator]string{
	SubIndicatorNone: "none",
	SubIndicatorMACD: "macd",
	SubIndicatorKDJ:  "kdj",
	SubIndicatorRSI:  "rsi",
	SubIndicatorWR:   "wr",
}

// MainIndicators lists the main selections in display order.
func MainIndicators() []MainIndicator {
	return []MainIndicator{MainIndicatorNone, MainIndicatorMA, MainIndicatorBOLL}
}

// SubIndicators lists the sub selections in display order.
func SubIndicators() []SubIndicator {
	return []SubIndicator{SubIndicatorNone, SubIndicatorMACD, SubIndicatorKDJ, SubIndicatorRSI, SubIndicatorWR}
}

func (m MainIndicator) String() string {
	if name, ok := mainIndicatorNames[m]; ok {
		return name
	}

	return fmt.Sprintf("main(%d)", int(m))
}

// Next returns the selection after m, wrapping around.
func (m MainIndicator) Next() MainIndicator {
	all := MainIndicators()
	for i, v := range all {
		if v == m {
			return all[(i+1)%len(all)]
		}
	}

	return MainIndicatorNone
}

// MarshalText encodes the selection by name.
func (m MainIndicator) MarshalText() ([]byte, error) {
	name, ok := mainIndicatorNames[m]
	if !ok {
		return nil, fmt.Errorf("unknown main indicator %d", int(m))
	}

	return []byte(name), nil
}

// UnmarshalText accepts a name (ma, boll, none) or the numeric code.
func (m *MainIndicator) UnmarshalText(text []byte) error {
	value := strings.ToLower(strings.TrimSpace(string(text)))
	for k, name := range mainIndicatorNames {
		if name == value {
			*m = k
			return nil
		}
	}

	code, err := strconv.Atoi(value)
	if err == nil {
		if _, ok := mainIndicatorNames[MainIndicator(code)]; ok {
			*m = MainIndicator(code)
			return nil
		}
	}

	return fmt.Errorf("unknown main indicator %q", string(text))
}

// UnmarshalJSON accepts either a JSON string or a JSON number.
func (m *MainIndicator) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return m.UnmarshalText([]byte(s))
	}

	return m.UnmarshalText(data)
}

// JSONSchema describes the selection as a string enum.
func (MainIndicator) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Title:       "Main Indicator",
		Description: "Overlay drawn on the candle pane",
		Enum:        []any{"none", "ma", "boll"},
		Default:     "ma",
	}
}

func (s SubIndicator) String() string {
	if name, ok := subIndicatorNames[s]; ok {
		return name
	}

	return fmt.Sprintf("sub(%d)", int(s))
}

// Next returns the selection after s, wrapping around.
func (s SubIndicator) Next() SubIndicator {
	all := SubIndicators()
	for i, v := range all {
		if v == s {
			return all[(i+1)%len(all)]
		}
	}

	return SubIndicatorNone
}

// MarshalText encodes the selection by name.
func (s SubIndicator) MarshalText() ([]byte, error) {
	name, ok := subIndicatorNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown sub indicator %d", int(s))
	}

	return []byte(name), nil
}

// UnmarshalText accepts a name (macd, kdj, rsi, wr, none) or the numeric code.
func (s *SubIndicator) UnmarshalText(text []byte) error {
	value := strings.ToLower(strings.TrimSpace(string(text)))
	for k, name := range subIndicatorNames {
		if name == value {
			*s = k
			return nil
		}
	}

	code, err := strconv.Atoi(value)
	if err == nil {
		if _, ok := subIndicatorNames[SubIndicator(code)]; ok {
			*s = SubIndicator(code)
			return nil
		}
	}

	return fmt.Errorf("unknown sub indicator %q", string(text))
}

// UnmarshalJSON accepts either a JSON string or a JSON number.
func (s *SubIndicator) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		return s.UnmarshalText([]byte(str))
	}

	return s.UnmarshalText(data)
}

// JSONSchema describes the selection as a string enum.
func (SubIndicator) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Title:       "Sub Indicator",
		Description: "Oscillator drawn in the lower pane",
		Enum:        []any{"none", "macd", "kdj", "rsi", "wr"},
		Default:     "macd",
	}
}
