package types

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/moznion/go-optional"
)

// Slot capacities of the multi-period families.
const (
	MASlotCapacity       = 3
	MAVolumeSlotCapacity = 2
	RSISlotCapacity      = 3
	WRSlotCapacity       = 1
)

// SlotValue is one computed value of a multi-period family.
// Title is the period as text, e.g. "5" for MA5.
type SlotValue struct {
	Value float64 `json:"value"`
	Title string  `json:"title"`
}

// NewSlotValue builds a slot value titled by its period.
func NewSlotValue(value float64, period int) SlotValue {
	return SlotValue{Value: value, Title: strconv.Itoa(period)}
}

// SlotValues maps a slot index to its value. Unrequested slots are absent.
type SlotValues map[int]SlotValue

// Get returns the value stored at slot.
func (s SlotValues) Get(slot int) optional.Option[SlotValue] {
	if v, ok := s[slot]; ok {
		return optional.Some(v)
	}

	return optional.None[SlotValue]()
}

// Slots returns the occupied slot indices in ascending order.
func (s SlotValues) Slots() []int {
	slots := make([]int, 0, len(s))
	for k := range s {
		slots = append(slots, k)
	}

	sort.Ints(slots)

	return slots
}

// Positional lays the slots out as a fixed-length array with nil holes.
// Slots outside [0, capacity) are dropped.
func (s SlotValues) Positional(capacity int) []*SlotValue {
	out := make([]*SlotValue, capacity)
	for slot, v := range s {
		if slot < 0 || slot >= capacity {
			continue
		}

		value := v
		out[slot] = &value
	}

	return out
}

// BOLLValue holds the Bollinger middle, upper and lower bands.
type BOLLValue struct {
	Mid float64
	Up  float64
	Dn  float64
}

// MACDValue holds DIF, DEA and the MACD histogram.
type MACDValue struct {
	Dif  float64
	Dea  float64
	MACD float64
}

// KDJValue holds the stochastic K, D and J lines.
type KDJValue struct {
	K float64
	D float64
	J float64
}

// DisplayRow is one title/detail line of the tooltip panel.
type DisplayRow struct {
	Title  string
	Detail string
	Color  optional.Option[uint32]
}

type displayRowWire struct {
	Title  string  `json:"title"`
	Detail string  `json:"detail"`
	Color  *uint32 `json:"color,omitempty"`
}

// MarshalJSON writes the row as {title, detail, color?}.
func (r DisplayRow) MarshalJSON() ([]byte, error) {
	wire := displayRowWire{Title: r.Title, Detail: r.Detail}
	if color, err := r.Color.Take(); err == nil {
		wire.Color = &color
	}

	return json.Marshal(wire)
}

// UnmarshalJSON reads the {title, detail, color?} form.
func (r *DisplayRow) UnmarshalJSON(data []byte) error {
	var wire displayRowWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	r.Title = wire.Title
	r.Detail = wire.Detail
	r.Color = optional.None[uint32]()
	if wire.Color != nil {
		r.Color = optional.Some(*wire.Color)
	}

	return nil
}

// EnrichedBar is a bar with indicator values and display rows attached.
// Families that were not computed are empty.
type EnrichedBar struct {
	Bar

	MAList       SlotValues
	MAVolumeList SlotValues
	RSIList      SlotValues
	WRList       SlotValues

	BOLL optional.Option[BOLLValue]
	MACD optional.Option[MACDValue]
	KDJ  optional.Option[KDJValue]

	DateString       string
	SelectedItemList []DisplayRow
}

// NewEnrichedBar wraps a bar with empty indicator families.
func NewEnrichedBar(bar Bar) EnrichedBar {
	return EnrichedBar{
		Bar:          bar,
		MAList:       SlotValues{},
		MAVolumeList: SlotValues{},
		RSIList:      SlotValues{},
		WRList:       SlotValues{},
		BOLL:         optional.None[BOLLValue](),
		MACD:         optional.None[MACDValue](),
		KDJ:          optional.None[KDJValue](),
	}
}

type enrichedBarWire struct {
	ID     int64   `json:"id"`
	Time   int64   `json:"time"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Vol    float64 `json:"vol"`
	Volume float64 `json:"volume"`

	DateString       string       `json:"dateString,omitempty"`
	SelectedItemList []DisplayRow `json:"selectedItemList,omitempty"`

	MAList       []*SlotValue `json:"maList,omitempty"`
	MAVolumeList []*SlotValue `json:"maVolumeList,omitempty"`
	RSIList      []*SlotValue `json:"rsiList,omitempty"`
	WRList       []*SlotValue `json:"wrList,omitempty"`

	BOLLMb *float64 `json:"bollMb,omitempty"`
	BOLLUp *float64 `json:"bollUp,omitempty"`
	BOLLDn *float64 `json:"bollDn,omitempty"`

	MACDDif   *float64 `json:"macdDif,omitempty"`
	MACDDea   *float64 `json:"macdDea,omitempty"`
	MACDValue *float64 `json:"macdValue,omitempty"`

	KDJK *float64 `json:"kdjK,omitempty"`
	KDJD *float64 `json:"kdjD,omitempty"`
	KDJJ *float64 `json:"kdjJ,omitempty"`
}

// MarshalJSON writes the flat model the native chart view consumes.
// Slot families become fixed-length arrays with null holes; absent
// single-value families are omitted.
func (e EnrichedBar) MarshalJSON() ([]byte, error) {
	wire := enrichedBarWire{
		ID:               e.Time,
		Time:             e.Time,
		Open:             e.Open,
		High:             e.High,
		Low:              e.Low,
		Close:            e.Close,
		Vol:              e.Volume,
		Volume:           e.Volume,
		DateString:       e.DateString,
		SelectedItemList: e.SelectedItemList,
	}

	if len(e.MAList) > 0 {
		wire.MAList = e.MAList.Positional(MASlotCapacity)
	}

	if len(e.MAVolumeList) > 0 {
		wire.MAVolumeList = e.MAVolumeList.Positional(MAVolumeSlotCapacity)
	}

	if len(e.RSIList) > 0 {
		wire.RSIList = e.RSIList.Positional(RSISlotCapacity)
	}

	if len(e.WRList) > 0 {
		wire.WRList = e.WRList.Positional(WRSlotCapacity)
	}

	if boll, err := e.BOLL.Take(); err == nil {
		wire.BOLLMb, wire.BOLLUp, wire.BOLLDn = &boll.Mid, &boll.Up, &boll.Dn
	}

	if macd, err := e.MACD.Take(); err == nil {
		wire.MACDDif, wire.MACDDea, wire.MACDValue = &macd.Dif, &macd.Dea, &macd.MACD
	}

	if kdj, err := e.KDJ.Take(); err == nil {
		wire.KDJK, wire.KDJD, wire.KDJJ = &kdj.K, &kdj.D, &kdj.J
	}

	return json.Marshal(wire)
}
