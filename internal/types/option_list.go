package types

import "strconv"

// TargetItem is a period item as the native chart view reads it.
type TargetItem struct {
	Title    string `json:"title"`
	Selected bool   `json:"selected"`
	Index    int    `json:"index"`
}

// TargetList echoes the indicator configuration in the native form, with
// periods written as strings.
type TargetList struct {
	MAList       []TargetItem `json:"maList"`
	MAVolumeList []TargetItem `json:"maVolumeList"`
	BOLLN        string       `json:"bollN"`
	BOLLP        string       `json:"bollP"`
	MACDS        string       `json:"macdS"`
	MACDL        string       `json:"macdL"`
	MACDM        string       `json:"macdM"`
	KDJN         string       `json:"kdjN"`
	KDJM1        string       `json:"kdjM1"`
	KDJM2        string       `json:"kdjM2"`
	RSIList      []TargetItem `json:"rsiList"`
	WRList       []TargetItem `json:"wrList"`
}

// NewTargetList converts cfg to its native echo.
func NewTargetList(cfg IndicatorConfig) TargetList {
	return TargetList{
		MAList:       targetItems(cfg.MAList),
		MAVolumeList: targetItems(cfg.MAVolumeList),
		BOLLN:        strconv.Itoa(cfg.BOLLN),
		BOLLP:        strconv.FormatFloat(cfg.BOLLP, 'f', -1, 64),
		MACDS:        strconv.Itoa(cfg.MACDS),
		MACDL:        strconv.Itoa(cfg.MACDL),
		MACDM:        strconv.Itoa(cfg.MACDM),
		KDJN:         strconv.Itoa(cfg.KDJN),
		KDJM1:        strconv.Itoa(cfg.KDJM1),
		KDJM2:        strconv.Itoa(cfg.KDJM2),
		RSIList:      targetItems(cfg.RSIList),
		WRList:       targetItems(cfg.WRList),
	}
}

func targetItems(items []PeriodItem) []TargetItem {
	out := make([]TargetItem, 0, len(items))
	for _, item := range items {
		out = append(out, TargetItem{
			Title:    strconv.Itoa(item.Period),
			Selected: item.Selected,
			Index:    item.Index,
		})
	}

	return out
}

// ColorList holds the rise and fall colors as packed ARGB values.
type ColorList struct {
	IncreaseColor uint32 `json:"increaseColor"`
	DecreaseColor uint32 `json:"decreaseColor"`
}

// ConfigList carries the theme colors the native view draws with.
type ConfigList struct {
	ColorList            ColorList `json:"colorList"`
	TargetColorList      []uint32  `json:"targetColorList"`
	MinuteLineColor      uint32    `json:"minuteLineColor"`
	BackgroundColor      uint32    `json:"backgroundColor"`
	TextColor            uint32    `json:"textColor"`
	GridColor            uint32    `json:"gridColor"`
	CandleTextColor      uint32    `json:"candleTextColor"`
	PanelBackgroundColor uint32    `json:"panelBackgroundColor"`
	PanelBorderColor     uint32    `json:"panelBorderColor"`
	PanelTextColor       uint32    `json:"panelTextColor"`
}

// OptionList is the self-describing payload handed to the native chart view.
type OptionList struct {
	ModelArray        []EnrichedBar `json:"modelArray"`
	ShouldScrollToEnd bool          `json:"shouldScrollToEnd"`
	TargetList        TargetList    `json:"targetList"`
	Price             int           `json:"price"`
	Volume            int           `json:"volume"`
	Primary           int           `json:"primary"`
	Second            int           `json:"second"`
	Time              int           `json:"time"`
	ConfigList        ConfigList    `json:"configList"`
	Version           string        `json:"version"`
}
