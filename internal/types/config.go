package types

import (
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-kline/pkg/errors"
)

// PeriodItem requests one period of a multi-period family at a display slot.
type PeriodItem struct {
	Period   int  `yaml:"period" json:"period" jsonschema:"title=Period,description=Lookback length in bars,minimum=1" validate:"gte=1"`
	Selected bool `yaml:"selected" json:"selected" jsonschema:"title=Selected,description=Whether the period is computed"`
	Index    int  `yaml:"index" json:"index" jsonschema:"title=Slot,description=Display slot of the value,minimum=0" validate:"gte=0"`
}

// IndicatorConfig is the declarative indicator request, the target list of
// the native chart view.
type IndicatorConfig struct {
	Main MainIndicator `yaml:"main" json:"main" default:"ma"`
	Sub  SubIndicator  `yaml:"sub" json:"sub" default:"macd"`

	MAList       []PeriodItem `yaml:"maList" json:"maList" jsonschema:"title=MA Periods,maxItems=3" default:"[{\"period\":5,\"selected\":true,\"index\":0},{\"period\":10,\"selected\":true,\"index\":1},{\"period\":20,\"selected\":true,\"index\":2}]" validate:"max=3,dive"`
	MAVolumeList []PeriodItem `yaml:"maVolumeList" json:"maVolumeList" jsonschema:"title=Volume MA Periods,maxItems=2" default:"[{\"period\":5,\"selected\":true,\"index\":0},{\"period\":10,\"selected\":true,\"index\":1}]" validate:"max=2,dive"`

	BOLLN int     `yaml:"bollN" json:"bollN" jsonschema:"title=BOLL Period,minimum=2" default:"20" validate:"gte=2"`
	BOLLP float64 `yaml:"bollP" json:"bollP" jsonschema:"title=BOLL Width,description=Standard deviation multiplier" default:"2" validate:"gt=0"`

	MACDS int `yaml:"macdS" json:"macdS" jsonschema:"title=MACD Short Period,minimum=1" default:"12" validate:"gte=1"`
	MACDL int `yaml:"macdL" json:"macdL" jsonschema:"title=MACD Long Period,minimum=1" default:"26" validate:"gte=1"`
	MACDM int `yaml:"macdM" json:"macdM" jsonschema:"title=MACD Signal Period,minimum=1" default:"9" validate:"gte=1"`

	KDJN  int `yaml:"kdjN" json:"kdjN" jsonschema:"title=KDJ Period,minimum=1" default:"9" validate:"gte=1"`
	KDJM1 int `yaml:"kdjM1" json:"kdjM1" jsonschema:"title=KDJ Smoothing,minimum=1" default:"3" validate:"gte=1"`
	KDJM2 int `yaml:"kdjM2" json:"kdjM2" jsonschema:"title=KDJ J Multiplier,minimum=1" default:"3" validate:"gte=1"`

	RSIList []PeriodItem `yaml:"rsiList" json:"rsiList" jsonschema:"title=RSI Periods,maxItems=3" default:"[{\"period\":6,\"selected\":false,\"index\":0},{\"period\":12,\"selected\":false,\"index\":1},{\"period\":24,\"selected\":false,\"index\":2}]" validate:"max=3,dive"`
	WRList  []PeriodItem `yaml:"wrList" json:"wrList" jsonschema:"title=WR Periods,maxItems=1" default:"[{\"period\":14,\"selected\":false,\"index\":0}]" validate:"max=1,dive"`
}

// NewIndicatorConfig returns the default periods with slot selection derived
// from the given main and sub indicators.
func NewIndicatorConfig(main MainIndicator, sub SubIndicator) IndicatorConfig {
	var cfg IndicatorConfig
	defaults.MustSet(&cfg)

	cfg.Main = main
	cfg.Sub = sub
	cfg.ApplySelection()

	return cfg
}

// ApplySelection selects MA slots iff main is MA, RSI slots iff sub is RSI and
// WR slots iff sub is WR. Volume MA slots keep their flags.
func (c *IndicatorConfig) ApplySelection() {
	setSelected(c.MAList, c.Main == MainIndicatorMA)
	setSelected(c.RSIList, c.Sub == SubIndicatorRSI)
	setSelected(c.WRList, c.Sub == SubIndicatorWR)
}

// Clone returns a deep copy so callers can adjust flags without sharing slices.
func (c IndicatorConfig) Clone() IndicatorConfig {
	out := c
	out.MAList = append([]PeriodItem(nil), c.MAList...)
	out.MAVolumeList = append([]PeriodItem(nil), c.MAVolumeList...)
	out.RSIList = append([]PeriodItem(nil), c.RSIList...)
	out.WRList = append([]PeriodItem(nil), c.WRList...)

	return out
}

// AnySelected reports whether at least one item is selected.
func AnySelected(items []PeriodItem) bool {
	for _, item := range items {
		if item.Selected {
			return true
		}
	}

	return false
}

func setSelected(items []PeriodItem, selected bool) {
	for i := range items {
		items[i].Selected = selected
	}
}

// Validate checks field ranges and that every slot index fits its family and
// is used once.
func (c IndicatorConfig) Validate() error {
	var errs errors.Errors

	if err := validator.New().Struct(c); err != nil {
		errs = append(errs, errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid indicator configuration", err))
	}

	if _, ok := mainIndicatorNames[c.Main]; !ok {
		errs = append(errs, errors.Newf(errors.ErrCodeInvalidSelection, "unknown main indicator %d", int(c.Main)))
	}

	if _, ok := subIndicatorNames[c.Sub]; !ok {
		errs = append(errs, errors.Newf(errors.ErrCodeInvalidSelection, "unknown sub indicator %d", int(c.Sub)))
	}

	errs = append(errs, checkSlots("maList", c.MAList, MASlotCapacity)...)
	errs = append(errs, checkSlots("maVolumeList", c.MAVolumeList, MAVolumeSlotCapacity)...)
	errs = append(errs, checkSlots("rsiList", c.RSIList, RSISlotCapacity)...)
	errs = append(errs, checkSlots("wrList", c.WRList, WRSlotCapacity)...)

	return errs.OrNil()
}

func checkSlots(family string, items []PeriodItem, capacity int) errors.Errors {
	var errs errors.Errors

	used := make(map[int]int, len(items))
	for i, item := range items {
		if item.Index < 0 || item.Index >= capacity {
			errs = append(errs, errors.Newf(errors.ErrCodeInvalidSlot,
				"%s[%d]: slot %d outside [0, %d)", family, i, item.Index, capacity))

			continue
		}

		if prev, ok := used[item.Index]; ok {
			errs = append(errs, errors.Newf(errors.ErrCodeDuplicateSlot,
				"%s[%d]: slot %d already used by %s[%d]", family, i, item.Index, family, prev))

			continue
		}

		used[item.Index] = i
	}

	return errs
}

// ChartConfig is everything a chart pass needs besides the bars.
type ChartConfig struct {
	Indicators IndicatorConfig `yaml:"indicators" json:"indicators" jsonschema:"title=Indicators"`

	PricePrecision  int  `yaml:"pricePrecision" json:"pricePrecision" jsonschema:"title=Price Precision,minimum=0,maximum=10" default:"2" validate:"gte=0,lte=10"`
	VolumePrecision int  `yaml:"volumePrecision" json:"volumePrecision" jsonschema:"title=Volume Precision,minimum=0,maximum=10" default:"0" validate:"gte=0,lte=10"`
	ShowGrouping    bool `yaml:"showGrouping" json:"showGrouping" jsonschema:"title=Thousands Separators"`

	Theme    string   `yaml:"theme" json:"theme" jsonschema:"title=Theme,enum=light,enum=dark" default:"light" validate:"oneof=light dark"`
	TimeType TimeType `yaml:"timeType" json:"timeType" jsonschema:"title=Period,enum=minute,enum=1min,enum=3min,enum=5min,enum=15min,enum=30min,enum=1h,enum=4h,enum=6h,enum=1D,enum=1W,enum=1M" default:"1min"`

	ShouldScrollToEnd bool `yaml:"shouldScrollToEnd" json:"shouldScrollToEnd" jsonschema:"title=Scroll To End" default:"true"`
	// FollowSelection derives MA, RSI and WR slot flags from the main and sub
	// selection before each pass.
	FollowSelection bool `yaml:"followSelection" json:"followSelection" jsonschema:"title=Follow Selection" default:"true"`
}

// NewChartConfig returns a configuration with every default applied.
func NewChartConfig() ChartConfig {
	var cfg ChartConfig
	defaults.MustSet(&cfg)

	return cfg
}

// Validate checks the chart options and the nested indicator configuration.
func (c ChartConfig) Validate() error {
	var errs errors.Errors

	if err := validator.New().StructExcept(c, "Indicators"); err != nil {
		errs = append(errs, errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid chart configuration", err))
	}

	if !c.TimeType.IsValid() {
		errs = append(errs, errors.Newf(errors.ErrCodeInvalidTimeType, "unknown time type %q", string(c.TimeType)))
	}

	if err := c.Indicators.Validate(); err != nil {
		var nested errors.Errors
		if errors.As(err, &nested) {
			errs = append(errs, nested...)
		} else {
			errs = append(errs, errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid indicator configuration", err))
		}
	}

	return errs.OrNil()
}
