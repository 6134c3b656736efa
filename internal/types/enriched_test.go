package types

import (
	"encoding/json"
	"testing"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/suite"
)

type EnrichedBarTestSuite struct {
	suite.Suite
}

func TestEnrichedBarSuite(t *testing.T) {
	suite.Run(t, new(EnrichedBarTestSuite))
}

func (suite *EnrichedBarTestSuite) TestSlotValues() {
	slots := SlotValues{2: NewSlotValue(3.5, 20), 0: NewSlotValue(1.5, 5)}

	suite.Equal([]int{0, 2}, slots.Slots())
	suite.True(slots.Get(0).IsSome())
	suite.True(slots.Get(1).IsNone())

	v, err := slots.Get(2).Take()
	suite.NoError(err)
	suite.Equal("20", v.Title)

	positional := slots.Positional(MASlotCapacity)
	suite.Len(positional, 3)
	suite.NotNil(positional[0])
	suite.Nil(positional[1])
	suite.Equal(3.5, positional[2].Value)
}

func (suite *EnrichedBarTestSuite) TestPositionalDropsOutOfRange() {
	slots := SlotValues{0: NewSlotValue(1, 14), 4: NewSlotValue(2, 28)}
	positional := slots.Positional(WRSlotCapacity)

	suite.Len(positional, 1)
	suite.Equal(1.0, positional[0].Value)
}

func (suite *EnrichedBarTestSuite) TestMarshalBareBar() {
	bar := NewEnrichedBar(Bar{Time: 1700000000000, Open: 1, High: 2, Low: 0.5, Close: 1.5, Volume: 10})

	out, err := json.Marshal(bar)
	suite.NoError(err)
	suite.JSONEq(`{
		"id": 1700000000000, "time": 1700000000000,
		"open": 1, "high": 2, "low": 0.5, "close": 1.5,
		"vol": 10, "volume": 10
	}`, string(out))
}

func (suite *EnrichedBarTestSuite) TestMarshalEnrichedBar() {
	bar := NewEnrichedBar(Bar{Time: 1, Open: 100, High: 110, Low: 90, Close: 105, Volume: 1000})
	bar.MAList[1] = NewSlotValue(104, 10)
	bar.WRList[0] = NewSlotValue(-25, 14)
	bar.BOLL = optional.Some(BOLLValue{Mid: 100, Up: 110, Dn: 90})
	bar.KDJ = optional.Some(KDJValue{K: 50, D: 50, J: 50})
	bar.DateString = "01-01 08:00"
	bar.SelectedItemList = []DisplayRow{
		{Title: "Time", Detail: "01-01 08:00"},
		{Title: "Change", Detail: "+5.00", Color: optional.Some(uint32(0xFF00C752))},
	}

	out, err := json.Marshal(bar)
	suite.NoError(err)
	suite.JSONEq(`{
		"id": 1, "time": 1,
		"open": 100, "high": 110, "low": 90, "close": 105,
		"vol": 1000, "volume": 1000,
		"dateString": "01-01 08:00",
		"selectedItemList": [
			{"title": "Time", "detail": "01-01 08:00"},
			{"title": "Change", "detail": "+5.00", "color": 4278241106}
		],
		"maList": [null, {"value": 104, "title": "10"}, null],
		"wrList": [{"value": -25, "title": "14"}],
		"bollMb": 100, "bollUp": 110, "bollDn": 90,
		"kdjK": 50, "kdjD": 50, "kdjJ": 50
	}`, string(out))
}

func (suite *EnrichedBarTestSuite) TestDisplayRowRoundTrip() {
	rows := []DisplayRow{
		{Title: "Open", Detail: "100.00"},
		{Title: "Change %", Detail: "-1.20%", Color: optional.Some(uint32(7))},
	}

	out, err := json.Marshal(rows)
	suite.NoError(err)

	var decoded []DisplayRow
	suite.NoError(json.Unmarshal(out, &decoded))
	suite.Equal("Open", decoded[0].Title)
	suite.True(decoded[0].Color.IsNone())
	suite.Equal(uint32(7), decoded[1].Color.Unwrap())
}

func (suite *EnrichedBarTestSuite) TestBarChange() {
	bar := Bar{Open: 100, Close: 105}
	suite.Equal(5.0, bar.Change())
	suite.Equal(5.0, bar.ChangePercent())
	suite.True(bar.IsIncrease())

	flat := Bar{Open: 100, Close: 100}
	suite.True(flat.IsIncrease())

	down := Bar{Open: 100, Close: 90}
	suite.False(down.IsIncrease())
	suite.Equal(-10.0, down.ChangePercent())
}
