package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
)

type IndicatorTestSuite struct {
	suite.Suite
}

func TestIndicatorSuite(t *testing.T) {
	suite.Run(t, new(IndicatorTestSuite))
}

func (suite *IndicatorTestSuite) TestIndicatorTypeConstants() {
	suite.Equal(IndicatorType("ma"), IndicatorTypeMA)
	suite.Equal(IndicatorType("volume_ma"), IndicatorTypeVolumeMA)
	suite.Equal(IndicatorType("bollinger_bands"), IndicatorTypeBollingerBands)
	suite.Equal(IndicatorType("macd"), IndicatorTypeMACD)
	suite.Equal(IndicatorType("kdj"), IndicatorTypeKDJ)
	suite.Equal(IndicatorType("rsi"), IndicatorTypeRSI)
	suite.Equal(IndicatorType("williams_r"), IndicatorTypeWilliamsR)
}

func (suite *IndicatorTestSuite) TestNativeCodes() {
	suite.Equal(0, int(MainIndicatorNone))
	suite.Equal(1, int(MainIndicatorMA))
	suite.Equal(2, int(MainIndicatorBOLL))
	suite.Equal(0, int(SubIndicatorNone))
	suite.Equal(3, int(SubIndicatorMACD))
	suite.Equal(4, int(SubIndicatorKDJ))
	suite.Equal(5, int(SubIndicatorRSI))
	suite.Equal(6, int(SubIndicatorWR))
}

func (suite *IndicatorTestSuite) TestMainIndicatorText() {
	tests := []struct {
		name     string
		input    string
		expected MainIndicator
		wantErr  bool
	}{
		{name: "name", input: "boll", expected: MainIndicatorBOLL},
		{name: "upper case", input: "MA", expected: MainIndicatorMA},
		{name: "numeric code", input: "2", expected: MainIndicatorBOLL},
		{name: "none", input: "none", expected: MainIndicatorNone},
		{name: "sub code rejected", input: "3", wantErr: true},
		{name: "unknown", input: "ema", wantErr: true},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			var m MainIndicator
			err := m.UnmarshalText([]byte(tc.input))
			if tc.wantErr {
				suite.Error(err)
				return
			}

			suite.NoError(err)
			suite.Equal(tc.expected, m)
		})
	}

	text, err := MainIndicatorBOLL.MarshalText()
	suite.NoError(err)
	suite.Equal("boll", string(text))

	_, err = MainIndicator(9).MarshalText()
	suite.Error(err)
}

func (suite *IndicatorTestSuite) TestSubIndicatorJSON() {
	var payload struct {
		A SubIndicator `json:"a"`
		B SubIndicator `json:"b"`
	}

	err := json.Unmarshal([]byte(`{"a":"kdj","b":6}`), &payload)
	suite.NoError(err)
	suite.Equal(SubIndicatorKDJ, payload.A)
	suite.Equal(SubIndicatorWR, payload.B)

	out, err := json.Marshal(payload)
	suite.NoError(err)
	suite.JSONEq(`{"a":"kdj","b":"wr"}`, string(out))

	suite.Error(json.Unmarshal([]byte(`{"a":1}`), &payload))
}

func (suite *IndicatorTestSuite) TestNextWraps() {
	suite.Equal(MainIndicatorMA, MainIndicatorNone.Next())
	suite.Equal(MainIndicatorNone, MainIndicatorBOLL.Next())
	suite.Equal(SubIndicatorMACD, SubIndicatorNone.Next())
	suite.Equal(SubIndicatorNone, SubIndicatorWR.Next())
}

func (suite *IndicatorTestSuite) TestStrings() {
	suite.Equal("boll", MainIndicatorBOLL.String())
	suite.Equal("rsi", SubIndicatorRSI.String())
	suite.Equal("main(7)", MainIndicator(7).String())
	suite.Equal("sub(1)", SubIndicator(1).String())
}
