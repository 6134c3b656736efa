package format

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type FormatTestSuite struct {
	suite.Suite
}

func TestFormatSuite(t *testing.T) {
	suite.Run(t, new(FormatTestSuite))
}

func (suite *FormatTestSuite) TestRound() {
	tests := []struct {
		name      string
		value     float64
		precision int
		showSign  bool
		grouping  bool
		expected  string
	}{
		{name: "pads fraction", value: 5, precision: 2, expected: "5.00"},
		{name: "rounds half away from zero", value: 2.345, precision: 2, expected: "2.35"},
		{name: "zero precision", value: 1234.56, precision: 0, expected: "1235"},
		{name: "four digits", value: -0.000123456, precision: 4, expected: "-0.0001"},
		{name: "sign on positive", value: 5, precision: 2, showSign: true, expected: "+5.00"},
		{name: "no sign on zero", value: 0, precision: 2, showSign: true, expected: "0.00"},
		{name: "negative keeps minus", value: -3.2, precision: 1, showSign: true, expected: "-3.2"},
		{name: "grouping", value: 1234567.891, precision: 2, grouping: true, expected: "1,234,567.89"},
		{name: "grouping short integer", value: 999.5, precision: 1, grouping: true, expected: "999.5"},
		{name: "grouping negative", value: -1234, precision: 0, grouping: true, expected: "-1,234"},
		{name: "grouping exact thousands", value: 100000, precision: 0, grouping: true, expected: "100,000"},
		{name: "sign and grouping", value: 50000, precision: 2, showSign: true, grouping: true, expected: "+50,000.00"},
		{name: "negative precision clamps", value: 1.6, precision: -1, expected: "2"},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			suite.Equal(tc.expected, Round(tc.value, tc.precision, tc.showSign, tc.grouping))
		})
	}
}

func (suite *FormatTestSuite) TestRoundUnavailable() {
	suite.Equal(Unavailable, Round(math.NaN(), 2, false, false))
	suite.Equal("--", Round(math.NaN(), 2, true, true))
	suite.Equal(Unavailable, Round(math.Inf(1), 2, true, false))
	suite.Equal(Unavailable, Round(math.Inf(-1), 0, false, true))

	// Stable across calls.
	suite.Equal(Round(math.NaN(), 4, false, false), Round(math.NaN(), 4, false, false))
}

func (suite *FormatTestSuite) TestFormatTimestampIn() {
	ts := time.Date(2024, time.March, 7, 9, 5, 3, 0, time.UTC).UnixMilli()

	suite.Equal("03-07 09:05", FormatTimestampIn(ts, "MM-DD HH:mm", time.UTC))
	suite.Equal("09:05:03", FormatTimestampIn(ts, "HH:mm:ss", time.UTC))
	suite.Equal("2024/03/07", FormatTimestampIn(ts, "2024/MM/DD", time.UTC))

	shanghai := time.FixedZone("UTC+8", 8*60*60)
	suite.Equal("03-07 17:05", FormatTimestampIn(ts, "MM-DD HH:mm", shanghai))
}

func (suite *FormatTestSuite) TestFormatTimestampFirstOccurrenceOnly() {
	ts := time.Date(2024, time.December, 31, 23, 59, 0, 0, time.UTC).UnixMilli()

	suite.Equal("12 MM", FormatTimestampIn(ts, "MM MM", time.UTC))
	suite.Equal("no tokens", FormatTimestampIn(ts, "no tokens", time.UTC))
}

func (suite *FormatTestSuite) TestFormatTimestampLocal() {
	ts := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC).UnixMilli()
	local := time.UnixMilli(ts)

	suite.Equal(local.Format("01-02 15:04"), FormatTimestamp(ts, "MM-DD HH:mm"))
}
