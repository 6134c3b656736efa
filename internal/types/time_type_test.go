package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type TimeTypeTestSuite struct {
	suite.Suite
}

func TestTimeTypeSuite(t *testing.T) {
	suite.Run(t, new(TimeTypeTestSuite))
}

func (suite *TimeTypeTestSuite) TestNativeValues() {
	suite.Equal(-1, TimeTypeMinute.NativeValue())
	suite.Equal(1, TimeType1Min.NativeValue())
	suite.Equal(4, TimeType15Min.NativeValue())
	suite.Equal(11, TimeType1Month.NativeValue())
	suite.Len(TimeTypes(), 12)
}

func (suite *TimeTypeTestSuite) TestIntervals() {
	suite.Equal(15*time.Minute, TimeType15Min.Interval())
	suite.Equal(24*time.Hour, TimeType1Day.Interval())
	suite.True(TimeTypeMinute.IsMinuteChart())
	suite.False(TimeType1Min.IsMinuteChart())
}

func (suite *TimeTypeTestSuite) TestParse() {
	tt, err := ParseTimeType("4h")
	suite.NoError(err)
	suite.Equal(TimeType4Hour, tt)
	suite.Equal("4h", tt.Label())

	_, err = ParseTimeType("2h")
	suite.Error(err)
	suite.False(TimeType("2h").IsValid())
}

func (suite *TimeTypeTestSuite) TestNextWraps() {
	suite.Equal(TimeType1Min, TimeTypeMinute.Next())
	suite.Equal(TimeTypeMinute, TimeType1Month.Next())
}
