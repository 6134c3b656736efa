package types

import (
	"testing"

	"github.com/rxtech-lab/argo-kline/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TestNewChartConfigDefaults() {
	cfg := NewChartConfig()

	suite.Equal(2, cfg.PricePrecision)
	suite.Equal(0, cfg.VolumePrecision)
	suite.Equal("light", cfg.Theme)
	suite.Equal(TimeType1Min, cfg.TimeType)
	suite.True(cfg.ShouldScrollToEnd)
	suite.True(cfg.FollowSelection)

	ind := cfg.Indicators
	suite.Equal(MainIndicatorMA, ind.Main)
	suite.Equal(SubIndicatorMACD, ind.Sub)
	suite.Equal([]PeriodItem{{5, true, 0}, {10, true, 1}, {20, true, 2}}, ind.MAList)
	suite.Equal([]PeriodItem{{5, true, 0}, {10, true, 1}}, ind.MAVolumeList)
	suite.Equal([]PeriodItem{{6, false, 0}, {12, false, 1}, {24, false, 2}}, ind.RSIList)
	suite.Equal([]PeriodItem{{14, false, 0}}, ind.WRList)
	suite.Equal(20, ind.BOLLN)
	suite.Equal(2.0, ind.BOLLP)
	suite.Equal([3]int{12, 26, 9}, [3]int{ind.MACDS, ind.MACDL, ind.MACDM})
	suite.Equal([3]int{9, 3, 3}, [3]int{ind.KDJN, ind.KDJM1, ind.KDJM2})

	suite.NoError(cfg.Validate())
}

func (suite *ConfigTestSuite) TestNewIndicatorConfigSelection() {
	cfg := NewIndicatorConfig(MainIndicatorBOLL, SubIndicatorRSI)

	suite.False(AnySelected(cfg.MAList))
	suite.True(AnySelected(cfg.MAVolumeList))
	suite.True(AnySelected(cfg.RSIList))
	suite.False(AnySelected(cfg.WRList))

	cfg.Sub = SubIndicatorWR
	cfg.ApplySelection()
	suite.False(AnySelected(cfg.RSIList))
	suite.True(AnySelected(cfg.WRList))
}

func (suite *ConfigTestSuite) TestCloneDoesNotShare() {
	cfg := NewIndicatorConfig(MainIndicatorMA, SubIndicatorNone)
	clone := cfg.Clone()
	clone.MAList[0].Period = 7

	suite.Equal(5, cfg.MAList[0].Period)
}

func (suite *ConfigTestSuite) TestValidateSlots() {
	cfg := NewIndicatorConfig(MainIndicatorMA, SubIndicatorRSI)
	cfg.MAList[2].Index = 3
	cfg.RSIList[1].Index = 0

	err := cfg.Validate()
	suite.Error(err)

	var errs errors.Errors
	suite.True(errors.As(err, &errs))
	suite.Equal([]errors.ErrorCode{errors.ErrCodeInvalidSlot, errors.ErrCodeDuplicateSlot}, errs.Codes())
}

func (suite *ConfigTestSuite) TestValidateRanges() {
	cfg := NewIndicatorConfig(MainIndicatorMA, SubIndicatorNone)
	cfg.MAList[0].Period = 0
	cfg.BOLLN = 1

	err := cfg.Validate()
	suite.Error(err)

	var errs errors.Errors
	suite.True(errors.As(err, &errs))
	suite.Equal([]errors.ErrorCode{errors.ErrCodeInvalidConfiguration}, errs.Codes())
	suite.Contains(err.Error(), "BOLLN")
	suite.Contains(err.Error(), "Period")
}

func (suite *ConfigTestSuite) TestValidateTooManyItems() {
	cfg := NewIndicatorConfig(MainIndicatorMA, SubIndicatorWR)
	cfg.WRList = append(cfg.WRList, PeriodItem{Period: 28, Selected: true, Index: 0})

	err := cfg.Validate()
	suite.Error(err)

	var errs errors.Errors
	suite.True(errors.As(err, &errs))
	suite.Contains(errs.Codes(), errors.ErrCodeInvalidConfiguration)
	suite.Contains(errs.Codes(), errors.ErrCodeDuplicateSlot)
}

func (suite *ConfigTestSuite) TestChartConfigValidate() {
	cfg := NewChartConfig()
	cfg.Theme = "sepia"
	cfg.TimeType = "2min"
	cfg.Indicators.Main = MainIndicator(5)

	err := cfg.Validate()
	suite.Error(err)

	var errs errors.Errors
	suite.True(errors.As(err, &errs))
	suite.Equal([]errors.ErrorCode{
		errors.ErrCodeInvalidConfiguration,
		errors.ErrCodeInvalidTimeType,
		errors.ErrCodeInvalidSelection,
	}, errs.Codes())
}
