package indicator

import (
	"math"
	"testing"

	"github.com/rxtech-lab/argo-kline/internal/types"
	"github.com/stretchr/testify/suite"
)

type BollingerBandsTestSuite struct {
	suite.Suite
}

func TestBollingerBandsSuite(t *testing.T) {
	suite.Run(t, new(BollingerBandsTestSuite))
}

func (suite *BollingerBandsTestSuite) TestWarmUpCarriesClose() {
	bars := rampBars(10, 25)
	boll := CalculateBOLL(bars, 20, 2)

	for i := 0; i < 19; i++ {
		c := bars[i].Close
		suite.Equal(types.BOLLValue{Mid: c, Up: c, Dn: c}, boll[i])
	}
}

func (suite *BollingerBandsTestSuite) TestSampleStandardDeviation() {
	bars := barsFromCloses(1, 2, 3, 4, 5)
	boll := CalculateBOLL(bars, 5, 2)

	std := math.Sqrt(10.0 / 4.0)
	suite.InDelta(3.0, boll[4].Mid, 1e-12)
	suite.InDelta(3+2*std, boll[4].Up, 1e-12)
	suite.InDelta(3-2*std, boll[4].Dn, 1e-12)
}

func (suite *BollingerBandsTestSuite) TestConstantSeriesCollapses() {
	bars := barsFromCloses(42, 42, 42, 42, 42, 42, 42, 42)
	boll := CalculateBOLL(bars, 4, 2)

	for _, v := range boll {
		suite.Equal(types.BOLLValue{Mid: 42, Up: 42, Dn: 42}, v)
	}
}

func (suite *BollingerBandsTestSuite) TestBandsAreSymmetric() {
	bars := zigzagBars(60)
	boll := CalculateBOLL(bars, 20, 2.5)

	for i := 19; i < len(bars); i++ {
		suite.InDelta(boll[i].Up-boll[i].Mid, boll[i].Mid-boll[i].Dn, 1e-9)
		suite.GreaterOrEqual(boll[i].Up, boll[i].Mid)
	}
}

func (suite *BollingerBandsTestSuite) TestSingleBarWindowHasNoWidth() {
	boll := CalculateBOLL(barsFromCloses(5, 7), 1, 2)
	suite.Equal(types.BOLLValue{Mid: 7, Up: 7, Dn: 7}, boll[1])
}

func (suite *BollingerBandsTestSuite) TestApply() {
	series := enrich(zigzagBars(30))
	cfg := types.NewIndicatorConfig(types.MainIndicatorBOLL, types.SubIndicatorNone)

	bb := NewBollingerBands()
	suite.True(bb.Enabled(cfg))
	bb.Apply(series, cfg)

	for i := range series {
		suite.True(series[i].BOLL.IsSome())
		suite.Empty(series[i].MAList)
	}

	cfg.Main = types.MainIndicatorMA
	suite.False(bb.Enabled(cfg))
}
