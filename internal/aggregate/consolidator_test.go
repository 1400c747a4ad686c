package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/uplight-dev/alpaca-history/internal/types"
)

type ConsolidatorTestSuite struct {
	suite.Suite
	symbol types.Symbol
}

func TestConsolidatorSuite(t *testing.T) {
	suite.Run(t, new(ConsolidatorTestSuite))
}

func (suite *ConsolidatorTestSuite) SetupSuite() {
	suite.symbol = types.NewEquitySymbol("AAPL")
}

func (suite *ConsolidatorTestSuite) tradeTick(ts time.Time, price, size float64) types.Tick {
	return types.Tick{
		Symbol:   suite.symbol,
		Time:     ts,
		TickType: types.TickTypeTrade,
		Price:    price,
		Size:     size,
	}
}

func (suite *ConsolidatorTestSuite) quoteTick(ts time.Time, bid, ask float64) types.Tick {
	return types.Tick{
		Symbol:   suite.symbol,
		Time:     ts,
		TickType: types.TickTypeQuote,
		BidPrice: bid,
		BidSize:  10,
		AskPrice: ask,
		AskSize:  20,
	}
}

func (suite *ConsolidatorTestSuite) TestTradeBarsSingleBucket() {
	base := time.Date(2024, 6, 12, 9, 30, 0, 0, time.UTC)
	ticks := []types.Tick{
		suite.tradeTick(base.Add(1*time.Second), 100.0, 10),
		suite.tradeTick(base.Add(10*time.Second), 102.0, 20),
		suite.tradeTick(base.Add(30*time.Second), 99.0, 5),
		suite.tradeTick(base.Add(59*time.Second), 101.0, 15),
	}

	bars := TradeBars(ticks, time.Minute)
	suite.Require().Len(bars, 1)

	bar := bars[0]
	suite.Equal(base, bar.Time)
	suite.Equal(time.Minute, bar.Period)
	suite.Equal(100.0, bar.Open)
	suite.Equal(102.0, bar.High)
	suite.Equal(99.0, bar.Low)
	suite.Equal(101.0, bar.Close)
	suite.Equal(50.0, bar.Volume)
	suite.Equal(suite.symbol, bar.Symbol)
}

func (suite *ConsolidatorTestSuite) TestTradeBarsMultipleBuckets() {
	base := time.Date(2024, 6, 12, 9, 30, 0, 0, time.UTC)
	ticks := []types.Tick{
		suite.tradeTick(base.Add(5*time.Second), 100.0, 10),
		suite.tradeTick(base.Add(65*time.Second), 101.0, 10),
		// Gap: nothing in minute three
		suite.tradeTick(base.Add(185*time.Second), 102.0, 10),
	}

	bars := TradeBars(ticks, time.Minute)
	suite.Require().Len(bars, 3)
	suite.Equal(base, bars[0].Time)
	suite.Equal(base.Add(time.Minute), bars[1].Time)
	suite.Equal(base.Add(3*time.Minute), bars[2].Time)

	for _, bar := range bars {
		suite.Equal(time.Minute, bar.RecordEndTime().Sub(bar.RecordTime()))
	}
}

func (suite *ConsolidatorTestSuite) TestTradeBarsEmptyInput() {
	suite.Nil(TradeBars(nil, time.Minute))
	suite.Nil(TradeBars([]types.Tick{}, time.Minute))
}

func (suite *ConsolidatorTestSuite) TestTradeBarsZeroPeriod() {
	base := time.Date(2024, 6, 12, 9, 30, 0, 0, time.UTC)
	suite.Nil(TradeBars([]types.Tick{suite.tradeTick(base, 100, 1)}, 0))
}

func (suite *ConsolidatorTestSuite) TestQuoteTicksLastQuoteWins() {
	base := time.Date(2024, 6, 12, 9, 30, 0, 0, time.UTC)
	ticks := []types.Tick{
		suite.quoteTick(base.Add(1*time.Second), 99.9, 100.1),
		suite.quoteTick(base.Add(30*time.Second), 100.0, 100.2),
		suite.quoteTick(base.Add(61*time.Second), 100.1, 100.3),
	}

	out := QuoteTicks(ticks, time.Minute)
	suite.Require().Len(out, 2)

	suite.Equal(base, out[0].Time)
	suite.Equal(100.0, out[0].BidPrice)
	suite.Equal(100.2, out[0].AskPrice)
	suite.Equal(types.TickTypeQuote, out[0].TickType)

	suite.Equal(base.Add(time.Minute), out[1].Time)
	suite.Equal(100.1, out[1].BidPrice)
}

func (suite *ConsolidatorTestSuite) TestQuoteTicksEmptyInput() {
	suite.Nil(QuoteTicks(nil, time.Second))
}
