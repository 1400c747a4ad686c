package symbols

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/uplight-dev/alpaca-history/internal/types"
	"github.com/uplight-dev/alpaca-history/pkg/errors"
)

type MapperTestSuite struct {
	suite.Suite
	mapper *Mapper
}

func TestMapperSuite(t *testing.T) {
	suite.Run(t, new(MapperTestSuite))
}

func (suite *MapperTestSuite) SetupSuite() {
	suite.mapper = NewMapper()
}

func (suite *MapperTestSuite) TestEquityPassthrough() {
	native, err := suite.mapper.ToProviderSymbol(types.NewEquitySymbol("AAPL"))
	suite.NoError(err)
	suite.Equal("AAPL", native)

	symbol, err := suite.mapper.FromProviderSymbol("AAPL", types.SecurityTypeEquity)
	suite.NoError(err)
	suite.Equal(types.NewEquitySymbol("AAPL"), symbol)
}

func (suite *MapperTestSuite) TestEquityEmptyTicker() {
	_, err := suite.mapper.ToProviderSymbol(types.NewEquitySymbol(""))
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidSymbol))
}

func (suite *MapperTestSuite) TestCryptoWithSeparator() {
	native, err := suite.mapper.ToProviderSymbol(types.NewCryptoSymbol("BTC/USD"))
	suite.NoError(err)
	suite.Equal("BTC/USD", native)
}

func (suite *MapperTestSuite) TestCryptoWithoutSeparator() {
	native, err := suite.mapper.ToProviderSymbol(types.NewCryptoSymbol("ETHUSD"))
	suite.NoError(err)
	suite.Equal("ETH/USD", native)

	native, err = suite.mapper.ToProviderSymbol(types.NewCryptoSymbol("SOLUSDT"))
	suite.NoError(err)
	suite.Equal("SOL/USDT", native)
}

func (suite *MapperTestSuite) TestCryptoUnknownQuote() {
	_, err := suite.mapper.ToProviderSymbol(types.NewCryptoSymbol("FOOBAR"))
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidSymbol))
}

func (suite *MapperTestSuite) TestOptionOCCRoundTrip() {
	contract := types.OptionContract{
		Underlying: "AAPL",
		Expiry:     time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC),
		Right:      types.OptionRightCall,
		Strike:     decimal.NewFromInt(190),
	}

	native, err := suite.mapper.ToProviderSymbol(types.NewOptionSymbol(contract))
	suite.NoError(err)
	suite.Equal("AAPL240621C00190000", native)

	symbol, err := suite.mapper.FromProviderSymbol(native, types.SecurityTypeOption)
	suite.NoError(err)
	suite.Equal(types.SecurityTypeOption, symbol.SecurityType)

	parsed := symbol.Contract.Unwrap()
	suite.Equal("AAPL", parsed.Underlying)
	suite.Equal(contract.Expiry, parsed.Expiry)
	suite.Equal(types.OptionRightCall, parsed.Right)
	suite.True(contract.Strike.Equal(parsed.Strike))
}

func (suite *MapperTestSuite) TestOptionFractionalStrike() {
	contract := types.OptionContract{
		Underlying: "SPY",
		Expiry:     time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
		Right:      types.OptionRightPut,
		Strike:     decimal.NewFromFloat(447.5),
	}

	native, err := suite.mapper.ToProviderSymbol(types.NewOptionSymbol(contract))
	suite.NoError(err)
	suite.Equal("SPY241220P00447500", native)

	symbol, err := suite.mapper.FromProviderSymbol(native, types.SecurityTypeOption)
	suite.NoError(err)
	suite.True(symbol.Contract.Unwrap().Strike.Equal(decimal.NewFromFloat(447.5)))
}

func (suite *MapperTestSuite) TestOptionWithoutContract() {
	symbol := types.Symbol{Ticker: "AAPL", SecurityType: types.SecurityTypeOption}
	_, err := suite.mapper.ToProviderSymbol(symbol)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidSymbol))
}

func (suite *MapperTestSuite) TestMalformedOCCSymbol() {
	_, err := suite.mapper.FromProviderSymbol("AAPL240621X00190000", types.SecurityTypeOption)
	suite.Error(err)

	_, err = suite.mapper.FromProviderSymbol("SHORT", types.SecurityTypeOption)
	suite.Error(err)
}

func (suite *MapperTestSuite) TestUnsupportedSecurityType() {
	_, err := suite.mapper.ToProviderSymbol(types.Symbol{Ticker: "ES", SecurityType: types.SecurityType("future")})
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidSymbol))
}
