package types

import (
	"fmt"
	"time"

	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"
)

// SecurityType identifies the asset class of an instrument.
type SecurityType string

const (
	SecurityTypeEquity SecurityType = "equity"
	SecurityTypeOption SecurityType = "option"
	SecurityTypeCrypto SecurityType = "crypto"
)

// OptionRight is the side of an option contract.
type OptionRight string

const (
	OptionRightCall OptionRight = "C"
	OptionRightPut  OptionRight = "P"
)

// OptionContract describes a single listed option.
type OptionContract struct {
	// Underlying is the ticker of the underlying equity.
	Underlying string
	// Expiry is the expiration date of the contract.
	Expiry time.Time
	// Right is call or put.
	Right OptionRight
	// Strike is the strike price of the contract.
	Strike decimal.Decimal
}

// Symbol is a platform-neutral instrument identifier.
// For equities Ticker is the plain ticker ("AAPL"), for crypto the pair
// ("BTC/USD" or "BTCUSD"), and for options Ticker carries the underlying
// while Contract holds the contract details.
type Symbol struct {
	Ticker       string
	SecurityType SecurityType
	Contract     optional.Option[OptionContract]
}

// NewEquitySymbol creates an equity symbol.
func NewEquitySymbol(ticker string) Symbol {
	return Symbol{
		Ticker:       ticker,
		SecurityType: SecurityTypeEquity,
		Contract:     optional.None[OptionContract](),
	}
}

// NewCryptoSymbol creates a crypto pair symbol.
func NewCryptoSymbol(pair string) Symbol {
	return Symbol{
		Ticker:       pair,
		SecurityType: SecurityTypeCrypto,
		Contract:     optional.None[OptionContract](),
	}
}

// NewOptionSymbol creates an option symbol for the given contract.
func NewOptionSymbol(contract OptionContract) Symbol {
	return Symbol{
		Ticker:       contract.Underlying,
		SecurityType: SecurityTypeOption,
		Contract:     optional.Some(contract),
	}
}

// String returns a human readable representation of the symbol.
func (s Symbol) String() string {
	if contract, err := s.Contract.Take(); err == nil {
		return fmt.Sprintf("%s %s %s %s",
			contract.Underlying,
			contract.Expiry.Format("2006-01-02"),
			contract.Right,
			contract.Strike.String())
	}

	return s.Ticker
}
