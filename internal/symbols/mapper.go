// Package symbols converts platform-neutral instrument identifiers into the
// provider's native symbology and back.
package symbols

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/uplight-dev/alpaca-history/internal/types"
	"github.com/uplight-dev/alpaca-history/pkg/errors"
)

// quoteCurrencies are the quote legs recognized when normalizing a crypto
// pair written without a separator ("BTCUSD" -> "BTC/USD").
var quoteCurrencies = []string{"USDT", "USDC", "USD", "BTC", "ETH"}

// Mapper translates between types.Symbol and provider-native symbol strings.
// Equities map to their plain ticker, options to the OCC contract symbol
// (underlying + yymmdd + right + strike*1000 padded to eight digits), and
// crypto to the slash-separated pair form used by the provider.
type Mapper struct{}

// NewMapper creates a Mapper.
func NewMapper() *Mapper {
	return &Mapper{}
}

// ToProviderSymbol returns the provider-native identifier for a symbol.
func (m *Mapper) ToProviderSymbol(symbol types.Symbol) (string, error) {
	switch symbol.SecurityType {
	case types.SecurityTypeEquity:
		if symbol.Ticker == "" {
			return "", errors.New(errors.ErrCodeInvalidSymbol, "equity symbol has no ticker")
		}

		return symbol.Ticker, nil
	case types.SecurityTypeCrypto:
		return cryptoPair(symbol.Ticker)
	case types.SecurityTypeOption:
		contract, err := symbol.Contract.Take()
		if err != nil {
			return "", errors.New(errors.ErrCodeInvalidSymbol, "option symbol has no contract")
		}

		return occSymbol(contract)
	default:
		return "", errors.Newf(errors.ErrCodeInvalidSymbol, "unsupported security type: %s", symbol.SecurityType)
	}
}

// FromProviderSymbol parses a provider-native identifier back into a symbol.
func (m *Mapper) FromProviderSymbol(value string, securityType types.SecurityType) (types.Symbol, error) {
	switch securityType {
	case types.SecurityTypeEquity:
		return types.NewEquitySymbol(value), nil
	case types.SecurityTypeCrypto:
		return types.NewCryptoSymbol(value), nil
	case types.SecurityTypeOption:
		contract, err := parseOCCSymbol(value)
		if err != nil {
			return types.Symbol{}, err
		}

		return types.NewOptionSymbol(contract), nil
	default:
		return types.Symbol{}, errors.Newf(errors.ErrCodeInvalidSymbol, "unsupported security type: %s", securityType)
	}
}

// cryptoPair normalizes a crypto ticker into the "BASE/QUOTE" form.
func cryptoPair(ticker string) (string, error) {
	if ticker == "" {
		return "", errors.New(errors.ErrCodeInvalidSymbol, "crypto symbol has no ticker")
	}

	if strings.Contains(ticker, "/") {
		return ticker, nil
	}

	for _, quote := range quoteCurrencies {
		if strings.HasSuffix(ticker, quote) && len(ticker) > len(quote) {
			base := ticker[:len(ticker)-len(quote)]

			return base + "/" + quote, nil
		}
	}

	return "", errors.Newf(errors.ErrCodeInvalidSymbol, "cannot determine quote currency of crypto pair: %s", ticker)
}

// occSymbol formats an option contract into its OCC symbol.
func occSymbol(contract types.OptionContract) (string, error) {
	if contract.Underlying == "" {
		return "", errors.New(errors.ErrCodeInvalidSymbol, "option contract has no underlying")
	}

	if contract.Right != types.OptionRightCall && contract.Right != types.OptionRightPut {
		return "", errors.Newf(errors.ErrCodeInvalidSymbol, "invalid option right: %s", contract.Right)
	}

	// Strike is encoded as price * 1000, zero padded to eight digits.
	strikeThousandths := contract.Strike.Mul(decimal.NewFromInt(1000))
	if !strikeThousandths.IsInteger() || strikeThousandths.IsNegative() {
		return "", errors.Newf(errors.ErrCodeInvalidSymbol, "strike %s cannot be encoded as an OCC symbol", contract.Strike)
	}

	return fmt.Sprintf("%s%s%s%08d",
		contract.Underlying,
		contract.Expiry.Format("060102"),
		contract.Right,
		strikeThousandths.IntPart()), nil
}

// parseOCCSymbol parses an OCC contract symbol back into its parts.
func parseOCCSymbol(value string) (types.OptionContract, error) {
	// underlying (>=1 char) + yymmdd + right + 8 digit strike
	if len(value) < 16 {
		return types.OptionContract{}, errors.Newf(errors.ErrCodeInvalidSymbol, "option symbol too short: %s", value)
	}

	strikePart := value[len(value)-8:]
	rightPart := value[len(value)-9 : len(value)-8]
	datePart := value[len(value)-15 : len(value)-9]
	underlying := value[:len(value)-15]

	strikeThousandths, err := strconv.ParseInt(strikePart, 10, 64)
	if err != nil {
		return types.OptionContract{}, errors.Wrapf(errors.ErrCodeInvalidSymbol, err, "invalid strike in option symbol: %s", value)
	}

	expiry, err := time.Parse("060102", datePart)
	if err != nil {
		return types.OptionContract{}, errors.Wrapf(errors.ErrCodeInvalidSymbol, err, "invalid expiry in option symbol: %s", value)
	}

	right := types.OptionRight(rightPart)
	if right != types.OptionRightCall && right != types.OptionRightPut {
		return types.OptionContract{}, errors.Newf(errors.ErrCodeInvalidSymbol, "invalid right in option symbol: %s", value)
	}

	return types.OptionContract{
		Underlying: underlying,
		Expiry:     expiry,
		Right:      right,
		Strike:     decimal.New(strikeThousandths, -3),
	}, nil
}
