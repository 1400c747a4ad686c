package alpaca

import (
	"time"

	"github.com/moznion/go-optional"

	"github.com/uplight-dev/alpaca-history/internal/types"
	"github.com/uplight-dev/alpaca-history/pkg/errors"
)

// RequestKind enumerates the closed set of provider request shapes, one per
// asset class and data kind combination. KindStockTrades has no router
// producing it (equity trade history is only served as bars) but stays in
// the set so every stock shape shares the same narrowing rule.
type RequestKind string

const (
	KindStockTrades  RequestKind = "stock_trades"
	KindStockQuotes  RequestKind = "stock_quotes"
	KindStockBars    RequestKind = "stock_bars"
	KindOptionTrades RequestKind = "option_trades"
	KindOptionBars   RequestKind = "option_bars"
	KindCryptoTrades RequestKind = "crypto_trades"
	KindCryptoQuotes RequestKind = "crypto_quotes"
	KindCryptoBars   RequestKind = "crypto_bars"
)

// IsStock reports whether the kind targets the stock endpoints.
func (k RequestKind) IsStock() bool {
	return k == KindStockTrades || k == KindStockQuotes || k == KindStockBars
}

// IsOption reports whether the kind targets the option endpoints.
func (k RequestKind) IsOption() bool {
	return k == KindOptionTrades || k == KindOptionBars
}

// IsCrypto reports whether the kind targets the crypto endpoints.
func (k RequestKind) IsCrypto() bool {
	return k == KindCryptoTrades || k == KindCryptoQuotes || k == KindCryptoBars
}

// Request is a provider-native historical data request. The pagination state
// (PageToken) is mutated by the fetch engine between pages; a Request is
// never shared across concurrent fetches.
type Request struct {
	// Kind selects the endpoint family.
	Kind RequestKind
	// Symbol is the provider-native instrument identifier.
	Symbol string
	// Start is the inclusive UTC start of the query window.
	Start time.Time
	// End is the exclusive UTC end of the query window.
	End time.Time
	// Timeframe is the provider bar width string, bar requests only.
	Timeframe string
	// PageToken is the pagination cursor returned by the previous page.
	PageToken string
	// PageSize caps the number of records per page.
	PageSize optional.Option[int]
}

// BarTimeframe maps an internal resolution to the provider's bar timeframe
// string. Only resolutions the provider serves directly as bars are valid.
func BarTimeframe(resolution types.Resolution) (string, error) {
	switch resolution {
	case types.ResolutionMinute:
		return "1Min", nil
	case types.ResolutionHour:
		return "1Hour", nil
	case types.ResolutionDaily:
		return "1Day", nil
	case types.ResolutionTick, types.ResolutionSecond:
		return "", errors.Newf(errors.ErrCodeInvalidResolution, "resolution %s has no bar timeframe", resolution)
	default:
		return "", errors.Newf(errors.ErrCodeInvalidResolution, "resolution %s has no bar timeframe", resolution)
	}
}
