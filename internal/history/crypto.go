package history

import (
	"context"
	"iter"

	"github.com/uplight-dev/alpaca-history/internal/aggregate"
	"github.com/uplight-dev/alpaca-history/internal/alpaca"
	"github.com/uplight-dev/alpaca-history/internal/types"
)

// cryptoHistory routes a crypto request to the matching remote operation.
//
// Crypto history never narrows: subscription restrictions only cover SIP and
// OPRA feeds. Open interest does not exist for spot pairs.
func (p *Provider) cryptoHistory(ctx context.Context, request types.HistoryRequest, symbol string) iter.Seq2[types.Record, error] {
	switch request.TickType {
	case types.TickTypeTrade:
		switch request.Resolution {
		case types.ResolutionTick, types.ResolutionSecond:
			pages := mapPages(
				p.tradePages(ctx, providerRequest(alpaca.KindCryptoTrades, symbol, request, "")),
				func(trades []alpaca.Trade) []types.Tick {
					return tradeTicks(request.Symbol, request.ExchangeTimeZone, trades)
				})

			if request.Resolution == types.ResolutionTick {
				return flatten(pages)
			}

			return aggregated(pages, request.Resolution.Duration(), aggregate.TradeBars)
		default:
			return p.directBars(ctx, request, alpaca.KindCryptoBars, symbol)
		}
	case types.TickTypeQuote:
		pages := mapPages(
			p.quotePages(ctx, providerRequest(alpaca.KindCryptoQuotes, symbol, request, "")),
			func(quotes []alpaca.Quote) []types.Tick {
				return quoteTicks(request.Symbol, request.ExchangeTimeZone, quotes)
			})

		if request.Resolution == types.ResolutionTick {
			return flatten(pages)
		}

		return aggregated(pages, request.Resolution.Duration(), aggregate.QuoteTicks)
	default:
		p.warnInvalidTickType(request)

		return nil
	}
}
