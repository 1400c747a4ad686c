package history

import (
	"context"
	"fmt"
	"iter"

	"github.com/uplight-dev/alpaca-history/internal/aggregate"
	"github.com/uplight-dev/alpaca-history/internal/alpaca"
	"github.com/uplight-dev/alpaca-history/internal/types"
)

// equityHistory routes an equity request to the matching remote operation.
//
// Per-trade equity data is only available at minute and coarser resolutions;
// finer trade requests warn once and return nothing. Quotes are served at
// any resolution, aggregating the raw ticks for anything coarser than tick.
func (p *Provider) equityHistory(ctx context.Context, request types.HistoryRequest, symbol string) iter.Seq2[types.Record, error] {
	switch request.TickType {
	case types.TickTypeTrade:
		switch request.Resolution {
		case types.ResolutionTick, types.ResolutionSecond:
			p.warnOnce(
				fmt.Sprintf("%s:%s", WarnInvalidResolution, request.Symbol.SecurityType),
				WarnInvalidResolution,
				fmt.Sprintf("equity trade history is not available at %s resolution, no history returned", request.Resolution))

			return nil
		default:
			return p.directBars(ctx, request, alpaca.KindStockBars, symbol)
		}
	case types.TickTypeQuote:
		pages := mapPages(
			p.quotePages(ctx, providerRequest(alpaca.KindStockQuotes, symbol, request, "")),
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

// directBars fetches provider-built bars at the requested resolution.
func (p *Provider) directBars(ctx context.Context, request types.HistoryRequest, kind alpaca.RequestKind, symbol string) iter.Seq2[types.Record, error] {
	timeframe, err := alpaca.BarTimeframe(request.Resolution)
	if err != nil {
		return errorSeq(err)
	}

	period := request.Resolution.Duration()

	return flatten(mapPages(
		p.barPages(ctx, providerRequest(kind, symbol, request, timeframe)),
		func(raw []alpaca.Bar) []types.Bar {
			return bars(request.Symbol, request.ExchangeTimeZone, period, raw)
		}))
}

// warnInvalidTickType emits the unsupported-tick-type warning, at most once
// per asset class.
func (p *Provider) warnInvalidTickType(request types.HistoryRequest) {
	p.warnOnce(
		fmt.Sprintf("%s:%s", WarnInvalidTickType, request.Symbol.SecurityType),
		WarnInvalidTickType,
		fmt.Sprintf("%s history is not available for %s securities, no history returned",
			request.TickType, request.Symbol.SecurityType))
}
