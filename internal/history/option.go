package history

import (
	"context"
	"iter"

	"github.com/uplight-dev/alpaca-history/internal/aggregate"
	"github.com/uplight-dev/alpaca-history/internal/alpaca"
	"github.com/uplight-dev/alpaca-history/internal/types"
)

// optionHistory routes an option request to the matching remote operation.
//
// Only trades exist for option contracts; quote and open interest requests
// warn once and return nothing.
func (p *Provider) optionHistory(ctx context.Context, request types.HistoryRequest, symbol string) iter.Seq2[types.Record, error] {
	if request.TickType != types.TickTypeTrade {
		p.warnInvalidTickType(request)

		return nil
	}

	switch request.Resolution {
	case types.ResolutionTick, types.ResolutionSecond:
		pages := mapPages(
			p.tradePages(ctx, providerRequest(alpaca.KindOptionTrades, symbol, request, "")),
			func(trades []alpaca.Trade) []types.Tick {
				return tradeTicks(request.Symbol, request.ExchangeTimeZone, trades)
			})

		if request.Resolution == types.ResolutionTick {
			return flatten(pages)
		}

		return aggregated(pages, request.Resolution.Duration(), aggregate.TradeBars)
	default:
		return p.directBars(ctx, request, alpaca.KindOptionBars, symbol)
	}
}
