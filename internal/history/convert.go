package history

import (
	"time"

	"github.com/uplight-dev/alpaca-history/internal/alpaca"
	"github.com/uplight-dev/alpaca-history/internal/types"
)

// exchangeTime shifts a provider timestamp into the instrument's exchange
// time zone.
func exchangeTime(ts time.Time, location *time.Location) time.Time {
	if location == nil {
		return ts.UTC()
	}

	return ts.In(location)
}

// tradeTicks converts one page of raw trades into trade ticks.
//
// The condition code is only carried over when the provider attaches more
// than one condition; a sole condition is dropped and the tick keeps an
// empty condition field.
func tradeTicks(symbol types.Symbol, location *time.Location, trades []alpaca.Trade) []types.Tick {
	ticks := make([]types.Tick, 0, len(trades))

	for _, trade := range trades {
		condition := ""
		if len(trade.Conditions) > 1 {
			condition = trade.Conditions[0]
		}

		ticks = append(ticks, types.Tick{
			Symbol:    symbol,
			Time:      exchangeTime(trade.Timestamp, location),
			TickType:  types.TickTypeTrade,
			Price:     trade.Price,
			Size:      trade.Size,
			Exchange:  trade.Exchange,
			Condition: condition,
		})
	}

	return ticks
}

// quoteTicks converts one page of raw quotes into quote ticks.
func quoteTicks(symbol types.Symbol, location *time.Location, quotes []alpaca.Quote) []types.Tick {
	ticks := make([]types.Tick, 0, len(quotes))

	for _, quote := range quotes {
		ticks = append(ticks, types.Tick{
			Symbol:   symbol,
			Time:     exchangeTime(quote.Timestamp, location),
			TickType: types.TickTypeQuote,
			Exchange: quote.BidExchange,
			BidPrice: quote.BidPrice,
			BidSize:  quote.BidSize,
			AskPrice: quote.AskPrice,
			AskSize:  quote.AskSize,
		})
	}

	return ticks
}

// bars converts one page of raw bars. The period is the requested
// resolution, not the provider's native bar width; the two coincide for
// every supported resolution.
func bars(symbol types.Symbol, location *time.Location, period time.Duration, raw []alpaca.Bar) []types.Bar {
	out := make([]types.Bar, 0, len(raw))

	for _, bar := range raw {
		out = append(out, types.Bar{
			Symbol: symbol,
			Time:   exchangeTime(bar.Timestamp, location),
			Period: period,
			Open:   bar.Open,
			High:   bar.High,
			Low:    bar.Low,
			Close:  bar.Close,
			Volume: bar.Volume,
		})
	}

	return out
}
