// Package aggregate consolidates tick-level records into coarser fixed-width
// records when the requested resolution is wider than what the provider can
// serve directly.
package aggregate

import (
	"time"

	"github.com/uplight-dev/alpaca-history/internal/types"
)

// TradeBars consolidates time-ordered trade ticks into OHLCV bars of the
// given period. Bars are aligned to period boundaries and only emitted for
// intervals that contain at least one tick.
func TradeBars(ticks []types.Tick, period time.Duration) []types.Bar {
	if period <= 0 || len(ticks) == 0 {
		return nil
	}

	var bars []types.Bar

	var current *types.Bar

	for _, tick := range ticks {
		bucket := tick.Time.Truncate(period)

		if current == nil || !bucket.Equal(current.Time) {
			if current != nil {
				bars = append(bars, *current)
			}

			current = &types.Bar{
				Symbol: tick.Symbol,
				Time:   bucket,
				Period: period,
				Open:   tick.Price,
				High:   tick.Price,
				Low:    tick.Price,
				Close:  tick.Price,
				Volume: tick.Size,
			}

			continue
		}

		if tick.Price > current.High {
			current.High = tick.Price
		}

		if tick.Price < current.Low {
			current.Low = tick.Price
		}

		current.Close = tick.Price
		current.Volume += tick.Size
	}

	if current != nil {
		bars = append(bars, *current)
	}

	return bars
}

// QuoteTicks consolidates time-ordered quote ticks into one tick per period,
// stamped at the interval start and carrying the last observed quote of the
// interval.
func QuoteTicks(ticks []types.Tick, period time.Duration) []types.Tick {
	if period <= 0 || len(ticks) == 0 {
		return nil
	}

	var out []types.Tick

	var current *types.Tick

	for _, tick := range ticks {
		bucket := tick.Time.Truncate(period)

		if current == nil || !bucket.Equal(current.Time) {
			if current != nil {
				out = append(out, *current)
			}

			consolidated := tick
			consolidated.Time = bucket
			current = &consolidated

			continue
		}

		current.BidPrice = tick.BidPrice
		current.BidSize = tick.BidSize
		current.AskPrice = tick.AskPrice
		current.AskSize = tick.AskSize
	}

	if current != nil {
		out = append(out, *current)
	}

	return out
}
