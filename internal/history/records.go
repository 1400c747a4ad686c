package history

import (
	"iter"
	"time"

	"github.com/uplight-dev/alpaca-history/internal/types"
)

// mapPages lifts a page-level converter over a page sequence.
func mapPages[T, U any](pages pageSeq[T], convert func([]T) []U) pageSeq[U] {
	return func(yield func([]U, error) bool) {
		pages(func(items []T, err error) bool {
			if err != nil {
				return yield(nil, err)
			}

			return yield(convert(items), nil)
		})
	}
}

// flatten turns a page sequence into a record sequence.
func flatten[T types.Record](pages pageSeq[T]) iter.Seq2[types.Record, error] {
	return func(yield func(types.Record, error) bool) {
		pages(func(items []T, err error) bool {
			if err != nil {
				return yield(nil, err)
			}

			for _, item := range items {
				if !yield(item, nil) {
					return false
				}
			}

			return true
		})
	}
}

// aggregated consolidates a tick page sequence into period-sized records.
//
// Periods can straddle page boundaries, so ticks belonging to the newest,
// possibly still open period are buffered across pages and only consolidated
// once a later page proves the period complete, or when the source ends.
func aggregated[T types.Record](
	pages pageSeq[types.Tick],
	period time.Duration,
	consolidate func(ticks []types.Tick, period time.Duration) []T,
) iter.Seq2[types.Record, error] {
	return func(yield func(types.Record, error) bool) {
		var pending []types.Tick

		stopped := false

		pages(func(ticks []types.Tick, err error) bool {
			if err != nil {
				stopped = true

				yield(nil, err)

				return false
			}

			pending = append(pending, ticks...)
			if len(pending) == 0 {
				return true
			}

			// Hold back every tick of the newest period seen so far.
			openPeriod := pending[len(pending)-1].Time.Truncate(period)

			split := len(pending)
			for split > 0 && pending[split-1].Time.Truncate(period).Equal(openPeriod) {
				split--
			}

			for _, record := range consolidate(pending[:split], period) {
				if !yield(record, nil) {
					stopped = true

					return false
				}
			}

			pending = append(pending[:0:0], pending[split:]...)

			return true
		})

		if stopped {
			return
		}

		for _, record := range consolidate(pending, period) {
			if !yield(record, nil) {
				return
			}
		}
	}
}
