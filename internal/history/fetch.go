package history

import (
	"context"

	"github.com/moznion/go-optional"

	"github.com/uplight-dev/alpaca-history/internal/alpaca"
)

// defaultPageSize is the record cap per page when the caller did not choose
// one.
const defaultPageSize = 10000

// pageFetcher performs one remote call and returns the page's records plus
// the cursor for the next page.
type pageFetcher[T any] func(ctx context.Context, req alpaca.Request) ([]T, string, error)

// pageSeq is a lazy, finite, non-restartable sequence of record pages.
type pageSeq[T any] func(yield func([]T, error) bool)

// fetchPages drives the remote pagination loop for one logical request.
//
// Before the first page only, an active subscription restriction narrows the
// request window; a window fully inside the embargo ends the sequence with
// no pages and no error. Subscription rejections reported by the remote set
// the matching restriction flag, emit a warning, and restart the loop
// without yielding a page. Empty pages are dropped rather than treated as
// end-of-stream. The sequence ends when the remote returns no cursor, and
// stops fetching as soon as the consumer stops taking pages.
func fetchPages[T any](ctx context.Context, p *Provider, req alpaca.Request, fetch pageFetcher[T]) pageSeq[T] {
	return func(yield func([]T, error) bool) {
		if req.PageSize.IsNone() {
			req.PageSize = optional.Some(defaultPageSize)
		}

		for {
			if req.PageToken == "" && (p.sipRestricted || p.opraRestricted) && !req.Kind.IsCrypto() {
				adjusted, ok, err := p.narrowRestricted(req, p.now().UTC())
				if err != nil {
					yield(nil, err)

					return
				}

				if !ok {
					// The embargo swallowed the whole window.
					return
				}

				req = adjusted
			}

			items, token, err := fetch(ctx, req)
			if err != nil {
				if kind := restrictionKind(err); kind != restrictionNone {
					p.applyRestriction(kind)

					// Retry the same logical request with the flag set;
					// this iteration consumed no page.
					continue
				}

				yield(nil, err)

				return
			}

			if len(items) > 0 {
				if !yield(items, nil) {
					return
				}
			}

			if token == "" {
				return
			}

			req.PageToken = token
		}
	}
}

// tradePages adapts the client's trade operation to the fetch engine.
func (p *Provider) tradePages(ctx context.Context, req alpaca.Request) pageSeq[alpaca.Trade] {
	return fetchPages(ctx, p, req, func(ctx context.Context, req alpaca.Request) ([]alpaca.Trade, string, error) {
		page, err := p.client.GetTrades(ctx, req)
		if err != nil {
			return nil, "", err
		}

		return page.Trades, page.NextPageToken, nil
	})
}

// quotePages adapts the client's quote operation to the fetch engine.
func (p *Provider) quotePages(ctx context.Context, req alpaca.Request) pageSeq[alpaca.Quote] {
	return fetchPages(ctx, p, req, func(ctx context.Context, req alpaca.Request) ([]alpaca.Quote, string, error) {
		page, err := p.client.GetQuotes(ctx, req)
		if err != nil {
			return nil, "", err
		}

		return page.Quotes, page.NextPageToken, nil
	})
}

// barPages adapts the client's bar operation to the fetch engine.
func (p *Provider) barPages(ctx context.Context, req alpaca.Request) pageSeq[alpaca.Bar] {
	return fetchPages(ctx, p, req, func(ctx context.Context, req alpaca.Request) ([]alpaca.Bar, string, error) {
		page, err := p.client.GetBars(ctx, req)
		if err != nil {
			return nil, "", err
		}

		return page.Bars, page.NextPageToken, nil
	})
}
