// Package history retrieves historical trades, quotes and bars from the
// provider's market data API and normalizes them into the internal record
// format, transparently working around delayed-data subscription
// restrictions.
package history

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/uplight-dev/alpaca-history/internal/alpaca"
	"github.com/uplight-dev/alpaca-history/internal/events"
	"github.com/uplight-dev/alpaca-history/internal/logger"
	"github.com/uplight-dev/alpaca-history/internal/types"
)

// SymbolMapper converts a platform symbol into the provider's native
// identifier.
type SymbolMapper interface {
	ToProviderSymbol(symbol types.Symbol) (string, error)
}

// Provider serves historical data requests. One Provider is constructed per
// brokerage connection; the subscription restriction flags and one-shot
// warning latches live for its lifetime and are shared by all requests
// served through it.
type Provider struct {
	logger *logger.Logger
	client alpaca.DataClient
	mapper SymbolMapper
	sink   events.Sink

	// Subscription restriction flags. Set once, never reset. Plain bools:
	// concurrent sets race benignly because the write is idempotent.
	sipRestricted  bool
	opraRestricted bool

	// One-shot warning latches keyed by warning condition.
	warned map[string]bool

	// now is the clock used for restriction narrowing. Replaceable in tests.
	now func() time.Time
}

// NewProvider creates a history provider on top of the given data client.
func NewProvider(client alpaca.DataClient, mapper SymbolMapper, sink events.Sink, l *logger.Logger) *Provider {
	return &Provider{
		logger: l,
		client: client,
		mapper: mapper,
		sink:   sink,
		warned: make(map[string]bool),
		now:    time.Now,
	}
}

// GetHistory returns a lazy sequence of historical records for the request,
// or nil when the request cannot be served ("no data", not an error).
// Remote failures other than subscription rejections surface through the
// sequence's error value. Stopping iteration early stops the underlying
// pagination.
func (p *Provider) GetHistory(ctx context.Context, request types.HistoryRequest) iter.Seq2[types.Record, error] {
	switch request.Symbol.SecurityType {
	case types.SecurityTypeEquity, types.SecurityTypeOption, types.SecurityTypeCrypto:
	default:
		p.warnOnce(WarnInvalidSecurityType, WarnInvalidSecurityType,
			fmt.Sprintf("security type %s is not supported, no history returned", request.Symbol.SecurityType))

		return nil
	}

	if !request.Start.Before(request.End) {
		p.warnOnce(WarnInvalidStartTime, WarnInvalidStartTime,
			"the history request start time must precede the end time, no history returned")

		return nil
	}

	nativeSymbol, err := p.mapper.ToProviderSymbol(request.Symbol)
	if err != nil {
		return errorSeq(err)
	}

	var records iter.Seq2[types.Record, error]

	switch request.Symbol.SecurityType {
	case types.SecurityTypeEquity:
		records = p.equityHistory(ctx, request, nativeSymbol)
	case types.SecurityTypeOption:
		records = p.optionHistory(ctx, request, nativeSymbol)
	case types.SecurityTypeCrypto:
		records = p.cryptoHistory(ctx, request, nativeSymbol)
	}

	if records == nil {
		return nil
	}

	return filterByCalendar(request, records)
}

// providerRequest clones the history request into a provider-native shape.
func providerRequest(kind alpaca.RequestKind, symbol string, request types.HistoryRequest, timeframe string) alpaca.Request {
	return alpaca.Request{
		Kind:      kind,
		Symbol:    symbol,
		Start:     request.Start,
		End:       request.End,
		Timeframe: timeframe,
	}
}

// filterByCalendar drops records whose interval falls outside tradable
// hours, preserving order.
func filterByCalendar(request types.HistoryRequest, records iter.Seq2[types.Record, error]) iter.Seq2[types.Record, error] {
	if request.Calendar == nil {
		return records
	}

	return func(yield func(types.Record, error) bool) {
		records(func(record types.Record, err error) bool {
			if err != nil {
				return yield(nil, err)
			}

			if !request.Calendar.IsOpen(record.RecordTime(), record.RecordEndTime(), request.IncludeExtendedHours) {
				return true
			}

			return yield(record, nil)
		})
	}
}

// errorSeq is a sequence that fails immediately.
func errorSeq(err error) iter.Seq2[types.Record, error] {
	return func(yield func(types.Record, error) bool) {
		yield(nil, err)
	}
}
