package history

import (
	"time"

	"github.com/uplight-dev/alpaca-history/internal/alpaca"
	"github.com/uplight-dev/alpaca-history/pkg/errors"
)

// restrictionDelay is the free-tier data embargo: restricted subscriptions
// may only query data older than this.
const restrictionDelay = 15 * time.Minute

// narrowRestricted applies the delayed-data window to a provider request.
// Only request shapes whose data family matches an active restriction are
// narrowed: stock requests narrow under the SIP flag, option requests under
// the OPRA flag. Any other shape passes through unchanged while a flag is
// set.
//
// Returns ok=false with a nil error when the narrowed window is empty, in
// which case the whole fetch is silently abandoned. A request shape with no
// narrowing rule while no flag is set is a programming error: the router
// produced a shape the engine does not know.
func (p *Provider) narrowRestricted(req alpaca.Request, now time.Time) (alpaca.Request, bool, error) {
	switch {
	case req.Kind.IsStock():
		if !p.sipRestricted {
			return req, true, nil
		}
	case req.Kind.IsOption():
		if !p.opraRestricted {
			return req, true, nil
		}
	default:
		if p.sipRestricted || p.opraRestricted {
			return req, true, nil
		}

		return req, false, errors.Newf(errors.ErrCodeUnsupportedRequestShape,
			"no restriction narrowing rule for request kind %s", req.Kind)
	}

	embargoEnd := now.Add(-restrictionDelay)
	if !req.Start.Before(embargoEnd) {
		// The entire requested window is inside the embargo.
		return req, false, nil
	}

	if req.End.After(embargoEnd) {
		req.End = embargoEnd
	}

	return req, true, nil
}
