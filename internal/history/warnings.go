package history

import (
	"strings"

	"go.uber.org/zap"

	"github.com/uplight-dev/alpaca-history/internal/events"
)

// Warning codes surfaced through the message sink.
const (
	WarnInvalidSecurityType = "InvalidSecurityType"
	WarnInvalidStartTime    = "InvalidStartTime"
	WarnInvalidTickType     = "InvalidTickType"
	WarnInvalidResolution   = "InvalidResolution"

	WarnSipRestriction  = "SipSubscriptionRestriction"
	WarnOpraRestriction = "OpraSubscriptionRestriction"
)

// Fixed phrases the provider embeds in subscription rejection responses.
// Matched case-insensitively.
const (
	sipRestrictionPhrase  = "subscription does not permit querying recent sip data"
	opraRestrictionPhrase = "opra agreement is not signed"
)

// restriction identifies which entitlement the provider rejected.
type restriction int

const (
	restrictionNone restriction = iota
	restrictionSIP
	restrictionOPRA
)

// restrictionKind classifies a remote error as a subscription rejection.
func restrictionKind(err error) restriction {
	message := strings.ToLower(err.Error())

	switch {
	case strings.Contains(message, opraRestrictionPhrase):
		return restrictionOPRA
	case strings.Contains(message, sipRestrictionPhrase):
		return restrictionSIP
	default:
		return restrictionNone
	}
}

// warnOnce emits a warning through the sink at most once per latch key for
// the lifetime of the provider. The key may be wider than the code so the
// same code can fire once per asset class.
func (p *Provider) warnOnce(key, code, message string) {
	if p.warned[key] {
		return
	}

	p.warned[key] = true
	p.sink.Notify(events.SeverityWarning, code, message)
}

// applyRestriction records a subscription rejection. The flag is set for the
// lifetime of the provider; the warning is keyed by restriction kind and
// fires on every rejection the remote actually reports.
func (p *Provider) applyRestriction(kind restriction) {
	switch kind {
	case restrictionSIP:
		p.sipRestricted = true
		p.sink.Notify(events.SeverityWarning, WarnSipRestriction,
			"The data subscription does not cover recent SIP data; history is limited to data older than 15 minutes.")
	case restrictionOPRA:
		p.opraRestricted = true
		p.sink.Notify(events.SeverityWarning, WarnOpraRestriction,
			"The OPRA agreement is not signed; option history is limited to data older than 15 minutes.")
	case restrictionNone:
	}

	p.logger.Warn("subscription restriction recorded",
		zap.Bool("sip_restricted", p.sipRestricted),
		zap.Bool("opra_restricted", p.opraRestricted))
}
