package domain

import (
	"context"
	"encoding/json"
)

// Intent is the classification of an inbound message body.
type Intent int

const (
	// IntentFreeText is anything that is not an exact command match.
	IntentFreeText Intent = iota
	// IntentDigestRequest is the "9" command: a host asking for their
	// upcoming events summary.
	IntentDigestRequest
	// IntentRSVPVote is a bare "1", "2", or "3" reply.
	IntentRSVPVote
)

// Inbound result kinds, one per webhook response shape.
const (
	InboundDigestSent     = "digest_sent"
	InboundNoEvents       = "no_events"
	InboundForwarded      = "forwarded"
	InboundPatternMatched = "pattern_matched"
	InboundDispatchFailed = "dispatch_failed"
	InboundHostNotFound   = "host_not_found"
)

// InboundResult is the outcome of processing one inbound SMS. Kind selects
// which of the remaining fields are meaningful.
type InboundResult struct {
	Kind            string
	EventsCount     int
	HandlerResponse json.RawMessage
	Suggestion      string
	FromPhone       string
	FormattedPhone  string
}

// InboundSMSService runs the inbound message pipeline: normalize the sender's
// phone, resolve host identity, classify the body, then either build and send
// the digest or forward to the AI handler.
type InboundSMSService interface {
	HandleInbound(ctx context.Context, msg InboundSMS) (*InboundResult, error)
}
