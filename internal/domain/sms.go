package domain

// InboundSMS is the parsed Twilio webhook payload for one inbound message.
type InboundSMS struct {
	MessageSID string
	From       string
	To         string
	Body       string
	Status     string
}

// SMSSender sends a single outbound text message. The to number must be in
// E.164 form.
type SMSSender interface {
	Send(to, body string) error
}
