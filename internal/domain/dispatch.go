package domain

import (
	"context"
	"encoding/json"
)

// DispatchRequest is the payload forwarded to the AI SMS handler for
// free-text messages and RSVP votes.
type DispatchRequest struct {
	Message     string `json:"message"`
	PhoneNumber string `json:"phone_number"`
	IsHost      bool   `json:"is_host"`
}

// Dispatcher forwards a message to the downstream AI handler and returns its
// raw JSON response. A non-2xx status or transport failure is an error.
type Dispatcher interface {
	Dispatch(ctx context.Context, req DispatchRequest) (json.RawMessage, error)
}
