// Package dispatch calls the downstream AI SMS handler that owns free-text
// interpretation and conversation state.
package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"funlet/internal/domain"
)

const serviceTokenTTL = 5 * time.Minute

type httpDispatcher struct {
	client *http.Client
	url    string
	tokens domain.TokenIssuer
}

// NewHTTPDispatcher returns a Dispatcher that POSTs to the AI handler URL,
// authenticating with a short-lived service token.
func NewHTTPDispatcher(client *http.Client, url string, tokens domain.TokenIssuer) domain.Dispatcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpDispatcher{client: client, url: url, tokens: tokens}
}

func (d *httpDispatcher) Dispatch(ctx context.Context, dr domain.DispatchRequest) (json.RawMessage, error) {
	payload, err := json.Marshal(dr)
	if err != nil {
		return nil, fmt.Errorf("failed to encode dispatch request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	token, err := d.tokens.Issue("sms-webhook", serviceTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue service token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call sms handler: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read sms handler response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("sms handler returned status %d: %s", resp.StatusCode, body)
	}
	return json.RawMessage(body), nil
}
