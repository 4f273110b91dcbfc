package sms

import (
	"fmt"
	"log"

	"github.com/twilio/twilio-go"
	api "github.com/twilio/twilio-go/rest/api/v2010"

	"funlet/config"
	"funlet/internal/domain"
)

// NewSender creates an SMS sender from config. Missing Twilio credentials
// fall back to a no-op sender that only logs, so local development works
// without an account.
func NewSender(cfg config.TwilioConfig) domain.SMSSender {
	if cfg.AccountSID == "" || cfg.AuthToken == "" || cfg.FromNumber == "" {
		log.Printf("[SMS] Missing Twilio configuration, using noop sender")
		return &noopSender{}
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &twilioSender{
		client: client,
		from:   cfg.FromNumber,
	}
}

type twilioSender struct {
	client *twilio.RestClient
	from   string
}

func (s *twilioSender) Send(to, body string) error {
	params := &api.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		log.Printf("[SMS] Failed to send message to %s: %v", to, err)
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	log.Printf("[SMS] Message sent to %s", to)
	return nil
}

type noopSender struct{}

func (n *noopSender) Send(to, body string) error {
	log.Println("[SMS] Message would be sent (noop)", "to", to, "chars", len(body))
	return nil
}
