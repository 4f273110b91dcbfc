package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"funlet/internal/domain"
	"funlet/internal/phone"
)

// Static help text returned when the downstream AI handler is unavailable.
const (
	suggestionWithDigest = "Try replying with 1=In, 2=Out, 3=Maybe, or 9 for events"
	suggestionVotesOnly  = "Try replying with 1=In, 2=Out, 3=Maybe"
)

type inboundSMSService struct {
	profileRepo    domain.ProfileRepository
	eventRepo      domain.EventRepository
	invitationRepo domain.InvitationRepository
	userActionRepo domain.UserActionRepository
	sms            domain.SMSSender
	dispatcher     domain.Dispatcher
	logger         *slog.Logger
	baseURL        string
	contextTimeout time.Duration
	now            func() time.Time
}

// NewInboundSMSService wires the inbound message pipeline. baseURL is the
// public site host used in digest detail links, without scheme.
func NewInboundSMSService(
	profileRepo domain.ProfileRepository,
	eventRepo domain.EventRepository,
	invitationRepo domain.InvitationRepository,
	userActionRepo domain.UserActionRepository,
	sms domain.SMSSender,
	dispatcher domain.Dispatcher,
	logger *slog.Logger,
	baseURL string,
	timeout time.Duration,
) domain.InboundSMSService {
	return &inboundSMSService{
		profileRepo:    profileRepo,
		eventRepo:      eventRepo,
		invitationRepo: invitationRepo,
		userActionRepo: userActionRepo,
		sms:            sms,
		dispatcher:     dispatcher,
		logger:         logger,
		baseURL:        baseURL,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

// classifyCommand maps a raw message body to an intent. Exact match only:
// anything that is not a bare command digit falls through to free text.
func classifyCommand(body string) (domain.Intent, string) {
	clean := strings.ToLower(strings.TrimSpace(body))
	switch clean {
	case "9":
		return domain.IntentDigestRequest, clean
	case "1", "2", "3":
		return domain.IntentRSVPVote, clean
	default:
		return domain.IntentFreeText, clean
	}
}

// resolveHost probes the profile store with each phone variant in order and
// returns the first match. Store errors count as misses: an SMS command must
// always get some reply, so identity resolution degrades to "guest" rather
// than failing the request.
func (s *inboundSMSService) resolveHost(ctx context.Context, variants []string) *domain.Profile {
	for _, v := range variants {
		if v == "" || v == "+" {
			continue
		}
		profile, err := s.profileRepo.GetByPhone(ctx, v)
		if err == nil && profile != nil {
			return profile
		}
		if err != nil && err != domain.ErrNotFound {
			s.logger.WarnContext(ctx, "profile lookup failed, treating as miss", "variant", v, "err", err)
		}
	}
	return nil
}

func (s *inboundSMSService) HandleInbound(ctx context.Context, msg domain.InboundSMS) (*domain.InboundResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	formatted := phone.Digits(msg.From)
	variants := phone.Variants(msg.From)
	intent, _ := classifyCommand(msg.Body)

	if intent == domain.IntentDigestRequest {
		return s.handleDigestRequest(ctx, msg, formatted, variants)
	}

	host := s.resolveHost(ctx, variants)
	isHost := host != nil

	handlerResp, err := s.dispatcher.Dispatch(ctx, domain.DispatchRequest{
		Message:     msg.Body,
		PhoneNumber: formatted,
		IsHost:      isHost,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "dispatch to sms handler failed", "err", err)
		suggestion := suggestionWithDigest
		if intent == domain.IntentRSVPVote && !isHost {
			suggestion = suggestionVotesOnly
		}
		return &domain.InboundResult{
			Kind:       domain.InboundDispatchFailed,
			Suggestion: suggestion,
		}, nil
	}

	kind := domain.InboundForwarded
	if intent == domain.IntentRSVPVote && !isHost {
		kind = domain.InboundPatternMatched
	}
	return &domain.InboundResult{
		Kind:            kind,
		HandlerResponse: handlerResp,
	}, nil
}

func (s *inboundSMSService) handleDigestRequest(ctx context.Context, msg domain.InboundSMS, formatted string, variants []string) (*domain.InboundResult, error) {
	host := s.resolveHost(ctx, variants)
	if host == nil {
		return &domain.InboundResult{
			Kind:           domain.InboundHostNotFound,
			FromPhone:      msg.From,
			FormattedPhone: formatted,
		}, nil
	}

	today := s.now()
	events, err := s.eventRepo.ListUpcomingByCreator(ctx, host.ID, today)
	if err != nil {
		s.logger.ErrorContext(ctx, "listing upcoming events failed", "host_id", host.ID, "err", err)
		events = nil
	}

	if len(events) == 0 {
		if err := s.sms.Send(msg.From, noUpcomingEventsMessage); err != nil {
			s.logger.ErrorContext(ctx, "failed to send no-events message", "err", err)
		}
		return &domain.InboundResult{Kind: domain.InboundNoEvents}, nil
	}

	digest := s.buildDigest(ctx, events)
	if err := s.sms.Send(msg.From, digest); err != nil {
		s.logger.ErrorContext(ctx, "failed to send events digest", "err", err)
	}

	s.recordViewEvents(ctx, host.ID, msg.From, len(events))

	return &domain.InboundResult{
		Kind:        domain.InboundDigestSent,
		EventsCount: len(events),
	}, nil
}

// recordViewEvents writes the audit row for a digest request. Best-effort.
func (s *inboundSMSService) recordViewEvents(ctx context.Context, hostID, fromPhone string, eventsCount int) {
	action := &domain.UserAction{
		UserID: hostID,
		Action: "view_events",
		Metadata: map[string]any{
			"phone_number": fromPhone,
			"events_count": eventsCount,
			"command":      "9",
		},
	}
	if err := s.userActionRepo.Create(ctx, action); err != nil {
		s.logger.WarnContext(ctx, "failed to record view_events action", "host_id", hostID, "err", err)
	}
}
