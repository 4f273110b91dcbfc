package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"funlet/internal/domain"
)

type rsvpService struct {
	invitationRepo domain.InvitationRepository
	contactRepo    domain.ContactRepository
	eventRepo      domain.EventRepository
	profileRepo    domain.ProfileRepository
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewRSVPService returns the service backing the guest-facing event page
// lookup by invitation code.
func NewRSVPService(
	invitationRepo domain.InvitationRepository,
	contactRepo domain.ContactRepository,
	eventRepo domain.EventRepository,
	profileRepo domain.ProfileRepository,
	logger *slog.Logger,
	timeout time.Duration,
) domain.RSVPService {
	return &rsvpService{
		invitationRepo: invitationRepo,
		contactRepo:    contactRepo,
		eventRepo:      eventRepo,
		profileRepo:    profileRepo,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *rsvpService) GetRSVPData(ctx context.Context, invitationCode string) (*domain.RSVPData, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if invitationCode == "" {
		return nil, domain.ErrInvalidInput
	}

	inv, err := s.invitationRepo.GetByInvitationCode(ctx, invitationCode)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get invitation: %w", err)
	}

	event, err := s.eventRepo.GetByID(ctx, inv.EventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	data := &domain.RSVPData{Invitation: inv, Event: event}

	if inv.ContactID != nil {
		contact, err := s.contactRepo.GetByID(ctx, *inv.ContactID)
		if err != nil {
			s.logger.WarnContext(ctx, "contact lookup failed for invitation", "invitation_id", inv.ID, "err", err)
		} else {
			data.Contact = contact
		}
	}

	// Host name is cosmetic; lookup failures don't fail the page.
	if profile, err := s.profileRepo.GetByID(ctx, event.CreatorID); err == nil {
		data.HostName = profile.FirstName
	}

	all, err := s.invitationRepo.ListSentByEvent(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list event invitations: %w", err)
	}

	contactIDs := make([]string, 0, len(all))
	for _, i := range all {
		if i.ContactID != nil {
			contactIDs = append(contactIDs, *i.ContactID)
		}
	}
	contacts, err := s.contactRepo.ListByIDs(ctx, contactIDs)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	contactsByID := make(map[string]*domain.Contact, len(contacts))
	for _, c := range contacts {
		contactsByID[c.ID] = c
	}

	details := make([]*domain.InvitationDetail, 0, len(all))
	for _, i := range all {
		d := &domain.InvitationDetail{Invitation: *i}
		if i.ContactID != nil {
			d.Contact = contactsByID[*i.ContactID]
		}
		details = append(details, d)

		if i.IsHost {
			continue
		}
		switch i.ResponseNote {
		case domain.RSVPIn:
			data.Counts.In++
		case domain.RSVPMaybe:
			data.Counts.Maybe++
		case domain.RSVPOut:
			data.Counts.Out++
		default:
			data.Counts.NoResponse++
		}
	}
	data.Invitations = details

	return data, nil
}
