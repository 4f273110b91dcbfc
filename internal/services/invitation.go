package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"funlet/internal/domain"
	"funlet/internal/phone"
)

const invitationCodeLength = 8

var invitationCodeAlphabet = []rune("abcdefghijklmnopqrstuvwxyz0123456789")

type invitationService struct {
	eventRepo      domain.EventRepository
	profileRepo    domain.ProfileRepository
	contactRepo    domain.ContactRepository
	invitationRepo domain.InvitationRepository
	sms            domain.SMSSender
	mailer         domain.Mailer
	logger         *slog.Logger
	baseURL        string
	contextTimeout time.Duration
}

// NewInvitationService wires the invitation sender.
func NewInvitationService(
	eventRepo domain.EventRepository,
	profileRepo domain.ProfileRepository,
	contactRepo domain.ContactRepository,
	invitationRepo domain.InvitationRepository,
	sms domain.SMSSender,
	mailer domain.Mailer,
	logger *slog.Logger,
	baseURL string,
	timeout time.Duration,
) domain.InvitationService {
	return &invitationService{
		eventRepo:      eventRepo,
		profileRepo:    profileRepo,
		contactRepo:    contactRepo,
		invitationRepo: invitationRepo,
		sms:            sms,
		mailer:         mailer,
		logger:         logger,
		baseURL:        baseURL,
		contextTimeout: timeout,
	}
}

func (s *invitationService) SendInvitations(ctx context.Context, in domain.SendInvitationsInput) (*domain.SendInvitationsResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if in.EventID == "" || in.InvitingUserID == "" || len(in.ContactIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}

	event, err := s.eventRepo.GetByID(ctx, in.EventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.CreatorID != in.InvitingUserID {
		return nil, domain.ErrForbidden
	}

	inviter, err := s.profileRepo.GetByID(ctx, in.InvitingUserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get inviting profile: %w", err)
	}

	s.ensureHostInvitation(ctx, event, inviter.ID)

	contacts, err := s.contactRepo.ListByIDs(ctx, in.ContactIDs)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	contactsByID := make(map[string]*domain.Contact, len(contacts))
	for _, c := range contacts {
		contactsByID[c.ID] = c
	}

	result := &domain.SendInvitationsResult{}
	for _, contactID := range in.ContactIDs {
		contact, ok := contactsByID[contactID]
		if !ok {
			s.logger.WarnContext(ctx, "skipping unknown contact", "contact_id", contactID)
			result.FailedContactIDs = append(result.FailedContactIDs, contactID)
			continue
		}
		if err := s.inviteContact(ctx, event, inviter, contact); err != nil {
			s.logger.ErrorContext(ctx, "invitation failed", "contact_id", contactID, "err", err)
			result.FailedContactIDs = append(result.FailedContactIDs, contactID)
			continue
		}
		result.Sent++
	}

	if result.Sent > 0 && inviter.Email != "" {
		s.sendHostConfirmation(ctx, inviter, event, result.Sent)
	}

	return result, nil
}

func (s *invitationService) inviteContact(ctx context.Context, event *domain.Event, inviter *domain.Profile, contact *domain.Contact) error {
	exists, err := s.invitationRepo.ExistsByEventAndContact(ctx, event.ID, contact.ID)
	if err != nil {
		return fmt.Errorf("check existing invitation: %w", err)
	}
	if exists {
		return fmt.Errorf("contact already invited")
	}

	to, err := phone.FormatForSMS(contact.PhoneNumber)
	if err != nil {
		return fmt.Errorf("format phone: %w", err)
	}

	code, err := s.generateUniqueInvitationCode(ctx)
	if err != nil {
		return fmt.Errorf("generate invitation code: %w", err)
	}

	if err := s.sms.Send(to, invitationMessage(inviter.FirstName, event)); err != nil {
		return fmt.Errorf("send invitation SMS: %w", err)
	}

	contactID := contact.ID
	inv := &domain.Invitation{
		EventID:        event.ID,
		ContactID:      &contactID,
		InvitationCode: code,
		Status:         domain.InvitationStatusSent,
		ResponseNote:   domain.RSVPNoResponse,
		InvitedBy:      inviter.ID,
		CreatedAt:      time.Now(),
	}
	if err := s.invitationRepo.Create(ctx, inv); err != nil {
		return fmt.Errorf("create invitation: %w", err)
	}
	return nil
}

// ensureHostInvitation creates the host's own invitation row if the event
// doesn't have one yet. The host is automatically "in". Failures are logged;
// guest sends proceed regardless.
func (s *invitationService) ensureHostInvitation(ctx context.Context, event *domain.Event, invitedBy string) {
	_, err := s.invitationRepo.GetHostInvitation(ctx, event.ID)
	if err == nil {
		return
	}
	if !errors.Is(err, domain.ErrNotFound) {
		s.logger.WarnContext(ctx, "host invitation check failed", "event_id", event.ID, "err", err)
		return
	}

	code, err := s.generateUniqueInvitationCode(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "host invitation code generation failed", "event_id", event.ID, "err", err)
		return
	}
	inv := &domain.Invitation{
		EventID:        event.ID,
		InvitationCode: code,
		Status:         domain.InvitationStatusSent,
		ResponseNote:   domain.RSVPIn,
		IsHost:         true,
		InvitedBy:      invitedBy,
		CreatedAt:      time.Now(),
	}
	if err := s.invitationRepo.Create(ctx, inv); err != nil {
		s.logger.WarnContext(ctx, "host invitation create failed", "event_id", event.ID, "err", err)
	}
}

// generateUniqueInvitationCode makes an 8-char lowercase alphanumeric code
// and retries on the (unlikely) collision with an existing invitation.
func (s *invitationService) generateUniqueInvitationCode(ctx context.Context) (string, error) {
	max := big.NewInt(int64(len(invitationCodeAlphabet)))
	for attempt := 0; attempt < 5; attempt++ {
		b := make([]rune, invitationCodeLength)
		for i := 0; i < invitationCodeLength; i++ {
			n, err := rand.Int(rand.Reader, max)
			if err != nil {
				return "", err
			}
			b[i] = invitationCodeAlphabet[n.Int64()]
		}
		code := string(b)

		exists, err := s.invitationRepo.CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("could not generate unique invitation code")
}

// invitationMessage builds the guest SMS body:
//
//	Ana invited you to Taco Night, Friday, 3/7 at Ana's place 7pm. Reply 1=In! 2=Out 3=Maybe.
func invitationMessage(inviterName string, event *domain.Event) string {
	timePart := formatEventTime(event.StartTime)
	if event.EndTime != "" {
		timePart += "-" + formatEventTime(event.EndTime)
	}
	date := event.EventDate.Format("Monday") + ", " + formatEventDate(event.EventDate)
	msg := fmt.Sprintf("%s invited you to %s, %s", inviterName, event.Title, date)
	if event.Location != "" {
		msg += " at " + event.Location
	}
	return msg + " " + timePart + ". Reply 1=In! 2=Out 3=Maybe."
}

func (s *invitationService) sendHostConfirmation(ctx context.Context, inviter *domain.Profile, event *domain.Event, sent int) {
	subject := fmt.Sprintf("Invitations sent for %s", event.Title)
	text := fmt.Sprintf("Hi %s,\n\n%d invitation(s) for %s are on their way. "+
		"Reply 9 to your Funlet number any time for a status update.\n", inviter.FirstName, sent, event.Title)
	if err := s.mailer.Send(inviter.Email, subject, "", text); err != nil {
		s.logger.WarnContext(ctx, "host confirmation email failed", "email", inviter.Email, "err", err)
	}
}
