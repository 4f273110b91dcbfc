package domain

import (
	"context"
	"time"
)

// RSVP response values recorded on an invitation.
const (
	RSVPIn         = "in"
	RSVPMaybe      = "maybe"
	RSVPOut        = "out"
	RSVPNoResponse = "no_response"
)

// Invitation delivery statuses.
const (
	InvitationStatusPending = "pending"
	InvitationStatusSent    = "sent"
)

// Invitation is one row per (event, invitee). A host invitation has a nil
// ContactID and IsHost set; there is exactly one per event.
// swagger:model Invitation
type Invitation struct {
	ID             string     `json:"id"`
	EventID        string     `json:"event_id"`
	ContactID      *string    `json:"contact_id"`
	InvitationCode string     `json:"invitation_code"`
	Status         string     `json:"status"`
	ResponseNote   string     `json:"response_note"`
	IsHost         bool       `json:"is_host"`
	InvitedBy      string     `json:"invited_by,omitempty"`
	RespondedAt    *time.Time `json:"responded_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// GuestRSVP is a guest invitation joined with its contact's first name,
// used for digest tallies and RSVP summaries.
type GuestRSVP struct {
	ResponseNote string
	FirstName    string
}

// InvitationRepository defines storage operations for invitations.
type InvitationRepository interface {
	Create(ctx context.Context, inv *Invitation) error
	// GetHostInvitation returns the host invitation row for the event
	// (contact_id IS NULL AND is_host).
	GetHostInvitation(ctx context.Context, eventID string) (*Invitation, error)
	GetByInvitationCode(ctx context.Context, code string) (*Invitation, error)
	// ListSentGuestsByEvent returns non-host invitations with status "sent",
	// joined with contact first names, in creation order.
	ListSentGuestsByEvent(ctx context.Context, eventID string) ([]*GuestRSVP, error)
	ListSentByEvent(ctx context.Context, eventID string) ([]*Invitation, error)
	ExistsByEventAndContact(ctx context.Context, eventID, contactID string) (bool, error)
	CodeExists(ctx context.Context, code string) (bool, error)
}
