package domain

import "context"

// RSVPCounts are per-status tallies over an event's sent guest invitations.
type RSVPCounts struct {
	In         int `json:"in"`
	Maybe      int `json:"maybe"`
	Out        int `json:"out"`
	NoResponse int `json:"no_response"`
}

// InvitationDetail is an invitation joined with its contact, as returned by
// the RSVP data lookup.
type InvitationDetail struct {
	Invitation
	Contact *Contact `json:"contact,omitempty"`
}

// RSVPData is everything the guest-facing event page needs, looked up by
// invitation code.
type RSVPData struct {
	Invitation  *Invitation         `json:"invitation"`
	Contact     *Contact            `json:"contact,omitempty"`
	Event       *Event              `json:"event"`
	HostName    string              `json:"host_name,omitempty"`
	Invitations []*InvitationDetail `json:"invitations"`
	Counts      RSVPCounts          `json:"counts"`
}

// RSVPService resolves an invitation code into full event and RSVP data.
type RSVPService interface {
	GetRSVPData(ctx context.Context, invitationCode string) (*RSVPData, error)
}

// SendInvitationsInput selects which contacts to invite to an event.
type SendInvitationsInput struct {
	EventID        string
	InvitingUserID string
	ContactIDs     []string
}

// SendInvitationsResult reports per-contact outcomes of an invitation send.
type SendInvitationsResult struct {
	Sent             int      `json:"sent"`
	FailedContactIDs []string `json:"failed_contact_ids"`
}

// InvitationService creates invitation rows and delivers them over SMS.
type InvitationService interface {
	SendInvitations(ctx context.Context, in SendInvitationsInput) (*SendInvitationsResult, error)
}
