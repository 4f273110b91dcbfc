package services

import (
	"context"
	"testing"
	"time"

	"funlet/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRSVPFixture() (*fakeInvitationRepo, *fakeContactRepo, *fakeEventRepo, *fakeProfileRepo, domain.RSVPService) {
	invitations := newFakeInvitationRepo()
	contacts := newFakeContactRepo()
	events := newFakeEventRepo()
	profiles := newFakeProfileRepo()
	svc := NewRSVPService(invitations, contacts, events, profiles, testLogger, 5*time.Second)
	return invitations, contacts, events, profiles, svc
}

func TestGetRSVPData_Success(t *testing.T) {
	invitations, contacts, events, profiles, svc := newRSVPFixture()

	contactID := "c-1"
	inv := &domain.Invitation{
		ID:             "inv-1",
		EventID:        "ev-1",
		ContactID:      &contactID,
		InvitationCode: "abc123xy",
		Status:         domain.InvitationStatusSent,
		ResponseNote:   domain.RSVPNoResponse,
	}
	invitations.byCode["abc123xy"] = inv

	events.byID["ev-1"] = &domain.Event{
		ID:        "ev-1",
		Title:     "Taco Night",
		EventDate: time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC),
		StartTime: "19:00:00",
		CreatorID: "prof-1",
	}
	profiles.byID["prof-1"] = &domain.Profile{ID: "prof-1", FirstName: "Ana"}
	contacts.byID["c-1"] = &domain.Contact{ID: "c-1", FirstName: "Ben", PhoneNumber: "5551234567"}
	contacts.byID["c-2"] = &domain.Contact{ID: "c-2", FirstName: "Cleo", PhoneNumber: "5559876543"}

	otherID := "c-2"
	invitations.sentByEvent["ev-1"] = []*domain.Invitation{
		{ID: "inv-host", EventID: "ev-1", IsHost: true, ResponseNote: domain.RSVPIn},
		inv,
		{ID: "inv-2", EventID: "ev-1", ContactID: &otherID, ResponseNote: domain.RSVPIn},
	}

	data, err := svc.GetRSVPData(context.Background(), "abc123xy")
	require.NoError(t, err)

	assert.Equal(t, "inv-1", data.Invitation.ID)
	assert.Equal(t, "Taco Night", data.Event.Title)
	assert.Equal(t, "Ana", data.HostName)
	require.NotNil(t, data.Contact)
	assert.Equal(t, "Ben", data.Contact.FirstName)

	require.Len(t, data.Invitations, 3)
	// Host row is excluded from the counts.
	assert.Equal(t, domain.RSVPCounts{In: 1, NoResponse: 1}, data.Counts)
	// Guest rows carry their contact.
	assert.Equal(t, "Cleo", data.Invitations[2].Contact.FirstName)
}

func TestGetRSVPData_NotFound(t *testing.T) {
	_, _, _, _, svc := newRSVPFixture()

	_, err := svc.GetRSVPData(context.Background(), "nope1234")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetRSVPData_EmptyCode(t *testing.T) {
	_, _, _, _, svc := newRSVPFixture()

	_, err := svc.GetRSVPData(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetRSVPData_HostNameLookupFailureIsSoft(t *testing.T) {
	invitations, _, events, _, svc := newRSVPFixture()

	invitations.byCode["abc123xy"] = &domain.Invitation{
		ID:             "inv-1",
		EventID:        "ev-1",
		InvitationCode: "abc123xy",
		IsHost:         true,
	}
	events.byID["ev-1"] = &domain.Event{ID: "ev-1", Title: "Taco Night", CreatorID: "prof-gone"}

	data, err := svc.GetRSVPData(context.Background(), "abc123xy")
	require.NoError(t, err)
	assert.Empty(t, data.HostName)
}
