package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"funlet/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatEventDate(t *testing.T) {
	assert.Equal(t, "3/7", formatEventDate(time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "12/31", formatEventDate(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "1/1", formatEventDate(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFormatEventTime(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"19:00:00", "7pm"},
		{"19:30:00", "7:30pm"},
		{"09:30", "9:30am"},
		{"00:00", "12am"},
		{"12:00", "12pm"},
		{"12:05", "12:05pm"},
		{"23:59", "11:59pm"},
		{"garbage", "garbage"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, formatEventTime(tt.raw))
		})
	}
}

func TestFormatNames(t *testing.T) {
	assert.Equal(t, "Ana", formatNames([]string{"Ana"}, 3))
	assert.Equal(t, "Ana, Ben, Cleo", formatNames([]string{"Ana", "Ben", "Cleo"}, 3))
	assert.Equal(t, "Ana, Ben, Cleo...", formatNames([]string{"Ana", "Ben", "Cleo", "Dee", "Eli"}, 3))
}

func TestRSVPBreakdownLines(t *testing.T) {
	guests := []*domain.GuestRSVP{
		{ResponseNote: domain.RSVPNoResponse, FirstName: "Ana"},
		{ResponseNote: domain.RSVPIn, FirstName: "Ben"},
		{ResponseNote: domain.RSVPIn, FirstName: "Cleo"},
		{ResponseNote: domain.RSVPIn, FirstName: "Dee"},
		{ResponseNote: domain.RSVPIn, FirstName: "Eli"},
		{ResponseNote: domain.RSVPIn, FirstName: "Fay"},
		{ResponseNote: domain.RSVPOut, FirstName: "Gus"},
	}

	lines := rsvpBreakdownLines(guests)
	require.Len(t, lines, 3)
	// Five in the bucket: first three shown, true count preserved.
	assert.Equal(t, "In!: Ben, Cleo, Dee... (5)", lines[0])
	assert.Equal(t, "Out: Gus (1)", lines[1])
	assert.Equal(t, "No Response: Ana (1)", lines[2])
}

func TestRSVPBreakdownLines_EmptyBucketsOmitted(t *testing.T) {
	lines := rsvpBreakdownLines([]*domain.GuestRSVP{
		{ResponseNote: domain.RSVPMaybe, FirstName: "Ana"},
	})
	require.Len(t, lines, 1)
	assert.Equal(t, "Maybe: Ana (1)", lines[0])
}

func TestBuildDigest_Deterministic(t *testing.T) {
	fx := newInboundFixture()
	fx.profiles.byPhone["18777804236"] = &domain.Profile{ID: "prof-1", FirstName: "Ana"}
	fx.events.upcoming["prof-1"] = []*domain.Event{
		{
			ID:        "ev-1",
			Title:     "Taco Night",
			EventDate: time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC),
			StartTime: "19:00:00",
		},
		{
			ID:        "ev-2",
			Title:     "Brunch",
			Location:  "Cafe Royale",
			EventDate: time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
			StartTime: "10:30:00",
		},
	}
	fx.invitations.guestsByEvent["ev-1"] = []*domain.GuestRSVP{
		{ResponseNote: domain.RSVPIn, FirstName: "Ben"},
	}

	for i := 0; i < 2; i++ {
		fx.sms.sent = nil
		_, err := fx.svc.HandleInbound(context.Background(), domain.InboundSMS{
			From: "+18777804236",
			Body: "9",
		})
		require.NoError(t, err)
	}
	require.Len(t, fx.sms.sent, 1)

	first := fx.sms.sent[0].body
	fx.sms.sent = nil
	_, err := fx.svc.HandleInbound(context.Background(), domain.InboundSMS{From: "+18777804236", Body: "9"})
	require.NoError(t, err)
	assert.Equal(t, first, fx.sms.sent[0].body)

	// Event blocks appear in fetch order; no host code so the generic link is used.
	assert.Less(t, strings.Index(first, "Taco Night"), strings.Index(first, "Brunch"))
	assert.Contains(t, first, "Details: www.funlet.ai/events")
	// Trailing whitespace trimmed.
	assert.Equal(t, strings.TrimSpace(first), first)
}
