package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"funlet/internal/domain"
)

const noUpcomingEventsMessage = "You have no upcoming events. Create one at funlet.ai"

const maxDigestNames = 3

// buildDigest renders the host's upcoming events summary as a plain-text SMS
// body. Events whose RSVP data cannot be fetched are skipped so a partial
// digest still goes out.
func (s *inboundSMSService) buildDigest(ctx context.Context, events []*domain.Event) string {
	var b strings.Builder
	b.WriteString("Your upcoming events:\n\n")

	for _, event := range events {
		guests, err := s.invitationRepo.ListSentGuestsByEvent(ctx, event.ID)
		if err != nil {
			s.logger.ErrorContext(ctx, "fetching invitations for event failed", "event_id", event.ID, "err", err)
			continue
		}

		b.WriteString("📅 " + event.Title + "\n")
		b.WriteString("   " + formatEventDate(event.EventDate) + " at " + formatEventTime(event.StartTime) + "\n")
		if event.Location != "" {
			b.WriteString("   📍 " + event.Location + "\n")
		}

		for _, line := range rsvpBreakdownLines(guests) {
			b.WriteString(line + "\n")
		}

		hostInv, err := s.invitationRepo.GetHostInvitation(ctx, event.ID)
		if err == nil && hostInv.InvitationCode != "" {
			b.WriteString("Details: " + s.baseURL + "/event/" + hostInv.InvitationCode + "\n\n")
		} else {
			b.WriteString("Details: " + s.baseURL + "/events\n\n")
		}
	}

	return strings.TrimSpace(b.String())
}

// rsvpBreakdownLines partitions guests by response and renders one line per
// non-empty bucket, in fixed order.
func rsvpBreakdownLines(guests []*domain.GuestRSVP) []string {
	buckets := map[string][]string{}
	for _, g := range guests {
		buckets[g.ResponseNote] = append(buckets[g.ResponseNote], g.FirstName)
	}

	labeled := []struct {
		label  string
		status string
	}{
		{"In!", domain.RSVPIn},
		{"Maybe", domain.RSVPMaybe},
		{"Out", domain.RSVPOut},
		{"No Response", domain.RSVPNoResponse},
	}

	var lines []string
	for _, l := range labeled {
		names := buckets[l.status]
		if len(names) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s (%d)", l.label, formatNames(names, maxDigestNames), len(names)))
	}
	return lines
}

// formatNames joins up to maxNames names; longer lists get an ellipsis. The
// caller appends the true total separately.
func formatNames(names []string, maxNames int) string {
	if len(names) <= maxNames {
		return strings.Join(names, ", ")
	}
	return strings.Join(names[:maxNames], ", ") + "..."
}

// formatEventDate renders a date as numeric month/day, en-US style ("3/7").
func formatEventDate(t time.Time) string {
	return strconv.Itoa(int(t.Month())) + "/" + strconv.Itoa(t.Day())
}

// formatEventTime renders an "HH:MM" or "HH:MM:SS" 24-hour time as a 12-hour
// clock with lowercase am/pm, omitting minutes when they are zero:
// "19:00:00" -> "7pm", "09:30" -> "9:30am".
func formatEventTime(raw string) string {
	parts := strings.Split(raw, ":")
	if len(parts) < 2 {
		return raw
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return raw
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return raw
	}

	period := "am"
	if hours >= 12 {
		period = "pm"
	}
	displayHours := hours % 12
	if displayHours == 0 {
		displayHours = 12
	}
	if minutes > 0 {
		return fmt.Sprintf("%d:%02d%s", displayHours, minutes, period)
	}
	return fmt.Sprintf("%d%s", displayHours, period)
}
