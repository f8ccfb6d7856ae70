package mailer

import (
	"fmt"
	"net/url"
	"strings"

	"partyminder/internal/models"
)

// InviteSubject builds the subject line for an invitation email.
func InviteSubject(event *models.Event) string {
	return fmt.Sprintf("You're invited to %s!", event.Title)
}

// InviteBody composes the plaintext invitation. The Accept/Decline links
// resolve the RSVP in one click; the RSVP page link shows the confirm form.
func InviteBody(event *models.Event, token, baseURL, personalMessage string) string {
	rsvpURL := fmt.Sprintf("%s/rsvp?token=%s", strings.TrimRight(baseURL, "/"), url.QueryEscape(token))

	var b strings.Builder

	b.WriteString("Hello!\n\n")
	fmt.Fprintf(&b, "You've been invited to %s by %s.\n\n", event.Title, event.HostName)

	b.WriteString("Event Details:\n")
	fmt.Fprintf(&b, "Date: %s\n", event.EventDate.Format("January 2, 2006 at 3:04 PM"))
	fmt.Fprintf(&b, "Type: %s Party\n", ucfirst(event.EventType))

	if event.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", event.Location)
	}

	if event.Description != "" {
		fmt.Fprintf(&b, "\nAbout this event:\n%s\n", event.Description)
	}

	if personalMessage != "" {
		fmt.Fprintf(&b, "\nPersonal message from %s:\n%s\n", event.HostName, personalMessage)
	}

	b.WriteString("\nPlease RSVP using one of the links below:\n")
	fmt.Fprintf(&b, "Accept: %s&response=accepted\n", rsvpURL)
	fmt.Fprintf(&b, "Decline: %s&response=declined\n", rsvpURL)
	fmt.Fprintf(&b, "Or reply via the RSVP page: %s\n", rsvpURL)

	b.WriteString("\nWe hope to see you there!\n\n")
	fmt.Fprintf(&b, "Best regards,\n%s", event.HostName)

	return b.String()
}

func ucfirst(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
