package mailer

import (
	"testing"
	"time"

	"partyminder/internal/models"

	"github.com/stretchr/testify/assert"
)

func testEvent() *models.Event {
	return &models.Event{
		ID:          7,
		Title:       "Summer BBQ",
		Description: "Bring a salad.",
		EventDate:   time.Date(2026, 7, 4, 18, 30, 0, 0, time.UTC),
		Location:    "12 Garden Lane",
		HostName:    "Alice",
		HostEmail:   "alice@example.com",
		EventType:   "bbq",
	}
}

func TestInviteSubject(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "You're invited to Summer BBQ!", InviteSubject(testEvent()))
}

func TestInviteBody(t *testing.T) {
	t.Parallel()

	body := InviteBody(testEvent(), "tok123", "http://party.test/", "See you there?")

	assert.Contains(t, body, "You've been invited to Summer BBQ by Alice.")
	assert.Contains(t, body, "Date: July 4, 2026 at 6:30 PM")
	assert.Contains(t, body, "Type: Bbq Party")
	assert.Contains(t, body, "Location: 12 Garden Lane")
	assert.Contains(t, body, "About this event:\nBring a salad.")
	assert.Contains(t, body, "Personal message from Alice:\nSee you there?")

	// one-click links resolve without further input; the bare link shows the form
	assert.Contains(t, body, "Accept: http://party.test/rsvp?token=tok123&response=accepted")
	assert.Contains(t, body, "Decline: http://party.test/rsvp?token=tok123&response=declined")
	assert.Contains(t, body, "Or reply via the RSVP page: http://party.test/rsvp?token=tok123")
}

func TestInviteBodyOmitsEmptySections(t *testing.T) {
	t.Parallel()

	event := testEvent()
	event.Location = ""
	event.Description = ""

	body := InviteBody(event, "tok123", "http://party.test", "")

	assert.NotContains(t, body, "Location:")
	assert.NotContains(t, body, "About this event:")
	assert.NotContains(t, body, "Personal message")
}
