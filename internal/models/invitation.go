package models

import "time"

const (
	InvitationStatusSent     = "sent"
	InvitationStatusAccepted = "accepted"
	InvitationStatusDeclined = "declined"

	// InvitationNoResponse is never stored; it is derived at read time for
	// invitations with no recorded response.
	InvitationNoResponse = "no_response"
)

type Invitation struct {
	ID          int        `json:"id"`
	EventID     int        `json:"event_id"`
	GuestEmail  string     `json:"guest_email"`
	GuestName   string     `json:"guest_name,omitempty"`
	Token       string     `json:"-"`
	Status      string     `json:"status"`
	SentAt      time.Time  `json:"sent_at"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}

// InvitationReport is an invitation joined with any RSVP submitted by the
// same address for the same event. The two records are correlated only by
// (event, email) equality. RSVPStatus and RSVPCount come from the rsvps
// table and stay empty when no correlated row exists or none was looked up.
type InvitationReport struct {
	Invitation
	RSVPStatus string `json:"rsvp_status"`
	RSVPCount  int    `json:"rsvp_guest_count,omitempty"`
}
