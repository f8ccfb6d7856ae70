package models

import "time"

const (
	RSVPStatusYes   = "yes"
	RSVPStatusNo    = "no"
	RSVPStatusMaybe = "maybe"
)

type RSVP struct {
	ID                  int       `json:"id"`
	EventID             int       `json:"event_id"`
	GuestName           string    `json:"guest_name"`
	GuestEmail          string    `json:"guest_email"`
	GuestCount          int       `json:"guest_count"`
	DietaryRestrictions string    `json:"dietary_restrictions,omitempty"`
	Status              string    `json:"rsvp_status"`
	CreatedAt           time.Time `json:"created_at"`
}
