package models

import "time"

const (
	EventStatusActive    = "active"
	EventStatusCancelled = "cancelled"
)

// DefaultMaxGuests is applied when a creation request leaves capacity
// unset or non-positive.
const DefaultMaxGuests = 10

type Event struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	EventDate   time.Time `json:"event_date"`
	Location    string    `json:"location,omitempty"`
	MaxGuests   int       `json:"max_guests"`
	HostName    string    `json:"host_name"`
	HostEmail   string    `json:"host_email"`
	EventType   string    `json:"event_type"`
	UserID      int       `json:"user_id,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`

	// GuestCount is the advisory occupancy: the sum of guest_count over
	// confirmed RSVPs, computed at read time. It is not a capacity guarantee.
	GuestCount int `json:"guest_count"`
}

// EventTypes are the party categories accepted on create/update.
var EventTypes = []string{"dinner", "house", "cocktail", "bbq"}

// IsOwner reports whether the user may mutate the event. Admins may act on
// any event; otherwise the stored owner must match.
func (e *Event) IsOwner(u *User) bool {
	if u == nil {
		return false
	}
	if u.IsAdmin {
		return true
	}

	return e.UserID != 0 && e.UserID == u.ID
}
