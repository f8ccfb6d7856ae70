package postgres

import (
	"fmt"

	"partyminder/internal/models"
)

// UpsertRSVP inserts or fully replaces the RSVP for (event, email).
// Last write wins; there is no locking between concurrent submissions.
func (s *Storage) UpsertRSVP(r *models.RSVP) error {
	query := `
		INSERT INTO rsvps (event_id, guest_name, guest_email, guest_count,
		                   dietary_restrictions, rsvp_status)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (event_id, guest_email) DO UPDATE SET
			guest_name = excluded.guest_name,
			guest_count = excluded.guest_count,
			dietary_restrictions = excluded.dietary_restrictions,
			rsvp_status = excluded.rsvp_status`

	_, err := s.DB.Exec(query,
		r.EventID,
		r.GuestName,
		r.GuestEmail,
		r.GuestCount,
		r.DietaryRestrictions,
		r.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert rsvp: %w", err)
	}

	return nil
}

// GetRSVPsForEvent returns the event's RSVPs, most recent first.
func (s *Storage) GetRSVPsForEvent(eventID int) ([]models.RSVP, error) {
	query := `
		SELECT id, event_id, guest_name, guest_email, guest_count,
		       dietary_restrictions, rsvp_status, created_at
		FROM rsvps
		WHERE event_id = $1
		ORDER BY created_at DESC`

	rows, err := s.DB.Query(query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rsvps: %w", err)
	}
	defer rows.Close()

	var rsvps []models.RSVP
	for rows.Next() {
		var rsvp models.RSVP
		err = rows.Scan(
			&rsvp.ID,
			&rsvp.EventID,
			&rsvp.GuestName,
			&rsvp.GuestEmail,
			&rsvp.GuestCount,
			&rsvp.DietaryRestrictions,
			&rsvp.Status,
			&rsvp.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rsvp: %w", err)
		}
		rsvps = append(rsvps, rsvp)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rsvps: %w", err)
	}

	return rsvps, nil
}
