package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"partyminder/internal/models"
	"partyminder/internal/storage"
)

func (s *Storage) CreateEvent(e *models.Event) (int, error) {
	query := `
		INSERT INTO events (title, description, event_date, location, max_guests,
		                    host_name, host_email, event_type, user_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id int
	err := s.DB.QueryRow(query,
		e.Title,
		e.Description,
		e.EventDate,
		e.Location,
		e.MaxGuests,
		e.HostName,
		e.HostEmail,
		e.EventType,
		e.UserID,
		models.EventStatusActive,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create event: %w", err)
	}

	return id, nil
}

func (s *Storage) GetEvent(id int) (*models.Event, error) {
	query := `
		SELECT id, title, description, event_date, location, max_guests,
		       host_name, host_email, event_type, user_id, status, created_at
		FROM events
		WHERE id = $1`

	var event models.Event
	err := s.DB.QueryRow(query, id).Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.EventDate,
		&event.Location,
		&event.MaxGuests,
		&event.HostName,
		&event.HostEmail,
		&event.EventType,
		&event.UserID,
		&event.Status,
		&event.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	count, err := s.GetConfirmedGuestCount(id)
	if err != nil {
		return nil, err
	}
	event.GuestCount = count

	return &event, nil
}

// GetConfirmedGuestCount sums guest_count over confirmed RSVPs. Advisory only:
// nothing stops concurrent RSVPs from pushing the sum past max_guests.
func (s *Storage) GetConfirmedGuestCount(eventID int) (int, error) {
	query := `
		SELECT COALESCE(SUM(guest_count), 0)
		FROM rsvps
		WHERE event_id = $1 AND rsvp_status = 'yes'`

	var count int
	if err := s.DB.QueryRow(query, eventID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to get confirmed guest count: %w", err)
	}

	return count, nil
}

// UpdateEvent overwrites every mutable field of the event.
func (s *Storage) UpdateEvent(e *models.Event) error {
	query := `
		UPDATE events
		SET title = $1, description = $2, event_date = $3, location = $4,
		    max_guests = $5, host_name = $6, host_email = $7, event_type = $8,
		    status = $9
		WHERE id = $10`

	result, err := s.DB.Exec(query,
		e.Title,
		e.Description,
		e.EventDate,
		e.Location,
		e.MaxGuests,
		e.HostName,
		e.HostEmail,
		e.EventType,
		e.Status,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return storage.ErrEventNotFound
	}

	return nil
}

// DeleteEvent removes the event; invitations and rsvps go with it via
// ON DELETE CASCADE.
func (s *Storage) DeleteEvent(id int) error {
	result, err := s.DB.Exec(`DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return storage.ErrEventNotFound
	}

	return nil
}

// GetUpcomingEvents returns active events strictly in the future, soonest
// first. A limit of 0 means no limit.
func (s *Storage) GetUpcomingEvents(now time.Time, limit int) ([]models.Event, error) {
	query := `
		SELECT id, title, description, event_date, location, max_guests,
		       host_name, host_email, event_type, user_id, status, created_at
		FROM events
		WHERE event_date > $1 AND status = 'active'
		ORDER BY event_date ASC`

	args := []any{now}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	return s.queryEvents(query, args...)
}

// GetEventsByOwner returns the user's events, newest date first.
func (s *Storage) GetEventsByOwner(userID int) ([]models.Event, error) {
	query := `
		SELECT id, title, description, event_date, location, max_guests,
		       host_name, host_email, event_type, user_id, status, created_at
		FROM events
		WHERE user_id = $1
		ORDER BY event_date DESC`

	return s.queryEvents(query, userID)
}

func (s *Storage) queryEvents(query string, args ...any) ([]models.Event, error) {
	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var event models.Event
		err = rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.EventDate,
			&event.Location,
			&event.MaxGuests,
			&event.HostName,
			&event.HostEmail,
			&event.EventType,
			&event.UserID,
			&event.Status,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		event.GuestCount, err = s.GetConfirmedGuestCount(event.ID)
		if err != nil {
			return nil, err
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}
