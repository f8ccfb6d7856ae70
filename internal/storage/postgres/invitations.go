package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"partyminder/internal/models"
	"partyminder/internal/storage"
)

// UpsertInvitation inserts an invitation for (event, email) or, when one
// already exists, replaces its token, resets status to "sent" and refreshes
// sent_at. Re-inviting never duplicates a row.
func (s *Storage) UpsertInvitation(eventID int, guestEmail, token string) (int, error) {
	query := `
		INSERT INTO invitations (event_id, guest_email, invitation_token, status, sent_at)
		VALUES ($1, $2, $3, 'sent', NOW())
		ON CONFLICT (event_id, guest_email) DO UPDATE SET
			invitation_token = excluded.invitation_token,
			status = 'sent',
			sent_at = NOW(),
			responded_at = NULL
		RETURNING id`

	var id int
	err := s.DB.QueryRow(query, eventID, guestEmail, token).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert invitation: %w", err)
	}

	return id, nil
}

func (s *Storage) GetInvitationByToken(token string) (*models.Invitation, error) {
	query := `
		SELECT id, event_id, guest_email, guest_name, invitation_token,
		       status, sent_at, responded_at
		FROM invitations
		WHERE invitation_token = $1`

	return s.getInvitation(query, token)
}

func (s *Storage) GetInvitationByID(id int) (*models.Invitation, error) {
	query := `
		SELECT id, event_id, guest_email, guest_name, invitation_token,
		       status, sent_at, responded_at
		FROM invitations
		WHERE id = $1`

	return s.getInvitation(query, id)
}

func (s *Storage) getInvitation(query string, arg any) (*models.Invitation, error) {
	var inv models.Invitation
	var respondedAt sql.NullTime

	err := s.DB.QueryRow(query, arg).Scan(
		&inv.ID,
		&inv.EventID,
		&inv.GuestEmail,
		&inv.GuestName,
		&inv.Token,
		&inv.Status,
		&inv.SentAt,
		&respondedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	if respondedAt.Valid {
		inv.RespondedAt = &respondedAt.Time
	}

	return &inv, nil
}

// SetInvitationResponse records a response. Re-applying the same response is
// allowed and only refreshes responded_at. An empty guestName keeps the
// stored name.
func (s *Storage) SetInvitationResponse(id int, status, guestName string) error {
	query := `
		UPDATE invitations
		SET status = $1,
		    guest_name = CASE WHEN $2 = '' THEN guest_name ELSE $2 END,
		    responded_at = $3
		WHERE id = $4`

	result, err := s.DB.Exec(query, status, guestName, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to set invitation response: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return storage.ErrInvitationNotFound
	}

	return nil
}

// GetInvitationReports returns the event's invitations most recent first,
// each joined with any RSVP submitted by the same address. Invitations with
// neither a response nor a matching RSVP surface as no_response.
func (s *Storage) GetInvitationReports(eventID int) ([]models.InvitationReport, error) {
	query := `
		SELECT i.id, i.event_id, i.guest_email, i.guest_name, i.invitation_token,
		       i.status, i.sent_at, i.responded_at,
		       COALESCE(r.rsvp_status, ''), COALESCE(r.guest_count, 0)
		FROM invitations i
		LEFT JOIN rsvps r ON i.event_id = r.event_id AND i.guest_email = r.guest_email
		WHERE i.event_id = $1
		ORDER BY i.sent_at DESC`

	rows, err := s.DB.Query(query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invitations: %w", err)
	}
	defer rows.Close()

	var reports []models.InvitationReport
	for rows.Next() {
		var rep models.InvitationReport
		var respondedAt sql.NullTime

		err = rows.Scan(
			&rep.ID,
			&rep.EventID,
			&rep.GuestEmail,
			&rep.GuestName,
			&rep.Token,
			&rep.Status,
			&rep.SentAt,
			&respondedAt,
			&rep.RSVPStatus,
			&rep.RSVPCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}

		if respondedAt.Valid {
			rep.RespondedAt = &respondedAt.Time
		}
		if rep.RSVPStatus == "" {
			rep.RSVPStatus = models.InvitationNoResponse
		}

		reports = append(reports, rep)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invitations: %w", err)
	}

	return reports, nil
}

// GetInvitationsByGuest returns invitations addressed to the email, joined
// with their events, soonest event first. RSVPStatus is left empty: no rsvps
// row is correlated here, only the invitation's own status is reported.
func (s *Storage) GetInvitationsByGuest(guestEmail string) ([]models.InvitationReport, error) {
	query := `
		SELECT i.id, i.event_id, i.guest_email, i.guest_name, i.invitation_token,
		       i.status, i.sent_at, i.responded_at
		FROM invitations i
		JOIN events e ON i.event_id = e.id
		WHERE i.guest_email = $1
		ORDER BY e.event_date ASC`

	rows, err := s.DB.Query(query, guestEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to get invitations: %w", err)
	}
	defer rows.Close()

	var reports []models.InvitationReport
	for rows.Next() {
		var rep models.InvitationReport
		var respondedAt sql.NullTime

		err = rows.Scan(
			&rep.ID,
			&rep.EventID,
			&rep.GuestEmail,
			&rep.GuestName,
			&rep.Token,
			&rep.Status,
			&rep.SentAt,
			&respondedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}

		if respondedAt.Valid {
			rep.RespondedAt = &respondedAt.Time
		}

		reports = append(reports, rep)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invitations: %w", err)
	}

	return reports, nil
}
