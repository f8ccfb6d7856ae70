package invites

import (
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"partyminder/internal/lib/logger/sl"
	"partyminder/internal/lib/random"
	"partyminder/internal/mailer"
	"partyminder/internal/models"
)

// ErrNoValidAddresses is returned when the guest list contains no
// syntactically valid email address.
var ErrNoValidAddresses = errors.New("no valid email addresses")

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	GetEvent(id int) (*models.Event, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=InvitationUpserter
type InvitationUpserter interface {
	UpsertInvitation(eventID int, guestEmail, token string) (int, error)
}

// Service issues invitations: one row and one email per valid address.
type Service struct {
	log     *slog.Logger
	events  EventGetter
	store   InvitationUpserter
	mailer  mailer.Mailer
	baseURL string
}

func New(log *slog.Logger, events EventGetter, store InvitationUpserter, m mailer.Mailer, baseURL string) *Service {
	return &Service{
		log:     log,
		events:  events,
		store:   store,
		mailer:  m,
		baseURL: baseURL,
	}
}

// Issue parses the raw guest list, upserts an invitation per valid address
// and mails each guest. A delivery failure for one address is logged and
// skipped; it does not abort the batch. Returns the number of messages
// dispatched.
func (s *Service) Issue(eventID int, rawEmails, message string) (int, error) {
	const op = "invites.Issue"

	event, err := s.events.GetEvent(eventID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	addresses := ParseAddressList(rawEmails)
	if len(addresses) == 0 {
		return 0, ErrNoValidAddresses
	}

	log := s.log.With(slog.String("op", op), slog.Int("event_id", eventID))

	sent := 0
	for _, addr := range addresses {
		token, err := random.NewToken()
		if err != nil {
			return sent, fmt.Errorf("%s: %w", op, err)
		}

		if _, err = s.store.UpsertInvitation(eventID, addr, token); err != nil {
			return sent, fmt.Errorf("%s: %w", op, err)
		}

		subject := mailer.InviteSubject(event)
		body := mailer.InviteBody(event, token, s.baseURL, message)
		from := fmt.Sprintf("%s <%s>", event.HostName, event.HostEmail)

		if err = s.mailer.Send(addr, from, event.HostEmail, subject, body); err != nil {
			log.Error("failed to deliver invitation", slog.String("guest", addr), sl.Err(err))
			continue
		}

		sent++
	}

	return sent, nil
}

// ParseAddressList splits a comma or newline separated block of addresses,
// trims and deduplicates them, and drops anything that does not parse as an
// email address. Order of first appearance is kept.
func ParseAddressList(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})

	seen := make(map[string]struct{}, len(fields))
	var addresses []string

	for _, field := range fields {
		addr := strings.TrimSpace(field)
		if addr == "" {
			continue
		}

		parsed, err := mail.ParseAddress(addr)
		if err != nil {
			continue
		}

		key := strings.ToLower(parsed.Address)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		addresses = append(addresses, parsed.Address)
	}

	return addresses
}
