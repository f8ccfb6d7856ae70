package createEvent

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"partyminder/internal/http-server/middleware/auth"
	"partyminder/internal/lib/api/response"
	"partyminder/internal/lib/logger/sl"
	"partyminder/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type EventRequest struct {
	Title             string `json:"title" validate:"required"`
	Description       string `json:"description"`
	EventDate         string `json:"event_date" validate:"required"`
	Location          string `json:"location"`
	MaxGuests         int    `json:"max_guests"`
	HostName          string `json:"host_name"`
	HostEmail         string `json:"host_email" validate:"omitempty,email"`
	EventType         string `json:"event_type" validate:"omitempty,oneof=dinner house cocktail bbq"`
	GuestEmails       string `json:"guest_emails"`
	InvitationMessage string `json:"invitation_message"`
}

type EventResponse struct {
	response.Response
	EventId         int `json:"event_id"`
	InvitationsSent int `json:"invitations_sent,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(e *models.Event) (int, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Inviter
type Inviter interface {
	Issue(eventID int, rawEmails, message string) (int, error)
}

func New(log *slog.Logger, events EventCreator, inviter Inviter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log = log.With(
			slog.String("op", op),
		)

		var req EventRequest
		var err error

		if render.GetRequestContentType(r) == render.ContentTypeForm {
			req, err = decodeForm(r)
		} else {
			err = render.DecodeJSON(r.Body, &req)
		}
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		eventDate, err := parseEventDate(req.EventDate)
		if err != nil {
			log.Error("invalid event date", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event_date format"))

			return
		}

		user := auth.UserFromContext(r.Context())

		// anonymous creators must identify themselves
		if user == nil && (strings.TrimSpace(req.HostName) == "" || strings.TrimSpace(req.HostEmail) == "") {
			log.Error("anonymous request without host identity")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("host_name and host_email are required"))

			return
		}

		event := &models.Event{
			Title:       strings.TrimSpace(req.Title),
			Description: strings.TrimSpace(req.Description),
			EventDate:   eventDate,
			Location:    strings.TrimSpace(req.Location),
			MaxGuests:   req.MaxGuests,
			HostName:    strings.TrimSpace(req.HostName),
			HostEmail:   strings.TrimSpace(req.HostEmail),
			EventType:   req.EventType,
		}

		if event.MaxGuests < 1 {
			event.MaxGuests = models.DefaultMaxGuests
		}
		if event.EventType == "" {
			event.EventType = "dinner"
		}
		if user != nil {
			event.UserID = user.ID
			if event.HostEmail == "" {
				event.HostEmail = user.Email
			}
		}

		eventId, err := events.CreateEvent(event)
		if err != nil {
			log.Error("failed to add event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add event"))

			return
		}

		log.Info("event added", slog.Int("id", eventId))

		sent := 0
		if strings.TrimSpace(req.GuestEmails) != "" {
			sent, err = inviter.Issue(eventId, req.GuestEmails, req.InvitationMessage)
			if err != nil {
				// the event exists either way; report what was dispatched
				log.Error("failed to issue invitations", sl.Err(err))
			}
		}

		responseOK(w, r, eventId, sent)
	}
}

// decodeForm reads the fields the new-event form posts. The CSRF middleware
// may already have parsed the body; ParseForm reuses the cached form.
func decodeForm(r *http.Request) (EventRequest, error) {
	if err := r.ParseForm(); err != nil {
		return EventRequest{}, err
	}

	req := EventRequest{
		Title:             r.PostFormValue("title"),
		Description:       r.PostFormValue("description"),
		EventDate:         r.PostFormValue("event_date"),
		Location:          r.PostFormValue("location"),
		HostName:          r.PostFormValue("host_name"),
		HostEmail:         r.PostFormValue("host_email"),
		EventType:         r.PostFormValue("event_type"),
		GuestEmails:       r.PostFormValue("guest_emails"),
		InvitationMessage: r.PostFormValue("invitation_message"),
	}

	if raw := r.PostFormValue("max_guests"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return EventRequest{}, fmt.Errorf("invalid max_guests: %w", err)
		}
		req.MaxGuests = n
	}

	return req, nil
}

// parseEventDate accepts RFC 3339 timestamps from API clients and the
// shorter value a datetime-local input submits.
func parseEventDate(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}

func responseOK(w http.ResponseWriter, r *http.Request, eventId, sent int) {
	render.JSON(w, r, EventResponse{
		Response:        response.OK(),
		EventId:         eventId,
		InvitationsSent: sent,
	})
}
