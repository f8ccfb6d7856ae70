package updateEvent

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"partyminder/internal/http-server/middleware/auth"
	"partyminder/internal/lib/api/response"
	"partyminder/internal/lib/logger/sl"
	"partyminder/internal/models"
	"partyminder/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type EventRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"event_date" validate:"required"`
	Location    string    `json:"location"`
	MaxGuests   int       `json:"max_guests"`
	HostName    string    `json:"host_name"`
	HostEmail   string    `json:"host_email" validate:"omitempty,email"`
	EventType   string    `json:"event_type" validate:"omitempty,oneof=dinner house cocktail bbq"`
	Status      string    `json:"status" validate:"omitempty,oneof=active cancelled"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventUpdater
type EventUpdater interface {
	GetEvent(id int) (*models.Event, error)
	UpdateEvent(e *models.Event) error
}

// New overwrites every field of an owned event. This is a full replace, not
// a patch: omitted optional fields become empty.
func New(log *slog.Logger, events EventUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.updateEvent.New"

		log = log.With(slog.String("op", op))

		eventID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int("event_id", eventID))

		var req EventRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		event, err := events.GetEvent(eventID)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to get event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update event"))
			return
		}

		user := auth.UserFromContext(r.Context())
		if !event.IsOwner(user) {
			log.Warn("update forbidden", slog.Int("event_owner", event.UserID))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("you do not have permission to update this event"))
			return
		}

		event.Title = strings.TrimSpace(req.Title)
		event.Description = strings.TrimSpace(req.Description)
		event.EventDate = req.EventDate
		event.Location = strings.TrimSpace(req.Location)
		event.MaxGuests = req.MaxGuests
		event.HostName = strings.TrimSpace(req.HostName)
		event.HostEmail = strings.TrimSpace(req.HostEmail)
		event.EventType = req.EventType

		if event.MaxGuests < 1 {
			event.MaxGuests = models.DefaultMaxGuests
		}
		if event.EventType == "" {
			event.EventType = "dinner"
		}
		if req.Status != "" {
			event.Status = req.Status
		}

		if err = events.UpdateEvent(event); err != nil {
			log.Error("failed to update event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update event"))
			return
		}

		log.Info("event updated")

		render.JSON(w, r, response.OK())
	}
}
