package deleteEvent

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"partyminder/internal/http-server/middleware/auth"
	"partyminder/internal/lib/api/response"
	"partyminder/internal/lib/logger/sl"
	"partyminder/internal/models"
	"partyminder/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventDeleter
type EventDeleter interface {
	GetEvent(id int) (*models.Event, error)
	DeleteEvent(id int) error
}

// New deletes an owned event. Invitations and RSVPs cascade with it.
func New(log *slog.Logger, events EventDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.deleteEvent.New"

		log = log.With(slog.String("op", op))

		eventID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int("event_id", eventID))

		event, err := events.GetEvent(eventID)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to get event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete event"))
			return
		}

		user := auth.UserFromContext(r.Context())
		if !event.IsOwner(user) {
			log.Warn("delete forbidden", slog.Int("event_owner", event.UserID))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("you do not have permission to delete this event"))
			return
		}

		if err = events.DeleteEvent(eventID); err != nil {
			log.Error("failed to delete event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete event"))
			return
		}

		log.Info("event deleted")

		render.JSON(w, r, response.OK())
	}
}
