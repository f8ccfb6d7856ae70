package listRSVPs

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

type RSVPsResponse struct {
	response.Response
	RSVPs          []models.RSVP `json:"rsvps"`
	ConfirmedCount int           `json:"confirmed_count"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RSVPsGetter
type RSVPsGetter interface {
	GetEvent(id int) (*models.Event, error)
	GetRSVPsForEvent(eventID int) ([]models.RSVP, error)
}

// New lists an owned event's RSVPs, most recent first, with the summed
// headcount of confirmed guests.
func New(log *slog.Logger, rsvps RSVPsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.rsvp.listRSVPs.New"

		log = log.With(slog.String("op", op))

		eventID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int("event_id", eventID))

		event, err := rsvps.GetEvent(eventID)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to get event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get rsvps"))
			return
		}

		user := auth.UserFromContext(r.Context())
		if !event.IsOwner(user) {
			log.Warn("rsvp list forbidden", slog.Int("event_owner", event.UserID))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("you do not have permission to view rsvps for this event"))
			return
		}

		list, err := rsvps.GetRSVPsForEvent(eventID)
		if err != nil {
			log.Error("failed to get rsvps", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get rsvps"))
			return
		}

		confirmed := 0
		for _, rsvp := range list {
			if rsvp.Status == models.RSVPStatusYes {
				confirmed += rsvp.GuestCount
			}
		}

		log.Info("rsvps retrieved", slog.Int("count", len(list)))

		render.JSON(w, r, RSVPsResponse{
			Response:       response.OK(),
			RSVPs:          list,
			ConfirmedCount: confirmed,
		})
	}
}
