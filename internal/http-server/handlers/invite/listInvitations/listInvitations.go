package listInvitations

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

type InvitationsResponse struct {
	response.Response
	Invitations []models.InvitationReport `json:"invitations"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=InvitationsGetter
type InvitationsGetter interface {
	GetEvent(id int) (*models.Event, error)
	GetInvitationReports(eventID int) ([]models.InvitationReport, error)
}

// New lists an owned event's invitations together with any RSVP each guest
// submitted, most recently sent first.
func New(log *slog.Logger, invitations InvitationsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.invite.listInvitations.New"

		log = log.With(slog.String("op", op))

		eventID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int("event_id", eventID))

		event, err := invitations.GetEvent(eventID)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to get event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get invitations"))
			return
		}

		user := auth.UserFromContext(r.Context())
		if !event.IsOwner(user) {
			log.Warn("invitation list forbidden", slog.Int("event_owner", event.UserID))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("you do not have permission to view invitations for this event"))
			return
		}

		reports, err := invitations.GetInvitationReports(eventID)
		if err != nil {
			log.Error("failed to get invitations", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get invitations"))
			return
		}

		log.Info("invitations retrieved", slog.Int("count", len(reports)))

		render.JSON(w, r, InvitationsResponse{
			Response:    response.OK(),
			Invitations: reports,
		})
	}
}
