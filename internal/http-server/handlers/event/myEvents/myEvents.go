package myEvents

import (
	"log/slog"
	"net/http"

	"partyminder/internal/http-server/middleware/auth"
	"partyminder/internal/lib/api/response"
	"partyminder/internal/lib/logger/sl"
	"partyminder/internal/models"

	"github.com/go-chi/render"
)

type MyEventsResponse struct {
	response.Response
	Events      []models.Event            `json:"events"`
	Invitations []models.InvitationReport `json:"invitations"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=DashboardGetter
type DashboardGetter interface {
	GetEventsByOwner(userID int) ([]models.Event, error)
	GetInvitationsByGuest(guestEmail string) ([]models.InvitationReport, error)
}

// New returns the caller's dashboard data: events they host, newest first,
// and invitations addressed to their email, soonest event first.
func New(log *slog.Logger, dashboard DashboardGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.myEvents.New"

		log = log.With(slog.String("op", op))

		user := auth.UserFromContext(r.Context())
		if user == nil {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("you must be logged in"))
			return
		}

		log = log.With(slog.Int("user_id", user.ID))

		events, err := dashboard.GetEventsByOwner(user.ID)
		if err != nil {
			log.Error("failed to get hosted events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get hosted events"))
			return
		}

		invitations, err := dashboard.GetInvitationsByGuest(user.Email)
		if err != nil {
			log.Error("failed to get invitations", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get invitations"))
			return
		}

		log.Info("dashboard data retrieved",
			slog.Int("events", len(events)),
			slog.Int("invitations", len(invitations)),
		)

		render.JSON(w, r, MyEventsResponse{
			Response:    response.OK(),
			Events:      events,
			Invitations: invitations,
		})
	}
}
