package sendInvitations

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"partyminder/internal/http-server/middleware/auth"
	"partyminder/internal/invites"
	"partyminder/internal/lib/api/response"
	"partyminder/internal/lib/logger/sl"
	"partyminder/internal/models"
	"partyminder/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type InviteRequest struct {
	GuestEmails       string `json:"guest_emails" validate:"required"`
	InvitationMessage string `json:"invitation_message"`
}

type InviteResponse struct {
	response.Response
	InvitationsSent int `json:"invitations_sent"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	GetEvent(id int) (*models.Event, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Inviter
type Inviter interface {
	Issue(eventID int, rawEmails, message string) (int, error)
}

// New sends invitations for an owned event. The guest list is a comma or
// newline separated block; invalid addresses are silently dropped and the
// rest are invited.
func New(log *slog.Logger, events EventGetter, inviter Inviter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.invite.sendInvitations.New"

		log = log.With(slog.String("op", op))

		eventID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int("event_id", eventID))

		var req InviteRequest

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
			render.JSON(w, r, response.Error("failed to send invitations"))
			return
		}

		user := auth.UserFromContext(r.Context())
		if !event.IsOwner(user) {
			log.Warn("invite forbidden", slog.Int("event_owner", event.UserID))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("you do not have permission to send invitations for this event"))
			return
		}

		sent, err := inviter.Issue(eventID, req.GuestEmails, req.InvitationMessage)
		if err != nil {
			if errors.Is(err, invites.ErrNoValidAddresses) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("please enter at least one valid email address"))
				return
			}

			log.Error("failed to send invitations", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to send invitations"))
			return
		}

		log.Info("invitations sent", slog.Int("count", sent))

		render.JSON(w, r, InviteResponse{
			Response:        response.OK(),
			InvitationsSent: sent,
		})
	}
}

// decodeForm reads the fields the dashboard invite form posts. The CSRF
// middleware may already have parsed the body; ParseForm reuses the cached
// form.
func decodeForm(r *http.Request) (InviteRequest, error) {
	if err := r.ParseForm(); err != nil {
		return InviteRequest{}, err
	}

	return InviteRequest{
		GuestEmails:       r.PostFormValue("guest_emails"),
		InvitationMessage: r.PostFormValue("invitation_message"),
	}, nil
}
