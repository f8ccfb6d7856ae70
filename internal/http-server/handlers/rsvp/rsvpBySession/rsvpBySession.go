package rsvpBySession

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"partyminder/internal/http-server/middleware/auth"
	"partyminder/internal/lib/api/response"
	"partyminder/internal/lib/logger/sl"
	"partyminder/internal/models"
	"partyminder/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type RespondRequest struct {
	Response string `json:"response" validate:"required,oneof=accepted declined"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=InvitationResponder
type InvitationResponder interface {
	GetInvitationByID(id int) (*models.Invitation, error)
	SetInvitationResponse(id int, status, guestName string) error
}

// New answers an invitation from the dashboard. The invitation must be
// addressed to the logged-in user's email; answering on behalf of another
// guest goes through the token link instead.
func New(log *slog.Logger, invitations InvitationResponder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.rsvp.rsvpBySession.New"

		log = log.With(slog.String("op", op))

		user := auth.UserFromContext(r.Context())
		if user == nil {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("you must be logged in"))
			return
		}

		invID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid invitation id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid invitation id format"))
			return
		}

		log = log.With(slog.Int("invitation_id", invID))

		var req RespondRequest

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

		inv, err := invitations.GetInvitationByID(invID)
		if err != nil {
			if errors.Is(err, storage.ErrInvitationNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("invitation not found"))
				return
			}

			log.Error("failed to get invitation", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to respond to invitation"))
			return
		}

		if !strings.EqualFold(inv.GuestEmail, user.Email) {
			log.Warn("respond forbidden", slog.String("invited", inv.GuestEmail))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("this invitation is not addressed to you"))
			return
		}

		if err = invitations.SetInvitationResponse(invID, req.Response, ""); err != nil {
			log.Error("failed to respond to invitation", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to respond to invitation"))
			return
		}

		log.Info("invitation response recorded", slog.String("response", req.Response))

		render.JSON(w, r, response.OK())
	}
}
