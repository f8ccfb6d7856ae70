package createRSVP

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"partyminder/internal/lib/api/response"
	"partyminder/internal/lib/logger/sl"
	"partyminder/internal/models"
	"partyminder/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type RSVPRequest struct {
	GuestName           string `json:"guest_name" validate:"required"`
	GuestEmail          string `json:"guest_email" validate:"required,email"`
	GuestCount          int    `json:"guest_count"`
	DietaryRestrictions string `json:"dietary_restrictions"`
	Status              string `json:"rsvp_status" validate:"required,oneof=yes no maybe"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RSVPSaver
type RSVPSaver interface {
	GetEvent(id int) (*models.Event, error)
	UpsertRSVP(r *models.RSVP) error
}

// New records a public RSVP. No login is needed; one RSVP is kept per
// (event, email) and resubmitting replaces the previous answer.
func New(log *slog.Logger, rsvps RSVPSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.rsvp.createRSVP.New"

		log = log.With(slog.String("op", op))

		eventID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int("event_id", eventID))

		var req RSVPRequest

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

		if _, err = rsvps.GetEvent(eventID); err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to get event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save rsvp"))
			return
		}

		if req.GuestCount < 1 {
			req.GuestCount = 1
		}

		rsvp := &models.RSVP{
			EventID:             eventID,
			GuestName:           strings.TrimSpace(req.GuestName),
			GuestEmail:          strings.ToLower(strings.TrimSpace(req.GuestEmail)),
			GuestCount:          req.GuestCount,
			DietaryRestrictions: strings.TrimSpace(req.DietaryRestrictions),
			Status:              req.Status,
		}

		if err = rsvps.UpsertRSVP(rsvp); err != nil {
			log.Error("failed to save rsvp", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save rsvp"))
			return
		}

		log.Info("rsvp saved",
			slog.String("guest", rsvp.GuestEmail),
			slog.String("rsvp_status", rsvp.Status),
		)

		render.JSON(w, r, response.OK())
	}
}

// decodeForm reads the fields the public RSVP form posts. The CSRF middleware
// may already have parsed the body; ParseForm reuses the cached form.
func decodeForm(r *http.Request) (RSVPRequest, error) {
	if err := r.ParseForm(); err != nil {
		return RSVPRequest{}, err
	}

	req := RSVPRequest{
		GuestName:           r.PostFormValue("guest_name"),
		GuestEmail:          r.PostFormValue("guest_email"),
		DietaryRestrictions: r.PostFormValue("dietary_restrictions"),
		Status:              r.PostFormValue("rsvp_status"),
	}

	if raw := r.PostFormValue("guest_count"); raw != "" {
		count, err := strconv.Atoi(raw)
		if err != nil {
			return RSVPRequest{}, fmt.Errorf("invalid guest_count: %w", err)
		}
		req.GuestCount = count
	}

	return req, nil
}
