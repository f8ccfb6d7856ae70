package rsvpByToken

import (
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"partyminder/internal/lib/logger/sl"
	"partyminder/internal/models"
	"partyminder/internal/storage"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenResponder
type TokenResponder interface {
	GetInvitationByToken(token string) (*models.Invitation, error)
	GetEvent(id int) (*models.Event, error)
	SetInvitationResponse(id int, status, guestName string) error
}

type pageData struct {
	Event      *models.Event
	Invitation *models.Invitation
	Token      string
	Response   string
}

// New serves the tokenized RSVP link from invitation emails. With a
// response query parameter it records the answer in one click; without one
// it renders the confirmation form. The token is the only credential.
func New(log *slog.Logger, store TokenResponder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.rsvp.rsvpByToken.New"

		log = log.With(slog.String("op", op))

		token := r.URL.Query().Get("token")

		inv, event, ok := resolve(w, log, store, token)
		if !ok {
			return
		}

		resp := r.URL.Query().Get("response")
		if resp == "" {
			renderPage(w, log, "rsvp_form.html", http.StatusOK, pageData{
				Event:      event,
				Invitation: inv,
				Token:      token,
			})
			return
		}

		record(w, log, store, inv, event, token, resp, "")
	}
}

// NewSubmit handles the confirmation form post.
func NewSubmit(log *slog.Logger, store TokenResponder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.rsvp.rsvpByToken.NewSubmit"

		log = log.With(slog.String("op", op))

		if err := r.ParseForm(); err != nil {
			log.Error("failed to parse form", sl.Err(err))
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		token := r.PostFormValue("token")

		inv, event, ok := resolve(w, log, store, token)
		if !ok {
			return
		}

		record(w, log, store, inv, event, token, r.PostFormValue("response"), r.PostFormValue("guest_name"))
	}
}

func resolve(w http.ResponseWriter, log *slog.Logger, store TokenResponder, token string) (*models.Invitation, *models.Event, bool) {
	if token == "" {
		renderPage(w, log, "rsvp_invalid.html", http.StatusNotFound, pageData{})
		return nil, nil, false
	}

	inv, err := store.GetInvitationByToken(token)
	if err != nil {
		if errors.Is(err, storage.ErrInvitationNotFound) {
			renderPage(w, log, "rsvp_invalid.html", http.StatusNotFound, pageData{})
			return nil, nil, false
		}

		log.Error("failed to resolve invitation", sl.Err(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return nil, nil, false
	}

	event, err := store.GetEvent(inv.EventID)
	if err != nil {
		if errors.Is(err, storage.ErrEventNotFound) {
			renderPage(w, log, "rsvp_invalid.html", http.StatusNotFound, pageData{})
			return nil, nil, false
		}

		log.Error("failed to get event", sl.Err(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return nil, nil, false
	}

	return inv, event, true
}

// record stores the response. Re-submitting the same answer is allowed and
// only refreshes responded_at.
func record(w http.ResponseWriter, log *slog.Logger, store TokenResponder, inv *models.Invitation, event *models.Event, token, resp, guestName string) {
	if resp != models.InvitationStatusAccepted && resp != models.InvitationStatusDeclined {
		renderPage(w, log, "rsvp_form.html", http.StatusBadRequest, pageData{
			Event:      event,
			Invitation: inv,
			Token:      token,
		})
		return
	}

	if err := store.SetInvitationResponse(inv.ID, resp, guestName); err != nil {
		log.Error("failed to record response", sl.Err(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	log.Info("invitation response recorded",
		slog.Int("invitation_id", inv.ID),
		slog.String("response", resp),
	)

	renderPage(w, log, "rsvp_done.html", http.StatusOK, pageData{
		Event:    event,
		Response: resp,
	})
}

func renderPage(w http.ResponseWriter, log *slog.Logger, name string, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		log.Error("failed to render page", slog.String("page", name), sl.Err(err))
	}
}
