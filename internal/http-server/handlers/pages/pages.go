package pages

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"partyminder/internal/http-server/middleware/auth"
	"partyminder/internal/lib/logger/sl"
	"partyminder/internal/models"

	"github.com/gorilla/csrf"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=HomeData
type HomeData interface {
	GetUpcomingEvents(now time.Time, limit int) ([]models.Event, error)
	GetInvitationByToken(token string) (*models.Invitation, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=DashboardData
type DashboardData interface {
	GetEventsByOwner(userID int) ([]models.Event, error)
	GetInvitationReports(eventID int) ([]models.InvitationReport, error)
	GetRSVPsForEvent(eventID int) ([]models.RSVP, error)
}

type homePage struct {
	Events         []models.Event
	InvitedEventID int
	User           *models.User
	CSRFField      template.HTML
}

// Home renders the upcoming events page with a per-event RSVP form. An
// invite token in the query marks the invited event so the guest lands on
// the right form.
func Home(log *slog.Logger, data HomeData) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.pages.Home"

		log = log.With(slog.String("op", op))

		events, err := data.GetUpcomingEvents(time.Now(), 0)
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		page := homePage{
			Events:    events,
			User:      auth.UserFromContext(r.Context()),
			CSRFField: csrf.TemplateField(r),
		}

		if token := r.URL.Query().Get("invite"); token != "" {
			// a bad token only loses the highlight, the page still renders
			if inv, err := data.GetInvitationByToken(token); err == nil {
				page.InvitedEventID = inv.EventID
			}
		}

		renderPage(w, log, "home.html", page)
	}
}

type newEventPage struct {
	User      *models.User
	CSRFField template.HTML
}

// NewEvent renders the create-event form.
func NewEvent(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.pages.NewEvent"

		log = log.With(slog.String("op", op))

		renderPage(w, log, "new_event.html", newEventPage{
			User:      auth.UserFromContext(r.Context()),
			CSRFField: csrf.TemplateField(r),
		})
	}
}

type dashboardEvent struct {
	models.Event
	Invitations []models.InvitationReport
	RSVPs       []models.RSVP
	Confirmed   int
}

type dashboardPage struct {
	User      *models.User
	Events    []dashboardEvent
	CSRFField template.HTML
}

// Dashboard renders the host view: owned events with their invitation and
// RSVP tables and an invitation send form per event.
func Dashboard(log *slog.Logger, data DashboardData) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.pages.Dashboard"

		log = log.With(slog.String("op", op))

		user := auth.UserFromContext(r.Context())
		if user == nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		log = log.With(slog.Int("user_id", user.ID))

		events, err := data.GetEventsByOwner(user.ID)
		if err != nil {
			log.Error("failed to get hosted events", sl.Err(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		page := dashboardPage{
			User:      user,
			CSRFField: csrf.TemplateField(r),
		}

		for _, event := range events {
			invitations, err := data.GetInvitationReports(event.ID)
			if err != nil {
				log.Error("failed to get invitations", sl.Err(err))
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}

			rsvps, err := data.GetRSVPsForEvent(event.ID)
			if err != nil {
				log.Error("failed to get rsvps", sl.Err(err))
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}

			confirmed := 0
			for _, rsvp := range rsvps {
				if rsvp.Status == models.RSVPStatusYes {
					confirmed += rsvp.GuestCount
				}
			}

			page.Events = append(page.Events, dashboardEvent{
				Event:       event,
				Invitations: invitations,
				RSVPs:       rsvps,
				Confirmed:   confirmed,
			})
		}

		renderPage(w, log, "dashboard.html", page)
	}
}

func renderPage(w http.ResponseWriter, log *slog.Logger, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		log.Error("failed to render page", slog.String("page", name), sl.Err(err))
	}
}
