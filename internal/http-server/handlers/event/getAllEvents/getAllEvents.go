package getAllEvents

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"partyminder/internal/lib/api/response"
	"partyminder/internal/lib/logger/sl"
	"partyminder/internal/models"

	"github.com/go-chi/render"
)

type EventsResponse struct {
	response.Response
	Events []models.Event `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsGetter
type EventsGetter interface {
	GetUpcomingEvents(now time.Time, limit int) ([]models.Event, error)
}

// New lists upcoming active events, soonest first. Past and cancelled events
// are excluded.
func New(log *slog.Logger, eventsGetter EventsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getAllEvents.New"

		log = log.With(slog.String("op", op))

		limit := 0
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil || parsed < 0 {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid limit format"))
				return
			}
			limit = parsed
		}

		events, err := eventsGetter.GetUpcomingEvents(time.Now(), limit)
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		log.Info("events retrieved successfully", slog.Int("count", len(events)))

		responseOK(w, r, events)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, events []models.Event) {
	render.JSON(w, r, EventsResponse{
		Response: response.OK(),
		Events:   events,
	})
}
