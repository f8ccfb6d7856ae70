package getEventInfo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"partyminder/internal/http-server/handlers/event/getEventInfo/mocks"
	"partyminder/internal/lib/logger/handlers/slogdiscard"
	"partyminder/internal/models"
	"partyminder/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestGetEventInfoHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	event := &models.Event{
		ID:         42,
		Title:      "Garden Party",
		EventDate:  time.Date(2026, 7, 4, 18, 0, 0, 0, time.UTC),
		Location:   "Backyard",
		MaxGuests:  20,
		GuestCount: 7,
		HostName:   "Alice",
		HostEmail:  "alice@example.com",
		EventType:  "bbq",
		Status:     models.EventStatusActive,
	}

	testCases := []struct {
		name           string
		eventID        string
		mockSetup      func(m *mocks.EventGetter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:    "Success",
			eventID: "42",
			mockSetup: func(m *mocks.EventGetter) {
				m.On("GetEvent", 42).Return(event, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"Garden Party"`)
				assert.Contains(t, body, `"guest_count":7`)
			},
		},
		{
			name:    "Event not found",
			eventID: "999",
			mockSetup: func(m *mocks.EventGetter) {
				m.On("GetEvent", 999).Return(nil, storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "event not found")
			},
		},
		{
			name:           "Invalid event id",
			eventID:        "abc",
			mockSetup:      func(m *mocks.EventGetter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "invalid event id format")
			},
		},
		{
			name:    "Storage failure",
			eventID: "42",
			mockSetup: func(m *mocks.EventGetter) {
				m.On("GetEvent", 42).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "failed to get event information")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewEventGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req := httptest.NewRequest(http.MethodGet, "/events/"+tc.eventID, nil)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tc.eventID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			tc.checkBody(t, rr.Body.String())
		})
	}
}
