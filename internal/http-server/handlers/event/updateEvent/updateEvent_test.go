package updateEvent

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"partyminder/internal/http-server/handlers/event/updateEvent/mocks"
	"partyminder/internal/http-server/middleware/auth"
	"partyminder/internal/lib/logger/handlers/slogdiscard"
	"partyminder/internal/models"
	"partyminder/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedEvent() *models.Event {
	return &models.Event{
		ID:        5,
		Title:     "Old Title",
		EventDate: time.Date(2026, 1, 1, 19, 0, 0, 0, time.UTC),
		MaxGuests: 10,
		HostName:  "Alice",
		HostEmail: "alice@example.com",
		EventType: "dinner",
		UserID:    42,
		Status:    models.EventStatusActive,
	}
}

const validBody = `{
	"title": "New Title",
	"description": "updated",
	"event_date": "2026-02-02T20:00:00Z",
	"location": "elsewhere",
	"max_guests": 25,
	"host_name": "Alice",
	"host_email": "alice@example.com",
	"event_type": "cocktail"
}`

func TestUpdateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		eventID        string
		requestBody    string
		user           *models.User
		mockSetup      func(m *mocks.EventUpdater)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success owner",
			eventID:     "5",
			requestBody: validBody,
			user:        &models.User{ID: 42},
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("GetEvent", 5).Return(storedEvent(), nil)
				m.On("UpdateEvent", mock.MatchedBy(func(e *models.Event) bool {
					return e.ID == 5 &&
						e.Title == "New Title" &&
						e.MaxGuests == 25 &&
						e.EventType == "cocktail" &&
						e.Status == models.EventStatusActive
				})).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:        "Admin may update",
			eventID:     "5",
			requestBody: validBody,
			user:        &models.User{ID: 7, IsAdmin: true},
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("GetEvent", 5).Return(storedEvent(), nil)
				m.On("UpdateEvent", mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:        "Forbidden for non-owner",
			eventID:     "5",
			requestBody: validBody,
			user:        &models.User{ID: 99},
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("GetEvent", 5).Return(storedEvent(), nil)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"you do not have permission to update this event"}`,
		},
		{
			name:        "Forbidden for anonymous",
			eventID:     "5",
			requestBody: validBody,
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("GetEvent", 5).Return(storedEvent(), nil)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"you do not have permission to update this event"}`,
		},
		{
			name:        "Event not found",
			eventID:     "5",
			requestBody: validBody,
			user:        &models.User{ID: 42},
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("GetEvent", 5).Return(nil, storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:           "Invalid id",
			eventID:        "abc",
			requestBody:    validBody,
			user:           &models.User{ID: 42},
			mockSetup:      func(m *mocks.EventUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event id format"}`,
		},
		{
			name:           "Missing title",
			eventID:        "5",
			requestBody:    `{"event_date": "2026-02-02T20:00:00Z"}`,
			user:           &models.User{ID: 42},
			mockSetup:      func(m *mocks.EventUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Title is a required field"}`,
		},
		{
			name:        "Storage failure",
			eventID:     "5",
			requestBody: validBody,
			user:        &models.User{ID: 42},
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("GetEvent", 5).Return(storedEvent(), nil)
				m.On("UpdateEvent", mock.Anything).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to update event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockStore := mocks.NewEventUpdater(t)
			tc.mockSetup(mockStore)

			handler := New(logger, mockStore)

			req, err := http.NewRequest(http.MethodPut, "/events/"+tc.eventID, bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tc.eventID)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			if tc.user != nil {
				ctx = auth.ContextWithUser(ctx, tc.user)
			}
			req = req.WithContext(ctx)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
