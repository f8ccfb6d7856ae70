package listRSVPs

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"partyminder/internal/http-server/handlers/rsvp/listRSVPs/mocks"
	"partyminder/internal/http-server/middleware/auth"
	"partyminder/internal/lib/logger/handlers/slogdiscard"
	"partyminder/internal/models"
	"partyminder/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestListRSVPsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	owner := &models.User{ID: 7, Email: "host@example.com"}
	event := &models.Event{ID: 42, Title: "Garden Party", UserID: 7}

	list := []models.RSVP{
		{ID: 1, EventID: 42, GuestName: "Bob", GuestEmail: "bob@x.com", GuestCount: 2, Status: models.RSVPStatusYes},
		{ID: 2, EventID: 42, GuestName: "Carol", GuestEmail: "carol@x.com", GuestCount: 3, Status: models.RSVPStatusMaybe},
		{ID: 3, EventID: 42, GuestName: "Dave", GuestEmail: "dave@x.com", GuestCount: 1, Status: models.RSVPStatusYes},
	}

	testCases := []struct {
		name           string
		eventID        string
		user           *models.User
		mockSetup      func(m *mocks.RSVPsGetter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:    "Success counts only confirmed guests",
			eventID: "42",
			user:    owner,
			mockSetup: func(m *mocks.RSVPsGetter) {
				m.On("GetEvent", 42).Return(event, nil)
				m.On("GetRSVPsForEvent", 42).Return(list, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"confirmed_count":3`)
				assert.Contains(t, body, `"carol@x.com"`)
			},
		},
		{
			name:    "Forbidden for non-owner",
			eventID: "42",
			user:    &models.User{ID: 8},
			mockSetup: func(m *mocks.RSVPsGetter) {
				m.On("GetEvent", 42).Return(event, nil)
			},
			expectedStatus: http.StatusForbidden,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "you do not have permission to view rsvps for this event")
			},
		},
		{
			name:    "Event not found",
			eventID: "999",
			user:    owner,
			mockSetup: func(m *mocks.RSVPsGetter) {
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
			user:           owner,
			mockSetup:      func(m *mocks.RSVPsGetter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "invalid event id format")
			},
		},
		{
			name:    "Storage failure",
			eventID: "42",
			user:    owner,
			mockSetup: func(m *mocks.RSVPsGetter) {
				m.On("GetEvent", 42).Return(event, nil)
				m.On("GetRSVPsForEvent", 42).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "failed to get rsvps")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewRSVPsGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req := httptest.NewRequest(http.MethodGet, "/events/"+tc.eventID+"/rsvps", nil)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tc.eventID)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			if tc.user != nil {
				ctx = auth.ContextWithUser(ctx, tc.user)
			}
			req = req.WithContext(ctx)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			tc.checkBody(t, rr.Body.String())
		})
	}
}
