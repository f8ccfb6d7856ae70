package deleteEvent

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"partyminder/internal/http-server/handlers/event/deleteEvent/mocks"
	"partyminder/internal/http-server/middleware/auth"
	"partyminder/internal/lib/logger/handlers/slogdiscard"
	"partyminder/internal/models"
	"partyminder/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	owned := &models.Event{ID: 5, Title: "Dinner", UserID: 42}

	testCases := []struct {
		name           string
		eventID        string
		user           *models.User
		mockSetup      func(m *mocks.EventDeleter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Success owner",
			eventID: "5",
			user:    &models.User{ID: 42},
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("GetEvent", 5).Return(owned, nil)
				m.On("DeleteEvent", 5).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:    "Success admin",
			eventID: "5",
			user:    &models.User{ID: 1, IsAdmin: true},
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("GetEvent", 5).Return(owned, nil)
				m.On("DeleteEvent", 5).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:    "Forbidden for non-owner",
			eventID: "5",
			user:    &models.User{ID: 99},
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("GetEvent", 5).Return(owned, nil)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"you do not have permission to delete this event"}`,
		},
		{
			name:    "Not found",
			eventID: "5",
			user:    &models.User{ID: 42},
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("GetEvent", 5).Return(nil, storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:           "Invalid id",
			eventID:        "x",
			user:           &models.User{ID: 42},
			mockSetup:      func(m *mocks.EventDeleter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event id format"}`,
		},
		{
			name:    "Storage failure",
			eventID: "5",
			user:    &models.User{ID: 42},
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("GetEvent", 5).Return(owned, nil)
				m.On("DeleteEvent", 5).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to delete event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockStore := mocks.NewEventDeleter(t)
			tc.mockSetup(mockStore)

			handler := New(logger, mockStore)

			req, err := http.NewRequest(http.MethodDelete, "/events/"+tc.eventID, nil)
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
