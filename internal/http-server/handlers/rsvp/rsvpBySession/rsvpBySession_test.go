package rsvpBySession

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"partyminder/internal/http-server/handlers/rsvp/rsvpBySession/mocks"
	"partyminder/internal/http-server/middleware/auth"
	"partyminder/internal/lib/logger/handlers/slogdiscard"
	"partyminder/internal/models"
	"partyminder/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestRSVPBySessionHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	user := &models.User{ID: 7, Email: "guest@example.com"}
	inv := &models.Invitation{ID: 3, EventID: 42, GuestEmail: "guest@example.com", Status: models.InvitationStatusSent}

	testCases := []struct {
		name           string
		invID          string
		body           string
		user           *models.User
		mockSetup      func(m *mocks.InvitationResponder)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:  "Accept",
			invID: "3",
			body:  `{"response": "accepted"}`,
			user:  user,
			mockSetup: func(m *mocks.InvitationResponder) {
				m.On("GetInvitationByID", 3).Return(inv, nil)
				m.On("SetInvitationResponse", 3, "accepted", "").Return(nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
			},
		},
		{
			name:  "Email compared case insensitively",
			invID: "3",
			body:  `{"response": "declined"}`,
			user:  &models.User{ID: 7, Email: "Guest@Example.COM"},
			mockSetup: func(m *mocks.InvitationResponder) {
				m.On("GetInvitationByID", 3).Return(inv, nil)
				m.On("SetInvitationResponse", 3, "declined", "").Return(nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
			},
		},
		{
			name:  "Forbidden for other guest's invitation",
			invID: "3",
			body:  `{"response": "accepted"}`,
			user:  &models.User{ID: 8, Email: "someone@else.com"},
			mockSetup: func(m *mocks.InvitationResponder) {
				m.On("GetInvitationByID", 3).Return(inv, nil)
			},
			expectedStatus: http.StatusForbidden,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "this invitation is not addressed to you")
			},
		},
		{
			name:           "Unauthorized without session",
			invID:          "3",
			body:           `{"response": "accepted"}`,
			user:           nil,
			mockSetup:      func(m *mocks.InvitationResponder) {},
			expectedStatus: http.StatusUnauthorized,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "you must be logged in")
			},
		},
		{
			name:  "Invitation not found",
			invID: "999",
			body:  `{"response": "accepted"}`,
			user:  user,
			mockSetup: func(m *mocks.InvitationResponder) {
				m.On("GetInvitationByID", 999).Return(nil, storage.ErrInvitationNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "invitation not found")
			},
		},
		{
			name:           "Invalid response value",
			invID:          "3",
			body:           `{"response": "maybe"}`,
			user:           user,
			mockSetup:      func(m *mocks.InvitationResponder) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "field Response must be one of [accepted declined]")
			},
		},
		{
			name:           "Invalid invitation id",
			invID:          "abc",
			body:           `{"response": "accepted"}`,
			user:           user,
			mockSetup:      func(m *mocks.InvitationResponder) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "invalid invitation id format")
			},
		},
		{
			name:  "Storage failure",
			invID: "3",
			body:  `{"response": "accepted"}`,
			user:  user,
			mockSetup: func(m *mocks.InvitationResponder) {
				m.On("GetInvitationByID", 3).Return(inv, nil)
				m.On("SetInvitationResponse", 3, "accepted", "").Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "failed to respond to invitation")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockResponder := mocks.NewInvitationResponder(t)
			tc.mockSetup(mockResponder)

			handler := New(logger, mockResponder)

			req := httptest.NewRequest(http.MethodPost, "/invitations/"+tc.invID+"/respond", bytes.NewBufferString(tc.body))

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tc.invID)
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
