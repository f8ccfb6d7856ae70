package listInvitations

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"partyminder/internal/http-server/handlers/invite/listInvitations/mocks"
	"partyminder/internal/http-server/middleware/auth"
	"partyminder/internal/lib/logger/handlers/slogdiscard"
	"partyminder/internal/models"
	"partyminder/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestListInvitationsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	owner := &models.User{ID: 7, Email: "host@example.com"}
	event := &models.Event{ID: 42, Title: "Garden Party", UserID: 7}

	reports := []models.InvitationReport{
		{
			Invitation: models.Invitation{ID: 1, EventID: 42, GuestEmail: "a@x.com", Status: models.InvitationStatusAccepted},
			RSVPStatus: models.RSVPStatusYes,
			RSVPCount:  2,
		},
		{
			Invitation: models.Invitation{ID: 2, EventID: 42, GuestEmail: "b@x.com", Status: models.InvitationStatusSent},
			RSVPStatus: models.InvitationNoResponse,
		},
	}

	testCases := []struct {
		name           string
		eventID        string
		user           *models.User
		mockSetup      func(m *mocks.InvitationsGetter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:    "Success",
			eventID: "42",
			user:    owner,
			mockSetup: func(m *mocks.InvitationsGetter) {
				m.On("GetEvent", 42).Return(event, nil)
				m.On("GetInvitationReports", 42).Return(reports, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"a@x.com"`)
				assert.Contains(t, body, `"no_response"`)
			},
		},
		{
			name:    "Forbidden for non-owner",
			eventID: "42",
			user:    &models.User{ID: 8, Email: "other@example.com"},
			mockSetup: func(m *mocks.InvitationsGetter) {
				m.On("GetEvent", 42).Return(event, nil)
			},
			expectedStatus: http.StatusForbidden,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "you do not have permission to view invitations for this event")
			},
		},
		{
			name:    "Event not found",
			eventID: "999",
			user:    owner,
			mockSetup: func(m *mocks.InvitationsGetter) {
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
			mockSetup:      func(m *mocks.InvitationsGetter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "invalid event id format")
			},
		},
		{
			name:    "Storage failure",
			eventID: "42",
			user:    owner,
			mockSetup: func(m *mocks.InvitationsGetter) {
				m.On("GetEvent", 42).Return(event, nil)
				m.On("GetInvitationReports", 42).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "failed to get invitations")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewInvitationsGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req := httptest.NewRequest(http.MethodGet, "/events/"+tc.eventID+"/invitations", nil)

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
