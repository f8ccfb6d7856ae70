package logout

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"partyminder/internal/http-server/handlers/auth/logout/mocks"
	"partyminder/internal/http-server/middleware/auth"
	"partyminder/internal/lib/logger/handlers/slogdiscard"

	"github.com/stretchr/testify/assert"
)

func TestLogoutHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		cookie         *http.Cookie
		mockSetup      func(m *mocks.SessionDeleter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:   "Success",
			cookie: &http.Cookie{Name: auth.CookieName, Value: "tok123"},
			mockSetup: func(m *mocks.SessionDeleter) {
				m.On("DeleteSession", "tok123").Return(nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
			},
		},
		{
			name:           "No cookie is fine",
			cookie:         nil,
			mockSetup:      func(m *mocks.SessionDeleter) {},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
			},
		},
		{
			name:   "Storage failure",
			cookie: &http.Cookie{Name: auth.CookieName, Value: "tok123"},
			mockSetup: func(m *mocks.SessionDeleter) {
				m.On("DeleteSession", "tok123").Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "failed to log out")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockSessions := mocks.NewSessionDeleter(t)
			tc.mockSetup(mockSessions)

			handler := New(logger, mockSessions)

			req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
			if tc.cookie != nil {
				req.AddCookie(tc.cookie)
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			tc.checkBody(t, rr.Body.String())

			if tc.expectedStatus == http.StatusOK {
				var cleared bool
				for _, c := range rr.Result().Cookies() {
					if c.Name == auth.CookieName && c.Value == "" {
						cleared = true
					}
				}
				assert.True(t, cleared, "expected session cookie to be cleared")
			}
		})
	}
}
