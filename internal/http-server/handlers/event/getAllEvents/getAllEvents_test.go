package getAllEvents

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"partyminder/internal/http-server/handlers/event/getAllEvents/mocks"
	"partyminder/internal/lib/logger/handlers/slogdiscard"
	"partyminder/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetAllEventsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	upcoming := []models.Event{
		{ID: 1, Title: "Dinner", EventDate: time.Now().Add(24 * time.Hour), Status: models.EventStatusActive},
		{ID: 2, Title: "BBQ", EventDate: time.Now().Add(48 * time.Hour), Status: models.EventStatusActive},
	}

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(m *mocks.EventsGetter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			url:  "/events",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("GetUpcomingEvents", mock.AnythingOfType("time.Time"), 0).Return(upcoming, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"Dinner"`)
				assert.Contains(t, body, `"BBQ"`)
			},
		},
		{
			name: "Limit passed through",
			url:  "/events?limit=1",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("GetUpcomingEvents", mock.AnythingOfType("time.Time"), 1).Return(upcoming[:1], nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"Dinner"`)
				assert.NotContains(t, body, `"BBQ"`)
			},
		},
		{
			name:           "Invalid limit",
			url:            "/events?limit=nope",
			mockSetup:      func(m *mocks.EventsGetter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "invalid limit format")
			},
		},
		{
			name: "Storage failure",
			url:  "/events",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("GetUpcomingEvents", mock.AnythingOfType("time.Time"), 0).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "failed to get events")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewEventsGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			tc.checkBody(t, rr.Body.String())
		})
	}
}
