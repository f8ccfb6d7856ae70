package auth

import (
	"context"
	"log/slog"
	"net/http"

	"partyminder/internal/lib/api/response"
	"partyminder/internal/models"

	"github.com/go-chi/render"
)

// CookieName holds the session token issued at login.
const CookieName = "pm_session"

type ctxKey struct{}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionResolver
type SessionResolver interface {
	GetUserBySession(token string) (*models.User, error)
}

// New resolves the session cookie to a user and stores it in the request
// context. Requests without a valid session pass through anonymously.
func New(log *slog.Logger, sessions SessionResolver) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CookieName)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			user, err := sessions.GetUserBySession(cookie.Value)
			if err != nil {
				// stale or forged cookie, proceed anonymously
				next.ServeHTTP(w, r)
				return
			}

			log.Debug("session resolved", slog.Int("user_id", user.ID))

			next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
		}

		return http.HandlerFunc(fn)
	}
}

// RequireUser rejects requests that did not resolve to a logged-in user.
func RequireUser(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		if UserFromContext(r.Context()) == nil {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("you must be logged in"))
			return
		}

		next.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}

func ContextWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, user)
}

// UserFromContext returns the logged-in user, or nil for anonymous requests.
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(ctxKey{}).(*models.User)
	return user
}
