package logout

import (
	"log/slog"
	"net/http"
	"time"

	"partyminder/internal/http-server/middleware/auth"
	"partyminder/internal/lib/api/response"
	"partyminder/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionDeleter
type SessionDeleter interface {
	DeleteSession(token string) error
}

// New drops the caller's session and clears the cookie. Logging out without
// a session is not an error.
func New(log *slog.Logger, sessions SessionDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.logout.New"

		log = log.With(slog.String("op", op))

		cookie, err := r.Cookie(auth.CookieName)
		if err == nil && cookie.Value != "" {
			if err = sessions.DeleteSession(cookie.Value); err != nil {
				log.Error("failed to delete session", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to log out"))
				return
			}
		}

		http.SetCookie(w, &http.Cookie{
			Name:     auth.CookieName,
			Value:    "",
			Path:     "/",
			Expires:  time.Unix(0, 0),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		log.Info("user logged out")

		render.JSON(w, r, response.OK())
	}
}
