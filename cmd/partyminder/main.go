package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"partyminder/internal/config"
	"partyminder/internal/http-server/handlers/auth/login"
	"partyminder/internal/http-server/handlers/auth/logout"
	"partyminder/internal/http-server/handlers/auth/register"
	"partyminder/internal/http-server/handlers/event/createEvent"
	"partyminder/internal/http-server/handlers/event/deleteEvent"
	"partyminder/internal/http-server/handlers/event/getAllEvents"
	"partyminder/internal/http-server/handlers/event/getEventInfo"
	"partyminder/internal/http-server/handlers/event/myEvents"
	"partyminder/internal/http-server/handlers/event/updateEvent"
	"partyminder/internal/http-server/handlers/invite/listInvitations"
	"partyminder/internal/http-server/handlers/invite/sendInvitations"
	"partyminder/internal/http-server/handlers/pages"
	"partyminder/internal/http-server/handlers/rsvp/createRSVP"
	"partyminder/internal/http-server/handlers/rsvp/listRSVPs"
	"partyminder/internal/http-server/handlers/rsvp/rsvpBySession"
	"partyminder/internal/http-server/handlers/rsvp/rsvpByToken"
	"partyminder/internal/http-server/middleware/auth"
	"partyminder/internal/http-server/middleware/mwlogger"
	"partyminder/internal/invites"
	"partyminder/internal/lib/logger/handlers/slogpretty"
	"partyminder/internal/lib/logger/sl"
	"partyminder/internal/mailer"
	"partyminder/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting partyminder", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	mail := mailer.NewSMTPMailer(&cfg.SMTP)
	inviter := invites.New(log, storage, storage, mail, cfg.BaseURL)

	csrfProtect := csrf.Protect(
		[]byte(cfg.Session.CSRFSecret),
		csrf.Path("/"),
		csrf.Secure(cfg.Env != envLocal),
	)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(auth.New(log, storage))

	router.Post("/auth/register", register.New(log, storage, cfg.Session.TTL))
	router.Post("/auth/login", login.New(log, storage, cfg.Session.TTL))

	router.Get("/events", getAllEvents.New(log, storage))
	router.Get("/events/{id}", getEventInfo.New(log, storage))

	// token routes: the invitation token is the only credential, no CSRF
	router.Get("/rsvp", rsvpByToken.New(log, storage))
	router.Post("/rsvp", rsvpByToken.NewSubmit(log, storage))

	// every other mutation carries the CSRF credential; the pages sit in the
	// same group so their forms render a real token
	router.Group(func(r chi.Router) {
		r.Use(csrfProtect)

		r.Get("/", pages.Home(log, storage))
		r.Get("/events/new", pages.NewEvent(log))
		r.Get("/dashboard", pages.Dashboard(log, storage))

		r.Post("/auth/logout", logout.New(log, storage))
		r.Post("/events", createEvent.New(log, storage, inviter))
		r.Post("/events/{id}/rsvp", createRSVP.New(log, storage))

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireUser)

			r.Get("/my/events", myEvents.New(log, storage))

			r.Put("/events/{id}", updateEvent.New(log, storage))
			r.Delete("/events/{id}", deleteEvent.New(log, storage))

			r.Post("/events/{id}/invitations", sendInvitations.New(log, storage, inviter))
			r.Get("/events/{id}/invitations", listInvitations.New(log, storage))
			r.Get("/events/{id}/rsvps", listRSVPs.New(log, storage))

			r.Post("/invitations/{id}/respond", rsvpBySession.New(log, storage))
		})
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	if err = srv.Close(); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
