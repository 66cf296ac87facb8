package app

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/leitner-backend/internal/config"
	authsvc "github.com/heartmarshall/leitner-backend/internal/service/auth"
	"github.com/heartmarshall/leitner-backend/internal/transport/middleware"
	"github.com/heartmarshall/leitner-backend/internal/transport/rest"
)

// routerDeps groups the handlers and middleware dependencies of the router.
type routerDeps struct {
	Config     *config.Config
	Logger     *slog.Logger
	Health     *rest.HealthHandler
	Flashcards *rest.FlashcardHandler
	Auth       *rest.AuthHandler
	Tokens     *authsvc.Service
	Limiter    *middleware.RateLimiter
}

// newRouter mounts the health endpoints at the root and every API route under the
// configured base path, then wraps the mux in the global middleware chain.
func newRouter(d routerDeps) http.Handler {
	mux := http.NewServeMux()
	base := strings.TrimRight(d.Config.API.BasePath, "/")

	// Health
	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)

	protected := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(h)
	}
	throttled := d.Limiter.Limit(d.Config.RateLimit.AuthPerMinute)

	// Auth
	mux.Handle("POST "+base+"/auth/register", throttled(http.HandlerFunc(d.Auth.Register)))
	mux.Handle("POST "+base+"/auth/login", throttled(http.HandlerFunc(d.Auth.Login)))
	mux.Handle("GET "+base+"/auth/me", protected(d.Auth.Me))
	mux.Handle("PATCH "+base+"/auth/password", protected(d.Auth.ChangePassword))
	mux.Handle("DELETE "+base+"/auth/account", protected(d.Auth.DeleteAccount))

	// Flashcards
	mux.Handle("POST "+base+"/flashcards", protected(d.Flashcards.Create))
	mux.Handle("GET "+base+"/flashcards", protected(d.Flashcards.List))
	mux.Handle("GET "+base+"/flashcards/due", protected(d.Flashcards.Due))
	mux.Handle("GET "+base+"/flashcards/stats/summary", protected(d.Flashcards.Stats))
	mux.Handle("GET "+base+"/flashcards/mastered", protected(d.Flashcards.Mastered))
	mux.Handle("GET "+base+"/flashcards/quiz", protected(d.Flashcards.Quiz))
	mux.Handle("GET "+base+"/flashcards/{id}", protected(d.Flashcards.Get))
	mux.Handle("PUT "+base+"/flashcards/{id}", protected(d.Flashcards.Update))
	mux.Handle("DELETE "+base+"/flashcards/{id}", protected(d.Flashcards.Delete))
	mux.Handle("PATCH "+base+"/flashcards/{id}/review", protected(d.Flashcards.Review))

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(d.Logger),
		middleware.CORS(d.Config.CORS),
		middleware.Logger(d.Logger),
		middleware.Auth(d.Tokens),
	)

	return chain(mux)
}
