package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type HealthHandler interface {
	Healthz(w http.ResponseWriter, r *http.Request)
	Readyz(w http.ResponseWriter, r *http.Request)
}

type IdentityHandler interface {
	VerifyIdentity(w http.ResponseWriter, r *http.Request)
	Signup(w http.ResponseWriter, r *http.Request)
	ResetPassword(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type ProgressHandler interface {
	GetMine(w http.ResponseWriter, r *http.Request)
	UpdateMedals(w http.ResponseWriter, r *http.Request)
	MarkTestDone(w http.ResponseWriter, r *http.Request)
}

type Deps struct {
	Health   HealthHandler
	Identity IdentityHandler
	Progress ProgressHandler

	RequestIDMW func(http.Handler) http.Handler
	AuthMW      func(http.Handler) http.Handler

	// Optional.
	CORSMW    func(http.Handler) http.Handler
	MetricsMW func(http.Handler) http.Handler
	Metrics   http.Handler
}

func New(deps Deps) (http.Handler, error) {
	if deps.Health == nil {
		return nil, fmt.Errorf("nil Health handler")
	}
	if deps.Identity == nil {
		return nil, fmt.Errorf("nil Identity handler")
	}
	if deps.Progress == nil {
		return nil, fmt.Errorf("nil Progress handler")
	}
	if deps.RequestIDMW == nil {
		return nil, fmt.Errorf("nil RequestID middleware")
	}
	if deps.AuthMW == nil {
		return nil, fmt.Errorf("nil Auth middleware")
	}

	r := chi.NewRouter()
	r.Use(deps.RequestIDMW)
	if deps.CORSMW != nil {
		r.Use(deps.CORSMW)
	}
	if deps.MetricsMW != nil {
		r.Use(deps.MetricsMW)
	}

	r.Get("/healthz", deps.Health.Healthz)
	r.Get("/readyz", deps.Health.Readyz)
	if deps.Metrics != nil {
		r.Handle("/metrics", deps.Metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/verify-identity", deps.Identity.VerifyIdentity)
			r.Post("/signup", deps.Identity.Signup)
			r.Post("/password/reset", deps.Identity.ResetPassword)
			r.Post("/login", deps.Identity.Login)
		})

		r.Route("/progress/me", func(r chi.Router) {
			r.Use(deps.AuthMW)

			r.Get("/", deps.Progress.GetMine)
			r.Patch("/medals", deps.Progress.UpdateMedals)
			r.Post("/tests/{kind}", deps.Progress.MarkTestDone)
		})
	})

	return r, nil
}
