package http_handlers

import (
	"net/http"

	"github.com/baechuer/real-time-ressys/services/learner-service/internal/application/identity"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/domain"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/eventlog"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/transport/http/dto"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/transport/http/middleware"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/transport/http/response"
)

type IdentityHandler struct {
	svc   *identity.Service
	events *eventlog.Logger
}

func NewIdentityHandler(svc *identity.Service, events *eventlog.Logger) *IdentityHandler {
	return &IdentityHandler{svc: svc, events: events}
}

// VerifyIdentity handles POST /auth/verify-identity. A mismatch is a 200 with valid=false.
func (h *IdentityHandler) VerifyIdentity(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyIdentityRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	ok, err := h.svc.VerifyIdentity(r.Context(), req.Email, req.DNI)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.ValidResponse{Valid: ok})
}

func (h *IdentityHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	email := domain.NormalizeEmail(req.Email)
	err := h.svc.Signup(r.Context(), email, req.DNI, req.Password)
	outcome := middleware.Outcome(err)
	middleware.SignupsTotal.WithLabelValues(outcome).Inc()
	if err != nil {
		h.events.SignupRejected(r.Context(), email, outcome)
		response.WriteError(w, r, err)
		return
	}

	h.events.AccountSignedUp(r.Context(), email)

	response.Created(w, dto.SignupResponse{Email: email})
}

func (h *IdentityHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ResetPasswordRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := h.svc.ResetPassword(r.Context(), req.Email, req.DNI, req.NewPassword); err != nil {
		response.WriteError(w, r, err)
		return
	}

	h.events.PasswordReset(r.Context(), domain.NormalizeEmail(req.Email))

	response.NoContent(w)
}

func (h *IdentityHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	email := domain.NormalizeEmail(req.Email)
	token, err := h.svc.Login(r.Context(), email, req.Password)
	outcome := middleware.Outcome(err)
	middleware.LoginAttemptsTotal.WithLabelValues(outcome).Inc()
	if err != nil {
		h.events.LoginFailed(r.Context(), email, outcome)
		response.WriteError(w, r, err)
		return
	}

	h.events.LoginSucceeded(r.Context(), email)

	response.OK(w, dto.TokenResponse{Token: token, TokenType: "Bearer"})
}
