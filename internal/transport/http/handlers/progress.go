package http_handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baechuer/real-time-ressys/services/learner-service/internal/application/progress"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/domain"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/eventlog"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/transport/http/dto"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/transport/http/middleware"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/transport/http/response"
)

type ProgressHandler struct {
	svc   *progress.Service
	events *eventlog.Logger
}

func NewProgressHandler(svc *progress.Service, events *eventlog.Logger) *ProgressHandler {
	return &ProgressHandler{svc: svc, events: events}
}

// subject returns the authenticated email set by the auth middleware.
func subject(r *http.Request) (string, error) {
	email, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		return "", domain.ErrTokenMissing()
	}
	return email, nil
}

func (h *ProgressHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	email, err := subject(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	v, err := h.svc.GetMyProgress(r.Context(), email)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.NewProgressResponse(v))
}

// UpdateMedals handles PATCH /progress/me/medals. Omitted or null medals keep their current value.
func (h *ProgressHandler) UpdateMedals(w http.ResponseWriter, r *http.Request) {
	email, err := subject(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	var req dto.UpdateMedalsRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	v, err := h.svc.UpdateMedals(r.Context(), email, req.ToDomain())
	middleware.MedalUpdatesTotal.WithLabelValues(middleware.Outcome(err)).Inc()
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	h.events.MedalsUpdated(r.Context(), email, [4]bool{v.Medal1, v.Medal2, v.Medal3, v.Medal4})

	response.OK(w, dto.NewProgressResponse(v))
}

func (h *ProgressHandler) MarkTestDone(w http.ResponseWriter, r *http.Request) {
	email, err := subject(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	kind := chi.URLParam(r, "kind")
	if err := h.svc.MarkTestDone(r.Context(), email, kind); err != nil {
		response.WriteError(w, r, err)
		return
	}

	h.events.TestMarkedDone(r.Context(), email, kind)

	response.NoContent(w)
}
