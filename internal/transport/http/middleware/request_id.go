package middleware

import (
	"net/http"

	"github.com/google/uuid"

	reqctx "github.com/baechuer/real-time-ressys/services/learner-service/internal/pkg/context"
)

const HeaderXRequestID = "X-Request-Id"

// RequestID reuses the caller's X-Request-Id or generates one, echoes it back,
// and stores it for logging and error bodies.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(HeaderXRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		w.Header().Set(HeaderXRequestID, reqID)

		ctx := reqctx.WithRequestID(r.Context(), reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
