package http_handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/baechuer/real-time-ressys/services/learner-service/internal/transport/http/middleware"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/transport/http/response"
)

// mustJSONBody marshals v to JSON and returns an io.Reader for request body.
func mustJSONBody(t *testing.T, v any) io.Reader {
	t.Helper()

	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json marshal: %v", err)
	}
	return bytes.NewReader(b)
}

// mustReadData decodes the {"data": ...} envelope into out.
func mustReadData(t *testing.T, r io.Reader, out any) {
	t.Helper()

	raw, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	wrapped := struct {
		Data json.RawMessage `json:"data"`
	}{}
	if err := json.Unmarshal(raw, &wrapped); err != nil || len(wrapped.Data) == 0 {
		t.Fatalf("decode json failed; body=%s", string(raw))
	}
	if err := json.Unmarshal(wrapped.Data, out); err != nil {
		t.Fatalf("decode data failed; body=%s err=%v", string(raw), err)
	}
}

// mustReadErrCode decodes an error body and returns its code.
func mustReadErrCode(t *testing.T, r io.Reader) string {
	t.Helper()

	var body response.ErrorBody
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body.Error.Code
}

// withUserCtx injects the authenticated subject the way the auth middleware does.
func withUserCtx(req *http.Request, userID int64, email, role string) *http.Request {
	ctx := middleware.WithUser(req.Context(), userID, email, role)
	return req.WithContext(ctx)
}

// withURLParam injects chi URL param (e.g. /tests/{kind}) into request context.
func withURLParam(req *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)

	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	return req.WithContext(ctx)
}
