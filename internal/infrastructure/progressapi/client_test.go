package progressapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baechuer/real-time-ressys/services/learner-service/internal/domain"
	reqctx "github.com/baechuer/real-time-ressys/services/learner-service/internal/pkg/context"
)

func TestClient_ReadAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/progress", r.URL.Path)
		assert.Equal(t, "k1", r.Header.Get("X-API-Key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"idEstudiante":"123","medalla1":true,"medalla2":false,"medalla3":true,"medalla4":false},
			{"idEstudiante":" 456 ","medalla4":true}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "k1", time.Second)
	recs, err := c.ReadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "123", recs[0].StudentID)
	assert.Equal(t, domain.Medals{Medal1: true, Medal3: true}, recs[0].Medals)
	assert.Equal(t, " 456 ", recs[1].StudentID)
	assert.True(t, recs[1].Medal4)
}

func TestClient_ForwardsRequestID(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("X-Request-ID"))
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte(`[]`))
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", time.Second)
	ctx := reqctx.WithRequestID(context.Background(), "rid-42")

	_, err := c.ReadAll(ctx)
	require.NoError(t, err)
	_, err = c.Upsert(ctx, "123", domain.Medals{Medal1: true})
	require.NoError(t, err)
	_, err = c.ReadAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"rid-42", "rid-42", ""}, seen)
}

func TestClient_ReadAll_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "", time.Second).ReadAll(context.Background())
	var se *StatusError
	require.True(t, errors.As(err, &se), "got %v", err)
	assert.Equal(t, http.StatusServiceUnavailable, se.StatusCode)
	assert.Contains(t, se.Body, "maintenance")
}

func TestClient_ReadAll_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "", time.Second).ReadAll(context.Background())
	assert.Error(t, err)
}

func TestClient_ReadAll_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "", 50*time.Millisecond).ReadAll(context.Background())
	assert.True(t, errors.Is(err, ErrTimeout), "got %v", err)
}

func TestClient_ReadAll_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, "", time.Second).ReadAll(context.Background())
	assert.True(t, errors.Is(err, ErrUnavailable), "got %v", err)
}

func TestClient_Upsert_SendsFullTuple(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ok, err := NewClient(srv.URL, "", time.Second).Upsert(context.Background(), " 123 ", domain.Medals{Medal2: true})
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, "123", got["idEstudiante"])
	assert.Equal(t, false, got["medalla1"])
	assert.Equal(t, true, got["medalla2"])
	assert.Equal(t, false, got["medalla3"])
	assert.Equal(t, false, got["medalla4"])
}

func TestClient_Upsert_RemoteRejects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	ok, err := NewClient(srv.URL, "", time.Second).Upsert(context.Background(), "123", domain.Medals{})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClient_Upsert_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	ok, err := NewClient(url, "", time.Second).Upsert(context.Background(), "123", domain.Medals{})
	assert.False(t, ok)
	assert.True(t, errors.Is(err, ErrUnavailable), "got %v", err)
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("http://x/", "", 0)
	assert.Equal(t, "http://x", c.BaseURL)
	assert.Equal(t, 3*time.Second, c.HTTPClient.Timeout)
}
