package progressapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/baechuer/real-time-ressys/services/learner-service/internal/domain"
	"github.com/baechuer/real-time-ressys/services/learner-service/internal/logger"
	reqctx "github.com/baechuer/real-time-ressys/services/learner-service/internal/pkg/context"
)

var (
	ErrTimeout     = errors.New("progress_api_timeout")
	ErrUnavailable = errors.New("progress_api_unavailable")
)

// StatusError is returned by ReadAll for non-2xx responses.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("progress api error [%d]: %s", e.StatusCode, e.Body)
}

// record is the external system's wire shape.
type record struct {
	StudentID string `json:"idEstudiante"`
	Medal1    bool   `json:"medalla1"`
	Medal2    bool   `json:"medalla2"`
	Medal3    bool   `json:"medalla3"`
	Medal4    bool   `json:"medalla4"`
}

func (r record) toDomain() domain.ProgressRecord {
	return domain.ProgressRecord{
		StudentID: r.StudentID,
		Medals: domain.Medals{
			Medal1: r.Medal1,
			Medal2: r.Medal2,
			Medal3: r.Medal3,
			Medal4: r.Medal4,
		},
	}
}

// Client talks to the external progress API:
//
//	GET  {base}/progress  -> [record...]
//	POST {base}/progress  <- record (upsert keyed by idEstudiante)
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) newRequest(ctx context.Context, method string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+"/progress", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.APIKey != "" {
		req.Header.Set("X-API-Key", c.APIKey)
	}
	if rid := reqctx.GetRequestID(ctx); rid != "" {
		req.Header.Set("X-Request-ID", rid)
	}
	return req, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		var ne interface{ Timeout() bool }
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return resp, nil
}

func readSnippet(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 512))
	return strings.TrimSpace(string(b))
}

func (c *Client) ReadAll(ctx context.Context) ([]domain.ProgressRecord, error) {
	req, err := c.newRequest(ctx, http.MethodGet, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: readSnippet(resp.Body)}
	}

	var wire []record
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("decode progress list: %w", err)
	}

	out := make([]domain.ProgressRecord, 0, len(wire))
	for _, r := range wire {
		out = append(out, r.toDomain())
	}
	return out, nil
}

// Upsert writes the full medal tuple for studentID. A non-2xx answer is a
// remote-side rejection and reported as (false, nil); transport failures are errors.
func (c *Client) Upsert(ctx context.Context, studentID string, m domain.Medals) (bool, error) {
	body, err := json.Marshal(record{
		StudentID: strings.TrimSpace(studentID),
		Medal1:    m.Medal1,
		Medal2:    m.Medal2,
		Medal3:    m.Medal3,
		Medal4:    m.Medal4,
	})
	if err != nil {
		return false, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, bytes.NewReader(body))
	if err != nil {
		return false, err
	}

	resp, err := c.do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.WithCtx(ctx).Warn().
			Int("status", resp.StatusCode).
			Str("body", readSnippet(resp.Body)).
			Msg("progress api rejected upsert")
		return false, nil
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return true, nil
}
