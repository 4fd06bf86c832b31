// Package matchclient is a thin HTTP client for the external AI screening
// engine. The engine owns scoring; this client only forwards the job and
// resume corpus and relays the verdict body untouched.
package matchclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"ai-match-connect/internal/domain"
)

var (
	// ErrUnavailable means the engine could not be reached at all.
	ErrUnavailable = errors.New("matching engine unreachable")
	// ErrBadStatus means the engine answered with a non-2xx status.
	ErrBadStatus = errors.New("matching engine returned error status")
	// ErrMalformed means the engine answered 2xx but the body was not JSON.
	ErrMalformed = errors.New("matching engine returned malformed response")
)

type Client struct {
	url  string
	http *http.Client
}

// New builds a client for the engine endpoint. Screening a large resume
// batch is slow, so the timeout is minutes rather than seconds.
func New(url string, timeout time.Duration) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Screen(ctx context.Context, req domain.MatchRequest) (json.RawMessage, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d: %s", ErrBadStatus, resp.StatusCode, truncate(raw, 512))
	}

	if !json.Valid(raw) {
		return nil, ErrMalformed
	}
	return json.RawMessage(raw), nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
