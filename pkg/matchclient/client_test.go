package matchclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-match-connect/internal/domain"
)

func testRequest() domain.MatchRequest {
	return domain.MatchRequest{
		JobID:              "7",
		JobDescriptionText: "Senior Go engineer",
		Resumes: []domain.MatchResume{
			{ID: "3", Text: "ten years of Go"},
		},
	}
}

func TestScreenRelaysVerdict(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ranked":[{"id":"3","score":0.9}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Minute)
	raw, err := c.Screen(context.Background(), testRequest())
	require.NoError(t, err)
	assert.JSONEq(t, `{"ranked":[{"id":"3","score":0.9}]}`, string(raw))

	// ids cross the wire as strings
	var sent map[string]any
	require.NoError(t, json.Unmarshal(gotBody, &sent))
	assert.Equal(t, "7", sent["job_id"])
}

func TestScreenBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "engine exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Minute)
	_, err := c.Screen(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrBadStatus)
	assert.Contains(t, err.Error(), "engine exploded")
}

func TestScreenMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Minute)
	_, err := c.Screen(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestScreenUnreachable(t *testing.T) {
	c := New("http://127.0.0.1:1", time.Second)
	_, err := c.Screen(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrUnavailable)
}
