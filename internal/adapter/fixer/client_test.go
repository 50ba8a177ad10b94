package fixer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-pulse/internal/core/port"
)

func TestStart(t *testing.T) {
	var received port.FixerStartRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/ratio-fixer/start", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(port.FixerStartResponse{Success: true, CampaignID: "ext-7"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	resp, err := c.Start(context.Background(), port.FixerStartRequest{
		CampaignID: 42,
		VideoID:    "vid-42",
		Genre:      "music",
	})
	require.NoError(t, err)
	assert.Equal(t, "ext-7", resp.CampaignID)
	assert.Equal(t, int64(42), received.CampaignID)
	assert.Equal(t, "vid-42", received.VideoID)
}

func TestStartRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(port.FixerStartResponse{Success: false, Error: "campaign already active"})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Start(context.Background(), port.FixerStartRequest{CampaignID: 42})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "campaign already active")
}

func TestStartServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(port.FixerStartResponse{Error: "boom"})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Start(context.Background(), port.FixerStartRequest{CampaignID: 42})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
}

func TestStop(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/ratio-fixer/stop/ext-7", r.URL.Path)
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	assert.NoError(t, NewClient(srv.URL).Stop(context.Background(), "ext-7"))
}

func TestStopRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error":"not running"}`))
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Stop(context.Background(), "ext-7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not running")
}

func TestStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ratio-fixer/status/ext-7", r.URL.Path)
		w.Write([]byte(`{"views":41000,"likes":950,"comments":130,"desired_likes":1000,"desired_comments":150,"status":"running"}`))
	}))
	defer srv.Close()

	status, err := NewClient(srv.URL).Status(context.Background(), "ext-7")
	require.NoError(t, err)
	assert.Equal(t, int64(41000), status.Views)
	assert.Equal(t, int64(950), status.Likes)
	assert.Equal(t, int64(1000), status.DesiredLikes)
	assert.Equal(t, "running", status.Status)
}

func TestStatusNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Status(context.Background(), "gone")
	assert.ErrorIs(t, err, port.ErrRemoteCampaignNotFound)
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ratio-fixer/health", r.URL.Path)
		w.Write([]byte(`{"status":"healthy","available":true}`))
	}))
	defer srv.Close()

	health, err := NewClient(srv.URL).Health(context.Background())
	require.NoError(t, err)
	assert.True(t, health.Available)
	assert.Equal(t, "healthy", health.Status)
}

func TestHealthDegradesInsteadOfFailing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	c := NewClient(srv.URL)

	health, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.False(t, health.Available)
	assert.Equal(t, "unhealthy", health.Status)

	// A dead server reports unreachable rather than an error.
	srv.Close()
	health, err = c.Health(context.Background())
	require.NoError(t, err)
	assert.False(t, health.Available)
	assert.Equal(t, "unreachable", health.Status)
}
