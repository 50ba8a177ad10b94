package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-pulse/internal/core/domain"
)

func TestNotify(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Delivery-Id"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	n := NewNotifier(srv.URL, time.Second)
	event := domain.StatusChangeEvent{
		Service:      domain.ServiceName,
		CampaignID:   42,
		CampaignName: "Launch",
		Status:       "fixer_running",
		ActorEmail:   "op@example.com",
	}
	require.NoError(t, n.Notify(context.Background(), event))
	assert.Equal(t, domain.ServiceName, got["service"])
	assert.Equal(t, float64(42), got["campaignId"])
	assert.Equal(t, "fixer_running", got["status"])
}

func TestNotifySinkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewNotifier(srv.URL, time.Second).Notify(context.Background(), domain.StatusChangeEvent{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestNotifyDisabled(t *testing.T) {
	n := NewNotifier("", time.Second)
	assert.NoError(t, n.Notify(context.Background(), domain.StatusChangeEvent{}))
}
