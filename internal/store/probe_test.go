// ABOUTME: Tests for the one-shot health probe
// ABOUTME: Verifies single fetch, loading flag, and failure recording

package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/codementor/cli/internal/client"
)

func TestProbe_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health/" {
			t.Errorf("expected path /health/, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(client.HealthStatus{
			Status: "healthy", Database: "connected", Cache: "connected",
		})
	}))
	defer server.Close()

	probe := NewProbe(client.New(server.URL, nil))
	if !probe.Snapshot().Loading {
		t.Error("expected loading true before first check")
	}

	probe.Check(context.Background())

	snap := probe.Snapshot()
	if snap.Loading {
		t.Error("expected loading false after check")
	}
	if snap.Err != "" {
		t.Errorf("expected no error, got %q", snap.Err)
	}
	if snap.Health == nil || snap.Health.Database != "connected" {
		t.Errorf("unexpected health: %+v", snap.Health)
	}
}

func TestProbe_FetchesExactlyOnce(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		json.NewEncoder(w).Encode(client.HealthStatus{Status: "healthy"})
	}))
	defer server.Close()

	probe := NewProbe(client.New(server.URL, nil))
	probe.Check(context.Background())
	probe.Check(context.Background())
	probe.Check(context.Background())

	if got := calls.Load(); got != 1 {
		t.Errorf("expected exactly 1 request, got %d", got)
	}
}

func TestProbe_Failure(t *testing.T) {
	probe := NewProbe(client.New("http://localhost:1", nil))
	probe.Check(context.Background())

	snap := probe.Snapshot()
	if snap.Loading {
		t.Error("expected loading false after failed check")
	}
	if snap.Err == "" {
		t.Error("expected error recorded")
	}
	if snap.Health != nil {
		t.Errorf("expected no health data, got %+v", snap.Health)
	}
}
