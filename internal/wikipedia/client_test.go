package wikipedia_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/GbrlSouza/API-Times-Brasileiros/internal/cache"
	"github.com/GbrlSouza/API-Times-Brasileiros/internal/logger"
	"github.com/GbrlSouza/API-Times-Brasileiros/internal/wikipedia"
)

const summaryBody = `{
	"title": "Santos Futebol Clube",
	"extract": "O Santos é um clube de Santos, São Paulo.",
	"thumbnail": {"source": "https://upload.wikimedia.org/santos.png"},
	"content_urls": {"desktop": {"page": "https://pt.wikipedia.org/wiki/Santos_Futebol_Clube"}}
}`

func newUpstream(t *testing.T, status int, body string, hits *atomic.Int64) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept header = %q", got)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func newClient(server *httptest.Server, store cache.Store) *wikipedia.Client {
	return wikipedia.NewClient(store, logger.NewNop(), wikipedia.Options{
		BaseURL: server.URL + "/",
		Timeout: 2 * time.Second,
	})
}

func TestSummary_FetchAndParse(t *testing.T) {
	var hits atomic.Int64
	server := newUpstream(t, http.StatusOK, summaryBody, &hits)
	client := newClient(server, cache.NewMemory())

	sum, err := client.Summary(context.Background(), "Santos_Futebol_Clube")
	if err != nil {
		t.Fatalf("Summary() unexpected error: %v", err)
	}

	if sum.Title != "Santos Futebol Clube" {
		t.Errorf("title = %q", sum.Title)
	}
	if sum.Extract == "" || sum.Thumbnail == "" || sum.WikipediaURL == "" {
		t.Errorf("payload fields missing: %+v", sum)
	}
}

func TestSummary_SecondCallServedFromCache(t *testing.T) {
	var hits atomic.Int64
	server := newUpstream(t, http.StatusOK, summaryBody, &hits)
	client := newClient(server, cache.NewMemory())

	ctx := context.Background()
	if _, err := client.Summary(ctx, "Santos_Futebol_Clube"); err != nil {
		t.Fatalf("first Summary() error: %v", err)
	}
	sum, err := client.Summary(ctx, "Santos_Futebol_Clube")
	if err != nil {
		t.Fatalf("second Summary() error: %v", err)
	}

	if hits.Load() != 1 {
		t.Errorf("upstream hit %d times, want 1 (cache miss only)", hits.Load())
	}
	if sum.Title != "Santos Futebol Clube" {
		t.Errorf("cached payload title = %q", sum.Title)
	}
}

func TestSummary_UpstreamErrorCarriesStatus(t *testing.T) {
	var hits atomic.Int64
	server := newUpstream(t, http.StatusNotFound, `{"type":"not_found"}`, &hits)
	client := newClient(server, cache.NewMemory())

	_, err := client.Summary(context.Background(), "Pagina_Inexistente")
	if err == nil {
		t.Fatal("Summary() = nil error for 404 upstream")
	}

	var upstreamErr *wikipedia.UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("error type = %T, want *UpstreamError", err)
	}
	if upstreamErr.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", upstreamErr.StatusCode)
	}

	// Failures are not cached; the next call goes upstream again.
	_, _ = client.Summary(context.Background(), "Pagina_Inexistente")
	if hits.Load() != 2 {
		t.Errorf("upstream hit %d times, want 2", hits.Load())
	}
}

func TestSummary_MissingFieldsTolerated(t *testing.T) {
	var hits atomic.Int64
	server := newUpstream(t, http.StatusOK, `{"title": "Página Mínima"}`, &hits)
	client := newClient(server, cache.NewMemory())

	sum, err := client.Summary(context.Background(), "Pagina_Minima")
	if err != nil {
		t.Fatalf("Summary() unexpected error: %v", err)
	}

	if sum.Title != "Página Mínima" {
		t.Errorf("title = %q", sum.Title)
	}
	if sum.Extract != "" || sum.Thumbnail != "" || sum.WikipediaURL != "" {
		t.Errorf("absent fields should stay empty: %+v", sum)
	}
}

func TestSummary_TitleEscapedInPath(t *testing.T) {
	var requestedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"title":"x"}`))
	}))
	t.Cleanup(server.Close)
	client := newClient(server, cache.NewMemory())

	if _, err := client.Summary(context.Background(), "São_Paulo_Futebol_Clube"); err != nil {
		t.Fatalf("Summary() unexpected error: %v", err)
	}
	if requestedPath != "/S%C3%A3o_Paulo_Futebol_Clube" {
		t.Errorf("requested path = %q", requestedPath)
	}
}

// failingStore always errors; cache problems must degrade to fetches, not
// failures.
type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("cache unavailable")
}

func (failingStore) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("cache unavailable")
}

func TestSummary_CacheErrorsAreNotFatal(t *testing.T) {
	var hits atomic.Int64
	server := newUpstream(t, http.StatusOK, summaryBody, &hits)
	client := newClient(server, failingStore{})

	sum, err := client.Summary(context.Background(), "Santos_Futebol_Clube")
	if err != nil {
		t.Fatalf("Summary() error = %v, cache failure must not propagate", err)
	}
	if sum.Title != "Santos Futebol Clube" {
		t.Errorf("title = %q", sum.Title)
	}
}
