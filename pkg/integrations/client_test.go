package integrations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/matzehuels/wikigraph/pkg/cache"
)

func TestNewClient(t *testing.T) {
	c, _ := cache.NewFileCache(t.TempDir())
	defer c.Close()

	headers := map[string]string{"User-Agent": "wikigraph-test"}
	client := NewClient(c, "test:", time.Hour, headers)

	if client.http == nil {
		t.Error("NewClient() http client is nil")
	}
	if client.cache != c {
		t.Error("NewClient() cache not set correctly")
	}
	if client.headers["User-Agent"] != "wikigraph-test" {
		t.Error("NewClient() headers not set correctly")
	}
}

func TestNewClientNilCache(t *testing.T) {
	client := NewClient(nil, "test:", time.Hour, nil)
	if client.cache == nil {
		t.Fatal("NewClient(nil cache) should fall back to a null cache")
	}
	if client.headers != nil {
		t.Error("NewClient() should allow nil headers")
	}
}

func TestClientGet(t *testing.T) {
	type response struct {
		Message string `json:"message"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		json.NewEncoder(w).Encode(response{Message: "hello"})
	}))
	defer server.Close()

	client := NewClient(nil, "test:", time.Hour, nil)
	client.SetHTTPClient(server.Client())

	var resp response
	if err := client.Get(context.Background(), server.URL, &resp); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if resp.Message != "hello" {
		t.Errorf("Get() message = %q, want %q", resp.Message, "hello")
	}
}

func TestClientGetWithHeadersOverridesDefaults(t *testing.T) {
	var received string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = r.Header.Get("X-Override")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer server.Close()

	client := NewClient(nil, "test:", time.Hour, map[string]string{"X-Override": "default"})
	client.SetHTTPClient(server.Client())

	var resp map[string]string
	err := client.GetWithHeaders(context.Background(), server.URL, map[string]string{"X-Override": "overridden"}, &resp)
	if err != nil {
		t.Fatalf("GetWithHeaders() error: %v", err)
	}
	if received != "overridden" {
		t.Errorf("header = %q, want %q", received, "overridden")
	}
}

func TestClientGetStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"not found", http.StatusNotFound, ErrNotFound},
		{"server error", http.StatusInternalServerError, ErrNetwork},
		{"rate limited", http.StatusTooManyRequests, ErrNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := NewClient(nil, "test:", time.Hour, nil)
			client.SetHTTPClient(server.Client())

			var v any
			err := client.Get(context.Background(), server.URL, &v)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Get() error = %v, want %v", err, tt.wantErr)
			}
			var se *StatusError
			if !errors.As(err, &se) || se.StatusCode != tt.status {
				t.Errorf("Get() error = %v, want StatusError %d", err, tt.status)
			}
		})
	}
}

func TestClientGetMalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer server.Close()

	client := NewClient(nil, "test:", time.Hour, nil)
	client.SetHTTPClient(server.Client())

	var v map[string]any
	if err := client.Get(context.Background(), server.URL, &v); err == nil {
		t.Error("Get() should fail on malformed JSON")
	}
}

func TestClientGetNetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewClient(nil, "test:", time.Hour, nil)

	var v any
	if err := client.Get(context.Background(), url, &v); !errors.Is(err, ErrNetwork) {
		t.Errorf("Get() error = %v, want ErrNetwork", err)
	}
}

func TestClientCached(t *testing.T) {
	c, _ := cache.NewFileCache(t.TempDir())
	client := NewClient(c, "test:", time.Hour, nil)
	ctx := context.Background()

	calls := 0
	fetch := func(v *string) func() error {
		return func() error {
			calls++
			*v = "fresh"
			return nil
		}
	}

	var first string
	if err := client.Cached(ctx, "k", false, &first, fetch(&first)); err != nil {
		t.Fatalf("Cached() error: %v", err)
	}

	var second string
	if err := client.Cached(ctx, "k", false, &second, fetch(&second)); err != nil {
		t.Fatalf("Cached() error: %v", err)
	}
	if calls != 1 {
		t.Errorf("fetch called %d times, want 1", calls)
	}
	if second != "fresh" {
		t.Errorf("cached value = %q, want %q", second, "fresh")
	}

	var third string
	if err := client.Cached(ctx, "k", true, &third, fetch(&third)); err != nil {
		t.Fatalf("Cached(refresh) error: %v", err)
	}
	if calls != 2 {
		t.Errorf("refresh should bypass cache, calls = %d", calls)
	}
}

func TestClientCachedDoesNotStoreFailures(t *testing.T) {
	c, _ := cache.NewFileCache(t.TempDir())
	client := NewClient(c, "test:", time.Hour, nil)
	ctx := context.Background()

	var v string
	boom := errors.New("boom")
	if err := client.Cached(ctx, "k", false, &v, func() error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("Cached() error = %v, want boom", err)
	}
	if _, hit, _ := c.Get(ctx, "test:k"); hit {
		t.Error("failed fetch should not be cached")
	}
}

func TestClientRateLimit(t *testing.T) {
	client := NewClient(nil, "test:", time.Hour, nil)

	client.SetRateLimit(5)
	if client.limiter == nil {
		t.Fatal("SetRateLimit(5) should install a limiter")
	}
	client.SetRateLimit(0)
	if client.limiter != nil {
		t.Error("SetRateLimit(0) should remove the limiter")
	}
}
