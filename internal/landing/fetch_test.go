package landing

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type memCache struct {
	pages map[string]string
	puts  int
}

func newMemCache() *memCache {
	return &memCache{pages: make(map[string]string)}
}

func (m *memCache) Get(url string) (string, bool, error) {
	body, ok := m.pages[url]
	return body, ok, nil
}

func (m *memCache) Put(url, body string) error {
	m.puts++
	m.pages[url] = body
	return nil
}

func TestFetch(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		fmt.Fprint(w, "<html>page</html>")
	}))
	defer srv.Close()

	f := NewFetcher()
	body, err := f.Fetch(context.Background(), srv.URL+"/doc")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if body != "<html>page</html>" {
		t.Errorf("Fetch() = %q", body)
	}
	if hits != 1 {
		t.Errorf("server hits = %d, want 1", hits)
	}
}

func TestFetch_UsesCache(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		fmt.Fprint(w, "fresh")
	}))
	defer srv.Close()

	cache := newMemCache()
	f := NewFetcher(WithCache(cache))
	url := srv.URL + "/doc"

	for i := 0; i < 3; i++ {
		body, err := f.Fetch(context.Background(), url)
		if err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}
		if body != "fresh" {
			t.Errorf("Fetch() = %q", body)
		}
	}

	if hits != 1 {
		t.Errorf("server hits = %d, want 1 (cache should serve repeats)", hits)
	}
	if cache.puts != 1 {
		t.Errorf("cache puts = %d, want 1", cache.puts)
	}
}

func TestFetch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewFetcher()
	_, err := f.Fetch(context.Background(), srv.URL+"/missing")
	if err == nil {
		t.Fatal("Fetch() = nil error, want HTTP error")
	}
	if !strings.Contains(err.Error(), "HTTP 404") {
		t.Errorf("Fetch() error = %v, want HTTP 404", err)
	}
}
