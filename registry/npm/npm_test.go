package npm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonwraymond/versionator/registry"
)

func newTestRegistry(handler http.Handler) (*Registry, *httptest.Server) {
	srv := httptest.NewServer(handler)
	r := New(registry.NewClient())
	r.baseURL = srv.URL
	return r, srv
}

func TestLatest(t *testing.T) {
	var gotPath string
	r, srv := newTestRegistry(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotPath = req.URL.Path
		w.Write([]byte(`{"version":"18.2.0","description":"React is a JavaScript library.","homepage":"https://react.dev/","license":"MIT"}`))
	}))
	defer srv.Close()

	rec, err := r.Latest(context.Background(), "react")
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}

	if gotPath != "/react/latest" {
		t.Errorf("queried path = %q, want /react/latest", gotPath)
	}
	if rec.Name != "react" || rec.Version != "18.2.0" || rec.Registry != "npm" {
		t.Errorf("record = %+v", rec)
	}
	if rec.License != "MIT" || rec.Homepage != "https://react.dev/" {
		t.Errorf("metadata = %+v", rec)
	}
	if rec.RegistryURL != srv.URL+"/react/latest" {
		t.Errorf("RegistryURL = %q, want queried URL", rec.RegistryURL)
	}
	if rec.QueryTime.IsZero() {
		t.Error("QueryTime should be set")
	}
}

func TestLatest_NotFound(t *testing.T) {
	r, srv := newTestRegistry(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.NotFound(w, req)
	}))
	defer srv.Close()

	_, err := r.Latest(context.Background(), "nonexistent-package-12345")
	if !errors.Is(err, registry.ErrPackageNotFound) {
		t.Fatalf("Latest() error = %v, want ErrPackageNotFound", err)
	}
}

func TestLatest_MissingVersion(t *testing.T) {
	r, srv := newTestRegistry(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"description":"no version here"}`))
	}))
	defer srv.Close()

	_, err := r.Latest(context.Background(), "react")
	if !errors.Is(err, registry.ErrRegistryUnavailable) {
		t.Fatalf("Latest() error = %v, want ErrRegistryUnavailable for missing version", err)
	}
}

func TestKeyAndAliases(t *testing.T) {
	r := New(registry.NewClient())
	if r.Key() != "npm" {
		t.Errorf("Key() = %q, want npm", r.Key())
	}
	want := map[string]bool{"node": true, "nodejs": true}
	for _, a := range r.Aliases() {
		if !want[a] {
			t.Errorf("unexpected alias %q", a)
		}
		delete(want, a)
	}
	if len(want) != 0 {
		t.Errorf("missing aliases: %v", want)
	}
}
