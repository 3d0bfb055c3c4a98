package crates

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonwraymond/versionator/registry"
)

func TestLatest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/api/v1/crates/serde" {
			t.Errorf("queried path = %q", req.URL.Path)
		}
		w.Write([]byte(`{"crate":{"newest_version":"1.0.195","description":"A serialization framework.","homepage":"https://serde.rs"}}`))
	}))
	defer srv.Close()

	r := New(registry.NewClient())
	r.baseURL = srv.URL

	rec, err := r.Latest(context.Background(), "serde")
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}

	if rec.Version != "1.0.195" || rec.Registry != "crates" || rec.Name != "serde" {
		t.Errorf("record = %+v", rec)
	}
	if rec.Homepage != "https://serde.rs" {
		t.Errorf("Homepage = %q", rec.Homepage)
	}
}

func TestLatest_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.NotFound(w, req)
	}))
	defer srv.Close()

	r := New(registry.NewClient())
	r.baseURL = srv.URL

	_, err := r.Latest(context.Background(), "nope")
	if !errors.Is(err, registry.ErrPackageNotFound) {
		t.Fatalf("Latest() error = %v, want ErrPackageNotFound", err)
	}
}

func TestLatest_MissingVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"crate":{}}`))
	}))
	defer srv.Close()

	r := New(registry.NewClient())
	r.baseURL = srv.URL

	_, err := r.Latest(context.Background(), "serde")
	if !errors.Is(err, registry.ErrRegistryUnavailable) {
		t.Fatalf("Latest() error = %v, want ErrRegistryUnavailable", err)
	}
}
