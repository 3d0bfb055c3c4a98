package dockerhub

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonwraymond/versionator/registry"
)

func TestLatest_OfficialImage(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotPath = req.URL.Path
		w.Write([]byte(`{"results":[{"name":"1.27.0"},{"name":"1.26.2"}]}`))
	}))
	defer srv.Close()

	r := New(registry.NewClient())
	r.baseURL = srv.URL

	rec, err := r.Latest(context.Background(), "nginx")
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}

	// Bare names go through the library namespace.
	if gotPath != "/v2/repositories/library/nginx/tags" {
		t.Errorf("queried path = %q", gotPath)
	}
	if rec.Version != "1.27.0" || rec.Registry != "dockerhub" {
		t.Errorf("record = %+v", rec)
	}
	if rec.Homepage != "https://hub.docker.com/_/nginx" {
		t.Errorf("Homepage = %q", rec.Homepage)
	}
}

func TestLatest_NamespacedImage(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotPath = req.URL.Path
		w.Write([]byte(`{"results":[{"name":"v2.11.0"}]}`))
	}))
	defer srv.Close()

	r := New(registry.NewClient())
	r.baseURL = srv.URL

	rec, err := r.Latest(context.Background(), "grafana/loki")
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}

	if gotPath != "/v2/repositories/grafana/loki/tags" {
		t.Errorf("queried path = %q", gotPath)
	}
	if rec.Homepage != "https://hub.docker.com/r/grafana/loki" {
		t.Errorf("Homepage = %q", rec.Homepage)
	}
}

func TestLatest_EmptyTags(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	r := New(registry.NewClient())
	r.baseURL = srv.URL

	_, err := r.Latest(context.Background(), "nginx")
	if !errors.Is(err, registry.ErrPackageNotFound) {
		t.Fatalf("Latest() error = %v, want ErrPackageNotFound", err)
	}
}

func TestLatest_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.NotFound(w, req)
	}))
	defer srv.Close()

	r := New(registry.NewClient())
	r.baseURL = srv.URL

	_, err := r.Latest(context.Background(), "no/such-image")
	if !errors.Is(err, registry.ErrPackageNotFound) {
		t.Fatalf("Latest() error = %v, want ErrPackageNotFound", err)
	}
}
