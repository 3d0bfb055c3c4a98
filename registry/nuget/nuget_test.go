package nuget

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonwraymond/versionator/registry"
)

func TestLatest(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotPath = req.URL.Path
		w.Write([]byte(`{"versions":["12.0.1","13.0.2","13.0.3"]}`))
	}))
	defer srv.Close()

	r := New(registry.NewClient())
	r.baseURL = srv.URL

	rec, err := r.Latest(context.Background(), "Newtonsoft.Json")
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}

	// The flat container requires the lowercased package ID.
	if gotPath != "/v3-flatcontainer/newtonsoft.json/index.json" {
		t.Errorf("queried path = %q", gotPath)
	}
	if rec.Version != "13.0.3" || rec.Registry != "nuget" {
		t.Errorf("record = %+v", rec)
	}
	if rec.Name != "Newtonsoft.Json" {
		t.Errorf("Name = %q, want original casing", rec.Name)
	}
}

func TestLatest_EmptyVersions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"versions":[]}`))
	}))
	defer srv.Close()

	r := New(registry.NewClient())
	r.baseURL = srv.URL

	_, err := r.Latest(context.Background(), "Newtonsoft.Json")
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

	_, err := r.Latest(context.Background(), "no-such-package")
	if !errors.Is(err, registry.ErrPackageNotFound) {
		t.Fatalf("Latest() error = %v, want ErrPackageNotFound", err)
	}
}
