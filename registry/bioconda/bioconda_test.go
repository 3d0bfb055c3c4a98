package bioconda

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
		w.Write([]byte(`{"latest_version":"1.19","summary":"Tools for manipulating SAM/BAM files","home":"https://www.htslib.org/","license":"MIT"}`))
	}))
	defer srv.Close()

	r := New(registry.NewClient())
	r.baseURL = srv.URL

	rec, err := r.Latest(context.Background(), "samtools")
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}

	if gotPath != "/package/bioconda/samtools" {
		t.Errorf("queried path = %q", gotPath)
	}
	if rec.Version != "1.19" || rec.Registry != "bioconda" {
		t.Errorf("record = %+v", rec)
	}
	if rec.Homepage != "https://www.htslib.org/" || rec.License != "MIT" {
		t.Errorf("record = %+v", rec)
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

func TestLatest_MissingVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"summary":"no latest_version field"}`))
	}))
	defer srv.Close()

	r := New(registry.NewClient())
	r.baseURL = srv.URL

	_, err := r.Latest(context.Background(), "samtools")
	if !errors.Is(err, registry.ErrRegistryUnavailable) {
		t.Fatalf("Latest() error = %v, want ErrRegistryUnavailable", err)
	}
}
