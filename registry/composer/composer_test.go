package composer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/jonwraymond/versionator/registry"
)

func TestLatest(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotPath = req.URL.Path
		w.Write([]byte(`{"package":{"versions":{
			"2.7.0":{"description":"Symfony Console Component","homepage":"https://symfony.com","license":["MIT"]},
			"2.6.1":{"description":"Symfony Console Component","homepage":"https://symfony.com","license":["MIT"]},
			"dev-main":{"description":"Symfony Console Component"}
		}}}`))
	}))
	defer srv.Close()

	r := New(registry.NewClient())
	r.baseURL = srv.URL

	rec, err := r.Latest(context.Background(), "symfony/console")
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}

	if gotPath != "/packages/symfony/console.json" {
		t.Errorf("queried path = %q", gotPath)
	}
	if rec.Version != "2.7.0" || rec.Registry != "composer" {
		t.Errorf("record = %+v", rec)
	}
	if rec.License != "MIT" || rec.Homepage != "https://symfony.com" {
		t.Errorf("record = %+v", rec)
	}
}

func TestLatest_BadNameMakesNoRequest(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	r := New(registry.NewClient())
	r.baseURL = srv.URL

	_, err := r.Latest(context.Background(), "console")
	if !errors.Is(err, registry.ErrInvalidPackageName) {
		t.Fatalf("Latest() error = %v, want ErrInvalidPackageName", err)
	}
	if n := calls.Load(); n != 0 {
		t.Errorf("upstream calls = %d, want 0", n)
	}
}

func TestLatest_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.NotFound(w, req)
	}))
	defer srv.Close()

	r := New(registry.NewClient())
	r.baseURL = srv.URL

	_, err := r.Latest(context.Background(), "no-such/package")
	if !errors.Is(err, registry.ErrPackageNotFound) {
		t.Fatalf("Latest() error = %v, want ErrPackageNotFound", err)
	}
}

func TestPickLatest(t *testing.T) {
	tests := []struct {
		name     string
		versions []string
		want     string
	}{
		{"prefers stable over dev", []string{"dev-main", "1.2.0", "1.1.0"}, "1.2.0"},
		{"greatest stable wins", []string{"2.0.0", "2.1.0", "1.9.0"}, "2.1.0"},
		{"falls back to dev when nothing stable", []string{"dev-main", "1.x-dev"}, "dev-main"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			versions := make(map[string]versionInfo, len(tt.versions))
			for _, v := range tt.versions {
				versions[v] = versionInfo{}
			}
			if got := pickLatest(versions); got != tt.want {
				t.Errorf("pickLatest(%v) = %q, want %q", tt.versions, got, tt.want)
			}
		})
	}
}
