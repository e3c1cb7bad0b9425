package geo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestIPAPILookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/json/8.8.8.8" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","country":"United States","regionName":"Virginia","city":"Ashburn","query":"8.8.8.8"}`))
	}))
	defer server.Close()

	client := NewIPAPIClient(server.URL, time.Second, zap.NewNop())
	loc, err := client.Lookup(context.Background(), "8.8.8.8")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if loc.IP != "8.8.8.8" || loc.City != "Ashburn" || loc.Region != "Virginia" || loc.Country != "United States" {
		t.Errorf("unexpected location %+v", loc)
	}
}

func TestIPAPILookupMissingFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","country":"Netherlands"}`))
	}))
	defer server.Close()

	loc, err := NewIPAPIClient(server.URL, time.Second, zap.NewNop()).Lookup(context.Background(), "1.2.3.4")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if loc.City != "N/A" || loc.Region != "N/A" || loc.Country != "Netherlands" {
		t.Errorf("unexpected location %+v", loc)
	}
}

func TestIPAPILookupFailStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"fail","message":"reserved range","query":"10.0.0.1"}`))
	}))
	defer server.Close()

	_, err := NewIPAPIClient(server.URL, time.Second, zap.NewNop()).Lookup(context.Background(), "10.0.0.1")
	if !errors.Is(err, ErrLookupFailed) {
		t.Errorf("expected ErrLookupFailed, got %v", err)
	}
}

func TestIPAPILookupHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewIPAPIClient(server.URL, time.Second, zap.NewNop()).Lookup(context.Background(), "8.8.8.8")
	if !errors.Is(err, ErrLookupFailed) {
		t.Errorf("expected ErrLookupFailed, got %v", err)
	}
}

func TestIPAPILookupBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	if _, err := NewIPAPIClient(server.URL, time.Second, zap.NewNop()).Lookup(context.Background(), "8.8.8.8"); err == nil {
		t.Errorf("expected decode error")
	}
}

func TestNoopLocator(t *testing.T) {
	if _, err := NewNoopLocator().Lookup(context.Background(), "8.8.8.8"); !errors.Is(err, ErrLookupDisabled) {
		t.Errorf("expected ErrLookupDisabled, got %v", err)
	}
}
