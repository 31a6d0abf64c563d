package probe_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/orderstack/orders-service/internal/core/domain/health"
	"github.com/orderstack/orders-service/internal/infrastructure/probe"
)

func TestProbe_SuccessOn2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			t.Errorf("probe hit %s, expected /", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	p := probe.NewHTTPProber(ts.URL, time.Second)
	if err := p.Probe(context.Background()); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestProbe_NonDefaultSuccessCode(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	p := probe.NewHTTPProber(ts.URL, time.Second)
	if err := p.Probe(context.Background()); err != nil {
		t.Fatalf("204 is a healthy signal, got %v", err)
	}
}

func TestProbe_BadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	p := probe.NewHTTPProber(ts.URL, time.Second)
	err := p.Probe(context.Background())
	if err == nil {
		t.Fatal("expected failure for 503")
	}
	var failure *health.ProbeFailure
	if !errors.As(err, &failure) {
		t.Fatalf("expected *health.ProbeFailure, got %T", err)
	}
	if failure.Kind != health.FailureBadStatus || failure.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("unexpected classification: %+v", failure)
	}
}

func TestProbe_ConnectionRefused(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	p := probe.NewHTTPProber(url, time.Second)
	err := p.Probe(context.Background())
	if err == nil {
		t.Fatal("expected failure against closed listener")
	}
	var failure *health.ProbeFailure
	if !errors.As(err, &failure) {
		t.Fatalf("expected *health.ProbeFailure, got %T", err)
	}
	if failure.Kind != health.FailureConnection {
		t.Fatalf("expected connection failure, got %s", failure.Kind)
	}
}

func TestProbe_Timeout(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer func() {
		close(release)
		ts.Close()
	}()

	p := probe.NewHTTPProber(ts.URL, 50*time.Millisecond)
	err := p.Probe(context.Background())
	if err == nil {
		t.Fatal("expected timeout failure")
	}
	var failure *health.ProbeFailure
	if !errors.As(err, &failure) {
		t.Fatalf("expected *health.ProbeFailure, got %T", err)
	}
	if failure.Kind != health.FailureTimeout {
		t.Fatalf("expected timeout, got %s", failure.Kind)
	}
}
