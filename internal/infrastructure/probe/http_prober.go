package probe

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/orderstack/orders-service/internal/core/domain/health"
	"github.com/orderstack/orders-service/internal/core/ports"
)

// HTTPProber issues GET <target>/ liveness probes. Any 2xx response is a
// success; timeouts, connection errors and other status codes are returned
// as *health.ProbeFailure.
type HTTPProber struct {
	url     string
	timeout time.Duration
	client  *http.Client
}

// NewHTTPProber creates a prober for the given base URL. The timeout bounds
// each individual probe.
func NewHTTPProber(target string, timeout time.Duration) ports.Prober {
	if timeout <= 0 {
		timeout = health.DefaultTimeout
	}
	return &HTTPProber{
		url:     strings.TrimRight(target, "/") + "/",
		timeout: timeout,
		// The per-probe context carries the deadline; the client itself
		// stays unbounded.
		client: &http.Client{},
	}
}

func (p *HTTPProber) Probe(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return &health.ProbeFailure{Kind: health.FailureConnection, Err: err}
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return classifyTransportError(err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &health.ProbeFailure{Kind: health.FailureBadStatus, StatusCode: resp.StatusCode}
	}
	return nil
}

// classifyTransportError maps a client error onto the probe failure
// taxonomy. Anything that is not a timeout counts as a connection failure;
// the distinction only feeds logs and metrics.
func classifyTransportError(err error) *health.ProbeFailure {
	if errors.Is(err, context.DeadlineExceeded) {
		return &health.ProbeFailure{Kind: health.FailureTimeout, Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &health.ProbeFailure{Kind: health.FailureTimeout, Err: err}
	}
	return &health.ProbeFailure{Kind: health.FailureConnection, Err: err}
}
