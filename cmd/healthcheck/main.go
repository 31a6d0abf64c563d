package main

import (
	"context"
	"fmt"
	"os"

	config "github.com/orderstack/orders-service/configs"
	"github.com/orderstack/orders-service/internal/infrastructure/probe"
)

// healthcheck is the one-shot probe consumed by the container runtime: it
// issues a single bounded GET against the service root and reports the
// outcome through its exit code (0 on 2xx, 1 otherwise).
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "healthcheck: failed to load configuration:", err)
		os.Exit(1)
	}

	prober := probe.NewHTTPProber(cfg.HealthCheck.Target, cfg.HealthCheck.Timeout)
	if err := prober.Probe(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "healthcheck:", err)
		os.Exit(1)
	}
	os.Exit(0)
}
