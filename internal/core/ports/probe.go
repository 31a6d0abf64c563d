package ports

import "context"

// Prober issues a single bounded-time liveness probe against the supervised
// service process. A nil return means the target answered with a 2xx; any
// error counts as a failed probe (typically a *health.ProbeFailure).
type Prober interface {
	Probe(ctx context.Context) error
}
