package ports

import "context"

// HealthChecker abstracts a dependency check backing the server's /health
// report. Implementations return an error when the dependency is unhealthy.
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}
