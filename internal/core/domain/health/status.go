package health

import (
	"fmt"
)

// Status is the externally visible liveness classification of a supervised
// service process.
type Status string

const (
	// StatusStarting applies during the start period grace window after
	// launch; probe outcomes do not affect it.
	StatusStarting Status = "starting"
	// StatusHealthy means the last probe (or enough consecutive probes)
	// succeeded.
	StatusHealthy Status = "healthy"
	// StatusUnhealthy means the consecutive failure streak reached the
	// configured retry threshold.
	StatusUnhealthy Status = "unhealthy"
)

// FailureKind classifies why a single probe counted as a failure.
type FailureKind string

const (
	// FailureTimeout means the probe did not complete within the probe
	// timeout.
	FailureTimeout FailureKind = "timeout"
	// FailureConnection means the target was not accepting connections
	// (refused, reset, unreachable).
	FailureConnection FailureKind = "connection"
	// FailureBadStatus means a response arrived but its status code was
	// outside the 2xx range.
	FailureBadStatus FailureKind = "bad_status"
)

// ProbeFailure is the error returned by a prober for any failed probe. All
// kinds feed the same retry counter; the kind only matters for logging and
// metrics.
type ProbeFailure struct {
	Kind FailureKind
	// StatusCode is set only for FailureBadStatus.
	StatusCode int
	// Err is the underlying transport error, when there is one.
	Err error
}

func (f *ProbeFailure) Error() string {
	switch f.Kind {
	case FailureBadStatus:
		return fmt.Sprintf("probe failed: unexpected status %d", f.StatusCode)
	case FailureTimeout:
		return "probe failed: timeout"
	default:
		if f.Err != nil {
			return fmt.Sprintf("probe failed: %v", f.Err)
		}
		return "probe failed: connection error"
	}
}

func (f *ProbeFailure) Unwrap() error { return f.Err }
