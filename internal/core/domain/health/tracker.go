package health

import (
	"time"
)

// Settings are the recognized health check options. Zero values are replaced
// by the container runtime defaults.
type Settings struct {
	Interval          time.Duration
	Timeout           time.Duration
	StartPeriod       time.Duration
	Retries           int
	RecoverySuccesses int
}

const (
	DefaultInterval          = 30 * time.Second
	DefaultTimeout           = 3 * time.Second
	DefaultStartPeriod       = 5 * time.Second
	DefaultRetries           = 3
	DefaultRecoverySuccesses = 1
)

// withDefaults fills unset options.
func (s Settings) withDefaults() Settings {
	if s.Interval <= 0 {
		s.Interval = DefaultInterval
	}
	if s.Timeout <= 0 {
		s.Timeout = DefaultTimeout
	}
	if s.StartPeriod < 0 {
		s.StartPeriod = DefaultStartPeriod
	}
	if s.Retries < 1 {
		s.Retries = DefaultRetries
	}
	if s.RecoverySuccesses < 1 {
		s.RecoverySuccesses = DefaultRecoverySuccesses
	}
	return s
}

// State is the health record for a supervised process. It is created at
// launch, mutated only by tick observations, and never persisted.
type State struct {
	Status               Status    `json:"status"`
	ConsecutiveFailures  int       `json:"consecutive_failures"`
	ConsecutiveSuccesses int       `json:"consecutive_successes"`
	LastProbeAt          time.Time `json:"last_probe_at,omitempty"`
	LastError            string    `json:"last_error,omitempty"`
}

// Tracker applies probe outcomes to a State according to the health check
// state machine: starting until the start period elapses, then healthy and
// unhealthy driven solely by success/failure streaks. It does no I/O and no
// timekeeping of its own, so transitions are testable against explicit
// clock values.
type Tracker struct {
	settings   Settings
	launchedAt time.Time
	state      State
}

// NewTracker creates a tracker for a process launched at launchedAt.
func NewTracker(settings Settings, launchedAt time.Time) *Tracker {
	return &Tracker{
		settings:   settings.withDefaults(),
		launchedAt: launchedAt,
		state:      State{Status: StatusStarting},
	}
}

// Settings returns the effective options after defaulting.
func (t *Tracker) Settings() Settings { return t.settings }

// State returns a copy of the current health record.
func (t *Tracker) State() State { return t.state }

// InStartPeriod reports whether now still falls inside the grace window.
// Probes issued during it should be skipped, and their results are discarded
// if issued anyway.
func (t *Tracker) InStartPeriod(now time.Time) bool {
	return now.Sub(t.launchedAt) < t.settings.StartPeriod
}

// Observe applies one probe outcome at the given instant and returns the
// resulting state. A nil probeErr is a success; any non-nil error is a
// failure. Outcomes observed during the start period leave the state
// untouched.
func (t *Tracker) Observe(now time.Time, probeErr error) State {
	if t.InStartPeriod(now) {
		return t.state
	}

	t.state.LastProbeAt = now
	if probeErr == nil {
		t.state.ConsecutiveSuccesses++
		t.state.ConsecutiveFailures = 0
		t.state.LastError = ""
		if t.state.Status != StatusHealthy && t.state.ConsecutiveSuccesses >= t.settings.RecoverySuccesses {
			t.state.Status = StatusHealthy
		}
		return t.state
	}

	t.state.ConsecutiveFailures++
	t.state.ConsecutiveSuccesses = 0
	t.state.LastError = probeErr.Error()
	// A streak below the retry threshold tolerates transient failures
	// without changing status.
	if t.state.ConsecutiveFailures >= t.settings.Retries {
		t.state.Status = StatusUnhealthy
	}
	return t.state
}
