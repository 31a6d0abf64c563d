package monitor

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/orderstack/orders-service/internal/core/domain/health"
	"github.com/orderstack/orders-service/internal/core/ports"
	"github.com/sirupsen/logrus"
)

// Monitor supervises a service process: it probes the target on a fixed
// interval and drives the starting/healthy/unhealthy state machine. The
// health record is owned by the monitor; probes never overlap because each
// tick resolves before the next one is taken from the ticker.
type Monitor struct {
	prober  ports.Prober
	logger  *logrus.Logger
	mu      sync.RWMutex
	tracker *health.Tracker
}

// New creates a monitor whose start period begins now.
func New(prober ports.Prober, settings health.Settings, logger *logrus.Logger) *Monitor {
	return &Monitor{
		prober:  prober,
		logger:  logger,
		tracker: health.NewTracker(settings, time.Now()),
	}
}

// Run polls until the context is cancelled. Sustained failure flips the
// state to unhealthy but never stops the loop; the monitor lives as long as
// the process does.
func (m *Monitor) Run(ctx context.Context) {
	interval := m.tracker.Settings().Interval
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if m.logger != nil {
		m.logger.WithFields(logrus.Fields{
			"interval":     interval.String(),
			"start_period": m.tracker.Settings().StartPeriod.String(),
			"retries":      m.tracker.Settings().Retries,
		}).Info("health monitor started")
	}

	for {
		select {
		case <-ctx.Done():
			if m.logger != nil {
				m.logger.Info("health monitor stopped")
			}
			return
		case <-ticker.C:
			m.Tick(ctx)
		}
	}
}

// Tick performs one probe cycle and returns the resulting state. Ticks that
// fall inside the start period skip the probe entirely.
func (m *Monitor) Tick(ctx context.Context) health.State {
	m.mu.RLock()
	inStart := m.tracker.InStartPeriod(time.Now())
	m.mu.RUnlock()

	if inStart {
		if m.logger != nil {
			m.logger.Debug("probe skipped: inside start period")
		}
		return m.State()
	}

	probeErr := m.prober.Probe(ctx)

	m.mu.Lock()
	prev := m.tracker.State().Status
	state := m.tracker.Observe(time.Now(), probeErr)
	m.mu.Unlock()

	recordProbe(probeErr)
	recordState(state)
	m.logTick(prev, state, probeErr)
	return state
}

// State returns a snapshot of the current health record.
func (m *Monitor) State() health.State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tracker.State()
}

func (m *Monitor) logTick(prev health.Status, state health.State, probeErr error) {
	if m.logger == nil {
		return
	}
	if probeErr != nil {
		fields := logrus.Fields{"consecutive_failures": state.ConsecutiveFailures}
		var failure *health.ProbeFailure
		if errors.As(probeErr, &failure) {
			fields["kind"] = string(failure.Kind)
		}
		m.logger.WithFields(fields).WithError(probeErr).Warn("probe failed")
	} else {
		m.logger.Debug("probe succeeded")
	}
	if state.Status != prev {
		entry := m.logger.WithFields(logrus.Fields{
			"from":                 string(prev),
			"to":                   string(state.Status),
			"consecutive_failures": state.ConsecutiveFailures,
		})
		if state.Status == health.StatusUnhealthy {
			entry.Error("health status changed")
		} else {
			entry.Info("health status changed")
		}
	}
}
