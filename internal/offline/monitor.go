package offline

import (
	"context"
	"log/slog"
	"time"
)

// Pinger checks that the backend answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Monitor keeps the manager's connectivity flag current and drains the
// queue when the backend comes back.
type Monitor struct {
	pinger   Pinger
	manager  *Manager
	interval time.Duration
}

// NewMonitor returns a Monitor that pings every interval.
func NewMonitor(pinger Pinger, manager *Manager, interval time.Duration) *Monitor {
	return &Monitor{pinger: pinger, manager: manager, interval: interval}
}

// Check pings once and updates the flag. Whenever the backend is reachable
// it drains the queue, which also picks up actions left by an earlier run.
func (m *Monitor) Check(ctx context.Context) bool {
	const op = "offline.Monitor.Check"
	log := slog.With("op", op)

	online := m.pinger.Ping(ctx) == nil
	if ctx.Err() != nil {
		return m.manager.Online()
	}
	was := m.manager.SetOnline(online)
	if was != online {
		log.Info("connectivity changed", "online", online)
	}
	if online {
		report, err := m.manager.Drain(ctx)
		if err != nil {
			log.Error("drain failed", "err", err)
		} else if report.Sent+report.Dropped > 0 {
			log.Info("offline queue drained", "sent", report.Sent, "dropped", report.Dropped)
		}
	}
	return online
}

// Run checks every interval until ctx is done.
func (m *Monitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.Check(ctx)
		}
	}
}
