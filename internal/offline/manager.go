package offline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"mwtrack/internal/api"
	"mwtrack/internal/domain"
)

// Sender performs backend calls. Queued calls are stored unsigned and signed
// again for the current user when they are replayed.
type Sender interface {
	Send(ctx context.Context, call domain.Call) (domain.Envelope, error)
	Unsign(call domain.Call) (domain.Call, error)
	Sign(call domain.Call, keyUser domain.KeyUser) (domain.Call, error)
}

// Users reports the signed-in user.
type Users interface {
	Current() (domain.User, error)
}

var errOwnerChanged = errors.New("queued by another user")

// DrainReport summarizes one replay of the queue.
type DrainReport struct {
	Sent    int
	Dropped int
}

// Manager submits calls to the backend, or queues them while offline.
type Manager struct {
	sender Sender
	users  Users
	queue  *Queue
	online atomic.Bool

	drainMu sync.Mutex
}

var _ domain.Submitter = (*Manager)(nil)

// NewManager returns a Manager that starts out online. Actions left in queue
// by an earlier run are replayed before the next call goes out.
func NewManager(sender Sender, users Users, queue *Queue) *Manager {
	m := &Manager{sender: sender, users: users, queue: queue}
	m.online.Store(true)
	return m
}

// Online reports the last known connectivity.
func (m *Manager) Online() bool { return m.online.Load() }

// SetOnline records connectivity and returns the previous value.
func (m *Manager) SetOnline(online bool) (was bool) {
	return m.online.Swap(online)
}

// Queue returns the underlying action queue.
func (m *Manager) Queue() *Queue { return m.queue }

// Submit sends call when online, after replaying any queued actions so the
// backend sees edits in the order they were made. When offline, or when the
// backend turns out to be unreachable, call is queued and the result is
// marked Queued.
func (m *Manager) Submit(ctx context.Context, call domain.Call) (domain.Submission, error) {
	const op = "offline.Submit"
	log := slog.With("op", op, "url", call.URL)

	if m.Online() {
		if _, err := m.Drain(ctx); err != nil {
			return domain.Submission{}, fmt.Errorf("%s: %w", op, err)
		}
		env, err := m.sender.Send(ctx, call)
		if err == nil {
			return domain.Submission{Envelope: env}, nil
		}
		if !errors.Is(err, api.ErrUnreachable) {
			return domain.Submission{}, fmt.Errorf("%s: %w", op, err)
		}
		log.Warn("backend unreachable, queueing", "err", err)
		m.SetOnline(false)
	}

	unsigned, err := m.sender.Unsign(call)
	if err != nil {
		return domain.Submission{}, fmt.Errorf("%s: %w", op, err)
	}
	owner := ""
	if u, err := m.users.Current(); err == nil {
		owner = u.ID
	}
	action, err := m.queue.Enqueue(unsigned, owner)
	if err != nil {
		return domain.Submission{}, fmt.Errorf("%s: %w", op, err)
	}
	log.Info("action queued", "id", action.ID)
	return domain.Submission{Queued: true}, nil
}

// Request submits a call built from its parts.
func (m *Manager) Request(
	ctx context.Context,
	method, url string,
	body json.RawMessage,
) (domain.Submission, error) {
	return m.Submit(ctx, domain.Call{Method: method, URL: url, Body: body})
}

// Drain replays every queued action once, oldest first, signed for the
// current user, and removes it from the queue whatever the outcome. Actions
// queued by another user, or with nobody signed in, are dropped unsent. It
// stops early only when ctx is done, leaving the actions not yet attempted
// in the queue.
func (m *Manager) Drain(ctx context.Context) (DrainReport, error) {
	const op = "offline.Drain"
	log := slog.With("op", op)

	m.drainMu.Lock()
	defer m.drainMu.Unlock()

	actions, err := m.queue.Pending()
	if err != nil {
		return DrainReport{}, fmt.Errorf("%s: %w", op, err)
	}
	if len(actions) == 0 {
		return DrainReport{}, nil
	}
	log.Info("replaying offline actions", "count", len(actions))

	var report DrainReport
	done := make([]string, 0, len(actions))
	for _, a := range actions {
		if ctx.Err() != nil {
			break
		}
		env, err := m.replay(ctx, a)
		switch {
		case err != nil && ctx.Err() != nil:
			// interrupted: leave the action queued
		case err != nil:
			log.Warn("dropping offline action", "id", a.ID, "url", a.URL, "err", err)
			report.Dropped++
			done = append(done, a.ID)
		case !env.Success:
			log.Warn("dropping rejected offline action", "id", a.ID, "url", a.URL, "message", env.Message)
			report.Dropped++
			done = append(done, a.ID)
		default:
			log.Debug("offline action synced", "id", a.ID)
			report.Sent++
			done = append(done, a.ID)
		}
	}

	if err := m.queue.Remove(done...); err != nil {
		return report, fmt.Errorf("%s: %w", op, err)
	}
	if err := ctx.Err(); err != nil {
		return report, fmt.Errorf("%s: %w", op, err)
	}
	return report, nil
}

func (m *Manager) replay(ctx context.Context, a domain.OfflineAction) (domain.Envelope, error) {
	user, err := m.users.Current()
	if err != nil {
		return domain.Envelope{}, err
	}
	if a.Owner != "" && a.Owner != user.ID {
		return domain.Envelope{}, errOwnerChanged
	}
	call, err := m.sender.Sign(a.Call, user.KeyUser)
	if err != nil {
		return domain.Envelope{}, err
	}
	return m.sender.Send(ctx, call)
}
