package offline

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"mwtrack/internal/domain"
	"mwtrack/internal/store"
)

// Queue is the persisted list of pending offline actions.
type Queue struct {
	kv  domain.KeyValueStore
	now func() time.Time
	mu  sync.Mutex
}

// NewQueue returns a queue stored in kv.
func NewQueue(kv domain.KeyValueStore) *Queue {
	return &Queue{kv: kv, now: time.Now}
}

// Enqueue appends call, made by the user with id owner, under a fresh id.
func (q *Queue) Enqueue(call domain.Call, owner string) (domain.OfflineAction, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	actions, err := q.load()
	if err != nil {
		return domain.OfflineAction{}, err
	}
	action := domain.OfflineAction{
		ID:        uuid.NewString(),
		Timestamp: q.now().UnixMilli(),
		Owner:     owner,
		Call:      call,
	}
	actions = append(actions, action)
	if err := store.SetJSON(q.kv, store.KeyOfflineQueue, actions); err != nil {
		return domain.OfflineAction{}, fmt.Errorf("save offline queue: %w", err)
	}
	return action, nil
}

// Pending returns the queued actions, oldest first.
func (q *Queue) Pending() ([]domain.OfflineAction, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.load()
}

// Remove forgets the actions with the given ids. Actions queued after the
// caller read the queue are kept.
func (q *Queue) Remove(ids ...string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	actions, err := q.load()
	if err != nil {
		return err
	}
	kept := actions[:0]
	for _, a := range actions {
		if _, ok := drop[a.ID]; !ok {
			kept = append(kept, a)
		}
	}
	return q.save(kept)
}

// Clear empties the queue.
func (q *Queue) Clear() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.kv.Delete(store.KeyOfflineQueue)
}

func (q *Queue) load() ([]domain.OfflineAction, error) {
	var actions []domain.OfflineAction
	if _, err := store.GetJSON(q.kv, store.KeyOfflineQueue, &actions); err != nil {
		return nil, fmt.Errorf("read offline queue: %w", err)
	}
	return actions, nil
}

func (q *Queue) save(actions []domain.OfflineAction) error {
	if len(actions) == 0 {
		return q.kv.Delete(store.KeyOfflineQueue)
	}
	if err := store.SetJSON(q.kv, store.KeyOfflineQueue, actions); err != nil {
		return fmt.Errorf("save offline queue: %w", err)
	}
	return nil
}
