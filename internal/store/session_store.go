package store

import (
	"encoding/json"
	"errors"
	"sync"

	"mwtrack/internal/domain"
)

// ErrSealedSession is returned when the stored user is sealed and no
// passphrase was configured.
var ErrSealedSession = errors.New("session is sealed: passphrase required")

// SessionFileStore persists the signed-in user in the key-value store. When
// a passphrase is set the record is sealed before it is written.
type SessionFileStore struct {
	kv         domain.KeyValueStore
	passphrase string
	mu         sync.Mutex
}

// NewSessionFileStore returns a SessionFileStore on top of kv. An empty
// passphrase stores the user as plain JSON.
func NewSessionFileStore(kv domain.KeyValueStore, passphrase string) *SessionFileStore {
	return &SessionFileStore{kv: kv, passphrase: passphrase}
}

// SaveUser writes the user record.
func (s *SessionFileStore) SaveUser(user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if s.passphrase != "" {
		if raw, err = sealRecord(s.passphrase, KeyUser, raw, defaultScrypt); err != nil {
			return err
		}
	}
	return s.kv.Set(KeyUser, string(raw))
}

// LoadUser reads the user record. It reports false when nobody is signed in.
func (s *SessionFileStore) LoadUser() (domain.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok, err := s.kv.Get(KeyUser)
	if err != nil || !ok {
		return domain.User{}, false, err
	}
	raw := []byte(v)
	if looksSealed(raw) {
		if s.passphrase == "" {
			return domain.User{}, false, ErrSealedSession
		}
		if raw, err = openRecord(s.passphrase, KeyUser, raw); err != nil {
			return domain.User{}, false, err
		}
	}
	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return domain.User{}, false, err
	}
	return user, true, nil
}

// ClearUser removes the user record.
func (s *SessionFileStore) ClearUser() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.kv.Delete(KeyUser)
}

// Compile-time assertion that SessionFileStore implements domain.SessionStore.
var _ domain.SessionStore = (*SessionFileStore)(nil)
