package store

import (
	"encoding/json"
	"path/filepath"
	"sync"

	"mwtrack/internal/domain"
)

const kvFilename = "kv.json"

// KVFileStore is a string key-value store persisted as one JSON file.
// Writes hold a mutex within the process and a kv.json.lock file across
// processes, so concurrent CLI invocations do not lose each other's updates.
// Reads need neither because the file is replaced atomically.
type KVFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewKVFileStore returns a KVFileStore rooted at dir.
func NewKVFileStore(dir string) *KVFileStore {
	return &KVFileStore{dir: dir}
}

// Get returns the value stored under key.
func (s *KVFileStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

// Set stores value under key, replacing any previous value.
func (s *KVFileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return withFileLock(s.path(), func() error {
		values, err := s.load()
		if err != nil {
			return err
		}
		values[key] = value
		return writeJSON(s.path(), values, 0o600)
	})
}

// Delete removes keys. Missing keys are ignored.
func (s *KVFileStore) Delete(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return withFileLock(s.path(), func() error {
		values, err := s.load()
		if err != nil {
			return err
		}
		for _, k := range keys {
			delete(values, k)
		}
		return writeJSON(s.path(), values, 0o600)
	})
}

func (s *KVFileStore) path() string { return filepath.Join(s.dir, kvFilename) }

func (s *KVFileStore) load() (map[string]string, error) {
	values := make(map[string]string)
	if err := readJSON(s.path(), &values); err != nil {
		return nil, err
	}
	return values, nil
}

// GetJSON decodes the JSON value stored under key into out. It reports false
// when the key is absent.
func GetJSON(kv domain.KeyValueStore, key string, out any) (bool, error) {
	raw, ok, err := kv.Get(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON stores v under key as JSON.
func SetJSON(kv domain.KeyValueStore, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return kv.Set(key, string(b))
}

// Compile-time assertion that KVFileStore implements domain.KeyValueStore.
var _ domain.KeyValueStore = (*KVFileStore)(nil)
