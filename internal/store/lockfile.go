package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	lockSuffix    = ".lock"
	lockRetry     = 10 * time.Millisecond
	lockTimeout   = 5 * time.Second
	lockStaleTime = 10 * time.Second
)

// ErrStoreLocked is returned when another process holds the store lock for
// longer than the wait timeout.
var ErrStoreLocked = errors.New("key-value store is locked by another process")

// withFileLock runs fn while holding an exclusive lock file next to path.
// A lock older than lockStaleTime is assumed abandoned and taken over.
func withFileLock(path string, fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	lock := path + lockSuffix
	deadline := time.Now().Add(lockTimeout)
	for {
		f, err := os.OpenFile(lock, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
		if err == nil {
			_, _ = fmt.Fprintf(f, "%d\n", os.Getpid())
			_ = f.Close()
			break
		}
		if !errors.Is(err, os.ErrExist) {
			return err
		}
		if info, statErr := os.Stat(lock); statErr == nil && time.Since(info.ModTime()) > lockStaleTime {
			_ = os.Remove(lock)
			continue
		}
		if time.Now().After(deadline) {
			return ErrStoreLocked
		}
		time.Sleep(lockRetry)
	}
	defer func() { _ = os.Remove(lock) }()
	return fn()
}
