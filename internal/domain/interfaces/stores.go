package interfaces

import domaintypes "mwtrack/internal/domain/types"

// KeyValueStore is the device key-value store every other store builds on.
type KeyValueStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(keys ...string) error
}

// SessionStore persists the signed-in user between runs.
type SessionStore interface {
	SaveUser(user domaintypes.User) error
	LoadUser() (domaintypes.User, bool, error)
	ClearUser() error
}
