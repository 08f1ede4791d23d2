package store

import (
	"github.com/google/uuid"

	"mwtrack/internal/domain"
)

// DeviceID returns the id of this installation, creating it on first use.
func DeviceID(kv domain.KeyValueStore) (string, error) {
	id, ok, err := kv.Get(KeyDeviceID)
	if err != nil {
		return "", err
	}
	if ok && id != "" {
		return id, nil
	}
	id = uuid.NewString()
	if err := kv.Set(KeyDeviceID, id); err != nil {
		return "", err
	}
	return id, nil
}
