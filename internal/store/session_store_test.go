package store_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mwtrack/internal/domain"
	"mwtrack/internal/store"
)

var alice = domain.User{
	ID:      "7",
	KeyUser: "k-alice",
	Name:    "Alice",
	Email:   "alice@example.com",
}

func TestSessionStore_PlainRoundTrip(t *testing.T) {
	kv := store.NewKVFileStore(t.TempDir())
	var ss domain.SessionStore = store.NewSessionFileStore(kv, "")

	_, ok, err := ss.LoadUser()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, ss.SaveUser(alice))
	got, ok, err := ss.LoadUser()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, alice, got)

	require.NoError(t, ss.ClearUser())
	_, ok, err = ss.LoadUser()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionStore_SealedRoundTrip(t *testing.T) {
	kv := store.NewKVFileStore(t.TempDir())
	ss := store.NewSessionFileStore(kv, "correct horse")

	require.NoError(t, ss.SaveUser(alice))

	raw, _, err := kv.Get(store.KeyUser)
	require.NoError(t, err)
	assert.False(t, strings.Contains(raw, "k-alice"), "token must not be stored in clear")

	got, ok, err := ss.LoadUser()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, alice, got)
}

func TestSessionStore_WrongPassphrase(t *testing.T) {
	kv := store.NewKVFileStore(t.TempDir())
	require.NoError(t, store.NewSessionFileStore(kv, "correct").SaveUser(alice))

	_, _, err := store.NewSessionFileStore(kv, "wrong").LoadUser()
	assert.ErrorIs(t, err, store.ErrWrongPassphrase)

	_, _, err = store.NewSessionFileStore(kv, "").LoadUser()
	assert.ErrorIs(t, err, store.ErrSealedSession)
}
