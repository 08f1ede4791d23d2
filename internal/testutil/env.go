// Package testutil wires a seeded mock backend, an API client and
// temporary stores for package tests.
package testutil

import (
	"net/http/httptest"
	"testing"

	"mwtrack/internal/api"
	"mwtrack/internal/domain"
	"mwtrack/internal/mockapi"
	"mwtrack/internal/store"
)

// KeyHash is the shared secret the test backend accepts.
const KeyHash = "test-keyhash"

// Env is a running mock backend plus client-side state.
type Env struct {
	Mock     *mockapi.Backend
	Server   *httptest.Server
	Client   *api.Client
	Home     string
	KV       *store.KVFileStore
	Sessions *store.SessionFileStore
}

// NewEnv starts a seeded mock backend that is closed with the test.
func NewEnv(t *testing.T) *Env {
	t.Helper()

	mock := mockapi.New(KeyHash)
	mock.Seed()
	srv := httptest.NewServer(mock.Handler())
	t.Cleanup(srv.Close)

	home := t.TempDir()
	kv := store.NewKVFileStore(home)
	return &Env{
		Mock:     mock,
		Server:   srv,
		Client:   api.New(srv.URL, KeyHash, srv.Client()),
		Home:     home,
		KV:       kv,
		Sessions: store.NewSessionFileStore(kv, ""),
	}
}

// SignIn stores the demo user as signed in without calling the backend.
func (e *Env) SignIn(t *testing.T) domain.User {
	t.Helper()

	user := domain.User{
		ID:      "12",
		KeyUser: mockapi.DemoKeyUser,
		Name:    "Compras Demo",
		Email:   mockapi.DemoEmail,
	}
	if err := e.Sessions.SaveUser(user); err != nil {
		t.Fatalf("save user: %v", err)
	}
	return user
}
