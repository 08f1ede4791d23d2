package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"mwtrack/internal/api"
	"mwtrack/internal/domain"
	"mwtrack/internal/store"
)

var (
	// ErrMissingCredentials is returned when email or password is blank.
	ErrMissingCredentials = errors.New("email and password are required")
	// ErrNotSignedIn is returned when an operation needs a signed-in user.
	ErrNotSignedIn = errors.New("not signed in")
)

// Service signs users in and out.
type Service struct {
	backend  domain.Backend
	sessions domain.SessionStore
	kv       domain.KeyValueStore
}

var _ domain.SessionService = (*Service)(nil)

// New returns an auth service. kv holds the cart id that is forgotten on
// sign out.
func New(backend domain.Backend, sessions domain.SessionStore, kv domain.KeyValueStore) *Service {
	return &Service{backend: backend, sessions: sessions, kv: kv}
}

// SignIn posts the credentials to the login endpoint and persists the
// returned user.
func (s *Service) SignIn(ctx context.Context, email, password string) (domain.User, error) {
	const op = "auth.SignIn"
	log := slog.With("op", op)

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return domain.User{}, ErrMissingCredentials
	}

	user, err := s.backend.Login(ctx, email, password)
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}
	if user.KeyUser == "" {
		return domain.User{}, fmt.Errorf("%s: %w", op, &api.Error{
			Endpoint: api.EndpointLogin,
			Message:  "Login failed",
		})
	}
	if err := s.sessions.SaveUser(user); err != nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("signed in", "user_id", user.ID)
	return user, nil
}

// SignOut forgets the stored user and cart.
func (s *Service) SignOut() error {
	const op = "auth.SignOut"

	if err := s.sessions.ClearUser(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.kv.Delete(store.KeyCartID, store.KeyCartSnapshot); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	slog.Info("signed out", "op", op)
	return nil
}

// Current returns the signed-in user.
func (s *Service) Current() (domain.User, error) {
	user, ok, err := s.sessions.LoadUser()
	if err != nil {
		return domain.User{}, fmt.Errorf("auth.Current: %w", err)
	}
	if !ok || user.KeyUser == "" {
		return domain.User{}, ErrNotSignedIn
	}
	return user, nil
}
