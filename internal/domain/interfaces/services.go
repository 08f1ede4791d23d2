package interfaces

import (
	"context"

	domaintypes "mwtrack/internal/domain/types"
)

// Submitter sends a call now, or records it for replay when offline.
type Submitter interface {
	Submit(ctx context.Context, call domaintypes.Call) (domaintypes.Submission, error)
}

// Notifier raises a local notification.
type Notifier interface {
	Notify(ctx context.Context, n domaintypes.Notification) error
}

// SessionService signs users in and out.
type SessionService interface {
	SignIn(ctx context.Context, email, password string) (domaintypes.User, error)
	SignOut() error
	Current() (domaintypes.User, error)
}
