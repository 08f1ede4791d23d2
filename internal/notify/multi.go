package notify

import (
	"context"
	"errors"

	"mwtrack/internal/domain"
)

// Multi delivers every notification to each of its notifiers.
type Multi []domain.Notifier

var _ domain.Notifier = Multi(nil)

// Notify calls every notifier, even after a failure, and joins the errors.
func (m Multi) Notify(ctx context.Context, n domain.Notification) error {
	var errs []error
	for _, notifier := range m {
		if err := notifier.Notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
