package app

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// InitLogger installs a JSON slog logger writing to w as the default.
func InitLogger(w io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	logger := slog.New(slog.NewJSONHandler(w, opts))
	slog.SetDefault(logger)
	return logger
}

// Watch runs the connectivity monitor and the tracking poller side by side
// until ctx is done or one of them fails.
func (w *Wire) Watch(ctx context.Context) error {
	const op = "app.Watch"
	log := slog.With("op", op)

	poller, err := w.Poller()
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return w.Monitor.Run(gctx) })
	g.Go(func() error { return poller.Run(gctx, w.Config.PollInterval) })

	log.Info("watching",
		"poll_interval", w.Config.PollInterval,
		"check_interval", w.Config.CheckInterval,
	)
	err = g.Wait()
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
