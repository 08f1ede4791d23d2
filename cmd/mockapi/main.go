package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"mwtrack/internal/domain"
	"mwtrack/internal/mockapi"
)

func main() {
	addr := pflag.String("addr", ":8080", "listen address")
	keyHash := pflag.String("key-hash", "dev-keyhash", "application key clients must send")
	tick := pflag.Duration("tick", 0, "append a demo tracking entry at this interval (0 disables)")
	logLevel := pflag.String("log-level", "info", "log level: debug, info, warn, error")
	pflag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		slog.Error("invalid log level", "err", err)
		os.Exit(2)
	}
	initLogger(level)

	sigCtx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

	backend := mockapi.New(*keyHash)
	backend.Seed()

	srv := &http.Server{
		Addr:              *addr,
		Handler:           accessLog(backend.Handler()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("mock api listening", "addr", *addr, "demo_email", mockapi.DemoEmail)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("listen failed", "err", err)
			stop()
		}
	}()

	if *tick > 0 {
		go appendUpdates(sigCtx, backend, *tick)
	}

	<-sigCtx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shutdown http server gracefully", "err", err)
	}
	slog.Info("mock api closed")
}

func initLogger(level slog.Leveler) {
	opts := &slog.HandlerOptions{Level: level}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, opts)))
}

// appendUpdates alternates new tracking entries between the demo orders.
func appendUpdates(ctx context.Context, b *mockapi.Backend, every time.Duration) {
	orders := []domain.OrderNumber{"4100", "4101"}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l := b.AppendTrackingLog(mockapi.DemoKeyUser, orders[i%len(orders)], "status_update")
			slog.Info("tracking entry appended", "id", l.ID, "order", l.OrderNumber)
		}
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n
	return n, err
}

func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
			"status", rec.status,
			"bytes", rec.bytes,
			"duration", time.Since(start),
		)
	})
}
