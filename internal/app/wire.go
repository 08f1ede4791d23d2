package app

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"mwtrack/internal/api"
	"mwtrack/internal/domain"
	"mwtrack/internal/i18n"
	"mwtrack/internal/notify"
	"mwtrack/internal/offline"
	"mwtrack/internal/services/auth"
	"mwtrack/internal/services/cart"
	"mwtrack/internal/services/catalog"
	"mwtrack/internal/services/orders"
	"mwtrack/internal/services/tracking"
	"mwtrack/internal/store"
	"mwtrack/internal/theme"
	"mwtrack/internal/webview"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Config Config

	KV       *store.KVFileStore
	Sessions *store.SessionFileStore
	API      *api.Client
	HTTP     *http.Client

	Auth    *auth.Service
	Catalog *catalog.Service
	Cart    *cart.Service
	Orders  *orders.Service
	Offline *offline.Manager
	Monitor *offline.Monitor
	I18n    *i18n.Service
	Theme   *theme.Service
	Pages   webview.Pages

	out io.Writer

	mu      sync.Mutex
	poller  *tracking.Poller
	closers []func() error
}

// NewWire constructs the dependency graph from cfg. Notifications printed to
// the terminal go to out.
func NewWire(cfg Config, out io.Writer) (*Wire, error) {
	const op = "app.NewWire"

	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// File-based stores
	kv := store.NewKVFileStore(cfg.Home)
	sessionStore := store.NewSessionFileStore(kv, cfg.Passphrase)

	// Ensure an HTTP client is available for outbound calls
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}
	client := api.New(cfg.APIURL, cfg.KeyHash, httpClient)
	if cfg.KeyHash == "" {
		slog.Warn("no key hash configured; the backend will reject requests", "op", op)
	}

	authSvc := auth.New(client, sessionStore, kv)

	// Offline layer
	manager := offline.NewManager(client, authSvc, offline.NewQueue(kv))
	monitor := offline.NewMonitor(client, manager, cfg.CheckInterval)

	// High-level services
	langSvc := i18n.NewService(kv, cfg.Locale)
	if _, err := langSvc.Load(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	themeSvc := theme.NewService(kv, cfg.SystemTheme)
	if _, err := themeSvc.Load(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Wire{
		Config:   cfg,
		KV:       kv,
		Sessions: sessionStore,
		API:      client,
		HTTP:     httpClient,
		Auth:     authSvc,
		Catalog:  catalog.New(client, authSvc),
		Cart:     cart.New(client, authSvc, kv, manager),
		Orders:   orders.New(client, authSvc),
		Offline:  manager,
		Monitor:  monitor,
		I18n:     langSvc,
		Theme:    themeSvc,
		Pages:    webview.NewPages(cfg.WebURL),
		out:      out,
	}, nil
}

// Notifier returns the notification sinks: the terminal, plus the AMQP
// exchange when a broker is configured.
func (w *Wire) Notifier() (domain.Notifier, error) {
	sinks := notify.Multi{notify.NewWriter(w.out)}
	if w.Config.AMQP.URL == "" {
		return sinks, nil
	}

	deviceID, err := store.DeviceID(w.KV)
	if err != nil {
		return nil, fmt.Errorf("app.Notifier: %w", err)
	}
	broker, err := notify.DialAMQP(w.Config.AMQP.URL, w.Config.AMQP.Exchange, deviceID)
	if err != nil {
		return nil, err
	}
	w.mu.Lock()
	w.closers = append(w.closers, broker.Close)
	w.mu.Unlock()
	return append(sinks, broker), nil
}

// Poller returns the tracking poller, connecting its notifiers on first use.
func (w *Wire) Poller() (*tracking.Poller, error) {
	w.mu.Lock()
	p := w.poller
	w.mu.Unlock()
	if p != nil {
		return p, nil
	}

	n, err := w.Notifier()
	if err != nil {
		return nil, err
	}
	p = tracking.NewPoller(w.API, w.Auth, w.KV, n, w.I18n)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.poller == nil {
		w.poller = p
	}
	return w.poller, nil
}

// Close releases broker connections opened by the wire.
func (w *Wire) Close() error {
	w.mu.Lock()
	closers := w.closers
	w.closers = nil
	w.mu.Unlock()

	var first error
	for _, c := range closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
