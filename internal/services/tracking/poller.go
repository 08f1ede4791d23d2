package tracking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"mwtrack/internal/api"
	"mwtrack/internal/domain"
	"mwtrack/internal/i18n"
	"mwtrack/internal/store"
)

// DefaultInterval is how often Run polls when no interval is configured.
const DefaultInterval = 15 * time.Minute

// Notification text, translated into the active language.
const (
	titleKey = "Actualización de Pedido"
	bodyKey  = "El pedido %s ha recibido una actualización."
)

// Result is the outcome of one poll.
type Result int

const (
	ResultNoData Result = iota
	ResultNewData
	ResultFailed
)

func (r Result) String() string {
	switch r {
	case ResultNewData:
		return "new-data"
	case ResultFailed:
		return "failed"
	default:
		return "no-data"
	}
}

// LanguageSource reports the active UI language.
type LanguageSource interface {
	Language() domain.Language
}

// Poller checks the tracking log for new entries.
type Poller struct {
	backend  domain.Backend
	sessions domain.SessionService
	kv       domain.KeyValueStore
	notifier domain.Notifier
	lang     LanguageSource
}

// NewPoller returns a Poller announcing new entries through notifier.
func NewPoller(
	backend domain.Backend,
	sessions domain.SessionService,
	kv domain.KeyValueStore,
	notifier domain.Notifier,
	lang LanguageSource,
) *Poller {
	return &Poller{backend: backend, sessions: sessions, kv: kv, notifier: notifier, lang: lang}
}

// LastSeen returns the id of the newest entry already announced, or 0.
func (p *Poller) LastSeen() (int, error) {
	v, ok, err := p.kv.Get(store.KeyLastTrackedID)
	if err != nil || !ok {
		return 0, err
	}
	id, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("ignoring malformed last tracked id", "op", "tracking.LastSeen", "value", v)
		return 0, nil
	}
	return id, nil
}

// Poll fetches the tracking log once and announces entries newer than
// LastSeen, oldest first. Nobody signed in and a rejected request both
// count as no data.
func (p *Poller) Poll(ctx context.Context) (Result, error) {
	const op = "tracking.Poll"
	log := slog.With("op", op)

	user, err := p.sessions.Current()
	if err != nil {
		log.Debug("no user, skipping", "err", err)
		return ResultNoData, nil
	}

	logs, err := p.backend.TrackingLogs(ctx, user.KeyUser)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			log.Debug("monitor rejected", "message", apiErr.Message)
			return ResultNoData, nil
		}
		return ResultFailed, fmt.Errorf("%s: %w", op, err)
	}

	last, err := p.LastSeen()
	if err != nil {
		return ResultFailed, fmt.Errorf("%s: %w", op, err)
	}

	fresh := make([]domain.TrackingLog, 0, len(logs))
	for _, l := range logs {
		if l.ID > last {
			fresh = append(fresh, l)
		}
	}
	if len(fresh) == 0 {
		log.Debug("no new logs")
		return ResultNoData, nil
	}
	sort.SliceStable(fresh, func(i, j int) bool { return fresh[i].ID < fresh[j].ID })
	log.Info("new tracking logs", "count", len(fresh))

	lang := p.language()
	maxID := last
	var notifyErr error
	for _, l := range fresh {
		n := domain.Notification{
			Title:       i18n.Translate(titleKey, lang),
			Body:        i18n.Translatef(lang, bodyKey, l.OrderNumber),
			OrderNumber: l.OrderNumber,
		}
		if notifyErr = p.notifier.Notify(ctx, n); notifyErr != nil {
			break
		}
		maxID = l.ID
	}

	if maxID > last {
		if err := p.kv.Set(store.KeyLastTrackedID, strconv.Itoa(maxID)); err != nil {
			return ResultFailed, fmt.Errorf("%s: %w", op, err)
		}
	}
	if notifyErr != nil {
		return ResultFailed, fmt.Errorf("%s: notify: %w", op, notifyErr)
	}
	return ResultNewData, nil
}

// Run polls every interval until ctx is done. Failed polls are logged and
// retried on the next tick.
func (p *Poller) Run(ctx context.Context, interval time.Duration) error {
	const op = "tracking.Run"
	log := slog.With("op", op)

	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		res, err := p.Poll(ctx)
		if err != nil && ctx.Err() == nil {
			log.Error("poll failed", "err", err)
		} else {
			log.Debug("poll finished", "result", res)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (p *Poller) language() domain.Language {
	if p.lang == nil {
		return i18n.Default
	}
	return p.lang.Language()
}
