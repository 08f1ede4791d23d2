package i18n

import (
	"fmt"
	"log/slog"
	"sync"

	"mwtrack/internal/domain"
	"mwtrack/internal/store"
)

// Service keeps the active language and persists the user's choice.
type Service struct {
	kv     domain.KeyValueStore
	locale string

	mu   sync.RWMutex
	lang Language
}

// NewService returns a Service that falls back to locale when no preference
// has been stored.
func NewService(kv domain.KeyValueStore, locale string) *Service {
	return &Service{kv: kv, locale: locale, lang: Default}
}

// Load resolves the active language. A stored preference wins. Otherwise the
// device locale is detected and stored as the preference.
func (s *Service) Load() (Language, error) {
	const op = "i18n.Load"
	log := slog.With("op", op)

	v, ok, err := s.kv.Get(store.KeyLanguage)
	if err != nil {
		return Default, fmt.Errorf("%s: %w", op, err)
	}
	if ok {
		if lang, err := Parse(v); err == nil {
			s.set(lang)
			return lang, nil
		}
		log.Warn("ignoring stored language", "value", v)
	}

	lang := Detect(s.locale)
	log.Debug("detected device language", "locale", s.locale, "lang", lang)
	if err := s.kv.Set(store.KeyLanguage, string(lang)); err != nil {
		return lang, fmt.Errorf("%s: %w", op, err)
	}
	s.set(lang)
	return lang, nil
}

// Set makes lang active and persists it.
func (s *Service) Set(lang Language) error {
	const op = "i18n.Set"

	if _, err := Parse(string(lang)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.kv.Set(store.KeyLanguage, string(lang)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.set(lang)
	return nil
}

// Language returns the active language.
func (s *Service) Language() Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

// T translates key into the active language.
func (s *Service) T(key string) string {
	return Translate(key, s.Language())
}

func (s *Service) set(lang Language) {
	s.mu.Lock()
	s.lang = lang
	s.mu.Unlock()
}
