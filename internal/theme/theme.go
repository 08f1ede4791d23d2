package theme

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"mwtrack/internal/domain"
	"mwtrack/internal/store"
)

// ErrUnknownTheme is returned for a theme name other than light or dark.
var ErrUnknownTheme = errors.New("unknown theme")

// LightPalette and DarkPalette are the colors of each scheme.
var (
	LightPalette = domain.Palette{
		Background:    "#f3f4f6",
		Card:          "#ffffff",
		Text:          "#111827",
		Subtext:       "#4b5563",
		Border:        "#e5e7eb",
		Primary:       "#10b981",
		Tint:          "#f9fafb",
		Icon:          "#4b5563",
		SectionHeader: "#111827",
	}
	DarkPalette = domain.Palette{
		Background:    "#111827",
		Card:          "#1f2937",
		Text:          "#f9fafb",
		Subtext:       "#9ca3af",
		Border:        "#374151",
		Primary:       "#10b981",
		Tint:          "#111827",
		Icon:          "#9ca3af",
		SectionHeader: "#f3f4f6",
	}
)

// Parse validates a theme name.
func Parse(name string) (domain.Theme, error) {
	switch t := domain.Theme(strings.ToLower(strings.TrimSpace(name))); t {
	case domain.Light, domain.Dark:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
}

// PaletteOf returns the colors of t. Anything but dark is light.
func PaletteOf(t domain.Theme) domain.Palette {
	if t == domain.Dark {
		return DarkPalette
	}
	return LightPalette
}

// Service holds the active theme.
type Service struct {
	kv     domain.KeyValueStore
	system string

	mu    sync.RWMutex
	theme domain.Theme
}

// NewService returns a Service. system is the device color scheme used when
// the user has not chosen one; anything but "dark" means light.
func NewService(kv domain.KeyValueStore, system string) *Service {
	return &Service{kv: kv, system: system, theme: systemTheme(system)}
}

// Load resolves the active theme: the stored choice, else the system scheme.
func (s *Service) Load() (domain.Theme, error) {
	v, ok, err := s.kv.Get(store.KeyTheme)
	if err != nil {
		return s.Theme(), fmt.Errorf("theme.Load: %w", err)
	}
	t := systemTheme(s.system)
	if ok {
		if stored, err := Parse(v); err == nil {
			t = stored
		}
	}
	s.set(t)
	return t, nil
}

// Toggle flips between light and dark and persists the result.
func (s *Service) Toggle() (domain.Theme, error) {
	next := domain.Dark
	if s.Theme() == domain.Dark {
		next = domain.Light
	}
	if err := s.Set(next); err != nil {
		return s.Theme(), err
	}
	return next, nil
}

// Set makes t active and persists it.
func (s *Service) Set(t domain.Theme) error {
	const op = "theme.Set"

	if _, err := Parse(string(t)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.kv.Set(store.KeyTheme, string(t)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.set(t)
	return nil
}

// Theme returns the active theme.
func (s *Service) Theme() domain.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// Palette returns the colors of the active theme.
func (s *Service) Palette() domain.Palette { return PaletteOf(s.Theme()) }

func (s *Service) set(t domain.Theme) {
	s.mu.Lock()
	s.theme = t
	s.mu.Unlock()
}

func systemTheme(system string) domain.Theme {
	if strings.EqualFold(strings.TrimSpace(system), string(domain.Dark)) {
		return domain.Dark
	}
	return domain.Light
}
