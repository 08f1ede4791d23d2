package i18n

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"mwtrack/internal/domain"
)

// ErrUnsupportedLanguage is returned for a language code outside es, en, fr
// and pt.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Language is a supported UI language.
type Language = domain.Language

const (
	Spanish    = domain.Spanish
	English    = domain.English
	French     = domain.French
	Portuguese = domain.Portuguese
)

// Default is used when nothing better is known.
const Default = Spanish

// Supported lists the UI languages in menu order.
var Supported = []Language{Spanish, English, French, Portuguese}

var names = map[Language]string{
	Spanish:    "Español",
	English:    "English",
	French:     "Français",
	Portuguese: "Português",
}

// flag codes shown next to each language in menus.
var regions = map[Language]string{
	Spanish:    "ES",
	English:    "US",
	French:     "FR",
	Portuguese: "PT",
}

var matcher = language.NewMatcher([]language.Tag{
	language.Spanish,
	language.English,
	language.French,
	language.Portuguese,
})

// Name returns the native name of lang.
func Name(lang Language) string { return names[lang] }

// Region returns the region code displayed for lang.
func Region(lang Language) string { return regions[lang] }

// Parse validates a language code.
func Parse(code string) (Language, error) {
	lang := Language(strings.ToLower(strings.TrimSpace(code)))
	if _, ok := names[lang]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}
	return lang, nil
}

// Detect maps a device locale to a supported language. It accepts POSIX
// forms such as "pt_BR.UTF-8" as well as BCP 47 tags. Anything it cannot
// match resolves to Spanish.
func Detect(locale string) Language {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	if locale == "" || locale == "C" || locale == "POSIX" {
		return Default
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return Default
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Default
	}
	return Supported[idx]
}

// URLPrefix returns the path segment the web pages use for lang.
func URLPrefix(lang Language) string {
	if lang == English {
		return "us"
	}
	return string(lang)
}
