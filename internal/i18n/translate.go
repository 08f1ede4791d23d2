package i18n

import "fmt"

// phrase is one dictionary entry ordered es, en, fr, pt.
type phrase [4]string

func (p phrase) in(lang Language) string {
	for i, l := range Supported {
		if l == lang {
			return p[i]
		}
	}
	return ""
}

// Translate looks key up in the product dictionary, then in the UI
// dictionary for lang. Unknown keys come back unchanged.
func Translate(key string, lang Language) string {
	if p, ok := products[key]; ok {
		if s := p.in(lang); s != "" {
			return s
		}
		return key
	}
	if s, ok := ui[lang][key]; ok && s != "" {
		return s
	}
	return key
}

// Translatef translates format and then applies args to it.
func Translatef(lang Language, format string, args ...any) string {
	return fmt.Sprintf(Translate(format, lang), args...)
}
