package types

// Language is a supported UI language.
type Language string

const (
	Spanish    Language = "es"
	English    Language = "en"
	French     Language = "fr"
	Portuguese Language = "pt"
)

// String returns the language code.
func (l Language) String() string { return string(l) }

// Theme is the UI color scheme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// String returns the theme name.
func (t Theme) String() string { return string(t) }

// Palette is the set of colors used to render a theme.
type Palette struct {
	Background    string `json:"background"`
	Card          string `json:"card"`
	Text          string `json:"text"`
	Subtext       string `json:"subtext"`
	Border        string `json:"border"`
	Primary       string `json:"primary"`
	Tint          string `json:"tint"`
	Icon          string `json:"icon"`
	SectionHeader string `json:"sectionHeader"`
}
