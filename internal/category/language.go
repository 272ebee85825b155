package category

import "strings"

// Language selects which label set is rendered.
type Language int

const (
	En Language = iota
	Ja
)

// ParseLanguage maps a language code to a Language. Unknown codes fall back to En.
func ParseLanguage(s string) Language {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ja", "jp", "japanese":
		return Ja
	default:
		return En
	}
}

func (l Language) String() string {
	if l == Ja {
		return "ja"
	}
	return "en"
}

// Localized holds one string per supported language.
type Localized struct {
	En string
	Ja string
}

// In returns the string for lng.
func (l Localized) In(lng Language) string {
	if lng == Ja {
		return l.Ja
	}
	return l.En
}
