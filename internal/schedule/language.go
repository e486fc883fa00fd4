package schedule

import (
	"strings"

	"golang.org/x/text/language"
)

// Language selects which localized string to display.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageSpanish Language = "es"
)

// DefaultLanguage is used when nothing else was selected.
const DefaultLanguage = LanguageEnglish

// SupportedLanguages lists languages the seed data and message catalog carry.
var SupportedLanguages = []Language{LanguageEnglish, LanguageSpanish}

// Supported reports whether l is one of SupportedLanguages.
func (l Language) Supported() bool {
	for _, candidate := range SupportedLanguages {
		if candidate == l {
			return true
		}
	}
	return false
}

// Next cycles through SupportedLanguages. Unsupported values restart the cycle.
func (l Language) Next() Language {
	for i, candidate := range SupportedLanguages {
		if candidate == l {
			return SupportedLanguages[(i+1)%len(SupportedLanguages)]
		}
	}
	return SupportedLanguages[0]
}

// Label is the language's own name, as shown in the picker.
func (l Language) Label() string {
	switch l {
	case LanguageEnglish:
		return "English"
	case LanguageSpanish:
		return "Español"
	default:
		return string(l)
	}
}

// NormalizeLanguage reduces user input like "es-MX" or "EN" to its base
// language code. Input that is not a language tag is kept verbatim.
func NormalizeLanguage(input string) Language {
	input = strings.TrimSpace(input)
	if input == "" {
		return DefaultLanguage
	}
	tag, err := language.Parse(input)
	if err != nil {
		return Language(input)
	}
	base, _ := tag.Base()
	return Language(base.String())
}
