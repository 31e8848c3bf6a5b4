// Package language maps the 2-letter codes used on inbound requests to the
// 3-letter codes TheTVDB keys its translations with.
package language

import (
	"strings"

	"golang.org/x/text/language"
)

// Mapper converts ISO 639-1 codes to ISO 639-2/T.
type Mapper struct{}

// NewMapper creates a new language code mapper.
func NewMapper() *Mapper {
	return &Mapper{}
}

// To3LetterCode converts a request language ("pt", "pt-BR", "en-US") to the
// 3-letter code of its base language ("por", "eng"). Unknown codes are
// returned unchanged so a lookup simply misses instead of failing.
func (m *Mapper) To3LetterCode(code string) string {
	base := code
	if i := strings.IndexByte(base, '-'); i >= 0 {
		base = base[:i]
	}

	parsed, err := language.ParseBase(base)
	if err != nil {
		return base
	}
	return parsed.ISO3()
}
