package portal

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type Stringable struct {
	value string
}

func NewStringable(value string) *Stringable {
	return &Stringable{
		value: strings.TrimSpace(value),
	}
}

func (s Stringable) ToLower() string {
	caser := cases.Lower(language.Und)

	return strings.TrimSpace(caser.String(s.value))
}

func (s Stringable) ToTitle() string {
	caser := cases.Title(language.Und)

	return caser.String(s.value)
}

// ToASCII folds accented letters to their base form ("Matías" -> "Matias").
func (s Stringable) ToASCII() string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	folded, _, err := transform.String(t, s.value)
	if err != nil {
		return s.value
	}

	return folded
}

// ToSlug lowercases the value and joins its alphanumeric runs with hyphens.
func (s Stringable) ToSlug() string {
	folded := NewStringable(s.ToASCII()).ToLower()

	var b strings.Builder
	pendingHyphen := false

	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}

			b.WriteRune(r)
			pendingHyphen = false

			continue
		}

		pendingHyphen = true
	}

	return b.String()
}

func (s Stringable) IsTrue() bool {
	return s.ToLower() == "true"
}
