package casing

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/pcdata/core"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capability changes the case of a run of text.
//
// Implementations must be deterministic and safe for concurrent use.
type Capability interface {
	Capitalize(text string) string // first letter title-case, rest lower-case
	Lowercase(text string) string
	Uppercase(text string) string
}

// Select returns the casing backend with a given name for language lang.
// Names are "auto" (the default if name is empty), "unicode" and "ascii".
//
// Clients are expected to call Select once during configuration and keep
// the result.
func Select(name string, lang language.Tag) (Capability, error) {
	var c Capability
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		c = WithASCIIFastPath(Unicode(lang), lang)
	case "unicode":
		c = Unicode(lang)
	case "ascii":
		c = ASCII()
	default:
		return nil, core.Error(core.EINVALID, "unknown casing backend %q", name)
	}
	tracer().Debugf("casing backend %q selected for language %s", name, lang)
	return c, nil
}

// ParseLanguage parses a BCP 47 language tag like "en-US" or "tr".
// The empty string yields language.Und.
func ParseLanguage(s string) (language.Tag, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return language.Und, nil
	}
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return language.Und, core.WrapError(err, core.EINVALID, "invalid language %q", s)
	}
	return tag, nil
}

// --- Unicode ---------------------------------------------------------------

type unicodeCasing struct {
	lang language.Tag
}

// Unicode returns a Capability mapping case with the full Unicode rules,
// including the special rules of lang (e.g., dotted and dotless i for Turkish).
func Unicode(lang language.Tag) Capability {
	return unicodeCasing{lang: lang}
}

// Casers keep state, so every call gets a fresh one.

func (uc unicodeCasing) Uppercase(text string) string {
	return cases.Upper(uc.lang).String(text)
}

func (uc unicodeCasing) Lowercase(text string) string {
	return cases.Lower(uc.lang).String(text)
}

func (uc unicodeCasing) Capitalize(text string) string {
	if text == "" {
		return text
	}
	_, size := utf8.DecodeRuneInString(text)
	head := cases.Title(uc.lang).String(text[:size])
	return head + cases.Lower(uc.lang).String(text[size:])
}

// --- ASCII -----------------------------------------------------------------

type asciiCasing struct{}

// ASCII returns a Capability which changes the case of ASCII letters only.
// All other characters are left unchanged.
func ASCII() Capability {
	return asciiCasing{}
}

func (asciiCasing) Uppercase(text string) string {
	return mapASCII(text, 0, len(text), 'a', 'z', 'A'-'a')
}

func (asciiCasing) Lowercase(text string) string {
	return mapASCII(text, 0, len(text), 'A', 'Z', 'a'-'A')
}

func (asciiCasing) Capitalize(text string) string {
	if text == "" {
		return text
	}
	text = mapASCII(text, 0, 1, 'a', 'z', 'A'-'a')
	return mapASCII(text, 1, len(text), 'A', 'Z', 'a'-'A')
}

// mapASCII shifts bytes in [lo…hi] within text[from:to] by delta. text is
// copied only if a byte changes.
func mapASCII(text string, from, to int, lo, hi byte, delta int) string {
	var b []byte
	for i := from; i < to; i++ {
		if c := text[i]; c >= lo && c <= hi {
			if b == nil {
				b = []byte(text)
			}
			b[i] = byte(int(c) + delta)
		}
	}
	if b == nil {
		return text
	}
	return string(b)
}

// --- Fast path -------------------------------------------------------------

type fastPath struct {
	general Capability
}

// WithASCIIFastPath wraps c so that ASCII-only text is handled by the ASCII
// backend. For languages where the case mapping of ASCII letters differs
// from the default (Turkish and Azerbaijani map i to İ), c is returned
// unchanged.
func WithASCIIFastPath(c Capability, lang language.Tag) Capability {
	base, _ := lang.Base()
	for _, special := range []language.Tag{language.Turkish, language.Azerbaijani} {
		if b, _ := special.Base(); b == base {
			tracer().Debugf("no ASCII fast path for language %s", lang)
			return c
		}
	}
	return fastPath{general: c}
}

func (fp fastPath) Uppercase(text string) string {
	if isASCII(text) {
		return asciiCasing{}.Uppercase(text)
	}
	return fp.general.Uppercase(text)
}

func (fp fastPath) Lowercase(text string) string {
	if isASCII(text) {
		return asciiCasing{}.Lowercase(text)
	}
	return fp.general.Lowercase(text)
}

func (fp fastPath) Capitalize(text string) string {
	if isASCII(text) {
		return asciiCasing{}.Capitalize(text)
	}
	return fp.general.Capitalize(text)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
