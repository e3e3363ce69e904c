package pcdata

import (
	"strings"

	"github.com/npillmayer/pcdata/core/parameters"
	"github.com/npillmayer/pcdata/engine/text/casing"
	"github.com/npillmayer/pcdata/engine/text/markup"
	"golang.org/x/text/language"
)

// Markers inserted by Hyphenate.
const (
	SoftHyphen     = '\u00ad' // break opportunity, rendered as a hyphen when broken
	ZeroWidthSpace = '\u200b' // break opportunity, never rendered
)

// Transformer applies transformations to strings with inline markup.
// It is immutable and may be shared between goroutines.
type Transformer struct {
	casing     casing.Capability
	ligatures  *LigatureTable
	softHyphen rune
	breakChar  rune
}

// NewTransformer creates a transformer with a casing backend and a ligature
// table. If c is nil, Unicode casing for an undetermined language is used,
// if lt is nil, DefaultLigatures() is used.
func NewTransformer(c casing.Capability, lt *LigatureTable) *Transformer {
	if c == nil {
		c = casing.WithASCIIFastPath(casing.Unicode(language.Und), language.Und)
	}
	if lt == nil {
		lt = DefaultLigatures()
	}
	return &Transformer{
		casing:     c,
		ligatures:  lt,
		softHyphen: SoftHyphen,
		breakChar:  ZeroWidthSpace,
	}
}

// FromRegisters creates a transformer configured by regs: the casing
// backend is selected by P_CASING and P_LANGUAGE, markers are taken from
// P_SOFTHYPHEN and P_BREAKCHAR.
func FromRegisters(regs *parameters.Registers) (*Transformer, error) {
	if regs == nil {
		regs = parameters.NewRegisters()
	}
	lang, err := casing.ParseLanguage(regs.S(parameters.P_LANGUAGE))
	if err != nil {
		return nil, err
	}
	c, err := casing.Select(regs.S(parameters.P_CASING), lang)
	if err != nil {
		return nil, err
	}
	t := NewTransformer(c, nil)
	t.softHyphen = regs.R(parameters.P_SOFTHYPHEN)
	t.breakChar = regs.R(parameters.P_BREAKCHAR)
	return t, nil
}

// Ligaturize replaces letter sequences in text runs by ligature glyphs,
// except for text inside a <code> span.
func (t *Transformer) Ligaturize(s string) string {
	return dispatch(s, markup.Broad, func(text string, ctx *markup.TagContext) string {
		if ctx.IsCode() {
			return text
		}
		return t.ligatures.Apply(text)
	})
}

// CapitalizeWords capitalizes every white-space delimited word in text runs.
// Punctuation belongs to the word it touches; the casing backend decides
// what the first letter of a word is.
func (t *Transformer) CapitalizeWords(s string) string {
	return dispatch(s, markup.Broad, func(text string, _ *markup.TagContext) string {
		return mapWords(text, t.casing.Capitalize)
	})
}

// Uppercase maps text runs to upper case. Tags and entities are preserved.
func (t *Transformer) Uppercase(s string) string {
	return dispatch(s, markup.Broad, func(text string, _ *markup.TagContext) string {
		return t.casing.Uppercase(text)
	})
}

// Lowercase maps text runs to lower case. Only tags are preserved: entities
// are part of the text runs and are lower-cased along with them. As entity
// names are lower-case, this changes nothing for well-formed entities.
func (t *Transformer) Lowercase(s string) string {
	return dispatch(s, markup.Narrow, func(text string, _ *markup.TagContext) string {
		return t.casing.Lowercase(text)
	})
}

// dispatch tokenizes s and replaces every text token by fn's result. Markup
// is copied and tracked in a tag context, which fn may consult.
func dispatch(s string, d markup.Detection, fn func(string, *markup.TagContext) string) string {
	var ctx markup.TagContext
	tokens := markup.Tokenize(s, d)
	if len(tokens) == 1 && !tokens[0].IsMarkup() {
		return fn(s, &ctx)
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/4)
	for _, tok := range tokens {
		if tok.IsMarkup() {
			ctx.Observe(tok)
			b.WriteString(tok.Raw)
			continue
		}
		b.WriteString(fn(tok.Raw, &ctx))
	}
	return b.String()
}

// mapWords replaces every maximal run of non-white-space characters in text
// by fn's result. White space is space, \t, \n, \v, \f and \r.
func mapWords(text string, fn func(string) string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		if isSpace(text[i]) {
			b.WriteByte(text[i])
			i++
			continue
		}
		j := i + 1
		for j < len(text) && !isSpace(text[j]) {
			j++
		}
		b.WriteString(fn(text[i:j]))
		i = j
	}
	return b.String()
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// --- Package level API -----------------------------------------------------

// std is selected once: Unicode casing for an undetermined language with
// an ASCII fast path, and the default ligature table.
var std = NewTransformer(nil, nil)

// Ligaturize calls Ligaturize on a default transformer.
func Ligaturize(s string) string {
	return std.Ligaturize(s)
}

// CapitalizeWords calls CapitalizeWords on a default transformer.
func CapitalizeWords(s string) string {
	return std.CapitalizeWords(s)
}

// Hyphenate calls Hyphenate on a default transformer.
func Hyphenate(s string, h Hyphenator) string {
	return std.Hyphenate(s, h)
}

// Uppercase calls Uppercase on a default transformer.
func Uppercase(s string) string {
	return std.Uppercase(s)
}

// Lowercase calls Lowercase on a default transformer.
func Lowercase(s string) string {
	return std.Lowercase(s)
}
