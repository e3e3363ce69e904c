package pcdata

import (
	"strings"

	"github.com/npillmayer/pcdata/engine/text/markup"
)

// Hyphenator inserts marker at every allowed break point of a single word.
// Apart from inserting markers it must not change the word.
//
// *hyphenate.Dictionary implements Hyphenator.
type Hyphenator interface {
	Visualize(word string, marker rune) string
}

// HyphenatorFunc adapts a function to the Hyphenator interface.
type HyphenatorFunc func(word string, marker rune) string

// Visualize calls f(word, marker).
func (f HyphenatorFunc) Visualize(word string, marker rune) string {
	return f(word, marker)
}

// codePunctuation is followed by a zero-width break in code and links.
const codePunctuation = `/\.,_`

// Hyphenate inserts soft hyphens into the words of text runs, at the
// positions h reports.
//
// Text within a <code> span or within a hyperlink (a tag starting with
// `<a href`) is not hyphenated. It gets a zero-width break after every
// `/`, `\`, `.`, `,` and `_` instead, to let paths and identifiers wrap
// without showing a hyphen.
//
// A soft hyphen directly following a literal hyphen is dropped. A word for
// which h panics, or for which h returns more than markers, is left as is.
// If h is nil, s is returned unchanged.
func (t *Transformer) Hyphenate(s string, h Hyphenator) string {
	if h == nil {
		return s
	}
	hyphenatedHyphen := "-" + string(t.softHyphen)
	return dispatch(s, markup.Broad, func(text string, ctx *markup.TagContext) string {
		if ctx.IsCode() || ctx.IsLink() {
			return t.breakAfterPunctuation(text)
		}
		return mapWords(text, func(word string) string {
			return strings.ReplaceAll(t.visualize(h, word), hyphenatedHyphen, "-")
		})
	})
}

// breakAfterPunctuation works on bytes, as all of codePunctuation is ASCII.
// Bytes are copied unchanged. A break which is already present is not
// inserted again.
func (t *Transformer) breakAfterPunctuation(text string) string {
	if !strings.ContainsAny(text, codePunctuation) {
		return text
	}
	brk := string(t.breakChar)
	var b strings.Builder
	b.Grow(len(text) + 8)
	for i := 0; i < len(text); i++ {
		b.WriteByte(text[i])
		if strings.IndexByte(codePunctuation, text[i]) >= 0 && !strings.HasPrefix(text[i+1:], brk) {
			b.WriteString(brk)
		}
	}
	return b.String()
}

// visualize calls h for a single word and falls back to the word itself
// if h fails.
func (t *Transformer) visualize(h Hyphenator, word string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("hyphenator failed for %q: %v", word, r)
			result = word
		}
	}()
	result = h.Visualize(word, t.softHyphen)
	marker := string(t.softHyphen)
	if strings.ReplaceAll(result, marker, "") != strings.ReplaceAll(word, marker, "") {
		tracer().Errorf("hyphenator changed %q to %q, ignoring result", word, result)
		return word
	}
	return result
}
