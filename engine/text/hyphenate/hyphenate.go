package hyphenate

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax29"
	"golang.org/x/text/unicode/norm"
)

// Hyphenate splits a word into syllables. A word which cannot be hyphenated
// is returned as a single syllable. Matching is case-insensitive, the
// syllables keep the case of word.
func (d *Dictionary) Hyphenate(word string) []string {
	runes, breaks := d.normalizedBreakpoints(word)
	if len(breaks) == 0 {
		return []string{word}
	}
	syllables := make([]string, 0, len(breaks)+1)
	start := 0
	for _, p := range breaks {
		syllables = append(syllables, string(runes[start:p]))
		start = p
	}
	syllables = append(syllables, string(runes[start:]))
	tracer().Debugf("hyphenate %q = %v", word, syllables)
	return syllables
}

// normalizedBreakpoints returns the runes of word and its break positions.
// Patterns are stored in NFC, so a word which is not in NFC is matched in
// its composed form. Positions are mapped back to the runes of word, a
// break falling inside a composed sequence is dropped.
func (d *Dictionary) normalizedBreakpoints(word string) ([]rune, []int) {
	runes := []rune(word)
	if norm.NFC.IsNormalString(word) {
		return runes, d.breakpoints(runes)
	}
	var composed []rune
	var origin []int // rune index in word of each composed rune, or -1
	var it norm.Iter
	it.InitString(norm.NFC, word)
	at := 0
	for !it.Done() {
		start := it.Pos()
		seg := it.Next()
		for k, r := range []rune(string(seg)) {
			composed = append(composed, r)
			if k == 0 {
				origin = append(origin, at)
			} else {
				origin = append(origin, -1)
			}
		}
		at += utf8.RuneCountInString(word[start:it.Pos()])
	}
	var breaks []int
	for _, p := range d.breakpoints(composed) {
		if origin[p] > 0 {
			breaks = append(breaks, origin[p])
		}
	}
	tracer().Debugf("hyphenate %q as %q", word, string(composed))
	return runes, breaks
}

// breakpoints returns the rune positions p where a word may be broken
// between runes p-1 and p, in ascending order.
func (d *Dictionary) breakpoints(runes []rune) []int {
	n := len(runes)
	if n < d.minLength || n < d.minLeft+d.minRight {
		return nil
	}
	lower := make([]rune, n)
	for i, r := range runes {
		lower[i] = unicode.ToLower(r)
	}
	if positions, ok := d.exceptions[string(lower)]; ok {
		var breaks []int
		for _, p := range positions {
			if p >= d.minLeft && p <= n-d.minRight {
				breaks = append(breaks, p)
			}
		}
		return breaks
	}
	w := make([]rune, 0, n+2)
	w = append(w, '.')
	w = append(w, lower...)
	w = append(w, '.')
	// points[g] is the weight of the gap before w[g]
	points := make([]int, len(w)+1)
	for i := 0; i < len(w); i++ {
		for j := i + 1; j <= len(w) && j-i <= d.maxlen; j++ {
			node, ok := d.patterns.Find(string(w[i:j]))
			if !ok {
				continue
			}
			for k, weight := range node.Meta().([]int) {
				if weight > points[i+k] {
					points[i+k] = weight
				}
			}
		}
	}
	var breaks []int
	for p := d.minLeft; p <= n-d.minRight; p++ {
		if p > 0 && p < n && points[p+1]%2 == 1 {
			breaks = append(breaks, p)
		}
	}
	return breaks
}

// Visualize inserts marker at every hyphenation point of word. word may
// carry punctuation, e.g. "(beautiful," or "co-operate": it is split into
// words along UAX#29 word boundaries, and only segments consisting entirely
// of letters are hyphenated. Apart from the markers the result equals word.
func (d *Dictionary) Visualize(word string, marker rune) string {
	var b strings.Builder
	for _, part := range wordSegments(word) {
		if !isLetters(part) {
			b.WriteString(part)
			continue
		}
		b.WriteString(strings.Join(d.Hyphenate(part), string(marker)))
	}
	return b.String()
}

// wordSegments splits s at word boundaries. If the segmenter's output
// does not reassemble to s, s is returned as a single segment.
func wordSegments(s string) []string {
	words := segment.NewSegmenter(uax29.NewWordBreaker(1))
	words.BreakOnZero(true, false)
	words.Init(strings.NewReader(s))
	var parts []string
	for words.Next() {
		parts = append(parts, words.Text())
	}
	if strings.Join(parts, "") != s {
		tracer().Debugf("word segments %v do not cover %q", parts, s)
		return []string{s}
	}
	return parts
}

func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.Is(unicode.Mn, r) {
			return false
		}
	}
	return true
}
