package hyphenate

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/derekparker/trie"
	"github.com/npillmayer/pcdata/core"
	"golang.org/x/text/unicode/norm"
)

// Dictionary holds the hyphenation patterns and exceptions for a language.
type Dictionary struct {
	identifier string
	patterns   *trie.Trie
	maxlen     int              // length of the longest pattern, in runes
	exceptions map[string][]int // word → break positions
	minLength  int              // shorter words are never hyphenated
	minLeft    int              // minimum # of runes before the first break
	minRight   int              // minimum # of runes after the last break
}

type section int8

const (
	bare section = iota // before any block: bare list of patterns
	inPatterns
	inExceptions
	skipping // inside some other TeX command
	outside
)

// LoadPatterns reads a TeX hyphenation pattern file. identifier names the
// dictionary, usually by its language.
//
// Input is normalized to NFC. Lines are stripped of `%` comments. Files
// without a \patterns block are read as a bare list of patterns, separated
// by white space.
func LoadPatterns(identifier string, r io.Reader) (*Dictionary, error) {
	d := &Dictionary{
		identifier: identifier,
		patterns:   trie.New(),
		exceptions: make(map[string][]int),
		minLength:  5,
		minLeft:    2,
		minRight:   3,
	}
	sect := bare
	count := 0
	scanner := bufio.NewScanner(norm.NFC.Reader(r))
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '%'); i >= 0 {
			line = line[:i]
		}
		for _, field := range strings.Fields(line) {
			if strings.HasPrefix(field, `\`) {
				switch {
				case strings.HasPrefix(field, `\patterns{`):
					sect, field = inPatterns, field[len(`\patterns{`):]
				case strings.HasPrefix(field, `\hyphenation{`):
					sect, field = inExceptions, field[len(`\hyphenation{`):]
				case strings.Contains(field, "{") && !strings.HasSuffix(field, "}"):
					sect, field = skipping, ""
				default: // some other command, e.g. \relax
					continue
				}
			}
			closing := strings.HasSuffix(field, "}")
			field = strings.TrimSuffix(field, "}")
			if field != "" {
				var err error
				switch sect {
				case bare, inPatterns:
					err = d.addPattern(field)
					count++
				case inExceptions:
					err = d.addException(field)
				}
				if err != nil {
					return nil, err
				}
			}
			if closing {
				sect = outside
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, core.WrapError(err, core.EIO, "cannot read hyphenation patterns for %s", identifier)
	}
	if count == 0 {
		return nil, core.Error(core.EINVALID, "no hyphenation patterns found for %s", identifier)
	}
	tracer().Infof("loaded %d hyphenation patterns and %d exceptions for %s",
		count, len(d.exceptions), identifier)
	return d, nil
}

// addPattern adds a Liang pattern like `.ach4` or `4b1s`. Digits are the
// weights of the gaps between letters, missing digits count as 0.
func (d *Dictionary) addPattern(pattern string) error {
	letters := make([]rune, 0, len(pattern))
	weights := []int{0}
	for _, r := range pattern {
		if r >= '0' && r <= '9' {
			weights[len(weights)-1] = int(r - '0')
			continue
		}
		letters = append(letters, unicode.ToLower(r))
		weights = append(weights, 0)
	}
	if len(letters) == 0 {
		return core.Error(core.EINVALID, "invalid hyphenation pattern %q in %s", pattern, d.identifier)
	}
	d.patterns.Add(string(letters), weights)
	if len(letters) > d.maxlen {
		d.maxlen = len(letters)
	}
	return nil
}

// addException adds an exception word like `as-so-ciate`.
func (d *Dictionary) addException(word string) error {
	letters := make([]rune, 0, len(word))
	var positions []int
	for _, r := range word {
		if r == '-' {
			positions = append(positions, len(letters))
			continue
		}
		letters = append(letters, unicode.ToLower(r))
	}
	if len(letters) == 0 {
		return core.Error(core.EINVALID, "invalid hyphenation exception %q in %s", word, d.identifier)
	}
	d.exceptions[string(letters)] = positions
	return nil
}

// Identifier returns the name the dictionary has been loaded with.
func (d *Dictionary) Identifier() string {
	return d.identifier
}

// Limits returns a copy of d with different limits: words shorter than
// minLength runes are not hyphenated, and breaks leave at least minLeft runes
// before them and minRight runes after them. Values < 1 keep the current
// setting. Patterns are shared between d and the copy.
func (d *Dictionary) Limits(minLength, minLeft, minRight int) *Dictionary {
	c := *d
	if minLength > 0 {
		c.minLength = minLength
	}
	if minLeft > 0 {
		c.minLeft = minLeft
	}
	if minRight > 0 {
		c.minRight = minRight
	}
	return &c
}
