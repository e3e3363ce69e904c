package pcdata

import (
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/pcdata/core"
)

// LigatureTable is an ordered mapping from letter sequences to ligature
// glyphs. Entries are applied in the order they have been declared, so
// longer sequences must precede the sequences they contain ("ffi" before "fi").
//
// A LigatureTable is read-only after construction.
type LigatureTable struct {
	entries *linkedhashmap.Map
}

var defaultLigatures = mustLigatureTable(
	"fi", "\ufb01",
	"fl", "\ufb02",
)

// DefaultLigatures returns the standard table: "fi" → U+FB01, "fl" → U+FB02.
func DefaultLigatures() *LigatureTable {
	return defaultLigatures
}

// NewLigatureTable creates a table from pairs of sequence and glyph, e.g.
//
//     NewLigatureTable("ffi", "ﬃ", "ffl", "ﬄ", "ff", "ﬀ", "fi", "ﬁ", "fl", "ﬂ")
//
func NewLigatureTable(pairs ...string) (*LigatureTable, error) {
	if len(pairs)%2 != 0 {
		return nil, core.Error(core.EINVALID, "ligature table needs pairs, got %d strings", len(pairs))
	}
	m := linkedhashmap.New()
	for i := 0; i < len(pairs); i += 2 {
		if pairs[i] == "" {
			return nil, core.Error(core.EINVALID, "empty letter sequence for ligature %q", pairs[i+1])
		}
		m.Put(pairs[i], pairs[i+1])
	}
	return &LigatureTable{entries: m}, nil
}

func mustLigatureTable(pairs ...string) *LigatureTable {
	lt, err := NewLigatureTable(pairs...)
	if err != nil {
		panic(err)
	}
	return lt
}

// Apply replaces every occurrence of every sequence of the table, entry by
// entry, non-overlapping and from left to right.
func (lt *LigatureTable) Apply(text string) string {
	it := lt.entries.Iterator()
	for it.Next() {
		text = strings.ReplaceAll(text, it.Key().(string), it.Value().(string))
	}
	return text
}

// Len returns the number of entries.
func (lt *LigatureTable) Len() int {
	return lt.entries.Size()
}
