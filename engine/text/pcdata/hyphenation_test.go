package pcdata

import (
	"strings"
	"testing"

	"github.com/npillmayer/pcdata/engine/text/hyphenate"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// beautiful knows a single word.
var beautiful = HyphenatorFunc(func(word string, marker rune) string {
	if word == "beautiful" {
		m := string(marker)
		return "beau" + m + "ti" + m + "ful"
	}
	return word
})

func TestHyphenateWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcdata.text")
	defer teardown()
	//
	assert.Equal(t, "beau\u00adti\u00adful", Hyphenate("beautiful", beautiful))
	assert.Equal(t, "a beau\u00adti\u00adful\tday\n", Hyphenate("a beautiful\tday\n", beautiful))
	assert.Equal(t, "<em>beau\u00adti\u00adful</em> &amp; beau\u00adti\u00adful",
		Hyphenate("<em>beautiful</em> &amp; beautiful", beautiful))
	assert.Equal(t, "beautiful,", Hyphenate("beautiful,", beautiful), "stub does not know the word")
	assert.Equal(t, "beautiful", Hyphenate("beautiful", nil))
}

func TestHyphenateCodeAndLinks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcdata.text")
	defer teardown()
	//
	assert.Equal(t, "<code>a/\u200bb.\u200bc</code>", Hyphenate("<code>a/b.c</code>", beautiful))
	assert.Equal(t, "<code>beautiful</code>", Hyphenate("<code>beautiful</code>", beautiful))
	assert.Equal(t, `<code>C:\`+"\u200b"+`x_`+"\u200b"+`y,`+"\u200b"+`z-w</code>`,
		Hyphenate(`<code>C:\x_y,z-w</code>`, beautiful))
	assert.Equal(t, `<a href="https://go.dev">go.`+"\u200b"+`dev beautiful</a>`,
		Hyphenate(`<a href="https://go.dev">go.dev beautiful</a>`, beautiful))
	assert.Equal(t, `<a name="x">beau`+"\u00ad"+`ti`+"\u00ad"+`ful</a>`,
		Hyphenate(`<a name="x">beautiful</a>`, beautiful))
	assert.Equal(t, "<code>a/\u200bb.\u200bc</code>",
		Hyphenate("<code>a/\u200bb.\u200bc</code>", beautiful), "breaks are not doubled")
	// context is inherited after a closing tag
	assert.Equal(t, "<code>x</code> a.\u200bb", Hyphenate("<code>x</code> a.b", beautiful))
}

func TestHyphenatedHyphenIsCollapsed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcdata.text")
	defer teardown()
	//
	afterHyphen := HyphenatorFunc(func(word string, marker rune) string {
		return strings.ReplaceAll(word, "-", "-"+string(marker))
	})
	assert.Equal(t, "co-operate", Hyphenate("co-operate", afterHyphen))
	assert.Equal(t, "co-operate", Hyphenate("co-\u00adoperate", HyphenatorFunc(
		func(word string, marker rune) string { return word })))
}

func TestFailingHyphenators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcdata.text")
	defer teardown()
	//
	panicking := HyphenatorFunc(func(word string, marker rune) string {
		if word == "bad" {
			panic("no patterns for " + word)
		}
		return beautiful(word, marker)
	})
	assert.Equal(t, "a bad beau\u00adti\u00adful day", Hyphenate("a bad beautiful day", panicking))
	altering := HyphenatorFunc(func(word string, marker rune) string {
		return strings.ToUpper(word) + string(marker)
	})
	assert.Equal(t, "a beautiful day", Hyphenate("a beautiful day", altering))
}

func TestHyphenateWithLiangDictionary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcdata.text")
	defer teardown()
	//
	patterns := "\\patterns{\na1u ea2u\nu1t i1f\n}\n"
	dict, err := hyphenate.LoadPatterns("test", strings.NewReader(patterns))
	require.NoError(t, err)
	assert.Equal(t, "<p>A beau\u00adti\u00adful, Beau\u00adti\u00adful day.</p>",
		Hyphenate("<p>A beautiful, Beautiful day.</p>", dict))
	assert.Equal(t, "<code>beautiful</code>", Hyphenate("<code>beautiful</code>", dict))
}

func TestCodeBreaksKeepBytes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcdata.text")
	defer teardown()
	//
	in := "<code>a\xff/\xc3.b</code>"
	assert.Equal(t, "<code>a\xff/\u200b\xc3.\u200bb</code>", Hyphenate(in, beautiful))
}
