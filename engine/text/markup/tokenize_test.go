package markup

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"
)

func TestTokenizeBroad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcdata.text")
	defer teardown()
	//
	tokens := Tokenize(`A <em>fine</em> &amp; &#8212; day`, Broad)
	assert.Equal(t, []Token{
		{Text, "A "},
		{Tag, "<em>"},
		{Text, "fine"},
		{Tag, "</em>"},
		{Text, " "},
		{Entity, "&amp;"},
		{Text, " "},
		{Entity, "&#8212;"},
		{Text, " day"},
	}, tokens)
}

func TestTokenizeNarrow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcdata.text")
	defer teardown()
	//
	tokens := Tokenize(`A <em>fine</em> &amp; day`, Narrow)
	assert.Equal(t, []Token{
		{Text, "A "},
		{Tag, "<em>"},
		{Text, "fine"},
		{Tag, "</em>"},
		{Text, " &amp; day"},
	}, tokens)
}

func TestTokenizeWithoutMarkup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcdata.text")
	defer teardown()
	//
	assert.Nil(t, Tokenize("", Broad))
	assert.Equal(t, []Token{{Text, "plain text"}}, Tokenize("plain text", Broad))
	// no well-formed entity and no '<': the whole string is text, '&' included
	assert.Equal(t, []Token{{Text, "Q&A & more"}}, Tokenize("Q&A & more", Broad))
	// an entity is text for narrow detection
	assert.Equal(t, []Token{{Text, "A&amp;B"}}, Tokenize("A&amp;B", Narrow))
}

func TestTokenizeStray(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcdata.text")
	defer teardown()
	//
	tokens := Tokenize("a & b <i>c</i> &AMP; 1 <> 2 <", Broad)
	assert.Equal(t, []Token{
		{Text, "a "},
		{Stray, "&"},
		{Text, " b "},
		{Tag, "<i>"},
		{Text, "c"},
		{Tag, "</i>"},
		{Text, " "},
		{Stray, "&"},
		{Text, "AMP; 1 "},
		{Stray, "<"},
		{Text, "> 2 "},
		{Stray, "<"},
	}, tokens)
	tokens = Tokenize("x < y", Narrow)
	assert.Equal(t, []Token{{Text, "x "}, {Stray, "<"}, {Text, " y"}}, tokens)
}

func TestTagSpansToFirstClosingBracket(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcdata.text")
	defer teardown()
	//
	tokens := Tokenize(`<a href="x&amp;y">a > b`, Broad)
	assert.Equal(t, []Token{
		{Tag, `<a href="x&amp;y">`},
		{Text, "a > b"},
	}, tokens)
}

func TestHasMarkup(t *testing.T) {
	assert.True(t, HasMarkup("a < b", Broad))
	assert.True(t, HasMarkup("a < b", Narrow))
	assert.True(t, HasMarkup("x&#x2f;y", Broad))
	assert.True(t, HasMarkup("fish &amp; chips", Broad))
	assert.False(t, HasMarkup("fish &amp; chips", Narrow))
	assert.False(t, HasMarkup("fish & chips &", Broad))
	assert.False(t, HasMarkup("&AMP;", Broad))
	assert.False(t, HasMarkup("&;", Broad))
}

func TestTokensReconstructInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcdata.text")
	defer teardown()
	//
	inputs := []string{
		"",
		"plain",
		"<code>a/b.c</code>",
		"a&&b;;<<x>>&#;&#12;&x;",
		"<<<",
		">>><<",
		"Grüße <b>aus</b> Köln &mdash; ﬁne",
		"unterminated <tag and &entity",
		"<p>\n<a href='x'>\nlink</a>\n</p>",
	}
	for _, in := range inputs {
		for _, d := range []Detection{Broad, Narrow} {
			tokens := Tokenize(in, d)
			assert.Equal(t, in, Concat(tokens), "input %q, %s detection", in, d)
			for i, tok := range tokens {
				assert.NotEmpty(t, tok.Raw)
				if i > 0 && tok.Kind == Text {
					assert.NotEqual(t, Text, tokens[i-1].Kind, "text runs must be maximal")
				}
				if d == Narrow {
					assert.NotEqual(t, Entity, tok.Kind)
				}
			}
		}
	}
}

// Tags found by Tokenize must be the tags an HTML tokenizer sees, for
// well-formed inline fragments.
func TestTagsAgreeWithHTMLTokenizer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcdata.text")
	defer teardown()
	//
	fragments := []string{
		`<p>Hello <b>World</b> &amp; <a href="https://x.org/a_b">link</a></p>`,
		`Use <code>os.Open</code>, then <em>close</em> it.<br/>`,
		`<strong class="x">ﬁne</strong> &#8212; <span>done</span>`,
	}
	for _, frag := range fragments {
		var expected []string
		z := html.NewTokenizer(strings.NewReader(frag))
		for {
			tt := z.Next()
			if tt == html.ErrorToken {
				break
			}
			switch tt {
			case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
				expected = append(expected, string(z.Raw()))
			}
		}
		var tags []string
		for _, tok := range Tokenize(frag, Broad) {
			if tok.Kind == Tag {
				tags = append(tags, tok.Raw)
			}
		}
		assert.Equal(t, expected, tags, "fragment %q", frag)
	}
}
