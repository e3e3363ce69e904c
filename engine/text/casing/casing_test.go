package casing

import (
	"testing"

	"github.com/npillmayer/pcdata/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestUnicodeCasing(t *testing.T) {
	c := Unicode(language.Und)
	assert.Equal(t, "STRASSE", c.Uppercase("straße"))
	assert.Equal(t, "äöü", c.Lowercase("ÄÖÜ"))
	assert.Equal(t, "Élan", c.Capitalize("élan"))
	assert.Equal(t, "Hello", c.Capitalize("hELLO"))
	assert.Equal(t, "(hello", c.Capitalize("(HELLO"))
	assert.Equal(t, "", c.Capitalize(""))
	assert.Equal(t, "ΟΔΥΣΣΕΥΣ", c.Uppercase("Οδυσσευς"))
}

func TestTurkishCasing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcdata.text")
	defer teardown()
	//
	c, err := Select("auto", language.Turkish)
	require.NoError(t, err)
	assert.Equal(t, "İSTANBUL", c.Uppercase("istanbul"))
	assert.Equal(t, "ırmak", c.Lowercase("IRMAK"))
	assert.Equal(t, "İzmir", c.Capitalize("izmir"))
}

func TestASCIICasing(t *testing.T) {
	c := ASCII()
	assert.Equal(t, "GRüßE", c.Uppercase("grüße"))
	assert.Equal(t, "Äbc", c.Lowercase("ÄBC"))
	assert.Equal(t, "Hello, world", c.Capitalize("hELLO, WORLD"))
	assert.Equal(t, "élan", c.Capitalize("élan"))
	s := "unchanged 123"
	assert.Equal(t, s, c.Lowercase(s))
}

func TestFastPathMatchesGeneralPath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcdata.text")
	defer teardown()
	//
	inputs := []string{"", "hello", "HELLO", "hELLo wOrLD", "a1-b2_c3", "{[x]}", "\t\n ", "@`[{"}
	for _, tag := range []language.Tag{language.Und, language.English, language.German, language.Dutch} {
		general := Unicode(tag)
		fast := WithASCIIFastPath(general, tag)
		for _, in := range inputs {
			assert.Equal(t, general.Uppercase(in), fast.Uppercase(in), "upper %q (%s)", in, tag)
			assert.Equal(t, general.Lowercase(in), fast.Lowercase(in), "lower %q (%s)", in, tag)
			assert.Equal(t, general.Capitalize(in), fast.Capitalize(in), "capitalize %q (%s)", in, tag)
		}
		// non-ASCII input goes to the general path
		assert.Equal(t, "GRÜSSE", fast.Uppercase("grüße"))
	}
}

func TestSelect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcdata.text")
	defer teardown()
	//
	for _, name := range []string{"", "auto", "Unicode", "ascii"} {
		c, err := Select(name, language.English)
		require.NoError(t, err, name)
		assert.Equal(t, "ABC", c.Uppercase("abc"))
	}
	_, err := Select("klingon", language.English)
	require.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestParseLanguage(t *testing.T) {
	tag, err := ParseLanguage("en_US")
	require.NoError(t, err)
	assert.Equal(t, "en-US", tag.String())
	tag, err = ParseLanguage("")
	require.NoError(t, err)
	assert.Equal(t, language.Und, tag)
	_, err = ParseLanguage("not a language!")
	assert.Equal(t, core.EINVALID, core.Code(err))
}
