/*
Package pcdata transforms the character data of strings with inline markup.

Input strings may contain tags and character entities, e.g.

    Use <code>os.Open</code> &amp; friends, see <a href="https://go.dev">go.dev</a>

Transformations apply to text between markup only. Tags and entities are
copied unchanged. Four families of transformations exist:

    Ligaturize        replace letter sequences by ligature glyphs ("fi" → "ﬁ")
    CapitalizeWords   capitalize every white-space delimited word
    Uppercase         case folding of text runs
    Lowercase
    Hyphenate         insert soft hyphens at hyphenation points

Ligaturize and Hyphenate depend on the most recently opened tag: text in a
<code> span gets no ligatures and, like text in a hyperlink, is not hyphenated.
Instead, code and links receive zero-width break opportunities after path and
identifier punctuation.

Lowercase recognizes tags only, whereas all other transformations recognize
tags and entities. Entities are therefore exposed to Lowercase.

All transformations are pure functions and safe for concurrent use.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pcdata

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcdata.text'.
func tracer() tracing.Trace {
	return tracing.Select("pcdata.text")
}
