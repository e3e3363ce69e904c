/*
Package markup splits strings with inline markup into a stream of tokens.

The markup recognized is a small subset of XML: tags (`<...>`) and character
entities (`&amp;`, `&#8212;`). There is no document model, no nesting and no
validation. Every byte of the input ends up in exactly one token, and the raw
texts of all tokens concatenate to the input.

Two detection modes exist. Broad detection treats tags and entities as markup.
Narrow detection treats only tags as markup and leaves entities inside of text
tokens. Which mode a client uses is part of the client's contract.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markup

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcdata.text'.
func tracer() tracing.Trace {
	return tracing.Select("pcdata.text")
}
