/*
Package hyphenate finds hyphenation points in words.

The algorithm is the one described by Frank Liang
(F.M.Liang http://www.tug.org/docs/liang/), which is also used by TeX.
A Dictionary is loaded from a pattern file as distributed with TeX
(e.g., hyph-en-us.tex), consisting of a \patterns{…} block and an optional
\hyphenation{…} block of exception words. Patterns are stored in a trie.

A Dictionary is immutable after loading and may be shared between goroutines.

Further Reading

    http://www.mnn.ch/hyph/hyphenation2.html
    https://nedbatchelder.com/code/modules/hyphenate.html   (Python implementation)

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hyphenate

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcdata.hyphenate'.
func tracer() tracing.Trace {
	return tracing.Select("pcdata.hyphenate")
}
