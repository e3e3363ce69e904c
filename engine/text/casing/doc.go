/*
Package casing provides capitalization and case folding of text runs.

A Capability is selected once, when a client configures its transformer,
and then used for every text run. Backends differ in coverage:

    unicode   full Unicode case mapping with language specific rules
    auto      like unicode, plus a byte-level path for ASCII-only input
    ascii     maps ASCII letters only, leaves everything else alone

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package casing

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcdata.text'.
func tracer() tracing.Trace {
	return tracing.Select("pcdata.text")
}
