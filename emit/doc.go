/*
Package emit serializes FIRST/FOLLOW tables.

For every non-terminal NAME, two declarations are produced: NAME_FIRST and
NAME_FOLLOW. Each holds the terminals of the corresponding set in the order
they have been authored in; there is no sorting and no de-duplication, so the
output may be diffed against the source table.

Two renderings are provided:

■ WriteGo produces a Go source file, to be embedded into a predictive parser.
The file declares an enumeration type for the terminal alphabet, the symbol
sets as package level variables and a table of all non-terminals.

■ WriteListing produces a plain listing, one declaration per line:

    ADDOP_FIRST = [Terminal(plus), Terminal(minus), Terminal(or)]

Both renderings carry a fingerprint of the table's content.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package emit

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fftab.emit'.
func tracer() tracing.Trace {
	return tracing.Select("fftab.emit")
}
