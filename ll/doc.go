/*
Package ll builds LL(1) decision tables from FIRST/FOLLOW tables.

A predictive parser with a non-terminal N on top of its stack and a lookahead
terminal a consults the decision table for one of four actions:

    Expand   a is in FIRST(N): apply N's production
    Skip     N is nullable and a may follow N: derive ε
    Pop      N is not nullable, but a may follow N: give up on N (error recovery)
    Scan     none of the above: discard a (error recovery)

End-of-input counts as a follower of every endable non-terminal. A cell with
two actions, i.e. a nullable non-terminal with a terminal in both its FIRST
and FOLLOW sets, is an LL(1) conflict.

The table is stored as a sparse matrix with one row per non-terminal and one
column per terminal ordinal. Scan is the null value and is not stored.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fftab.ll'.
func tracer() tracing.Trace {
	return tracing.Select("fftab.ll")
}
