/*
Package table parses hand-authored FIRST/FOLLOW tables.

A table is a block of text with one row per non-terminal. Columns are delimited
by '|' and hold the non-terminal's name, a nullable marker, an endable marker,
the FIRST list and the FOLLOW list:

    | Non-Terminal | Nullable | Endable | First           | Follow                  |
    |--------------|----------|---------|-----------------|-------------------------|
    |    ADDOP     |          |         | plus, minus, or | plus, minus, id, intlit |
    |  EXPRAMB1    | Nullable |         | eq, neq         | rpar, semi              |

White space is insignificant and is removed before a row is interpreted, thus
column alignment is purely cosmetic. Blank lines are skipped, as are a header row
and separator lines preceding the data rows.

Parsing is all-or-nothing: a single defective row aborts the run with an error
naming the row, the source line, the field and the non-terminal, and no table is
returned.

    t, err := table.Parse(reader, symbol.DefaultAlphabet())
    if err != nil {
        ...                                  // *MalformedRowError, *DuplicateNonTerminalError
    }
    for _, finding := range table.Lint(t) {  // authoring problems which do not abort
        ...
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package table

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fftab.table'.
func tracer() tracing.Trace {
	return tracing.Select("fftab.table")
}
