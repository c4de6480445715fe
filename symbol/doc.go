/*
Package symbol defines the vocabulary of grammar symbols.

Terminals are token kinds of a lexer. They form a closed alphabet, which is agreed
upon between fftab and the lexer/parser the emitted tables are written for. Terminal
names are validated against the alphabet as early as possible, i.e. when a table
row is parsed.

    a := symbol.DefaultAlphabet()
    plus, err := a.Terminal("plus")   // Terminal(plus)
    _, err = a.Terminal("foo")        // *InvalidSymbolError

Non-terminals are reserved as a symbol kind, but FIRST and FOLLOW sets handled by
this module contain terminals only.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package symbol

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fftab.symbol'.
func tracer() tracing.Trace {
	return tracing.Select("fftab.symbol")
}
