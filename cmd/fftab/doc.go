/*
Command fftab compiles FIRST/FOLLOW tables into Go declarations.

Usage:

    fftab gen grammar.md -o tables.go --package parser
    fftab gen grammar.md --format listing
    fftab gen grammar.md --format html -o decisions.html
    fftab lint grammar.md --strict
    fftab show grammar.md
    fftab repl grammar.md

Tables reference terminals of the built-in lexer alphabet unless an alphabet
file is given with --alphabet. An alphabet file lists one terminal per line,
optionally followed by the Go identifier to use for it; '#' starts a comment.

Output files are written only if compilation succeeds.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fftab.cli'
func tracer() tracing.Trace {
	return tracing.Select("fftab.cli")
}
