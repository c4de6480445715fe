package table

import (
	"fmt"
	"strings"

	"github.com/npillmayer/fftab"
)

// Fields of a table row, as named in error messages.
const (
	FieldName     = "name"
	FieldNullable = "nullable"
	FieldEndable  = "endable"
	FieldFirst    = "first"
	FieldFollow   = "follow"
)

// MalformedRowError reports a structural defect in a table row: a wrong number of
// columns, an unrecognized flag, an empty required field or an unknown terminal.
// For unknown terminals, Err is a *symbol.InvalidSymbolError.
type MalformedRowError struct {
	Row         int    // data row, counting from 1
	Line        int    // source line, counting from 1
	Field       string // offending field, empty if the row as a whole is defective
	NonTerminal string // name of the non-terminal, if known
	Reason      string
	Err         error
	Span        fftab.Span // position of the field within the row, white space removed
}

func (e *MalformedRowError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "MalformedRow(row %d, line %d)", e.Row, e.Line)
	if e.NonTerminal != "" {
		fmt.Fprintf(&b, " %s", e.NonTerminal)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " [%s]", e.Field)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	if e.Err != nil {
		if e.Reason != "" {
			b.WriteString(": ")
		}
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *MalformedRowError) Unwrap() error {
	return e.Err
}

// DuplicateNonTerminalError reports a second row for a non-terminal.
type DuplicateNonTerminalError struct {
	Name      string
	Row       int // data row of the duplicate, counting from 1
	Line      int // source line of the duplicate
	FirstLine int // source line of the first definition
}

func (e *DuplicateNonTerminalError) Error() string {
	return fmt.Sprintf("DuplicateNonTerminal(%s): row %d (line %d) redefines non-terminal of line %d",
		e.Name, e.Row, e.Line, e.FirstLine)
}
