package symbol

import (
	"fmt"
	"regexp"
)

// Kind tags a grammar symbol.
type Kind int8

// Symbol kinds.
const (
	TerminalKind Kind = iota
	NonTerminalKind
)

func (k Kind) String() string {
	switch k {
	case TerminalKind:
		return "Terminal"
	case NonTerminalKind:
		return "NonTerminal"
	}
	return fmt.Sprintf("Kind(%d)", int8(k))
}

// EOF is the name of the end-of-input terminal.
const EOF = "$"

// Symbol is a grammar symbol, either a terminal or a non-terminal.
// Symbols are comparable with == and may be used as map keys.
type Symbol struct {
	kind Kind
	name string
}

var identRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func validName(name string) bool {
	return name == EOF || identRE.MatchString(name)
}

// T creates a terminal symbol, independent of any alphabet. It fails with an
// *InvalidSymbolError if name is empty or malformed.
func T(name string) (Symbol, error) {
	if !validName(name) {
		return Symbol{}, &InvalidSymbolError{Name: name, Reason: "malformed terminal name"}
	}
	return Symbol{kind: TerminalKind, name: name}, nil
}

// N creates a non-terminal symbol. Non-terminals are not produced by the table
// parser; the kind is reserved for extensions.
func N(name string) (Symbol, error) {
	if name == EOF || !validName(name) {
		return Symbol{}, &InvalidSymbolError{Name: name, Reason: "malformed non-terminal name"}
	}
	return Symbol{kind: NonTerminalKind, name: name}, nil
}

// Name returns the symbol's name.
func (s Symbol) Name() string {
	return s.name
}

// Kind returns the symbol's kind.
func (s Symbol) Kind() Kind {
	return s.kind
}

// IsTerminal is true for terminals.
func (s Symbol) IsTerminal() bool {
	return s.kind == TerminalKind && s.name != ""
}

// IsEOF is true for the end-of-input terminal.
func (s Symbol) IsEOF() bool {
	return s.IsTerminal() && s.name == EOF
}

// IsNull is true for the zero value.
func (s Symbol) IsNull() bool {
	return s.name == ""
}

func (s Symbol) String() string {
	if s.IsNull() {
		return "<null>"
	}
	return fmt.Sprintf("%s(%s)", s.kind, s.name)
}

// --- Errors ----------------------------------------------------------------

// InvalidSymbolError is returned for a symbol name which is malformed or which
// is not part of the terminal alphabet.
type InvalidSymbolError struct {
	Name   string
	Reason string
}

func (e *InvalidSymbolError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("InvalidSymbol(%q)", e.Name)
	}
	return fmt.Sprintf("InvalidSymbol(%q): %s", e.Name, e.Reason)
}
