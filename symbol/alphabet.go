package symbol

import (
	"bufio"
	_ "embed" // For go:embed.
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// Alphabet is the closed, ordered set of terminals a table may reference.
// The position of a terminal within the alphabet is its ordinal, which is
// the enumeration value used in generated code and in decision tables.
type Alphabet struct {
	terminals []Symbol
	ordinals  map[string]int
	goNames   []string
}

// NewAlphabet creates an alphabet from a list of terminal names. Go identifiers
// are derived from the names.
func NewAlphabet(names ...string) (*Alphabet, error) {
	a := &Alphabet{ordinals: make(map[string]int, len(names))}
	for _, name := range names {
		if err := a.add(name, ""); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// ReadAlphabet reads an alphabet definition. Every non-blank line holds a terminal
// name, optionally followed by the Go identifier to use for it in generated code.
// Text following a '#' is a comment.
func ReadAlphabet(r io.Reader) (*Alphabet, error) {
	a := &Alphabet{ordinals: make(map[string]int)}
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := stripComment(scanner.Text())
		fields := strings.Fields(line)
		switch len(fields) {
		case 0:
			continue
		case 1, 2:
			goName := ""
			if len(fields) == 2 {
				goName = fields[1]
			}
			if err := a.add(fields[0], goName); err != nil {
				return nil, fmt.Errorf("alphabet line %d: %w", lineno, err)
			}
		default:
			return nil, fmt.Errorf("alphabet line %d: expected 'name [go-name]', have %q", lineno, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if a.Size() == 0 {
		return nil, fmt.Errorf("alphabet is empty")
	}
	tracer().Debugf("read alphabet of %d terminals", a.Size())
	return a, nil
}

// A comment starts with a '#' at the beginning of a line or after white space.
func stripComment(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] == '#' && (i == 0 || line[i-1] == ' ' || line[i-1] == '\t') {
			return line[:i]
		}
	}
	return line
}

func (a *Alphabet) add(name, goName string) error {
	t, err := T(name)
	if err != nil {
		return err
	}
	if _, dup := a.ordinals[name]; dup {
		return fmt.Errorf("duplicate terminal %q in alphabet", name)
	}
	if goName == "" {
		goName = deriveGoName(name)
	} else if !identRE.MatchString(goName) {
		return fmt.Errorf("terminal %q: %q is not a valid Go identifier", name, goName)
	}
	for i, other := range a.goNames {
		if other == goName {
			return fmt.Errorf("terminals %q and %q share Go name %q", a.terminals[i].name, name, goName)
		}
	}
	a.ordinals[name] = len(a.terminals)
	a.terminals = append(a.terminals, t)
	a.goNames = append(a.goNames, goName)
	return nil
}

func deriveGoName(name string) string {
	if name == EOF {
		return "EOF"
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}

// Terminal returns the terminal for name. It fails with an *InvalidSymbolError
// if name is malformed or not part of the alphabet.
func (a *Alphabet) Terminal(name string) (Symbol, error) {
	if !validName(name) {
		return Symbol{}, &InvalidSymbolError{Name: name, Reason: "malformed terminal name"}
	}
	i, ok := a.ordinals[name]
	if !ok {
		return Symbol{}, &InvalidSymbolError{Name: name, Reason: "not in terminal alphabet"}
	}
	return a.terminals[i], nil
}

// MustTerminal is like Terminal, but panics for unknown names.
// It is intended for tests and for static initialization.
func (a *Alphabet) MustTerminal(name string) Symbol {
	t, err := a.Terminal(name)
	if err != nil {
		panic(err)
	}
	return t
}

// Contains is true if name denotes a terminal of a.
func (a *Alphabet) Contains(name string) bool {
	_, ok := a.ordinals[name]
	return ok
}

// Ordinal returns the enumeration value of terminal t.
func (a *Alphabet) Ordinal(t Symbol) (int, bool) {
	if !t.IsTerminal() {
		return -1, false
	}
	i, ok := a.ordinals[t.name]
	return i, ok
}

// Size returns the number of terminals.
func (a *Alphabet) Size() int {
	return len(a.terminals)
}

// Terminals returns all terminals in enumeration order.
func (a *Alphabet) Terminals() []Symbol {
	return append([]Symbol(nil), a.terminals...)
}

// At returns the terminal with ordinal i.
func (a *Alphabet) At(i int) Symbol {
	return a.terminals[i]
}

// GoName returns the Go identifier suffix for terminal t, or the empty string
// if t is not part of a.
func (a *Alphabet) GoName(t Symbol) string {
	if i, ok := a.Ordinal(t); ok {
		return a.goNames[i]
	}
	return ""
}

// EOF returns the end-of-input terminal, if the alphabet has one.
func (a *Alphabet) EOF() (Symbol, bool) {
	i, ok := a.ordinals[EOF]
	if !ok {
		return Symbol{}, false
	}
	return a.terminals[i], true
}

// --- Default alphabet ------------------------------------------------------

//go:embed terminals.txt
var defaultTerminals string

var defaultAlphabet *Alphabet
var defaultOnce sync.Once

// DefaultAlphabet returns the token kinds of the default lexer.
func DefaultAlphabet() *Alphabet {
	defaultOnce.Do(func() {
		a, err := ReadAlphabet(strings.NewReader(defaultTerminals))
		if err != nil {
			panic(fmt.Errorf("embedded terminal alphabet: %w", err))
		}
		defaultAlphabet = a
	})
	return defaultAlphabet
}
