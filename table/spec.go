package table

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/fftab/symbol"
)

// NonTerminalSpec holds the parsing metadata of a single non-terminal.
// It is immutable once constructed.
type NonTerminalSpec struct {
	name     string
	nullable bool
	endable  bool
	first    []symbol.Symbol
	follow   []symbol.Symbol
	line     int // source line, 0 if not parsed from text
}

// NewNonTerminalSpec creates a spec for non-terminal name. first must not be empty,
// and neither first nor follow may contain duplicates or non-terminals.
func NewNonTerminalSpec(name string, nullable, endable bool, first, follow []symbol.Symbol) (*NonTerminalSpec, error) {
	if _, err := symbol.N(name); err != nil {
		return nil, err
	}
	if len(first) == 0 {
		return nil, fmt.Errorf("non-terminal %s: FIRST set is empty", name)
	}
	if err := checkSymbols(first); err != nil {
		return nil, fmt.Errorf("non-terminal %s: FIRST set: %w", name, err)
	}
	if err := checkSymbols(follow); err != nil {
		return nil, fmt.Errorf("non-terminal %s: FOLLOW set: %w", name, err)
	}
	return &NonTerminalSpec{
		name:     name,
		nullable: nullable,
		endable:  endable,
		first:    append([]symbol.Symbol(nil), first...),
		follow:   append([]symbol.Symbol(nil), follow...),
	}, nil
}

func checkSymbols(syms []symbol.Symbol) error {
	seen := make(map[symbol.Symbol]bool, len(syms))
	for _, s := range syms {
		if !s.IsTerminal() {
			return &symbol.InvalidSymbolError{Name: s.Name(), Reason: "not a terminal"}
		}
		if seen[s] {
			return fmt.Errorf("duplicate terminal %q", s.Name())
		}
		seen[s] = true
	}
	return nil
}

// Name returns the name of the non-terminal.
func (nt *NonTerminalSpec) Name() string {
	return nt.name
}

// Nullable is true if the non-terminal derives the empty string.
func (nt *NonTerminalSpec) Nullable() bool {
	return nt.nullable
}

// Endable is true if the non-terminal may be the last symbol before end-of-input.
func (nt *NonTerminalSpec) Endable() bool {
	return nt.endable
}

// First returns the FIRST set in authoring order.
func (nt *NonTerminalSpec) First() []symbol.Symbol {
	return append([]symbol.Symbol(nil), nt.first...)
}

// Follow returns the FOLLOW set in authoring order.
func (nt *NonTerminalSpec) Follow() []symbol.Symbol {
	return append([]symbol.Symbol(nil), nt.follow...)
}

// Line returns the source line the spec has been parsed from, or 0.
func (nt *NonTerminalSpec) Line() int {
	return nt.line
}

func (nt *NonTerminalSpec) String() string {
	var b strings.Builder
	b.WriteString(nt.name)
	if nt.nullable {
		b.WriteString(" (nullable)")
	}
	if nt.endable {
		b.WriteString(" (endable)")
	}
	b.WriteString(" FIRST=")
	b.WriteString(symbolList(nt.first))
	b.WriteString(" FOLLOW=")
	b.WriteString(symbolList(nt.follow))
	return b.String()
}

func symbolList(syms []symbol.Symbol) string {
	names := make([]string, len(syms))
	for i, s := range syms {
		names[i] = s.Name()
	}
	return "{" + strings.Join(names, ",") + "}"
}

// --- Tables ----------------------------------------------------------------

// Table is an ordered collection of non-terminal specs, keyed by name.
// Iteration order is the order of the rows in the source text.
type Table struct {
	rows *linkedhashmap.Map // name -> *NonTerminalSpec
}

// NewTable creates a table from specs, keeping their order. Two specs with the
// same name result in a *DuplicateNonTerminalError.
func NewTable(specs ...*NonTerminalSpec) (*Table, error) {
	t := &Table{rows: linkedhashmap.New()}
	for i, nt := range specs {
		if err := t.add(i+1, nt); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Table) add(row int, nt *NonTerminalSpec) error {
	if prev, found := t.rows.Get(nt.name); found {
		return &DuplicateNonTerminalError{
			Name:      nt.name,
			Row:       row,
			Line:      nt.line,
			FirstLine: prev.(*NonTerminalSpec).line,
		}
	}
	t.rows.Put(nt.name, nt)
	return nil
}

// Len returns the number of non-terminals.
func (t *Table) Len() int {
	return t.rows.Size()
}

// Lookup finds the spec for a non-terminal.
func (t *Table) Lookup(name string) (*NonTerminalSpec, bool) {
	v, found := t.rows.Get(name)
	if !found {
		return nil, false
	}
	return v.(*NonTerminalSpec), true
}

// Specs returns all specs in row order.
func (t *Table) Specs() []*NonTerminalSpec {
	specs := make([]*NonTerminalSpec, 0, t.rows.Size())
	it := t.rows.Iterator()
	for it.Next() {
		specs = append(specs, it.Value().(*NonTerminalSpec))
	}
	return specs
}

// Each calls f for every spec, in row order.
func (t *Table) Each(f func(i int, nt *NonTerminalSpec)) {
	i := 0
	it := t.rows.Iterator()
	for it.Next() {
		f(i, it.Value().(*NonTerminalSpec))
		i++
	}
}
