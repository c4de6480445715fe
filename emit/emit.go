package emit

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/cnf/structhash"
	"github.com/npillmayer/fftab/symbol"
	"github.com/npillmayer/fftab/table"
)

// SetKind tells a FIRST set from a FOLLOW set.
type SetKind int8

// Kinds of symbol sets.
const (
	First SetKind = iota
	Follow
)

// Suffix returns the suffix of declaration names for this kind.
func (k SetKind) Suffix() string {
	if k == Follow {
		return "_FOLLOW"
	}
	return "_FIRST"
}

// Declaration is a named, ordered symbol set.
type Declaration struct {
	Name        string // e.g. "ADDOP_FIRST"
	NonTerminal string
	Kind        SetKind
	Symbols     []symbol.Symbol
}

func (d Declaration) String() string {
	syms := make([]string, len(d.Symbols))
	for i, s := range d.Symbols {
		syms[i] = s.String()
	}
	return fmt.Sprintf("%s = [%s]", d.Name, strings.Join(syms, ", "))
}

// Declarations returns two declarations per non-terminal, FIRST before FOLLOW,
// in table order.
func Declarations(t *table.Table) []Declaration {
	decls := make([]Declaration, 0, 2*t.Len())
	t.Each(func(i int, nt *table.NonTerminalSpec) {
		first, follow := Pair(nt)
		decls = append(decls, first, follow)
	})
	tracer().Debugf("%d declarations", len(decls))
	return decls
}

// Pair returns the FIRST and FOLLOW declarations of a single non-terminal.
func Pair(nt *table.NonTerminalSpec) (first, follow Declaration) {
	return declaration(nt, First, nt.First()), declaration(nt, Follow, nt.Follow())
}

func declaration(nt *table.NonTerminalSpec, kind SetKind, syms []symbol.Symbol) Declaration {
	return Declaration{
		Name:        nt.Name() + kind.Suffix(),
		NonTerminal: nt.Name(),
		Kind:        kind,
		Symbols:     syms,
	}
}

// --- Fingerprint -----------------------------------------------------------

type fingerprintRow struct {
	Name     string
	Nullable bool
	Endable  bool
	First    []string
	Follow   []string
}

type fingerprintTable struct {
	Rows []fingerprintRow
}

// Fingerprint returns a hash over the content of a table. Tables differing
// only in white space or alignment of the source text have equal fingerprints.
func Fingerprint(t *table.Table) (string, error) {
	ft := fingerprintTable{Rows: make([]fingerprintRow, 0, t.Len())}
	t.Each(func(i int, nt *table.NonTerminalSpec) {
		ft.Rows = append(ft.Rows, fingerprintRow{
			Name:     nt.Name(),
			Nullable: nt.Nullable(),
			Endable:  nt.Endable(),
			First:    names(nt.First()),
			Follow:   names(nt.Follow()),
		})
	})
	return structhash.Hash(ft, 1)
}

func names(syms []symbol.Symbol) []string {
	n := make([]string, len(syms))
	for i, s := range syms {
		n[i] = s.Name()
	}
	return n
}

// --- Listing ---------------------------------------------------------------

// WriteListing writes all declarations of t, one per line, preceded by a
// comment line holding the fingerprint.
func WriteListing(w io.Writer, t *table.Table) error {
	fp, err := Fingerprint(t)
	if err != nil {
		return err
	}
	var b bytes.Buffer
	fmt.Fprintf(&b, "# fftab listing, fingerprint %s\n", fp)
	for _, d := range Declarations(t) {
		b.WriteString(d.String())
		b.WriteByte('\n')
	}
	_, err = w.Write(b.Bytes())
	return err
}
