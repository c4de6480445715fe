package table

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/npillmayer/fftab"
	"github.com/npillmayer/fftab/symbol"
	"github.com/npillmayer/fftab/table/scanner"
)

// Default flag tokens for the marker columns.
const (
	DefaultNullableFlag = "Nullable"
	DefaultEndableFlag  = "Endable"
)

const columnCount = 5 // name | nullable | endable | first | follow

// maxLineLength limits the length of a single table row.
const maxLineLength = 1 << 20

var rowLexer *scanner.LMAdapter
var rowLexerErr error
var lexerOnce sync.Once // monitors one-time compilation of the row lexer

func compiledRowLexer() (*scanner.LMAdapter, error) {
	lexerOnce.Do(func() {
		tracer().Infof("Creating row lexer")
		rowLexer, rowLexerErr = scanner.NewRowLexer()
	})
	return rowLexer, rowLexerErr
}

// Parser reads FIRST/FOLLOW tables. A parser may be used for more than one
// table, but not concurrently.
type Parser struct {
	alphabet     *symbol.Alphabet
	lexer        *scanner.LMAdapter
	nullableFlag string
	endableFlag  string
	concurrency  int
	header       headerMode
}

type headerMode int8

const (
	headerAuto headerMode = iota
	headerPresent
	headerAbsent
)

// Option configures a parser.
type Option func(p *Parser)

// NullableFlag sets the token which marks a non-terminal as nullable.
func NullableFlag(token string) Option {
	return func(p *Parser) {
		p.nullableFlag = compact(token)
	}
}

// EndableFlag sets the token which marks a non-terminal as endable.
func EndableFlag(token string) Option {
	return func(p *Parser) {
		p.endableFlag = compact(token)
	}
}

// Concurrency sets the number of goroutines interpreting rows. Rows are
// independent of each other; results are re-assembled in row order, thus the
// resulting table does not depend on n.
func Concurrency(n int) Option {
	return func(p *Parser) {
		p.concurrency = n
	}
}

// Header tells whether the first non-blank line of a table is a header row.
// Without this option a header row is recognized either by a separator line
// following it, or by FIRST and FOLLOW columns titled "First…" and "Follow…".
func Header(present bool) Option {
	return func(p *Parser) {
		if present {
			p.header = headerPresent
		} else {
			p.header = headerAbsent
		}
	}
}

// NewParser creates a parser for tables referencing terminals of alphabet a.
func NewParser(a *symbol.Alphabet, opts ...Option) (*Parser, error) {
	if a == nil {
		return nil, errors.New("parser needs a terminal alphabet")
	}
	lexer, err := compiledRowLexer()
	if err != nil {
		return nil, err
	}
	p := &Parser{
		alphabet:     a,
		lexer:        lexer,
		nullableFlag: DefaultNullableFlag,
		endableFlag:  DefaultEndableFlag,
		concurrency:  1,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.nullableFlag == "" || p.endableFlag == "" {
		return nil, errors.New("flag tokens must not be empty")
	}
	if strings.ContainsAny(p.nullableFlag+p.endableFlag, "|,") {
		return nil, errors.New("flag tokens must not contain delimiters")
	}
	return p, nil
}

// Parse reads a table from r, using a parser configured with opts.
func Parse(r io.Reader, a *symbol.Alphabet, opts ...Option) (*Table, error) {
	p, err := NewParser(a, opts...)
	if err != nil {
		return nil, err
	}
	return p.Parse(r)
}

// ParseString reads a table from a string, using a parser configured with opts.
func ParseString(s string, a *symbol.Alphabet, opts ...Option) (*Table, error) {
	return Parse(strings.NewReader(s), a, opts...)
}

// row is a data row, ready to be interpreted.
type row struct {
	index int    // data row, counting from 1
	line  int    // source line, counting from 1
	text  string // compacted text
}

// Parse reads a table from r. It either returns a complete table or an error,
// never a partial table.
func (p *Parser) Parse(r io.Reader) (*Table, error) {
	rows, err := p.dataRows(r)
	if err != nil {
		return nil, err
	}
	specs := make([]*NonTerminalSpec, len(rows))
	errs := make([]error, len(rows))
	if p.concurrency > 1 && len(rows) > 1 {
		p.interpretConcurrently(rows, specs, errs)
	} else {
		for i, rw := range rows {
			specs[i], errs[i] = p.interpret(rw)
		}
	}
	for _, err := range errs { // report the first error in row order
		if err != nil {
			tracer().Errorf("%v", err)
			return nil, err
		}
	}
	t, err := NewTable()
	if err != nil {
		return nil, err
	}
	for i, nt := range specs {
		if err := t.add(rows[i].index, nt); err != nil {
			tracer().Errorf("%v", err)
			return nil, err
		}
	}
	tracer().Infof("parsed table of %d non-terminals", t.Len())
	return t, nil
}

func (p *Parser) interpretConcurrently(rows []row, specs []*NonTerminalSpec, errs []error) {
	work := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < p.concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				specs[i], errs[i] = p.interpret(rows[i])
			}
		}()
	}
	for i := range rows {
		work <- i
	}
	close(work)
	wg.Wait()
}

// dataRows reads all lines and drops blank lines, a header row and separator
// lines preceding the first data row.
func (p *Parser) dataRows(r io.Reader) ([]row, error) {
	var lines []string
	lineScanner := bufio.NewScanner(r)
	lineScanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for lineScanner.Scan() {
		lines = append(lines, compact(lineScanner.Text()))
	}
	if err := lineScanner.Err(); err != nil {
		return nil, fmt.Errorf("reading table: %w", err)
	}
	var rows []row
	headerSeen := false
	for i, text := range lines {
		if text == "" {
			continue
		}
		if isSeparator(text) {
			if len(rows) > 0 {
				return nil, &MalformedRowError{
					Row:    len(rows),
					Line:   i + 1,
					Reason: "unexpected separator line after data rows",
				}
			}
			tracer().Debugf("skipping separator line %d", i+1)
			continue
		}
		if len(rows) == 0 && !headerSeen && p.isHeader(lines, i) {
			tracer().Debugf("skipping header line %d", i+1)
			headerSeen = true
			continue
		}
		rows = append(rows, row{index: len(rows) + 1, line: i + 1, text: text})
	}
	return rows, nil
}

func (p *Parser) isHeader(lines []string, i int) bool {
	switch p.header {
	case headerPresent:
		return true
	case headerAbsent:
		return false
	}
	return followedBySeparator(lines, i) || p.hasColumnTitles(lines[i])
}

// hasColumnTitles is true for rows like "|Name|Nullable|Endable|First|Follow|",
// as long as the titles are not terminals themselves.
func (p *Parser) hasColumnTitles(text string) bool {
	cells := strings.Split(text, "|")
	if strings.HasPrefix(text, "|") {
		cells = cells[1:]
	}
	if strings.HasSuffix(text, "|") && len(cells) > 0 {
		cells = cells[:len(cells)-1]
	}
	if len(cells) != columnCount {
		return false
	}
	title := func(cell, prefix string) bool {
		head := strings.SplitN(cell, ",", 2)[0]
		return strings.HasPrefix(strings.ToLower(head), prefix) && !p.alphabet.Contains(head)
	}
	return title(cells[3], "first") && title(cells[4], "follow")
}

func followedBySeparator(lines []string, i int) bool {
	for _, text := range lines[i+1:] {
		if text != "" {
			return isSeparator(text)
		}
	}
	return false
}

// isSeparator is true for lines like "|----|:---:|".
func isSeparator(text string) bool {
	dash := false
	for _, c := range text {
		switch c {
		case '-':
			dash = true
		case '|', ':', '+':
		default:
			return false
		}
	}
	return dash
}

// compact removes all white space.
func compact(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// --- Row interpretation ----------------------------------------------------

// column is the sequence of tokens between two delimiters.
type column []fftab.Token

// span covers all tokens of the column within the compacted row.
func (c column) span() fftab.Span {
	var s fftab.Span
	for _, tok := range c {
		s = s.Extend(tok.Span())
	}
	return s
}

func (c column) text() string {
	var b strings.Builder
	for _, tok := range c {
		b.WriteString(tok.Lexeme())
	}
	return b.String()
}

func (p *Parser) interpret(rw row) (*NonTerminalSpec, error) {
	tracer().Debugf("row %d: %s", rw.index, rw.text)
	malformed := func(col column, field, nonterm, reason string, err error) error {
		e := &MalformedRowError{
			Row:         rw.index,
			Line:        rw.line,
			Field:       field,
			NonTerminal: nonterm,
			Reason:      reason,
			Err:         err,
		}
		if col != nil {
			e.Span = col.span()
		}
		tracer().Debugf("row %d: defective field %q at %v", rw.index, field, e.Span)
		return e
	}
	cols, err := p.split(rw.text)
	if err != nil {
		return nil, malformed(nil, "", "", "cannot scan row", err)
	}
	if len(cols) != columnCount {
		return nil, malformed(nil, "", "", fmt.Sprintf("expected %d columns, have %d", columnCount, len(cols)), nil)
	}
	name := cols[0].text()
	if name == "" {
		return nil, malformed(cols[0], FieldName, "", "empty non-terminal name", nil)
	}
	if _, err := symbol.N(name); err != nil {
		return nil, malformed(cols[0], FieldName, "", "invalid non-terminal name", err)
	}
	nt := &NonTerminalSpec{name: name, line: rw.line}
	if nt.nullable, err = p.flag(cols[1], p.nullableFlag); err != nil {
		return nil, malformed(cols[1], FieldNullable, name, err.Error(), nil)
	}
	if nt.endable, err = p.flag(cols[2], p.endableFlag); err != nil {
		return nil, malformed(cols[2], FieldEndable, name, err.Error(), nil)
	}
	if nt.first, err = p.terminals(cols[3]); err != nil {
		return nil, malformed(cols[3], FieldFirst, name, "", err)
	}
	if len(nt.first) == 0 {
		return nil, malformed(cols[3], FieldFirst, name, "empty FIRST list", nil)
	}
	if nt.follow, err = p.terminals(cols[4]); err != nil {
		return nil, malformed(cols[4], FieldFollow, name, "", err)
	}
	return nt, nil
}

// split scans a compacted row and splits it into columns. The empty columns
// produced by an opening and by a closing delimiter are discarded, thus an
// empty FOLLOW list of a bordered row reads "| … | |".
func (p *Parser) split(text string) ([]column, error) {
	scan, err := p.lexer.Scanner(text)
	if err != nil {
		return nil, err
	}
	var scanErr error
	scan.SetErrorHandler(func(e error) {
		if scanErr == nil {
			scanErr = e
		}
	})
	cols := []column{{}}
	for tok := scan.NextToken(); tok.TokType() != scanner.EOF; tok = scan.NextToken() {
		if tok.TokType() == scanner.Pipe {
			cols = append(cols, column{})
			continue
		}
		cols[len(cols)-1] = append(cols[len(cols)-1], tok)
	}
	if scanErr != nil {
		return nil, scanErr
	}
	if strings.HasPrefix(text, "|") {
		cols = cols[1:]
	}
	if strings.HasSuffix(text, "|") && len(cols) > 0 {
		cols = cols[:len(cols)-1]
	}
	return cols, nil
}

func (p *Parser) flag(col column, token string) (bool, error) {
	switch text := col.text(); text {
	case "":
		return false, nil
	case token:
		return true, nil
	default:
		return false, fmt.Errorf("unrecognized flag %q, expected %q or nothing", text, token)
	}
}

// terminals interprets a comma separated list of terminal names. The list
// must not contain empty elements or duplicates.
func (p *Parser) terminals(col column) ([]symbol.Symbol, error) {
	if len(col) == 0 {
		return nil, nil
	}
	set := linkedhashset.New()
	expectWord := true
	for _, tok := range col {
		switch tok.TokType() {
		case scanner.Comma:
			if expectWord {
				return nil, fmt.Errorf("empty list element at position %d", tok.Span().From())
			}
			expectWord = true
		case scanner.Word:
			t, err := p.alphabet.Terminal(tok.Lexeme())
			if err != nil {
				return nil, err
			}
			if set.Contains(t) {
				return nil, fmt.Errorf("duplicate terminal %q", t.Name())
			}
			set.Add(t)
			expectWord = false
		}
	}
	if expectWord {
		return nil, errors.New("empty list element at end of list")
	}
	syms := make([]symbol.Symbol, 0, set.Size())
	for _, v := range set.Values() {
		syms = append(syms, v.(symbol.Symbol))
	}
	return syms, nil
}
