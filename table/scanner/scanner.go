/*
Package scanner tokenizes the rows of a FIRST/FOLLOW table.

Rows are compacted (all white space removed) before they are scanned, thus the
scanner knows three kinds of tokens only: column delimiters, list separators
and words. The scanner is a thin adapter over lexmachine.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/fftab"
	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'fftab.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("fftab.scanner")
}

// Token types of table rows.
const (
	EOF   fftab.TokType = -1
	Pipe  fftab.TokType = 1 // column delimiter '|'
	Comma fftab.TokType = 2 // list separator ','
	Word  fftab.TokType = 3 // anything else: names, flags
)

// TokTypeString returns a printable name for a row token type.
func TokTypeString(t fftab.TokType) string {
	switch t {
	case EOF:
		return "EOF"
	case Pipe:
		return "PIPE"
	case Comma:
		return "COMMA"
	case Word:
		return "WORD"
	}
	return "?"
}

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() fftab.Token
	SetErrorHandler(func(error))
}

// LMAdapter is a lexmachine adapter to use lexmachine as a row scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewRowLexer creates a lexmachine adapter for table rows.
//
// NewRowLexer will return an error if compiling the DFA failed.
func NewRowLexer() (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	adapter.Lexer.Add([]byte(`\|`), MakeToken("PIPE", int(Pipe)))
	adapter.Lexer.Add([]byte(`,`), MakeToken("COMMA", int(Comma)))
	adapter.Lexer.Add([]byte(`[^\|,]+`), MakeToken("WORD", int(Word)))
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given (compacted) row. The scanner will implement
// the Tokenizer interface.
func (lm *LMAdapter) Scanner(row string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(row))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, Error: logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

var _ Tokenizer = (*LMScanner)(nil)

// Default error reporting function for row scanners
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// NextToken is part of the Tokenizer interface.
func (lms *LMScanner) NextToken() fftab.Token {
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return MakeDefaultToken(EOF, "", fftab.Span{})
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("token %s %q @%d", TokTypeString(fftab.TokType(token.Type)), token.Lexeme, token.TC)
	return MakeDefaultToken(
		fftab.TokType(token.Type),
		string(token.Lexeme),
		fftab.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	)
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type.
type DefaultToken struct {
	kind   fftab.TokType
	lexeme string
	span   fftab.Span
}

// MakeDefaultToken creates a token.
func MakeDefaultToken(typ fftab.TokType, lexeme string, span fftab.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() fftab.TokType {
	return t.kind
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() fftab.Span {
	return t.span
}

// ---------------------------------------------------------------------------

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
