package scanner

import (
	"testing"

	"github.com/npillmayer/fftab"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var inputRows = []string{
	"",
	"|ADDOP|||plus,minus,or|plus|",
	"PROG||Endable|class|$",
	",,",
}

var rowTokenCounts = []int{0, 13, 8, 2}

func TestScanRows(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fftab.scanner")
	defer teardown()
	//
	lm, err := NewRowLexer()
	if err != nil {
		t.Fatal(err)
	}
	for i, input := range inputRows {
		t.Logf("------+-----------------+--------")
		scanner, err := lm.Scanner(input)
		if err != nil {
			t.Fatal(err)
		}
		scanner.SetErrorHandler(func(e error) {
			t.Error(e)
		})
		token := scanner.NextToken()
		count := 0
		for token.TokType() != EOF {
			t.Logf(" %5s | %15s | @%5d", TokTypeString(token.TokType()), token.Lexeme(), token.Span().From())
			token = scanner.NextToken()
			count++
		}
		if count != rowTokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, rowTokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestTokenSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fftab.scanner")
	defer teardown()
	//
	lm, err := NewRowLexer()
	if err != nil {
		t.Fatal(err)
	}
	scanner, _ := lm.Scanner("|plus,or|")
	expected := []struct {
		typ    fftab.TokType
		lexeme string
		span   fftab.Span
	}{
		{Pipe, "|", fftab.Span{0, 1}},
		{Word, "plus", fftab.Span{1, 5}},
		{Comma, ",", fftab.Span{5, 6}},
		{Word, "or", fftab.Span{6, 8}},
		{Pipe, "|", fftab.Span{8, 9}},
	}
	for i, exp := range expected {
		token := scanner.NextToken()
		if token.TokType() != exp.typ || token.Lexeme() != exp.lexeme || token.Span() != exp.span {
			t.Errorf("token #%d: expected %s %q %v, have %s %q %v", i,
				TokTypeString(exp.typ), exp.lexeme, exp.span,
				TokTypeString(token.TokType()), token.Lexeme(), token.Span())
		}
	}
	if token := scanner.NextToken(); token.TokType() != EOF {
		t.Errorf("expected EOF, have %q", token.Lexeme())
	}
}
