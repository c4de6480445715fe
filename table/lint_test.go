package table

import (
	"os"
	"testing"

	"github.com/npillmayer/fftab/symbol"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func mustParse(t *testing.T, src string) *Table {
	tab, err := ParseString(src, symbol.DefaultAlphabet())
	if err != nil {
		t.Fatal(err)
	}
	return tab
}

func TestLintNullableWithEmptyFollow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fftab.table")
	defer teardown()
	//
	tab := mustParse(t, "| OPT | Nullable | | var | |")
	findings := Lint(tab, Strict(false))
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, have %d: %v", len(findings), findings)
	}
	f := findings[0]
	if f.Rule != RuleNullableEmptyFollow || f.Severity != Warning || f.NonTerminal != "OPT" || f.Line != 1 {
		t.Errorf("unexpected finding %v", f)
	}
	if HasErrors(findings) {
		t.Errorf("expected warnings only")
	}
	findings = Lint(tab, Strict(true))
	if !HasErrors(findings) {
		t.Errorf("expected strict linting to report an error")
	}
	t.Logf("finding = %v", findings[0])
}

func TestLintEndMarkers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fftab.table")
	defer teardown()
	//
	src := `
| PROG  |  | Endable | class, func | func       |
| BLOCK |  |         | lcurbr      | rcurbr, $  |
| MAIN  |  | Endable | main        | $          |
`
	findings := Lint(mustParse(t, src), Strict(false))
	if len(findings) != 2 {
		t.Fatalf("expected 2 findings, have %d: %v", len(findings), findings)
	}
	if findings[0].Rule != RuleEndableWithoutEOF || findings[0].NonTerminal != "PROG" {
		t.Errorf("unexpected first finding %v", findings[0])
	}
	if findings[1].Rule != RuleEOFNotEndable || findings[1].NonTerminal != "BLOCK" {
		t.Errorf("unexpected second finding %v", findings[1])
	}
}

func TestLintFirstFollowConflict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fftab.table")
	defer teardown()
	//
	src := `
| OPTSIGN | Nullable | | plus, minus | minus, id |
| SIGN    |          | | plus, minus | minus, id |
`
	findings := Lint(mustParse(t, src), Strict(false))
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, have %d: %v", len(findings), findings)
	}
	if findings[0].Rule != RuleFirstFollowConflict || findings[0].NonTerminal != "OPTSIGN" {
		t.Errorf("unexpected finding %v", findings[0])
	}
}

func TestLintGrammarFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fftab.table")
	defer teardown()
	//
	src, err := os.ReadFile("testdata/grammar.md")
	if err != nil {
		t.Fatal(err)
	}
	if findings := Lint(mustParse(t, string(src)), Strict(true)); len(findings) != 0 {
		t.Errorf("expected consistent table, have findings %v", findings)
	}
}
