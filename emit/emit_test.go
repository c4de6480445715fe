package emit

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/npillmayer/fftab/symbol"
	"github.com/npillmayer/fftab/table"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func parseTable(t *testing.T, src string) *table.Table {
	t.Helper()
	tab, err := table.ParseString(src, symbol.DefaultAlphabet())
	require.NoError(t, err)
	return tab
}

func grammarFile(t *testing.T) string {
	t.Helper()
	src, err := os.ReadFile("../table/testdata/grammar.md")
	require.NoError(t, err)
	return string(src)
}

func TestADDOPDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fftab.emit")
	defer teardown()
	//
	tab := parseTable(t, "ADDOP | | | plus,minus,or | plus,minus,id,intlit")
	decls := Declarations(tab)
	require.Len(t, decls, 2)
	require.Equal(t, "ADDOP_FIRST = [Terminal(plus), Terminal(minus), Terminal(or)]", decls[0].String())
	require.Equal(t, "ADDOP_FOLLOW = [Terminal(plus), Terminal(minus), Terminal(id), Terminal(intlit)]", decls[1].String())
	require.Equal(t, First, decls[0].Kind)
	require.Equal(t, Follow, decls[1].Kind)
	require.Equal(t, "ADDOP", decls[1].NonTerminal)
	t.Log(repr.String(decls[0].Symbols))
}

func TestListing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fftab.emit")
	defer teardown()
	//
	tab := parseTable(t, "ADDOP | | | plus,minus,or | plus,minus,id,intlit\nOPT | Nullable | | var ||")
	var b bytes.Buffer
	require.NoError(t, WriteListing(&b, tab))
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 5)
	require.True(t, strings.HasPrefix(lines[0], "# fftab listing, fingerprint "))
	require.Equal(t, []string{
		"ADDOP_FIRST = [Terminal(plus), Terminal(minus), Terminal(or)]",
		"ADDOP_FOLLOW = [Terminal(plus), Terminal(minus), Terminal(id), Terminal(intlit)]",
		"OPT_FIRST = [Terminal(var)]",
		"OPT_FOLLOW = []",
	}, lines[1:])
}

func TestOrderAndNoSilentLoss(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fftab.emit")
	defer teardown()
	//
	tab := parseTable(t, grammarFile(t))
	decls := Declarations(tab)
	require.Len(t, decls, 2*tab.Len())
	for i, nt := range tab.Specs() {
		first, follow := decls[2*i], decls[2*i+1]
		require.Equal(t, nt.Name()+"_FIRST", first.Name)
		require.Equal(t, nt.Name()+"_FOLLOW", follow.Name)
		require.Equal(t, nt.First(), first.Symbols)
		require.Equal(t, nt.Follow(), follow.Symbols)
	}
}

func TestDeterministicOutput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fftab.emit")
	defer teardown()
	//
	src := grammarFile(t)
	render := func() (string, string) {
		tab := parseTable(t, src)
		var g, l bytes.Buffer
		require.NoError(t, WriteGo(&g, tab, symbol.DefaultAlphabet(), Source("grammar.md")))
		require.NoError(t, WriteListing(&l, tab))
		return g.String(), l.String()
	}
	g1, l1 := render()
	g2, l2 := render()
	require.Equal(t, g1, g2)
	require.Equal(t, l1, l2)
}

func TestFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fftab.emit")
	defer teardown()
	//
	fp1, err := Fingerprint(parseTable(t, "|A| | |plus,minus|id|"))
	require.NoError(t, err)
	fp2, err := Fingerprint(parseTable(t, "| A |  |  | plus, \tminus | id |"))
	require.NoError(t, err)
	fp3, err := Fingerprint(parseTable(t, "| A |  |  | minus, plus | id |"))
	require.NoError(t, err)
	require.Equal(t, fp1, fp2, "white space must not change the fingerprint")
	require.NotEqual(t, fp1, fp3, "authoring order is part of the content")
}

var firstDeclRE = regexp.MustCompile(`ADDOP_FIRST\s+= \[\]Terminal\{TPlus, TMinus, TOr\}`)

func TestGoSource(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fftab.emit")
	defer teardown()
	//
	tab := parseTable(t, grammarFile(t))
	var b bytes.Buffer
	require.NoError(t, WriteGo(&b, tab, symbol.DefaultAlphabet(), Package("parser"), Source("grammar.md")))
	src := b.String()
	require.True(t, strings.HasPrefix(src, "// Code generated by fftab from grammar.md. DO NOT EDIT."))
	require.Regexp(t, firstDeclRE, src)
	require.Contains(t, src, "START_FOLLOW")
	require.Regexp(t, `TEOF\s+Terminal = iota\s+// \$`, src)
	//
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "tables.go", src, parser.ParseComments)
	require.NoError(t, err, "generated code must be valid Go")
	require.Equal(t, "parser", f.Name.Name)
	vars := map[string]bool{}
	ast.Inspect(f, func(n ast.Node) bool {
		if vs, ok := n.(*ast.ValueSpec); ok {
			for _, id := range vs.Names {
				vars[id.Name] = true
			}
		}
		return true
	})
	for _, nt := range tab.Specs() {
		require.True(t, vars[nt.Name()+"_FIRST"], "missing %s_FIRST", nt.Name())
		require.True(t, vars[nt.Name()+"_FOLLOW"], "missing %s_FOLLOW", nt.Name())
	}
}

func TestGoSourceRejectsBadPackage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fftab.emit")
	defer teardown()
	//
	tab := parseTable(t, "|A| | |plus|id|")
	var b bytes.Buffer
	require.Error(t, WriteGo(&b, tab, symbol.DefaultAlphabet(), Package("func")))
	require.Zero(t, b.Len(), "no partial output on failure")
}
