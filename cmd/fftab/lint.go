package main

import (
	"errors"

	"github.com/npillmayer/fftab/ll"
	"github.com/npillmayer/fftab/table"
	"github.com/pterm/pterm"
)

type lintCmd struct {
	Strict bool   `help:"Report nullable non-terminals with empty FOLLOW sets as errors." env:"FFTAB_STRICT"`
	Table  string `arg:"" default:"-" help:"Table file (read from stdin if omitted)."`
}

var errLint = errors.New("table has lint errors")

func (c *lintCmd) Run(g *globals) error {
	t, a, err := g.load(c.Table)
	if err != nil {
		return err
	}
	var opts []table.LintOption
	if c.Strict {
		opts = append(opts, table.Strict(true))
	}
	findings := table.Lint(t, opts...)
	for _, f := range findings {
		if f.Severity == table.Error {
			pterm.Error.Println(f.String())
		} else {
			pterm.Warning.Println(f.String())
		}
	}
	dt, err := ll.NewDecisionTable(t, a)
	if err != nil {
		return err
	}
	for _, conflict := range dt.Conflicts() {
		pterm.Warning.Printf("LL(1) conflict %s\n", conflict)
	}
	if table.HasErrors(findings) {
		return errLint
	}
	pterm.Success.Printf("%d non-terminals, %d findings\n", t.Len(), len(findings))
	return nil
}
