package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/npillmayer/fftab/emit"
	"github.com/npillmayer/fftab/ll"
	"github.com/npillmayer/fftab/symbol"
	"github.com/npillmayer/fftab/table"
	"github.com/pterm/pterm"
)

type genCmd struct {
	Output  string `short:"o" help:"Output file (stdout if omitted)."`
	Format  string `help:"Output format [go|listing|html]." enum:"go,listing,html" default:"go"`
	Package string `help:"Go package for generated code." default:"${package}"`
	Table   string `arg:"" default:"-" help:"Table file (read from stdin if omitted)."`
}

func (c *genCmd) Help() string {
	return `
Generates one FIRST and one FOLLOW declaration per non-terminal of the table, in
table order. Format "go" writes a Go source file, "listing" writes one
declaration per line and "html" writes the LL(1) decision table.
`
}

func (c *genCmd) Run(g *globals) error {
	t, a, err := g.load(c.Table)
	if err != nil {
		return err
	}
	var b bytes.Buffer
	if err := c.render(&b, t, a); err != nil {
		return err
	}
	if c.Output == "" {
		_, err = os.Stdout.Write(b.Bytes())
		return err
	}
	if err := os.WriteFile(c.Output, b.Bytes(), 0o644); err != nil {
		return err
	}
	pterm.Success.Printf("wrote %d declarations to %s\n", 2*t.Len(), c.Output)
	return nil
}

func (c *genCmd) render(b *bytes.Buffer, t *table.Table, a *symbol.Alphabet) error {
	switch c.Format {
	case "listing":
		return emit.WriteListing(b, t)
	case "html":
		dt, err := ll.NewDecisionTable(t, a)
		if err != nil {
			return err
		}
		return ll.DecisionTableAsHTML(dt, b)
	case "go", "":
		return emit.WriteGo(b, t, a, emit.Package(c.Package), emit.Source(displayName(c.Table)))
	}
	return fmt.Errorf("unknown output format %q", c.Format)
}
