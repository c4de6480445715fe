package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/fftab/symbol"
	"github.com/npillmayer/fftab/table"
	"github.com/pterm/pterm"
)

type showCmd struct {
	Table string `arg:"" default:"-" help:"Table file (read from stdin if omitted)."`
}

func (c *showCmd) Run(g *globals) error {
	t, _, err := g.load(c.Table)
	if err != nil {
		return err
	}
	return render(os.Stdout, t, g)
}

// render prints t as a pterm table to w.
func render(w io.Writer, t *table.Table, g *globals) error {
	s, err := pterm.DefaultTable.WithHasHeader().WithData(tableData(t, g)).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

// tableData re-formats t the way it is authored.
func tableData(t *table.Table, g *globals) pterm.TableData {
	data := pterm.TableData{{"Non-Terminal", "Nullable", "Endable", "First", "Follow"}}
	t.Each(func(i int, nt *table.NonTerminalSpec) {
		data = append(data, []string{
			nt.Name(),
			marker(nt.Nullable(), g.Nullable),
			marker(nt.Endable(), g.Endable),
			terminalList(nt.First()),
			terminalList(nt.Follow()),
		})
	})
	return data
}

func marker(b bool, flag string) string {
	if b {
		return flag
	}
	return ""
}

func terminalList(syms []symbol.Symbol) string {
	n := make([]string, len(syms))
	for i, s := range syms {
		n[i] = s.Name()
	}
	return strings.Join(n, ", ")
}
