package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/chzyer/readline"
	"github.com/npillmayer/fftab/emit"
	"github.com/npillmayer/fftab/ll"
	"github.com/npillmayer/fftab/symbol"
	"github.com/npillmayer/fftab/table"
	"github.com/pterm/pterm"
)

type replCmd struct {
	Init  string `help:"File of commands to run before going interactive." type:"existingfile"`
	Table string `arg:"" help:"Table file."`
}

func (c *replCmd) Help() string {
	return `
Commands:

    first N          FIRST set of non-terminal N
    follow N         FOLLOW set of non-terminal N
    decide N tok     parser action for N with lookahead tok
    dump N           everything known about N
    conflicts        LL(1) conflicts of the table
    list             all non-terminals
    quit             leave (or <ctrl>D)
`
}

func (c *replCmd) Run(g *globals) error {
	t, a, err := g.load(c.Table)
	if err != nil {
		return err
	}
	intp, err := newIntp(t, a)
	if err != nil {
		return err
	}
	pterm.Info.Printf("Loaded %d non-terminals from %s\n", t.Len(), displayName(c.Table))
	if c.Init != "" {
		if err := intp.loadInitFile(c.Init); err != nil {
			return err
		}
	}
	intp.repl, err = readline.New("fftab> ")
	if err != nil {
		return err
	}
	defer intp.repl.Close()
	tracer().Infof("Quit with <ctrl>D")
	intp.REPL()
	return nil
}

// Intp interprets REPL commands.
type Intp struct {
	table     *table.Table
	alphabet  *symbol.Alphabet
	decisions *ll.DecisionTable
	repl      *readline.Instance
}

func newIntp(t *table.Table, a *symbol.Alphabet) (*Intp, error) {
	dt, err := ll.NewDecisionTable(t, a)
	if err != nil {
		return nil, err
	}
	return &Intp{table: t, alphabet: a, decisions: dt}, nil
}

func (intp *Intp) loadInitFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out, quit, err := intp.Execute(line)
		if err != nil {
			pterm.Error.Printf("%s:%d: %v\n", filename, lineno, err)
			continue
		}
		pterm.Println(out)
		if quit {
			break
		}
	}
	return scanner.Err()
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		out, quit, err := intp.Execute(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
		pterm.Info.Println(out)
	}
	pterm.Println("Good bye!")
}

var errUsage = errors.New("usage: first N | follow N | decide N tok | dump N | conflicts | list | quit")

// Execute runs a single command and returns its output.
func (intp *Intp) Execute(line string) (string, bool, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return "", false, errUsage
	}
	switch cmd := args[0]; {
	case cmd == "quit" || cmd == "exit":
		return "", true, nil
	case cmd == "list" && len(args) == 1:
		return strings.Join(intp.decisions.NonTerminals(), " "), false, nil
	case cmd == "conflicts" && len(args) == 1:
		conflicts := intp.decisions.Conflicts()
		if len(conflicts) == 0 {
			return "no conflicts", false, nil
		}
		lines := make([]string, len(conflicts))
		for i, c := range conflicts {
			lines[i] = c.String()
		}
		return strings.Join(lines, "\n"), false, nil
	case (cmd == "first" || cmd == "follow") && len(args) == 2:
		nt, err := intp.lookup(args[1])
		if err != nil {
			return "", false, err
		}
		first, follow := emit.Pair(nt)
		if cmd == "first" {
			return first.String(), false, nil
		}
		return follow.String(), false, nil
	case cmd == "decide" && len(args) == 3:
		la, err := intp.alphabet.Terminal(args[2])
		if err != nil {
			return "", false, err
		}
		a1, a2, err := intp.decisions.Actions(args[1], la)
		if err != nil {
			return "", false, err
		}
		if a2 != ll.Scan {
			return fmt.Sprintf("%s/%s: %s or %s (conflict)", args[1], la.Name(), a1, a2), false, nil
		}
		return fmt.Sprintf("%s/%s: %s", args[1], la.Name(), a1), false, nil
	case cmd == "dump" && len(args) == 2:
		nt, err := intp.lookup(args[1])
		if err != nil {
			return "", false, err
		}
		return repr.String(intp.dump(nt), repr.Indent("  ")), false, nil
	}
	return "", false, errUsage
}

func (intp *Intp) lookup(name string) (*table.NonTerminalSpec, error) {
	nt, ok := intp.table.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown non-terminal %q", name)
	}
	return nt, nil
}

type nonTerminalDump struct {
	Name      string
	Line      int
	Nullable  bool
	Endable   bool
	First     []string
	Follow    []string
	Decisions []string
}

func (intp *Intp) dump(nt *table.NonTerminalSpec) nonTerminalDump {
	d := nonTerminalDump{
		Name:     nt.Name(),
		Line:     nt.Line(),
		Nullable: nt.Nullable(),
		Endable:  nt.Endable(),
	}
	for _, s := range nt.First() {
		d.First = append(d.First, s.Name())
	}
	for _, s := range nt.Follow() {
		d.Follow = append(d.Follow, s.Name())
	}
	for _, la := range intp.alphabet.Terminals() {
		if act, err := intp.decisions.Decide(nt.Name(), la); err == nil && act != ll.Scan {
			d.Decisions = append(d.Decisions, la.Name()+": "+act.String())
		}
	}
	return d
}
