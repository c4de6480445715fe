package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/npillmayer/fftab/emit"
	"github.com/npillmayer/fftab/symbol"
	"github.com/npillmayer/fftab/table"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
)

var version = "dev"

// traceKeys are the tracers of all fftab packages.
var traceKeys = []string{"fftab.cli", "fftab.symbol", "fftab.scanner", "fftab.table", "fftab.emit", "fftab.ll"}

type globals struct {
	Trace       string `help:"Trace level [Debug|Info|Error]." default:"Error" env:"FFTAB_TRACE"`
	Alphabet    string `help:"Terminal alphabet file, one terminal per line." type:"existingfile" env:"FFTAB_ALPHABET"`
	Nullable    string `help:"Token marking nullable non-terminals." default:"${nullable}"`
	Endable     string `help:"Token marking endable non-terminals." default:"${endable}"`
	Concurrency int    `help:"Number of goroutines interpreting rows." default:"1"`
}

type cli struct {
	globals
	Version kong.VersionFlag `help:"Print version and exit."`
	Gen     genCmd           `cmd:"" help:"Generate FIRST/FOLLOW declarations from a table."`
	Lint    lintCmd          `cmd:"" help:"Check a table for authoring problems."`
	Show    showCmd          `cmd:"" help:"Print a table."`
	Repl    replCmd          `cmd:"" help:"Explore a table interactively."`
}

func main() {
	initDisplay()
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("fftab"),
		kong.Description("A compiler for FIRST/FOLLOW tables of LL(1) grammars."),
		kong.UsageOnError(),
		kong.Vars{
			"version":  version,
			"nullable": table.DefaultNullableFlag,
			"endable":  table.DefaultEndableFlag,
			"package":  emit.DefaultPackage,
		},
	)
	initTracing(c.Trace)
	err := kctx.Run(&c.globals)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func initTracing(level string) {
	gtrace.SyntaxTracer = gologadapter.New()
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(tracing.TraceLevelFromString(level))
	}
	tracer().Infof("Trace level is %s", level)
}

// alphabet returns the terminal alphabet tables are checked against.
func (g *globals) alphabet() (*symbol.Alphabet, error) {
	if g.Alphabet == "" {
		return symbol.DefaultAlphabet(), nil
	}
	f, err := os.Open(g.Alphabet)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	a, err := symbol.ReadAlphabet(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", g.Alphabet, err)
	}
	tracer().Infof("using alphabet of %d terminals from %s", a.Size(), g.Alphabet)
	return a, nil
}

// load reads the table from file path, or from stdin for "-".
func (g *globals) load(path string) (*table.Table, *symbol.Alphabet, error) {
	a, err := g.alphabet()
	if err != nil {
		return nil, nil, err
	}
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		r = f
	}
	t, err := table.Parse(r, a,
		table.NullableFlag(g.Nullable),
		table.EndableFlag(g.Endable),
		table.Concurrency(g.Concurrency))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", displayName(path), err)
	}
	return t, a, nil
}

func displayName(path string) string {
	if path == "-" {
		return "<stdin>"
	}
	return filepath.Base(path)
}
