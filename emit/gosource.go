package emit

import (
	"bytes"
	_ "embed" // For go:embed.
	"fmt"
	"go/token"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/fftab/symbol"
	"github.com/npillmayer/fftab/table"
	"golang.org/x/tools/imports"
)

// DefaultPackage is the package name of generated Go files.
const DefaultPackage = "tables"

var (
	//go:embed codegen.go.tmpl
	codegenTemplateSource string
	codegenTemplate       = template.Must(template.New("fftab").Funcs(template.FuncMap{
		"join": strings.Join,
	}).Parse(codegenTemplateSource))
)

// GoOption configures the Go renderer.
type GoOption func(*goConfig)

type goConfig struct {
	pkg    string
	source string
}

// Package sets the package name of the generated file.
func Package(name string) GoOption {
	return func(c *goConfig) {
		c.pkg = name
	}
}

// Source names the table file in the header of the generated file.
func Source(name string) GoOption {
	return func(c *goConfig) {
		c.source = name
	}
}

type tmplTerminal struct {
	Name  string
	Ident string
}

type tmplDeclaration struct {
	Name   string
	Idents []string
}

type tmplRow struct {
	Name     string
	Nullable bool
	Endable  bool
}

type tmplData struct {
	Package      string
	Source       string
	Fingerprint  string
	Terminals    []tmplTerminal
	Declarations []tmplDeclaration
	Rows         []tmplRow
}

// terminalIdent is the Go identifier of terminal t in generated code.
func terminalIdent(a *symbol.Alphabet, t symbol.Symbol) string {
	return "T" + a.GoName(t)
}

// WriteGo writes a Go source file declaring the FIRST and FOLLOW sets of t.
// Terminals are enumerated in the order of alphabet a, which must be the
// alphabet t has been parsed with. Nothing is written if rendering fails.
func WriteGo(w io.Writer, t *table.Table, a *symbol.Alphabet, opts ...GoOption) error {
	conf := &goConfig{pkg: DefaultPackage}
	for _, opt := range opts {
		opt(conf)
	}
	if !token.IsIdentifier(conf.pkg) {
		return fmt.Errorf("invalid package name %q", conf.pkg)
	}
	fp, err := Fingerprint(t)
	if err != nil {
		return err
	}
	data := tmplData{
		Package:     conf.pkg,
		Source:      conf.source,
		Fingerprint: fp,
	}
	for _, term := range a.Terminals() {
		data.Terminals = append(data.Terminals, tmplTerminal{
			Name:  term.Name(),
			Ident: terminalIdent(a, term),
		})
	}
	for _, d := range Declarations(t) {
		idents := make([]string, len(d.Symbols))
		for i, s := range d.Symbols {
			if _, ok := a.Ordinal(s); !ok {
				return fmt.Errorf("%s: terminal %q is not part of the alphabet", d.Name, s.Name())
			}
			idents[i] = terminalIdent(a, s)
		}
		data.Declarations = append(data.Declarations, tmplDeclaration{Name: d.Name, Idents: idents})
	}
	t.Each(func(i int, nt *table.NonTerminalSpec) {
		data.Rows = append(data.Rows, tmplRow{
			Name:     nt.Name(),
			Nullable: nt.Nullable(),
			Endable:  nt.Endable(),
		})
	})
	var b bytes.Buffer
	if err := codegenTemplate.Execute(&b, data); err != nil {
		return err
	}
	src, err := imports.Process("", b.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		tracer().Errorf("generated code does not format: %v", err)
		return err
	}
	tracer().Infof("generated %d bytes of Go source for %d non-terminals", len(src), t.Len())
	_, err = w.Write(src)
	return err
}
