package table

import (
	"fmt"

	"github.com/npillmayer/fftab/symbol"
	"github.com/npillmayer/schuko/gconf"
	"golang.org/x/exp/slices"
)

// Severity of a lint finding.
type Severity int8

// Severities
const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// Lint rules.
const (
	// A nullable non-terminal with an empty FOLLOW set can never be skipped.
	RuleNullableEmptyFollow = "nullable-empty-follow"
	// An endable non-terminal should have end-of-input in its FOLLOW set.
	RuleEndableWithoutEOF = "endable-without-eof"
	// End-of-input in a FOLLOW set should only occur for endable non-terminals.
	RuleEOFNotEndable = "eof-not-endable"
	// FIRST and FOLLOW of a nullable non-terminal overlap: not LL(1).
	RuleFirstFollowConflict = "first-follow-conflict"
)

// ConfigStrict is the configuration key for strict linting.
const ConfigStrict = "fftab.lint.strict"

// Finding is a problem of a table which is not a syntax error, but is likely
// to be an authoring mistake.
type Finding struct {
	NonTerminal string
	Line        int
	Rule        string
	Severity    Severity
	Message     string
}

func (f Finding) String() string {
	if f.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s [%s]: %s", f.Line, f.Severity, f.NonTerminal, f.Rule, f.Message)
	}
	return fmt.Sprintf("%s: %s [%s]: %s", f.Severity, f.NonTerminal, f.Rule, f.Message)
}

// LintOption configures Lint.
type LintOption func(*linter)

// Strict promotes findings of rule nullable-empty-follow to errors.
// If this option is not given, configuration key "fftab.lint.strict" decides.
func Strict(b bool) LintOption {
	return func(l *linter) {
		l.strict = b
	}
}

type linter struct {
	strict   bool
	findings []Finding
}

func (l *linter) report(nt *NonTerminalSpec, rule string, sev Severity, format string, args ...interface{}) {
	l.findings = append(l.findings, Finding{
		NonTerminal: nt.Name(),
		Line:        nt.Line(),
		Rule:        rule,
		Severity:    sev,
		Message:     fmt.Sprintf(format, args...),
	})
}

// Lint checks a table for consistency between the nullable and endable flags and
// the FIRST and FOLLOW sets. Findings are returned in row order.
func Lint(t *Table, opts ...LintOption) []Finding {
	l := &linter{strict: gconf.GetBool(ConfigStrict)}
	for _, opt := range opts {
		opt(l)
	}
	t.Each(func(i int, nt *NonTerminalSpec) {
		follow := nt.Follow()
		hasEOF := slices.IndexFunc(follow, symbol.Symbol.IsEOF) >= 0
		if nt.Nullable() && len(follow) == 0 {
			sev := Warning
			if l.strict {
				sev = Error
			}
			l.report(nt, RuleNullableEmptyFollow, sev, "nullable, but FOLLOW set is empty")
		}
		if nt.Endable() && !hasEOF {
			l.report(nt, RuleEndableWithoutEOF, Warning, "endable, but FOLLOW set does not contain %s", symbol.EOF)
		}
		if !nt.Endable() && hasEOF {
			l.report(nt, RuleEOFNotEndable, Warning, "FOLLOW set contains %s, but non-terminal is not endable", symbol.EOF)
		}
		if nt.Nullable() {
			for _, a := range nt.First() {
				if slices.Contains(follow, a) {
					l.report(nt, RuleFirstFollowConflict, Warning, "%s is in FIRST and FOLLOW", a.Name())
				}
			}
		}
	})
	tracer().Infof("lint: %d findings", len(l.findings))
	return l.findings
}

// HasErrors is true if any finding has severity Error.
func HasErrors(findings []Finding) bool {
	return slices.ContainsFunc(findings, func(f Finding) bool {
		return f.Severity == Error
	})
}
