package ll

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/npillmayer/fftab/ll/sparse"
	"github.com/npillmayer/fftab/symbol"
	"github.com/npillmayer/fftab/table"
	"golang.org/x/exp/slices"
)

// Action is an entry of a decision table.
type Action int8

// Actions of a predictive parser.
const (
	Scan Action = iota
	Expand
	Skip
	Pop
)

func (a Action) String() string {
	switch a {
	case Expand:
		return "expand"
	case Skip:
		return "skip"
	case Pop:
		return "pop"
	}
	return "scan"
}

// DecisionTable maps (non-terminal, lookahead) to parser actions.
type DecisionTable struct {
	alphabet     *symbol.Alphabet
	rows         []string
	index        map[string]int
	matrix       *sparse.IntMatrix
	HasConflicts bool
}

// Conflict is a cell of a decision table holding two actions.
type Conflict struct {
	NonTerminal string
	Lookahead   symbol.Symbol
	Actions     [2]Action
}

func (c Conflict) String() string {
	return fmt.Sprintf("%s/%s: %s|%s", c.NonTerminal, c.Lookahead.Name(), c.Actions[0], c.Actions[1])
}

// NewDecisionTable builds the decision table for t. a must be the alphabet t
// has been parsed with.
func NewDecisionTable(t *table.Table, a *symbol.Alphabet) (*DecisionTable, error) {
	dt := &DecisionTable{
		alphabet: a,
		rows:     make([]string, 0, t.Len()),
		index:    make(map[string]int, t.Len()),
		matrix:   sparse.NewIntMatrix(t.Len(), a.Size(), int32(Scan)),
	}
	tracer().Infof("decision table of size %d x %d", t.Len(), a.Size())
	eof, hasEOF := a.EOF()
	for i, nt := range t.Specs() {
		dt.rows = append(dt.rows, nt.Name())
		dt.index[nt.Name()] = i
		for _, x := range nt.First() {
			j, err := dt.column(x)
			if err != nil {
				return nil, fmt.Errorf("FIRST(%s): %w", nt.Name(), err)
			}
			dt.enter(i, j, Expand)
		}
		follow := nt.Follow()
		if nt.Endable() && hasEOF && !slices.Contains(follow, eof) {
			follow = append(follow, eof)
		}
		for _, x := range follow {
			j, err := dt.column(x)
			if err != nil {
				return nil, fmt.Errorf("FOLLOW(%s): %w", nt.Name(), err)
			}
			if nt.Nullable() {
				dt.enter(i, j, Skip)
			} else if dt.matrix.Value(i, j) == int32(Scan) {
				dt.enter(i, j, Pop)
			}
		}
	}
	return dt, nil
}

func (dt *DecisionTable) column(x symbol.Symbol) (int, error) {
	j, ok := dt.alphabet.Ordinal(x)
	if !ok {
		return -1, &symbol.InvalidSymbolError{Name: x.Name(), Reason: "not part of the terminal alphabet"}
	}
	return j, nil
}

func (dt *DecisionTable) enter(i, j int, act Action) {
	a1 := Action(dt.matrix.Value(i, j))
	if a1 == act {
		return
	}
	if a1 != Scan {
		tracer().Debugf("conflict for %s/%s: %s and %s", dt.rows[i], dt.alphabet.At(j).Name(), a1, act)
		dt.HasConflicts = true
	}
	dt.matrix.Add(i, j, int32(act))
}

// NonTerminals returns the row names in table order.
func (dt *DecisionTable) NonTerminals() []string {
	return append([]string(nil), dt.rows...)
}

// Decide returns the action for non-terminal nonterm and lookahead terminal la.
// For a conflicting cell the first action entered is returned, i.e. Expand is
// preferred over Skip.
func (dt *DecisionTable) Decide(nonterm string, la symbol.Symbol) (Action, error) {
	a1, _, err := dt.Actions(nonterm, la)
	return a1, err
}

// Actions returns both actions of a cell. The second one is Scan unless the
// cell is a conflict.
func (dt *DecisionTable) Actions(nonterm string, la symbol.Symbol) (Action, Action, error) {
	i, ok := dt.index[nonterm]
	if !ok {
		return Scan, Scan, fmt.Errorf("unknown non-terminal %q", nonterm)
	}
	j, err := dt.column(la)
	if err != nil {
		return Scan, Scan, err
	}
	a1, a2 := dt.matrix.Values(i, j)
	return Action(a1), Action(a2), nil
}

// Conflicts lists all cells holding two actions, in row-major order.
func (dt *DecisionTable) Conflicts() []Conflict {
	var conflicts []Conflict
	dt.matrix.Each(func(i, j int, a, b int32) {
		if Action(b) != Scan {
			conflicts = append(conflicts, Conflict{
				NonTerminal: dt.rows[i],
				Lookahead:   dt.alphabet.At(j),
				Actions:     [2]Action{Action(a), Action(b)},
			})
		}
	})
	return conflicts
}

// DecisionTableAsHTML exports a decision table in HTML-format. Scan entries are
// left blank, conflicts are shown as "expand/skip".
func DecisionTableAsHTML(dt *DecisionTable, w io.Writer) error {
	var b bytes.Buffer
	b.WriteString("<html><body>\n")
	fmt.Fprintf(&b, "LL(1) decision table with %d entries", dt.matrix.ValueCount())
	if dt.HasConflicts {
		fmt.Fprintf(&b, ", %d conflicts", len(dt.Conflicts()))
	}
	b.WriteString("<p>\n<table border=1 cellspacing=0 cellpadding=5>\n")
	b.WriteString("<tr bgcolor=#cccccc><td></td>\n")
	for _, x := range dt.alphabet.Terminals() {
		fmt.Fprintf(&b, "<td>%s</td>", html.EscapeString(x.Name()))
	}
	b.WriteString("</tr>\n")
	for i, name := range dt.rows {
		fmt.Fprintf(&b, "<tr><td>%s</td>\n", html.EscapeString(name))
		for j := 0; j < dt.alphabet.Size(); j++ {
			a1, a2 := dt.matrix.Values(i, j)
			var td string
			switch {
			case Action(a1) == Scan:
				td = "&nbsp;"
			case Action(a2) == Scan:
				td = Action(a1).String()
			default:
				td = fmt.Sprintf("<b>%s/%s</b>", Action(a1), Action(a2))
			}
			fmt.Fprintf(&b, "<td>%s</td>\n", td)
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table></body></html>\n")
	_, err := w.Write(b.Bytes())
	return err
}
