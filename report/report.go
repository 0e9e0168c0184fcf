// Package report renders comparison rankings and city listings as text.
//
// A ranking prints one line per strategy:
//
//	<Name>: Path = [<a>, <b>, ...], Cost = <cost>
//
// Costs use the shortest decimal form ("418", "12.5"); an unreachable goal
// prints "Path = None, Cost = inf". A failed strategy prints "<Name>: error: <msg>".
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/fatih/color"

	"github.com/katalvlaran/searchbench/compare"
	"github.com/katalvlaran/searchbench/core"
)

// Header precedes a ranking.
const Header = "Search results sorted by cost:"

// Printer writes reports to an io.Writer.
type Printer struct {
	w      io.Writer
	name   *color.Color
	header *color.Color
	fail   *color.Color
}

// Option configures a Printer.
type Option func(*Printer)

// WithColor enables or disables ANSI colors regardless of the terminal.
func WithColor(enabled bool) Option {
	return func(p *Printer) {
		for _, c := range []*color.Color{p.name, p.header, p.fail} {
			if enabled {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}
	}
}

// New returns a Printer writing to w. Colors are off unless WithColor(true).
func New(w io.Writer, opts ...Option) *Printer {
	p := &Printer{
		w:      w,
		name:   color.New(color.FgCyan, color.Bold),
		header: color.New(color.Bold),
		fail:   color.New(color.FgRed),
	}
	WithColor(false)(p)
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Ranking prints a blank line, the header, and r sorted by cost.
func (p *Printer) Ranking(r compare.Ranking) error {
	if _, err := fmt.Fprintf(p.w, "\n%s\n", p.header.Sprint(Header)); err != nil {
		return err
	}
	for _, o := range r.Sort() {
		if err := p.Outcome(o); err != nil {
			return err
		}
	}

	return nil
}

// Outcome prints a single outcome line.
func (p *Printer) Outcome(o compare.Outcome) error {
	var err error
	if o.Err != nil {
		_, err = fmt.Fprintf(p.w, "%s: %s\n", p.name.Sprint(o.Name), p.fail.Sprintf("error: %v", o.Err))
		return err
	}
	_, err = fmt.Fprintf(p.w, "%s: Path = %s, Cost = %s\n",
		p.name.Sprint(o.Name), FormatPath(o.Result.Path), FormatCost(o.Result.Cost))

	return err
}

// Cities prints every vertex of g sorted by label with its estimate (or "-")
// and its outgoing edges in listing order.
func (p *Printer) Cities(g *core.Graph, h *core.Heuristic) error {
	rows := treemap.NewWithStringComparator()
	for _, id := range g.VerticesInOrder() {
		edges, err := g.Neighbors(id)
		if err != nil {
			return err
		}
		rows.Put(id, edges)
	}

	it := rows.Iterator()
	for it.Next() {
		id := it.Key().(string)
		est := "-"
		if h != nil {
			if v, err := h.Estimate(id); err == nil {
				est = FormatCost(v)
			}
		}
		roads := "none"
		if edges := it.Value().([]core.Edge); len(edges) > 0 {
			parts := make([]string, len(edges))
			for i, e := range edges {
				parts[i] = e.To + " " + FormatCost(e.Weight)
			}
			roads = strings.Join(parts, ", ")
		}
		if _, err := fmt.Fprintf(p.w, "%s (estimate %s): %s\n", p.name.Sprint(id), est, roads); err != nil {
			return err
		}
	}

	return nil
}

// FormatPath renders a path as "[a, b, c]" with labels unquoted, or "None"
// for a nil path.
func FormatPath(path []string) string {
	if path == nil {
		return "None"
	}

	return "[" + strings.Join(path, ", ") + "]"
}

// FormatCost renders a cost in its shortest decimal form; +Inf renders as "inf".
func FormatCost(c float64) string {
	if math.IsInf(c, 1) {
		return "inf"
	}

	return strconv.FormatFloat(c, 'f', -1, 64)
}
