// Package render prints runs, overlays and all-pairs tables to a terminal.
//
// Colour is chosen by termenv from the output's profile; with the Ascii
// profile the output is plain text, which is what tests and pipes get.
package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/pathtrace/floydwarshall"
	"github.com/katalvlaran/pathtrace/replay"
	"github.com/katalvlaran/pathtrace/shortest"
	"github.com/katalvlaran/pathtrace/trace"
)

// Renderer writes styled text to one output.
type Renderer struct {
	out *termenv.Output

	accent termenv.Color
	muted  termenv.Color
	good   termenv.Color
	bad    termenv.Color
	kinds  map[trace.StepKind]termenv.Color

	err error
}

// New returns a Renderer writing to w. Without options the colour profile is
// detected from w and the environment.
func New(w io.Writer, opts ...termenv.OutputOption) *Renderer {
	out := termenv.NewOutput(w, opts...)

	return &Renderer{
		out:    out,
		accent: out.Color("#818cf8"),
		muted:  out.Color("#6b7280"),
		good:   out.Color("#22c55e"),
		bad:    out.Color("#ef4444"),
		kinds: map[trace.StepKind]termenv.Color{
			trace.KindNodeVisit:      out.Color("#a78bfa"),
			trace.KindEdgeRelax:      out.Color("#f472b6"),
			trace.KindDistanceUpdate: out.Color("#38bdf8"),
		},
	}
}

// Err returns the first write error, if any. Once a write fails every later
// call is a no-op.
func (r *Renderer) Err() error { return r.err }

func (r *Renderer) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.out, format, args...)
}

func (r *Renderer) style(s string, c termenv.Color) string {
	return r.out.String(s).Foreground(c).String()
}

func (r *Renderer) bold(s string) string {
	return r.out.String(s).Bold().String()
}

// pad right-pads s to width runes.
func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func label(algorithm string) string {
	return shortest.Parse(algorithm).Label()
}

// Header prints the one-line title of a run.
func (r *Renderer) Header(res trace.Result) {
	src := res.Source
	if src == "" {
		src = "-"
	}
	r.printf("%s from %s (%d steps)\n", r.bold(label(res.Algorithm)), r.style(src, r.accent), len(res.Steps))
}

// Steps prints the whole step log, one numbered line per step.
func (r *Renderer) Steps(res trace.Result) {
	width := len(fmt.Sprint(len(res.Steps) - 1))
	for i, s := range res.Steps {
		kind := r.style(pad(string(s.Kind), len(trace.KindDistanceUpdate)), r.kinds[s.Kind])
		r.printf("%*d  %s  %s\n", width, i, kind, s.Message)
	}
}

// Summary prints final distances and paths in res.Order.
func (r *Renderer) Summary(res trace.Result) {
	if res.NegativeCycle {
		r.printf("%s\n", r.style("Negative cycle detected: distances are not meaningful", r.bad))
	}

	idWidth := len("node")
	distWidth := len("distance")
	for _, id := range res.Order {
		idWidth = max(idWidth, utf8.RuneCountInString(id))
		distWidth = max(distWidth, utf8.RuneCountInString(res.Distance(id).String()))
	}

	r.printf("%s  %s  %s\n", r.bold(pad("node", idWidth)), r.bold(pad("distance", distWidth)), r.bold("path"))
	for _, id := range res.Order {
		d := res.Distance(id)
		path := r.style("unreachable", r.muted)
		switch p, ok := res.Path(id); {
		case ok:
			path = strings.Join(p, " → ")
		case id == res.Source:
			path = id
		case res.NegativeCycle && !d.IsInf():
			path = r.style("n/a", r.muted)
		}
		dist := pad(d.String(), distWidth)
		if d.IsInf() {
			dist = r.style(dist, r.muted)
		}
		r.printf("%s  %s  %s\n", pad(id, idWidth), dist, path)
	}
}

// Overlay prints one replay frame: the current step, every node with its
// visited mark and displayed distance, and the highlighted edges.
func (r *Renderer) Overlay(o replay.Overlay) {
	if o.Step < 0 {
		r.printf("%s\n", r.style(fmt.Sprintf("Step -/%d", o.Total), r.muted))
	} else {
		r.printf("%s  %s  %s\n",
			r.bold(fmt.Sprintf("Step %d/%d", o.Step+1, o.Total)),
			r.style(string(o.Kind), r.kinds[o.Kind]),
			o.Message)
	}

	idWidth := 0
	for _, n := range o.Nodes {
		idWidth = max(idWidth, utf8.RuneCountInString(n.Label))
	}
	for _, n := range o.Nodes {
		mark := "[ ]"
		if n.Visited {
			mark = r.style("[x]", r.good)
		}
		r.printf("  %s %s  %s\n", mark, pad(n.Label, idWidth), n.Distance)
	}

	hl := "none"
	if len(o.Highlighted) > 0 {
		hl = r.style(strings.Join(o.Highlighted, ", "), r.kinds[trace.KindEdgeRelax])
	}
	r.printf("  highlighted: %s\n", hl)
}

// Table prints the all-pairs distance matrix, rows are sources.
func (r *Renderer) Table(t *floydwarshall.Table) {
	width := 1
	for _, from := range t.Order {
		width = max(width, utf8.RuneCountInString(from))
		for _, to := range t.Order {
			width = max(width, utf8.RuneCountInString(t.Distance(from, to).String()))
		}
	}

	var head strings.Builder
	head.WriteString(pad("", width))
	for _, to := range t.Order {
		head.WriteString("  ")
		head.WriteString(pad(to, width))
	}
	r.printf("%s\n", r.bold(strings.TrimRight(head.String(), " ")))

	for _, from := range t.Order {
		var row strings.Builder
		row.WriteString(r.bold(pad(from, width)))
		for _, to := range t.Order {
			d := t.Distance(from, to)
			cell := pad(d.String(), width)
			if d.IsInf() {
				cell = r.style(cell, r.muted)
			}
			row.WriteString("  ")
			row.WriteString(cell)
		}
		r.printf("%s\n", strings.TrimRight(row.String(), " "))
	}
}

// Banner prints the program name in the accent colour.
func (r *Renderer) Banner(version string) {
	r.printf("%s %s\n", r.style("pathtrace", r.accent), r.style(version, r.muted))
}
