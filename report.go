package exn

import (
	"fmt"
	"io"
	"strings"
)

// Compact wraps a container in an alternative box-drawing rendering
// for application-level error reporting. The single-line message and
// the error behavior (Error, Unwrap, Is, As) are the embedded
// container's own; only the extended "%+v" rendering changes:
//
//	fifth, at app/main.go:42
//	├─ fourth, at app/main.go:41
//	│  ├─ first, at app/main.go:38
//	│  └─ second, at app/main.go:39
//	└─ third, at app/main.go:40
//
// A purely linear chain stays at the left margin, one "├─" connector
// per node and "└─" for the root cause.
type Compact struct {
	*Exn
}

// AsCompact wraps a container for compact rendering. A nil container
// renders as "<nil>".
func AsCompact(x *Exn) Compact {
	return Compact{x}
}

// String returns the full box-drawing rendering. Equivalent to
// formatting with "%+v".
func (c Compact) String() string {
	if c.Exn == nil {
		return "<nil>"
	}
	var b strings.Builder
	renderCompact(&b, c.Exn.root)
	return b.String()
}

// Format implements fmt.Formatter: "%+v" produces the box-drawing
// rendering, every other verb delegates to the embedded container.
func (c Compact) Format(s fmt.State, verb rune) {
	if c.Exn == nil {
		io.WriteString(s, "<nil>")
		return
	}
	if verb == 'v' && s.Flag('+') {
		renderCompact(s, c.Exn.root)
		return
	}
	c.Exn.Format(s, verb)
}

// compactPrinter implements Visitor and produces the box-drawing
// rendering. Like treePrinter it tracks per-depth prefix state; the
// chain flag marks the left-margin run of sole-child nodes that keeps
// a linear chain flat.
type compactPrinter struct {
	w      io.Writer
	levels []compactLevel
}

type compactLevel struct {
	prefix   string
	chain    bool
	children int
}

var _ Visitor = (*compactPrinter)(nil)

func (p *compactPrinter) VisitNode(n *Node, depth int, last bool) {
	var lvl compactLevel
	if depth == 0 {
		lvl = compactLevel{prefix: "", chain: true, children: len(n.children)}
	} else {
		parent := p.levels[depth-1]
		switch {
		case parent.chain && parent.children == 1 && len(n.children) == 1:
			io.WriteString(p.w, "\n"+parent.prefix+"├─ ")
			lvl = compactLevel{prefix: parent.prefix, chain: true, children: len(n.children)}
		case !last:
			io.WriteString(p.w, "\n"+parent.prefix+"├─ ")
			lvl = compactLevel{prefix: parent.prefix + "│  ", children: len(n.children)}
		default:
			io.WriteString(p.w, "\n"+parent.prefix+"└─ ")
			lvl = compactLevel{prefix: parent.prefix + "   ", children: len(n.children)}
		}
	}

	io.WriteString(p.w, nodeLine(n))

	p.levels = append(p.levels[:depth], lvl)
}

// renderCompact writes the box-drawing rendering of the tree rooted
// at n.
func renderCompact(w io.Writer, n *Node) {
	Walk(n, &compactPrinter{w: w})
}
