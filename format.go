package exn

import (
	"fmt"
	"io"
	"strings"
)

// Tree rendering.
//
// The default textual rendering is produced by a built-in visitor that
// walks the tree in traversal order: outermost context first, root
// cause last, one "|->" connector group per branch. A purely linear
// chain of raises stays at one indent level so the common sequential
// case reads as a flat narrative:
//
//	fatal error: math no longer works, at app/main.go:44
//	|
//	|-> logic error: 0 == 1, at app/logic.go:40
//
// An aggregated container indents each merged subtree under its own
// connector instead.

// treePrinter implements Visitor and produces the default rendering.
// It tracks, per depth, the effective indent level and the connector
// prefix so branches nest while linear chains stay flat.
type treePrinter struct {
	w      io.Writer
	levels []printLevel
}

type printLevel struct {
	level    int
	prefix   string
	children int
}

var _ Visitor = (*treePrinter)(nil)

func (p *treePrinter) VisitNode(n *Node, depth int, last bool) {
	var lvl printLevel
	if depth == 0 {
		lvl = printLevel{level: 0, prefix: "", children: len(n.children)}
	} else {
		parent := p.levels[depth-1]
		io.WriteString(p.w, "\n"+parent.prefix+"|")
		io.WriteString(p.w, "\n"+parent.prefix+"|-> ")

		// A sole child continuing a sole-child chain stays at the
		// parent's indent, so sequential raises render flat.
		if parent.level == 0 && parent.children == 1 && len(n.children) == 1 {
			lvl = printLevel{level: 0, prefix: parent.prefix, children: len(n.children)}
		} else {
			connector := "|   "
			if last {
				connector = "    "
			}
			lvl = printLevel{
				level:    parent.level + 1,
				prefix:   parent.prefix + connector,
				children: len(n.children),
			}
		}
	}

	io.WriteString(p.w, nodeLine(n))

	p.levels = append(p.levels[:depth], lvl)
}

// nodeLine renders a single node: the payload's description, then the
// call-site location if one was recorded.
func nodeLine(n *Node) string {
	line := n.payload.Error()
	if label := frameLabel(n.frame); label != "" {
		line += ", at " + label
	}
	return line
}

// renderTree writes the default rendering of the tree rooted at n.
func renderTree(w io.Writer, n *Node) {
	Walk(n, &treePrinter{w: w})
}

// String returns the full tree rendering: every context node in
// traversal order, outermost first, root cause last, branches as
// nested groups. Equivalent to formatting with "%+v".
func (x *Exn) String() string {
	if x == nil {
		return "<nil>"
	}
	var b strings.Builder
	renderTree(&b, x.root)
	return b.String()
}

// Format implements fmt.Formatter with the package's usual verbs:
//
//	%s    the outermost payload's message only
//	%v    same as %s
//	%q    same as %s but quoted
//	%+v   the full tree rendering, root cause last
//	%#v   a go-syntax representation of the container
func (x *Exn) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			renderTree(s, x.root)
			return
		}
		if s.Flag('#') {
			fmt.Fprintf(s, "&exn.Exn{%q %q}", x.Error(), x.cause)
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, x.Error())
	case 'q':
		fmt.Fprintf(s, "%q", x.Error())
	default:
		// empty
	}
}
