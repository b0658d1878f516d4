package exn

// Boundary conversion between containers and the foreign, less
// structured error representation at an API edge: the standard
// library's linear Unwrap chain.

import (
	"fmt"
	"io"
	"strings"
)

// link implements one entry in an exported error chain: its own
// message, the frame recorded on the node it was flattened from, and
// the cause it unwraps to.
type link struct {
	message string
	frame   Frame
	cause   error
}

var _ interface { // Assert interface implementation.
	error
	Unwrap() error
	fmt.Formatter
} = (*link)(nil)

func (l *link) Error() string { return l.message }

func (l *link) Unwrap() error { return l.cause }

func (l *link) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			io.WriteString(s, l.message)
			if l.frame != nil {
				fmt.Fprintf(s, "\n%+v", l.frame)
			}
			if l.cause != nil {
				fmt.Fprintf(s, "\nCAUSED BY: %+v", l.cause)
			}
			return
		}
		if s.Flag('#') {
			fmt.Fprintf(s, "&exn.link{%q %q}", l.message, l.cause)
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, l.message)
	case 'q':
		fmt.Fprintf(s, "%q", l.message)
	default:
		// empty
	}
}

// ToError exports a container as a plain error chain: the tree is
// flattened in traversal order into one chain entry per node on the
// path from the outermost context down the first-child spine, ending
// in the root-cause error value itself (so Is and As keep matching it
// across the boundary).
//
// The foreign representation has no native branching, so this step is
// deliberately lossy for aggregated containers: subtrees off the spine
// are serialized as indented textual blocks folded into the message of
// the entry they branch from. Every payload's description survives in
// the exported text; the branch structure does not.
//
// ToError is total: a nil container exports as nil.
func ToError(x *Exn) error {
	if x == nil {
		return nil
	}
	return exportNode(x.root)
}

func exportNode(n *Node) error {
	if len(n.children) == 0 {
		return n.payload
	}
	message := n.payload.Error()
	for _, branch := range n.children[1:] {
		var b strings.Builder
		renderTree(&b, branch)
		message += "\nsuppressed: " + strings.ReplaceAll(b.String(), "\n", "\n\t")
	}
	return &link{
		message: message,
		frame:   n.frame,
		cause:   exportNode(n.children[0]),
	}
}

// FromError imports a foreign error as a container: the foreign
// value becomes the root cause of a fresh single-node tree. Whatever
// chain the foreign error already carries is opaque to this layer; it
// stays reachable through the root cause's own Unwrap.
//
// FromError is total: nil imports as nil, and a value that is already
// a container is returned as-is.
func FromError(err error) *Exn {
	return capture(err, getFrame(3))
}
