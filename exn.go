package exn

import (
	"fmt"
)

// Exn is a context-aware error value: it owns exactly one root cause
// and a tree of context nodes accumulated as the error propagated
// across call boundaries. The root cause is fixed at construction and
// never altered; raising only grows the tree.
//
// An Exn implements the error interface, so it can travel through any
// API that returns error. Unwrap returns the root cause, and Is and As
// consider every payload in the tree, so aggregated causes remain
// reachable with the standard errors helpers.
//
// Exns are not synchronized: all mutation (Raise, RaiseAll, Adopt)
// must happen on a single owning path before the container is shared;
// after sharing, treat it as read-only.
type Exn struct {
	cause error
	root  *Node
}

var _ interface { // Assert interface implementation.
	error
	Unwrap() error
	Is(error) bool
	As(any) bool
	fmt.Formatter
} = (*Exn)(nil)

// State describes where a container is in the context attachment
// protocol.
type State int

const (
	// Fresh: the root cause was just captured; the tree is the root
	// node only.
	Fresh State = iota

	// Annotated: one or more context nodes were attached along a
	// single path.
	Annotated

	// Aggregated: at least one node has multiple children, ie the
	// container merged independent failures.
	Aggregated
)

func (s State) String() string {
	switch s {
	case Fresh:
		return "fresh"
	case Annotated:
		return "annotated"
	case Aggregated:
		return "aggregated"
	default:
		return "unknown"
	}
}

// Capture wraps a root cause into a fresh container whose tree is
// exactly one node: the root cause itself, marked with the caller's
// location. Returns nil if err is nil.
//
// If err is already an *Exn it is returned unchanged.
func Capture(err error) *Exn {
	return capture(err, getFrame(3))
}

// CaptureAt is Capture with a tunable number of callers to skip when
// recording the location (in case it is called in a helper you want to
// ignore, for example).
func CaptureAt(err error, skipCallers int) *Exn {
	return capture(err, getFrame(3+skipCallers))
}

func capture(err error, fr Frame) *Exn {
	if isNil(err) {
		return nil
	}
	if x, ok := err.(*Exn); ok {
		return x
	}
	return &Exn{
		cause: err,
		root:  &Node{payload: err, frame: fr},
	}
}

// Raise grows the context tree of a propagating failure: a new node
// carrying the message and the call-site location is pushed above the
// current tree, so the previous tree root becomes its sole child.
//
// Raise operates on any in-flight error value: a nil err is passed
// through as a nil container, an *Exn is grown in place, and any other
// error is captured as a root cause first. The root cause is never
// altered; only the tree grows.
func Raise(err error, message string) *Exn {
	fr := getFrame(3)
	return capture(err, fr).raise(New(message), fr)
}

// Raisef is Raise with fmt.Sprintf-style message construction.
func Raisef(err error, format string, values ...any) *Exn {
	fr := getFrame(3)
	return capture(err, fr).raise(New(fmt.Sprintf(format, values...)), fr)
}

// RaiseWith is Raise with a structured context payload instead of a
// plain message: any error value may serve, so callers can attach
// typed context and recover it later with As. A nil context is a
// no-op: the container is returned ungrown.
func RaiseWith(err error, context error) *Exn {
	fr := getFrame(3)
	x := capture(err, fr)
	if isNil(context) {
		return x
	}
	return x.raise(context, fr)
}

// Raise is the method form of the package function: it pushes a new
// node carrying the context payload above the current tree and returns
// the same container. A nil context is a no-op.
func (x *Exn) Raise(context error) *Exn {
	return x.raise(context, getFrame(3))
}

func (x *Exn) raise(context error, fr Frame) *Exn {
	if x == nil {
		return nil
	}
	if isNil(context) {
		return x
	}
	x.root = &Node{
		payload:  context,
		frame:    fr,
		children: []*Node{x.root},
	}
	return x
}

// RaiseAll merges independently failed errors into one container: a
// new node carrying the message becomes the tree root, and each
// non-nil input's tree becomes one of its children, in input order.
// Inputs that are not containers are captured first. The inputs are
// consumed: do not keep raising on them afterwards.
//
// The first non-nil input's root cause is promoted to be the
// aggregate's nominal root cause. This is a deterministic, documented
// convention; every other input's full tree, including its own root
// cause, is retained as a subtree and stays reachable by traversal and
// by Is and As.
//
// Nil inputs are skipped. Returns nil when every input is nil.
func RaiseAll(message string, errs ...error) *Exn {
	return raiseAll(New(message), errs, getFrame(3))
}

// RaiseAllWith is RaiseAll with a structured context payload instead
// of a plain message.
func RaiseAllWith(context error, errs ...error) *Exn {
	return raiseAll(context, errs, getFrame(3))
}

func raiseAll(context error, errs []error, fr Frame) *Exn {
	if isNil(context) {
		context = New("exn.RaiseAllWith used incorrectly: context may not be nil")
	}
	node := &Node{payload: context, frame: fr}
	var cause error
	for _, err := range errs {
		if isNil(err) {
			continue
		}
		child := capture(err, fr)
		if cause == nil {
			cause = child.cause
		}
		node.children = append(node.children, child.root)
	}
	if cause == nil {
		return nil
	}
	return &Exn{cause: cause, root: node}
}

// Adopt appends another container's tree as an additional child of the
// current tree root: a sibling failure retained for later inspection
// without a new unifying context node. The adopted container is
// consumed. The receiver's root cause is unchanged.
//
// A fresh receiver has no context node to hang a sibling on, so
// adopting into one first pushes an anchor node ("multiple errors")
// above the root cause, keeping the root-cause node a leaf.
//
// Adopting nil is a no-op.
func (x *Exn) Adopt(other *Exn) {
	if x == nil || other == nil {
		return
	}
	if len(x.root.children) == 0 {
		x.root = &Node{
			payload:  New("multiple errors"),
			frame:    getFrame(3),
			children: []*Node{x.root},
		}
	}
	x.root.children = append(x.root.children, other.root)
}

// RootCause returns the original, innermost error the container was
// built from. It is fixed at construction: no amount of raising alters
// it, and aggregation promotes the first input's root cause by
// convention.
func (x *Exn) RootCause() error {
	if x == nil {
		return nil
	}
	return x.cause
}

// Root exposes the tree for read-only traversal, starting at the
// newest (outermost) context node.
func (x *Exn) Root() *Node {
	if x == nil {
		return nil
	}
	return x.root
}

// State reports where the container is in the attachment protocol:
// Fresh, Annotated, or Aggregated. Derived from the tree shape, so an
// adopted sibling counts as aggregation. A nil container reports
// Fresh, the zero state; there is no distinct state for the absence
// of a failure.
func (x *Exn) State() State {
	if x == nil {
		return Fresh
	}
	aggregated := false
	Walk(x.root, VisitorFunc(func(n *Node, _ int, _ bool) {
		if len(n.children) > 1 {
			aggregated = true
		}
	}))
	switch {
	case aggregated:
		return Aggregated
	case len(x.root.children) > 0:
		return Annotated
	default:
		return Fresh
	}
}

// Error returns the outermost (newest) payload's message, matching how
// a single-message view of the failure reads at the point it is
// handled. Use the "%+v" verb for the full tree.
func (x *Exn) Error() string {
	return x.root.payload.Error()
}

// Unwrap returns the root cause, so the standard errors helpers reach
// it directly through the container.
func (x *Exn) Unwrap() error { return x.cause }

// Is reports whether any payload in the tree matches target.
//
// This function allows Is to traverse every branch of the tree, so
// causes merged by RaiseAll or Adopt are matched too.
func (x *Exn) Is(target error) bool {
	for _, n := range x.Nodes() {
		if Is(n.payload, target) {
			return true
		}
	}
	return false
}

// As finds the first payload in traversal order that matches target,
// and if so, sets target to that value and returns true. Otherwise, it
// returns false.
//
// This function allows As to traverse every branch of the tree, so
// causes merged by RaiseAll or Adopt are matched too.
func (x *Exn) As(target any) bool {
	for _, n := range x.Nodes() {
		if As(n.payload, target) {
			return true
		}
	}
	return false
}
