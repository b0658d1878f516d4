// Package exn provides a context-aware concrete error value: a
// container that owns exactly one root cause and a growing, tree-shaped
// history of contextual annotations accumulated as the error propagates
// across call boundaries. It is meant to work alongside the standard
// library https://go.pkg.dev/errors, not replace it.
//
// # Error context
//
// When we write the following:
//
//	if err != nil {
//	    return err
//	}
//
// ... we allow errors to lose error context (ie human-readable root
// cause and debugging information).
//
// Go 1.13 introduced "error wrapping," where we can add context
// messages like this:
//
//	if err != nil {
//	    return fmt.Errorf("contextual information: %w", err)
//	}
//
// This helps, but it conflates two things that are better kept apart:
// the deterministic root cause (what actually failed) and the narrative
// context added along the way (why we were doing it). It also forces
// everything into a single linear chain, which cannot represent the
// partial-failure case where several independent operations fail and a
// caller must report all of them at once.
//
// This package keeps the two apart. A root cause is captured once into
// a container; each boundary the failure crosses appends a context node
// carrying a message (or a typed payload) and the call-site location;
// merging independent failures creates a branching node that retains
// every input's full tree. The root cause is never altered: only the
// tree grows.
//
//	if err != nil {
//	    return exn.Raise(err, "writing file X")
//	}
//
// Raise operates on any in-flight error value: nil passes through as
// nil, a container is grown in place, and a plain error is captured as
// a root cause first. There is no "un-raise."
//
// # Aggregation
//
// When N independent operations fail, RaiseAll merges their containers
// under one unifying context node, one child per input in input order:
//
//	err := exn.RaiseAll("batch failed", err1, err2, err3)
//
// The first non-nil input's root cause is promoted to be the
// aggregate's nominal root cause, by convention; every other input's
// tree, including its own root cause, is retained as a subtree and
// stays reachable by traversal and by Is and As.
//
// # Traversal
//
// The tree can be consumed programmatically, not just formatted. Walk
// performs a depth-first, parent-before-children traversal with
// siblings in insertion order, which is the natural narrative order:
// outermost context first, root cause last. Implement Visitor (or use
// VisitorFunc) for custom diagnostic extraction, or use the Nodes and
// Contexts snapshots:
//
//	x.Visit(exn.VisitorFunc(func(n *exn.Node, depth int, last bool) {
//	    record(depth, n.Err(), n.Frame())
//	}))
//
// Traversal is restartable: it is a pure function of the tree, so
// walking twice yields identical sequences.
//
// # Boundary conversion
//
// At an API edge the tree can be exchanged with the foreign, less
// structured representation: the standard library's linear Unwrap
// chain. ToError flattens the tree into one chain entry per node on
// the spine, ending in the root-cause value itself; aggregated
// subtrees are folded into the message text (a deliberate, documented
// lossy step, since the chain has no branching). FromError wraps a
// foreign error's outermost value as the root cause of a fresh
// single-node container. Both directions are total: nil maps to nil
// and any error value can be wrapped.
//
// # Locations
//
// Every node records the call site that attached it as an exn.Frame
// with a single method, Location. Frames can also be built
// synthetically with NewFrame (for tests or deserialized data) and
// marshal to JSON for structured consumers.
//
// # Concurrency
//
// Containers are plain values with no internal synchronization. All
// mutation (Raise, RaiseAll, Adopt) happens synchronously on the
// single owning path before the container is shared; after sharing,
// treat it as read-only. Under that contract a container can be
// returned from a worker and read elsewhere without extra locking.
//
// # Formatted printing of errors
//
// The container and every frame implement fmt.Formatter. The following
// verbs are supported on a container:
//
//	%s    print the outermost payload's message only
//	%v    same as %s
//	%q    same as %s but quoted
//	%#v   prints the go-syntax representation of the container
//	%+v   extended format: the full tree, root cause last, branches as nested groups
//
// An alternative box-drawing rendering is available by wrapping a
// container with AsCompact:
//
//	fmt.Printf("%+v", exn.AsCompact(x))
//
// ... which draws the tree with "├─" and "└─" connectors instead of
// the default "|->" groups, while leaving the single-line message and
// the error behavior unchanged.
package exn
