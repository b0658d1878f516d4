package exn

// Node is one unit of an error tree: a context payload, the call-site
// Frame recorded when the payload was attached, and an ordered list of
// children. The payload of the deepest node on a container's first-
// child path is the container's root cause; every other payload is
// narrative context attached by Raise, RaiseAll or Adopt.
//
// Nodes are exclusively owned by their parent (or by the Exn for the
// tree root) and are append-only: once attached, a node's payload and
// frame never change, and mutation is limited to appending children.
// There are no back-references, so the structure is a strict out-tree
// and traversal needs no cycle detection.
type Node struct {
	payload  error
	frame    Frame
	children []*Node
}

// Err returns the node's context payload. The payload satisfies the
// error interface: it describes itself, and may expose an underlying
// cause of its own via Unwrap.
func (n *Node) Err() error { return n.payload }

// Frame returns the call-site location recorded when the node was
// attached, or nil for a node built without one (eg from a synthetic
// tree).
func (n *Node) Frame() Frame { return n.frame }

// Children returns the node's children in insertion order, which is
// the canonical traversal order.
//
// Do not modify the returned slice and expect the tree to remain
// stable.
func (n *Node) Children() []*Node { return n.children }
