package exn

// Visitor is the traversal protocol for error trees. Walk calls
// VisitNode once per node, depth-first, parent before children, with
// siblings in insertion order. This ordering is load-bearing: it
// matches the narrative order expected by human-readable rendering,
// with the outermost context first and the root cause last.
//
// depth is the node's distance from the tree root; last reports
// whether the node is its parent's final child (true for the root).
type Visitor interface {
	VisitNode(n *Node, depth int, last bool)
}

// VisitorFunc adapts a plain function to the Visitor interface.
type VisitorFunc func(n *Node, depth int, last bool)

// VisitNode calls f(n, depth, last).
func (f VisitorFunc) VisitNode(n *Node, depth int, last bool) { f(n, depth, last) }

// Walk performs a depth-first, parent-before-children traversal of the
// tree rooted at n. Traversal is a pure function of the tree: it does
// not mutate, so walking twice yields identical sequences, and the
// tree's acyclic construction means it always terminates.
func Walk(n *Node, v Visitor) {
	walk(n, 0, true, v)
}

func walk(n *Node, depth int, last bool, v Visitor) {
	if n == nil {
		return
	}
	v.VisitNode(n, depth, last)
	for i, child := range n.children {
		walk(child, depth+1, i == len(n.children)-1, v)
	}
}

// Visit walks the container's tree with the given visitor, outermost
// context first.
func (x *Exn) Visit(v Visitor) {
	if x == nil {
		return
	}
	Walk(x.root, v)
}

// Nodes returns every node of the tree in traversal order: outermost
// context first, root cause last.
func (x *Exn) Nodes() []*Node {
	if x == nil {
		return nil
	}
	var nodes []*Node
	Walk(x.root, VisitorFunc(func(n *Node, _ int, _ bool) {
		nodes = append(nodes, n)
	}))
	return nodes
}

// Contexts returns every payload of the tree in traversal order. For a
// container grown only by sequential raises this reads as the list of
// context messages followed by the root cause.
func (x *Exn) Contexts() []error {
	nodes := x.Nodes()
	if nodes == nil {
		return nil
	}
	payloads := make([]error, len(nodes))
	for i, n := range nodes {
		payloads[i] = n.payload
	}
	return payloads
}
