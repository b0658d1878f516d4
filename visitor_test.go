package exn

import (
	"testing"

	"github.com/fast/exn/internal/testutils"
)

type visitRecord struct {
	message string
	depth   int
	last    bool
}

type recordingVisitor struct {
	visits []visitRecord
}

func (v *recordingVisitor) VisitNode(n *Node, depth int, last bool) {
	v.visits = append(v.visits, visitRecord{
		message: n.Err().Error(),
		depth:   depth,
		last:    last,
	})
}

func TestWalkOrder(t *testing.T) {
	// batch failed - [fetching a - timeout, connection reset]
	x := RaiseAll("batch failed",
		Raise(New("timeout"), "fetching a"),
		Capture(New("connection reset")))

	v := new(recordingVisitor)
	x.Visit(v)

	testutils.AssertEqual(t, []visitRecord{
		{message: "batch failed", depth: 0, last: true},
		{message: "fetching a", depth: 1, last: false},
		{message: "timeout", depth: 2, last: true},
		{message: "connection reset", depth: 1, last: true},
	}, v.visits)
}

func TestWalkParentBeforeChildren(t *testing.T) {
	x := Raise(Raise(New("root"), "inner"), "outer")

	v := new(recordingVisitor)
	Walk(x.Root(), v)

	testutils.AssertEqual(t, []visitRecord{
		{message: "outer", depth: 0, last: true},
		{message: "inner", depth: 1, last: true},
		{message: "root", depth: 2, last: true},
	}, v.visits)
}

func TestWalkRestartable(t *testing.T) {
	x := RaiseAll("batch failed",
		Raise(New("timeout"), "fetching a"),
		Raise(New("connection reset"), "fetching b"))

	first := new(recordingVisitor)
	second := new(recordingVisitor)
	x.Visit(first)
	x.Visit(second)

	testutils.AssertEqual(t, first.visits, second.visits)
}

func TestWalkNil(t *testing.T) {
	count := 0
	Walk(nil, VisitorFunc(func(*Node, int, bool) { count++ }))
	testutils.AssertEqual(t, 0, count)

	var x *Exn
	x.Visit(VisitorFunc(func(*Node, int, bool) { count++ }))
	testutils.AssertEqual(t, 0, count)
}

func TestVisitorFunc(t *testing.T) {
	x := Raise(New("root"), "context")

	var msgs []string
	x.Visit(VisitorFunc(func(n *Node, _ int, _ bool) {
		msgs = append(msgs, n.Err().Error())
	}))
	testutils.AssertEqual(t, []string{"context", "root"}, msgs)
}

func TestNodesAndContexts(t *testing.T) {
	var x *Exn
	testutils.AssertNil(t, x.Nodes())
	testutils.AssertNil(t, x.Contexts())

	x = Raise(New("disk full"), "writing file X")
	nodes := x.Nodes()
	payloads := x.Contexts()

	testutils.AssertEqual(t, 2, len(nodes))
	testutils.AssertEqual(t, 2, len(payloads))
	for i, n := range nodes {
		testutils.AssertTrue(t, n.Err() == payloads[i], "contexts mirror nodes")
	}
}

func TestNodeAccessors(t *testing.T) {
	payload := New("root")
	x := Capture(payload)
	n := x.Root()

	testutils.AssertTrue(t, n.Err() == payload)
	testutils.AssertNotNil(t, n.Frame())
	testutils.AssertEqual(t, 0, len(n.Children()))

	x = Raise(x, "context")
	testutils.AssertEqual(t, 1, len(x.Root().Children()))
	testutils.AssertTrue(t, x.Root().Children()[0] == n, "previous root becomes the sole child")
}
