package exn

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/fast/exn/internal/testutils"
)

//go:noinline
func callerCaller() Frame {
	return CallerAt(1) // <-- Frame from our caller, not here.
}

func TestCaller(t *testing.T) {
	fr := Caller()
	function, file, line := fr.Location()

	testutils.AssertMatch(t, `\.TestCaller$`, function)
	testutils.AssertMatch(t, `frames_test\.go$`, file)
	testutils.AssertTrue(t, line > 0)
	testutils.AssertTrue(t, PCFromFrame(fr) != 0, "call-stack frames carry a pc")
}

func TestCallerAt(t *testing.T) {
	fr := callerCaller()
	function, _, _ := fr.Location()
	testutils.AssertMatch(t, `\.TestCallerAt$`, function, "skips the helper")
}

func TestNewFrame(t *testing.T) {
	fr := NewFrame("github.com/fast/exn.fn", "/src/pkg/file.go", 12)
	function, file, line := fr.Location()

	testutils.AssertEqual(t, "github.com/fast/exn.fn", function)
	testutils.AssertEqual(t, "/src/pkg/file.go", file)
	testutils.AssertEqual(t, 12, line)
	testutils.AssertEqual(t, uintptr(0), PCFromFrame(fr), "synthetic frames have no pc")
}

func TestFrameFormat(t *testing.T) {
	fr := NewFrame("github.com/fast/exn.fn", "/src/pkg/file.go", 12)

	cases := []struct {
		format   string
		expected string
	}{
		{"%s", "file.go:12"},
		{"%q", `"file.go:12"`},
		{"%d", "12"},
		{"%n", "fn"},
		{"%v", "/src/pkg/file.go:12"},
		{"%+v", "github.com/fast/exn.fn\n\t/src/pkg/file.go:12"},
		{"%#v", `exn.Frame("/src/pkg/file.go:12")`},
	}
	for i, tc := range cases {
		testutils.AssertEqual(t, tc.expected, fmt.Sprintf(tc.format, fr),
			fmt.Sprintf("case %d (%s)", i, tc.format))
	}
}

func TestFrameFormatUnknown(t *testing.T) {
	fr := NewFrame("", "", 0)
	testutils.AssertEqual(t, "unknown", fmt.Sprintf("%s", fr))
	testutils.AssertEqual(t, "unknown", fmt.Sprintf("%v", fr))
}

func TestFrameString(t *testing.T) {
	fr := NewFrame("github.com/fast/exn.fn", "/src/pkg/file.go", 12)
	testutils.AssertEqual(t, "/src/pkg/file.go:12", fr.(fmt.Stringer).String())

	noLine := NewFrame("fn", "/src/pkg/file.go", 0)
	testutils.AssertEqual(t, "/src/pkg/file.go", noLine.(fmt.Stringer).String())
}

func TestFrameMarshalJSON(t *testing.T) {
	fr := NewFrame("github.com/fast/exn.fn", "/src/pkg/file.go", 12)
	byt, err := json.Marshal(fr)

	testutils.AssertNil(t, err)
	testutils.AssertEqual(t,
		`{"function":"github.com/fast/exn.fn","file":"/src/pkg/file.go","line":12}`,
		string(byt))
}

func TestPCFromFrame(t *testing.T) {
	testutils.AssertEqual(t, uintptr(0), PCFromFrame(nil))
	testutils.AssertEqual(t, uintptr(42), PCFromFrame(uintptr(42)))
	testutils.AssertEqual(t, uintptr(0), PCFromFrame("not a frame"))

	pc := PCFromFrame(Caller())
	testutils.AssertTrue(t, pc != 0)
	fr := FrameFromPC(pc)
	function, _, _ := fr.Location()
	testutils.AssertMatch(t, `\.TestPCFromFrame$`, function)
}

func TestFrameLabel(t *testing.T) {
	testutils.AssertEqual(t, "", frameLabel(nil))
	testutils.AssertEqual(t, "/src/pkg/file.go:12",
		frameLabel(NewFrame("fn", "/src/pkg/file.go", 12)))
}
