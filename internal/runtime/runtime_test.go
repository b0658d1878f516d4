package runtime

import (
	"runtime"
	"testing"

	"github.com/fast/exn/internal/testutils"
)

// Callers to build up a call stack in tests.

type callerStruct struct{}

func (c callerStruct) PtrFrameCaller(skip int) runtime.Frame {
	return FrameCaller(skip)
}

func FrameCaller(skip int) runtime.Frame {
	return GetFrame(skip)
}

// Line no for the callers call in GetFrame.
var getFrameLine = 11

func TestGetFrame(t *testing.T) {
	var cs callerStruct
	cases := []struct {
		name  string
		frame runtime.Frame
		fn    string
		file  string
		line  int
	}{
		{
			name:  "skip:0",
			frame: cs.PtrFrameCaller(0),
			fn:    `.+\/runtime\.GetFrame`,
			file:  `.+\/runtime\.go`,
			line:  getFrameLine,
		},
		{
			name:  "skip:1",
			frame: cs.PtrFrameCaller(1),
			fn:    `.+\/runtime\.FrameCaller`,
			file:  `.+\/runtime_test\.go`,
			line:  19,
		},
		{
			name:  "skip:2",
			frame: cs.PtrFrameCaller(2),
			fn:    `.+\/runtime\.callerStruct\.PtrFrameCaller`,
			file:  `.+\/runtime_test\.go`,
			line:  15,
		},
		{
			name:  "skip:3",
			frame: cs.PtrFrameCaller(3),
			fn:    `.+\/runtime\.TestGetFrame`,
			file:  `.+\/runtime_test\.go`,
			line:  57,
		},
		{
			name:  "skip:4",
			frame: cs.PtrFrameCaller(4),
			fn:    `testing\.tRunner`,
			file:  `.+\/testing\/testing\.go`,
		},
		{
			name:  "skip:5",
			frame: cs.PtrFrameCaller(5), // Empty.
			fn:    "",
			file:  "",
			line:  0,
		},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			testutils.AssertMatch(t, tt.fn, tt.frame.Function)
			testutils.AssertMatch(t, tt.file, tt.frame.File)
			if tt.line != 0 {
				testutils.AssertEqual(t, tt.line, tt.frame.Line)
			}
		})
	}
}

func TestFuncName(t *testing.T) {
	cases := []struct {
		name, want string
	}{
		{name: "", want: ""},
		{name: "runtime.main", want: "main"},
		{name: "github.com/fast/exn.funcname", want: "funcname"},
		{name: "funcname", want: "funcname"},
		{name: "io.copyBuffer", want: "copyBuffer"},
		{name: "main.(*R).Write", want: "(*R).Write"},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got := FuncName(tt.name)
			want := tt.want
			if got != want {
				t.Errorf("funcname(%q): want: %q, got %q", tt.name, want, got)
			}
		})
	}
}
