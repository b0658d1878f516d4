package exn

// Attribution: portions of the below code and documentation are modeled
// directly on the https://pkg.go.dev/golang.org/x/xerrors library, used
// with the permission available under the software license
// (BSD 3-Clause):
// https://cs.opensource.google/go/x/xerrors/+/master:LICENSE
//
// Attribution: portions of the below code and documentation are modeled
// directly on the https://github.com/pkg/errors library, used
// with the permission available under the software license
// (BSD 2-Clause):
// https://github.com/pkg/errors/blob/master/LICENSE

import (
	"fmt"
	"io"
	"path/filepath"
	stdruntime "runtime"
	"strconv"
	"strings"

	"github.com/fast/exn/internal/runtime"
)

// Frame defines an interface for accessing and displaying the source
// location attached to a node in an error tree. Every node created by
// Capture, Raise or RaiseAll carries exactly one Frame: the call site
// where that node was attached.
//
// Frames are meant to be seen, so we have implemented the following
// default formatting verbs on it:
//
//	"%s"  – the base name of the file (or `unknown`) and the line number (if known)
//	"%q"  – the same as `%s` but wrapped in `"` delimiters
//	"%d"  – the line number
//	"%n"  – the basic function name, ie without a full package qualifier
//	"%v"  – the full path of the file (or `unknown`) and the line number (if known)
//	"%+v" – a full function name on one line, and a full file name and
//	        line number on a second line
//	"%#v" – a Golang representation with the type (`exn.Frame`)
//
// Marshaling a frame as JSON returns an object with location data:
//
//	{"function":"test.pkg.in/example.init","file":"/src/example.go","line":10}
//
// A Frame is immutable, so no setters are provided, but you can copy
// one trivially with:
//
//	function, file, line := oldFrame.Location()
//	newFrame := exn.NewFrame(function, file, line)
type Frame interface {
	// Location returns the frame's caller's characteristics for help with
	// identifying and debugging the codebase.
	//
	// Location results are generated uniquely per Frame implementation.
	// When using this package's implementation, note that the results are
	// evaluated and expanded lazily when the frame was generated from the
	// local call stack: Location is not safe for concurrent access.
	Location() (function string, file string, line int)
}

// programCounter defines an interface for extracting a program counter
// on the call stack from a frame type. The absence of a program counter
// (when it is 0) means it was generated synthetically.
type programCounter interface {
	PC() uintptr
}

// frame is this package's default implementation of Frame in such a way
// that we can create one either from the actual call stack or
// "synthetically:" by designating the location characteristics
// directly. frame also implements interfaces to integrate with runtime
// (via program counters) and serialization processes.
type frame struct {
	pc        uintptr
	runtimeFn *stdruntime.Func
	function  string
	file      string
	line      int
}

var _ interface { // Assert interface implementation.
	Frame
	programCounter
	fmt.Formatter
	fmt.Stringer
} = (*frame)(nil)

// PC returns the Frame's local frame program counter.
func (f *frame) PC() uintptr { return f.pc }

// Location returns the frame's caller's characteristics for help with
// identifying and debugging the codebase.
//
// The results are evaluated and expanded lazily when the frame was
// generated from the local call stack: Location is not safe for
// concurrent access.
func (f *frame) Location() (function string, file string, line int) {
	return f.getFunction(), f.getFile(), f.getLine()
}

// String renders the frame the way nodes embed it in tree output: the
// full file path and the line number separated by a colon.
func (f *frame) String() string {
	_, file, line := f.Location()
	if line > 0 {
		return file + ":" + strconv.Itoa(line)
	}
	return file
}

// Format gives this interface control over how the location information
// is structured when it is displayed.
func (f *frame) Format(s fmt.State, verb rune) {
	var appendD = func(line int) {
		if line > 0 {
			io.WriteString(s, ":")
			io.WriteString(s, strconv.Itoa(line))
		}
	}
	var formatS = func(file string, line int) {
		io.WriteString(s, escaper.Replace(filepath.Base(file)))
		appendD(line)
	}

	function, file, line := f.Location()
	switch verb {
	case 's':
		formatS(file, line)
	case 'q':
		io.WriteString(s, `"`)
		formatS(file, line)
		io.WriteString(s, `"`)
	case 'd':
		io.WriteString(s, strconv.Itoa(line))
	case 'n':
		io.WriteString(s, escaper.Replace(runtime.FuncName(function)))
	case 'v':
		switch {
		case s.Flag('+'):
			io.WriteString(s, escaper.Replace(function))
			io.WriteString(s, "\n\t")
			io.WriteString(s, escaper.Replace(file))
			io.WriteString(s, ":")
			io.WriteString(s, strconv.Itoa(line))
		case s.Flag('#'):
			io.WriteString(s, "exn.Frame(\"")
			io.WriteString(s, escaper.Replace(file))
			appendD(line)
			io.WriteString(s, "\")")
		default:
			io.WriteString(s, escaper.Replace(file))
			appendD(line)
		}
	}
}

// MarshalJSON allows this interface to integrate its default formatting
// into JSON for serialization.
func (f frame) MarshalJSON() ([]byte, error) {
	function, file, line := f.Location()
	str := fmt.Sprintf(`{"function":%q,"file":%q,"line":%d}`,
		escaper.Replace(function), escaper.Replace(file), line)
	return []byte(str), nil
}

// escaper escapes some characters that would keep a rendered tree from
// staying line-oriented.
var escaper = strings.NewReplacer(`\`, `\\`, "\t", `\t`, "\n", `\n`, `"`, `\"`)

// getFunction gets the frame's full caller function name. Prioritizes
// synthetic values if available, otherwise expands the pc using runtime
// and memoizes the result.
func (f *frame) getFunction() (function string) {
	function = f.function
	if function == "" {
		function = "unknown"
		if f.pc != 0 {
			function = f.fn().Name()
			f.function = function
		}
	}
	return
}

// getFile gets the frame's caller's filename. Prioritizes synthetic
// values if available, otherwise expands the pc using runtime and
// memoizes the result.
func (f *frame) getFile() (file string) {
	file = f.file
	if file == "" {
		file = "unknown"
		if f.pc != 0 {
			file, _ = f.fn().FileLine(f.pc)
			f.file = file
		}
	}
	return
}

// getLine gets the frame's caller's file line. Prioritizes synthetic
// values if available, otherwise expands the pc using runtime and
// memoizes the result.
func (f *frame) getLine() (line int) {
	line = f.line
	if line == 0 {
		if f.pc != 0 {
			_, line = f.fn().FileLine(f.pc)
			f.line = line
		}
	}
	return
}

// fn is the way to cleanly access the runtimeFn field: if none is found
// it attempts to look it up from the frame location program counter
// (pc). This lookup will only happen once.
func (f *frame) fn() *stdruntime.Func {
	if f.runtimeFn == nil && f.pc != 0 {
		f.runtimeFn = stdruntime.FuncForPC(f.pc)
	}
	return f.runtimeFn
}

// NewFrame creates a "synthetic" Frame that describes the given
// location characteristics. This can be used to rebuild locations from
// serialized trees, or write clear tests that work with these.
func NewFrame(function string, file string, line int) Frame {
	return &frame{
		function: function,
		file:     file,
		line:     line,
	}
}

// FrameFromPC creates a Frame from a program counter.
func FrameFromPC(pc uintptr) Frame {
	return &frame{pc: pc}
}

// PCFromFrame extracts the frame location program counter (pc) from
// either this package's Frame implementation (using an unexported
// interface), a raw uintptr (for identity), or runtime.Frame. Does not
// distinguish between an empty or nil frame, an unsupported frame
// implementation, or some other error: all return 0.
func PCFromFrame(v any) uintptr {
	if v == nil {
		return 0
	}
	switch fr := v.(type) {
	case uintptr:
		return fr
	case stdruntime.Frame:
		return fr.PC
	case programCounter:
		return fr.PC()
	default:
		return 0
	}
}

// frameLabel renders the location suffix appended to a node's payload
// in tree output. Returns an empty string when the node carries no
// location.
func frameLabel(fr Frame) string {
	if fr == nil {
		return ""
	}
	if str, ok := fr.(fmt.Stringer); ok {
		return str.String()
	}
	_, file, line := fr.Location()
	if line > 0 {
		return file + ":" + strconv.Itoa(line)
	}
	return file
}
