package exn

import "github.com/fast/exn/internal/runtime"

// Caller returns a Frame that describes the proximate frame on the
// caller's stack.
func Caller() Frame {
	return getFrame(3)
}

// CallerAt returns a Frame that describes a frame on the caller's
// stack. The argument skipCallers is the number of frames to skip over.
func CallerAt(skipCallers int) Frame {
	return getFrame(skipCallers + 3)
}

// getFrame translates a runtime.Frame item returned from the internal
// runtime utilities into a frame.
//
//go:noinline
func getFrame(skipCallers int) *frame {
	return &frame{pc: runtime.GetFrame(skipCallers).PC}
}
