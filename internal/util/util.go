package util

import (
	"fmt"
	"runtime"
	"strings"
)

// SafeSourceOperation wraps the processing of a single source such that panics are
// recovered and nice error messages are constructed
func SafeSourceOperation(source string, op func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				if anErr, ok := r.(error); ok {
					err = fmt.Errorf("Worker Panic: %w\nSource: %s\n%s", anErr, source, GetTrace())
				} else {
					err = fmt.Errorf("Worker Panic: %v\nSource: %s\n%s", r, source, GetTrace())
				}
			}
		}()
		err = op()
		return
	}
}

// GetTrace renders the stack of the caller of GetTrace's caller, one frame per
// function, omitting frames inside the Go runtime
func GetTrace() string {
	var pcs [16]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	var res strings.Builder
	for {
		frame, more := frames.Next()
		if frame.Function != "" && !strings.HasPrefix(frame.Function, "runtime.") {
			fmt.Fprintf(&res, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		}
		if !more {
			break
		}
	}
	return res.String()
}

// FormatMultiError formats multierrors for logging
func FormatMultiError(merrs []error) string {
	if len(merrs) == 1 {
		return merrs[0].Error()
	}
	var msg = fmt.Sprintf("%d sources failed:\n", len(merrs))
	for i := 0; i < len(merrs); i++ {
		msg += fmt.Sprintf("%+v\n", merrs[i])
	}
	return strings.TrimSuffix(msg, "\n")
}
