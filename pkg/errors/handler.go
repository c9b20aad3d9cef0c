package errors

import (
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

// handlerBox lets atomic.Value hold interface values of differing
// concrete types.
type handlerBox struct{ h ErrorHandler }

var current atomic.Value

func init() {
	current.Store(handlerBox{&LogHandler{}})
}

// Handler returns the handler that receives reported errors.
func Handler() ErrorHandler {
	return current.Load().(handlerBox).h
}

// SetHandler installs h as the global error handler and returns the one it
// replaced. Passing nil restores a non-verbose LogHandler.
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	return current.Swap(handlerBox{h}).(handlerBox).h
}

// Report hands err to the global handler, stamping it first if needed.
func Report(err *VaultError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// ReportPanic hands a recovered panic to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandlePanic(err)
}

// Recover reports a panic in progress instead of letting it unwind further.
// It must be deferred directly:
//
//	defer errors.Recover("alert.buttonTapped")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(&PanicError{
			Op:         op,
			Value:      r,
			StackTrace: CaptureStack(),
			Timestamp:  time.Now(),
		})
	}
}

// CaptureStack returns the caller's stack, one "function\n\tfile:line" entry
// per frame, without the CaptureStack frame itself.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		sb.WriteString(frame.Function + "\n\t" + frame.File + ":" + strconv.Itoa(frame.Line) + "\n")
		if !more {
			break
		}
	}
	return sb.String()
}
