package link

import (
	"context"
	"fmt"
	"runtime/debug"
)

// CatchPanic recovers a panic in the calling goroutine and cancels ctx with
// it. Use it deferred.
func CatchPanic(cancel context.CancelCauseFunc) {
	if v := recover(); v != nil {
		err, ok := v.(error)
		if !ok {
			err = fmt.Errorf("panic: %v", v)
		}
		err = fmt.Errorf("%w\n%v", err, string(debug.Stack()))
		if cancel != nil {
			cancel(err)
		}
	}
}
