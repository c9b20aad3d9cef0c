package platform

import "sync"

var (
	dispatchMu   sync.RWMutex
	dispatchFunc func(callback func())
)

// RegisterDispatch sets the function that schedules native-originated
// callbacks, such as alert button handlers, onto the app's main loop. The
// host calls it once during start-up. Passing nil restores inline delivery.
func RegisterDispatch(fn func(callback func())) {
	dispatchMu.Lock()
	dispatchFunc = fn
	dispatchMu.Unlock()
}

// Dispatch hands callback to the registered dispatch function. It reports
// false when no function is registered or callback is nil.
func Dispatch(callback func()) bool {
	dispatchMu.RLock()
	fn := dispatchFunc
	dispatchMu.RUnlock()
	if fn == nil || callback == nil {
		return false
	}
	fn(callback)
	return true
}

// dispatchOrRun schedules callback through Dispatch, running it on the
// calling goroutine when no dispatch function is registered.
func dispatchOrRun(callback func()) {
	if !Dispatch(callback) {
		callback()
	}
}
