package platform

import (
	"context"
	"sync"
)

// MethodHandler handles incoming method calls on a channel.
type MethodHandler func(method string, args any) (any, error)

// MethodChannel provides bidirectional method-call communication with native code.
type MethodChannel struct {
	name string

	mu      sync.RWMutex
	handler MethodHandler
}

// NewMethodChannel creates a new method channel with the given name.
// Creating a second channel with the same name replaces the first as the
// receiver of native calls.
func NewMethodChannel(name string) *MethodChannel {
	ch := &MethodChannel{name: name}
	registry.registerMethod(name, ch)
	return ch
}

// Name returns the channel name.
func (c *MethodChannel) Name() string {
	return c.name
}

// SetHandler sets the handler for incoming method calls from native code.
func (c *MethodChannel) SetHandler(handler MethodHandler) {
	c.mu.Lock()
	c.handler = handler
	c.mu.Unlock()
}

// Invoke calls a method on the native side and returns the result.
// This blocks until the native side responds or an error occurs.
func (c *MethodChannel) Invoke(method string, args any) (any, error) {
	return invokeNative(c.name, method, args)
}

// InvokeContext is like Invoke but refuses to start the call once ctx is done.
// The native call itself is not interruptible.
func (c *MethodChannel) InvokeContext(ctx context.Context, method string, args any) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, ErrCanceled
	}
	return c.Invoke(method, args)
}

func (c *MethodChannel) handleCall(method string, args any) (any, error) {
	c.mu.RLock()
	handler := c.handler
	c.mu.RUnlock()
	if handler == nil {
		return nil, ErrMethodNotFound
	}
	return handler(method, args)
}
