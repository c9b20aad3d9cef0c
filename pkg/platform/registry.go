package platform

import (
	"fmt"
	"sync"

	"github.com/go-drift/vault/pkg/errors"
)

// channelRegistry manages all registered platform channels.
type channelRegistry struct {
	methodChannels map[string]*MethodChannel
	mu             sync.RWMutex
}

var registry = &channelRegistry{
	methodChannels: make(map[string]*MethodChannel),
}

func (r *channelRegistry) registerMethod(name string, ch *MethodChannel) {
	r.mu.Lock()
	r.methodChannels[name] = ch
	r.mu.Unlock()
}

func (r *channelRegistry) getMethodChannel(name string) *MethodChannel {
	r.mu.RLock()
	ch := r.methodChannels[name]
	r.mu.RUnlock()
	return ch
}

// NativeBridge defines the interface for calling native platform code.
type NativeBridge interface {
	// InvokeMethod calls a method on the native side.
	InvokeMethod(channel, method string, args []byte) ([]byte, error)
}

var (
	bridgeMu     sync.RWMutex
	nativeBridge NativeBridge
)

// SetNativeBridge sets the native bridge implementation.
// Called by the host application during initialization.
func SetNativeBridge(bridge NativeBridge) {
	bridgeMu.Lock()
	nativeBridge = bridge
	bridgeMu.Unlock()
}

func currentBridge() NativeBridge {
	bridgeMu.RLock()
	defer bridgeMu.RUnlock()
	return nativeBridge
}

// invokeNative calls a method on the native side.
func invokeNative(channel, method string, args any) (any, error) {
	bridge := currentBridge()
	if bridge == nil {
		return nil, ErrPlatformUnavailable
	}

	argsData, err := DefaultCodec.Encode(args)
	if err != nil {
		return nil, err
	}

	resultData, err := bridge.InvokeMethod(channel, method, argsData)
	if err != nil {
		return nil, err
	}

	result, err := DefaultCodec.Decode(resultData)
	if err != nil {
		errors.Report(&errors.VaultError{
			Op:      "platform.invokeNative",
			Kind:    errors.KindParsing,
			Channel: channel,
			Err:     err,
		})
		return nil, err
	}
	return result, nil
}

// unexpectedResponse describes a payload that decoded but lacks the
// documented shape. The result matches both ErrUnexpectedResponse and
// *errors.ParseError.
func unexpectedResponse(channel, dataType string, got any) error {
	return fmt.Errorf("%w: %w", ErrUnexpectedResponse, &errors.ParseError{
		Channel:  channel,
		DataType: dataType,
		Got:      got,
	})
}

// HandleMethodCall is called from the bridge when native invokes a Go method.
func HandleMethodCall(channel, method string, argsData []byte) ([]byte, error) {
	ch := registry.getMethodChannel(channel)
	if ch == nil {
		return nil, ErrChannelNotFound
	}

	args, err := DefaultCodec.Decode(argsData)
	if err != nil {
		return nil, err
	}

	result, err := ch.handleCall(method, args)
	if err != nil {
		return nil, err
	}

	return DefaultCodec.Encode(result)
}

// ResetForTest clears the native bridge and dispatch function. This should
// only be called from tests.
func ResetForTest() {
	SetNativeBridge(nil)
	RegisterDispatch(nil)
}
