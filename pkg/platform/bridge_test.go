package platform

import (
	"sync"
	"testing"
)

type bridgeCall struct {
	Channel string
	Method  string
	Args    map[string]any
}

// recordingBridge records every call and answers from per-method canned
// responses or errors.
type recordingBridge struct {
	mu        sync.Mutex
	calls     []bridgeCall
	responses map[string]any
	errs      map[string]error
}

func newRecordingBridge(t *testing.T) *recordingBridge {
	b := &recordingBridge{
		responses: make(map[string]any),
		errs:      make(map[string]error),
	}
	SetNativeBridge(b)
	t.Cleanup(ResetForTest)
	return b
}

func (b *recordingBridge) InvokeMethod(channel, method string, args []byte) ([]byte, error) {
	decoded, err := DefaultCodec.Decode(args)
	if err != nil {
		return nil, err
	}
	b.mu.Lock()
	b.calls = append(b.calls, bridgeCall{Channel: channel, Method: method, Args: parseMap(decoded)})
	resp, respErr := b.responses[method], b.errs[method]
	b.mu.Unlock()
	if respErr != nil {
		return nil, respErr
	}
	return DefaultCodec.Encode(resp)
}

func (b *recordingBridge) methods() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.calls))
	for i, c := range b.calls {
		out[i] = c.Method
	}
	return out
}

func (b *recordingBridge) last() bridgeCall {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.calls) == 0 {
		return bridgeCall{}
	}
	return b.calls[len(b.calls)-1]
}
