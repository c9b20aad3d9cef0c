package platform

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvokeWithoutBridge(t *testing.T) {
	ResetForTest()
	ch := NewMethodChannel("vault/test/unbridged")

	_, err := ch.Invoke("anything", nil)
	assert.ErrorIs(t, err, ErrPlatformUnavailable)
}

func TestInvokeContextCanceled(t *testing.T) {
	b := newRecordingBridge(t)
	ch := NewMethodChannel("vault/test/canceled")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ch.InvokeContext(ctx, "anything", nil)
	assert.ErrorIs(t, err, ErrCanceled)
	assert.Empty(t, b.methods(), "no native call should be made")
}

func TestInvokePropagatesChannelError(t *testing.T) {
	b := newRecordingBridge(t)
	b.errs["fail"] = NewChannelError("E_DENIED", "user said no")
	ch := NewMethodChannel("vault/test/errors")

	_, err := ch.Invoke("fail", nil)
	var chErr *ChannelError
	require.True(t, errors.As(err, &chErr))
	assert.Equal(t, "E_DENIED", chErr.Code)
	assert.Equal(t, "E_DENIED: user said no", chErr.Error())
}

func TestHandleMethodCall(t *testing.T) {
	ch := NewMethodChannel("vault/test/inbound")
	ch.SetHandler(func(method string, args any) (any, error) {
		return map[string]any{"method": method, "echo": parseMap(args)["value"]}, nil
	})

	out, err := HandleMethodCall("vault/test/inbound", "ping", []byte(`{"value":"x"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"method":"ping","echo":"x"}`, string(out))
}

func TestHandleMethodCallErrors(t *testing.T) {
	_, err := HandleMethodCall("vault/test/missing", "ping", nil)
	assert.ErrorIs(t, err, ErrChannelNotFound)

	NewMethodChannel("vault/test/nohandler")
	_, err = HandleMethodCall("vault/test/nohandler", "ping", nil)
	assert.ErrorIs(t, err, ErrMethodNotFound)
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"android", KindAndroid},
		{" Android ", KindAndroid},
		{"ios", KindIOS},
		{"iPad", KindIOS},
		{"web", KindOther},
		{"", KindOther},
	}
	for _, tt := range tests {
		if got := ParseKind(tt.in); got != tt.want {
			t.Errorf("ParseKind(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	assert.Equal(t, KindAndroid, kindForGOOS("android"))
	assert.Equal(t, KindIOS, kindForGOOS("ios"))
	assert.Equal(t, KindOther, kindForGOOS("linux"))
}

func TestSetupTestBridge(t *testing.T) {
	SetupTestBridge(t.Cleanup)
	ch := NewMethodChannel("vault/test/noop")

	out, err := ch.Invoke("anything", map[string]any{"k": "v"})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestDispatch(t *testing.T) {
	t.Cleanup(ResetForTest)

	assert.False(t, Dispatch(func() {}), "no dispatch function registered")

	ran := 0
	dispatchOrRun(func() { ran++ })
	assert.Equal(t, 1, ran, "runs inline without a dispatch function")

	var queued []func()
	RegisterDispatch(func(cb func()) { queued = append(queued, cb) })
	assert.False(t, Dispatch(nil))
	assert.True(t, Dispatch(func() { ran++ }))
	dispatchOrRun(func() { ran++ })
	assert.Equal(t, 1, ran)
	require.Len(t, queued, 2)
	for _, cb := range queued {
		cb()
	}
	assert.Equal(t, 3, ran)
}
