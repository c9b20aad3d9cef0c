package platform

import (
	"context"
	"strconv"
	"sync"

	"github.com/go-drift/vault/pkg/errors"
)

// AlertButton is one button of a native alert dialog.
type AlertButton struct {
	Text string
	// Role is passed through to native code; "cancel" marks the dismiss button.
	Role string
	// Handler runs when the user taps the button. May be nil.
	Handler func()
}

// AlertOptions configures an alert dialog.
type AlertOptions struct {
	Header  string
	Message string
	Buttons []AlertButton
}

// Alert is a created but not necessarily visible dialog.
type Alert interface {
	// Present shows the dialog. It returns once the dialog is on screen, not
	// when it is dismissed.
	Present(ctx context.Context) error
}

// AlertController creates native alert dialogs.
type AlertController interface {
	Create(ctx context.Context, opts AlertOptions) (Alert, error)
}

// AlertChannelName is the method channel used by ChannelAlertController.
const AlertChannelName = "vault/alert"

// ChannelAlertController implements AlertController over a platform method
// channel. Native code reports taps back on the same channel with
// "buttonTapped" {id, index} and "dismissed" {id}.
type ChannelAlertController struct {
	channel *MethodChannel

	mu     sync.Mutex
	alerts map[string][]AlertButton
}

// NewChannelAlertController creates the controller and starts receiving
// button callbacks from native code.
func NewChannelAlertController() *ChannelAlertController {
	c := &ChannelAlertController{
		channel: NewMethodChannel(AlertChannelName),
		alerts:  make(map[string][]AlertButton),
	}
	c.channel.SetHandler(c.handleCall)
	return c
}

// Create asks native code to build the dialog. Button handlers are held until
// the dialog is dismissed.
func (c *ChannelAlertController) Create(ctx context.Context, opts AlertOptions) (Alert, error) {
	buttons := make([]map[string]any, 0, len(opts.Buttons))
	for _, b := range opts.Buttons {
		button := map[string]any{"text": b.Text}
		if b.Role != "" {
			button["role"] = b.Role
		}
		buttons = append(buttons, button)
	}

	result, err := c.channel.InvokeContext(ctx, "create", map[string]any{
		"header":  opts.Header,
		"message": opts.Message,
		"buttons": buttons,
	})
	if err != nil {
		return nil, err
	}

	id := parseAlertID(parseMap(result)["id"])
	if id == "" {
		return nil, unexpectedResponse(c.channel.Name(), "alert id", result)
	}

	c.mu.Lock()
	c.alerts[id] = opts.Buttons
	c.mu.Unlock()

	return &channelAlert{id: id, controller: c}, nil
}

// Pending reports how many created dialogs have not been dismissed yet.
func (c *ChannelAlertController) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.alerts)
}

func (c *ChannelAlertController) forget(id string) []AlertButton {
	c.mu.Lock()
	defer c.mu.Unlock()
	buttons := c.alerts[id]
	delete(c.alerts, id)
	return buttons
}

// handleCall runs tap handlers through Dispatch so they never execute inside
// the native callback that delivered the tap.
func (c *ChannelAlertController) handleCall(method string, args any) (any, error) {
	if method != "buttonTapped" && method != "dismissed" {
		return nil, ErrMethodNotFound
	}

	m := parseMap(args)
	id := parseAlertID(m["id"])
	if id == "" {
		return nil, ErrInvalidArguments
	}

	if method == "dismissed" {
		c.forget(id)
		return nil, nil
	}

	index, ok := toInt(m["index"])
	if !ok {
		return nil, ErrInvalidArguments
	}
	buttons := c.forget(id)
	if index < 0 || index >= len(buttons) {
		return nil, ErrInvalidArguments
	}
	if handler := buttons[index].Handler; handler != nil {
		dispatchOrRun(func() {
			defer errors.Recover("alert.buttonTapped")
			handler()
		})
	}
	return nil, nil
}

type channelAlert struct {
	id         string
	controller *ChannelAlertController
}

func (a *channelAlert) Present(ctx context.Context) error {
	_, err := a.controller.channel.InvokeContext(ctx, "present", map[string]any{"id": a.id})
	if err != nil {
		a.controller.forget(a.id)
	}
	return err
}

func parseAlertID(v any) string {
	if n, ok := toInt(v); ok {
		return strconv.Itoa(n)
	}
	return parseString(v)
}
