package platform

import "context"

// NavigatorChannelName is the method channel used by ChannelNavigator.
const NavigatorChannelName = "vault/navigation"

// ChannelNavigator drives the native router and history stack over a
// platform method channel.
type ChannelNavigator struct {
	channel *MethodChannel
}

// NewChannelNavigator creates a navigator bound to the native router.
func NewChannelNavigator() *ChannelNavigator {
	return &ChannelNavigator{channel: NewMethodChannel(NavigatorChannelName)}
}

// NavigateByURL navigates to an absolute path. A non-nil args value is sent
// along as the navigation state.
func (n *ChannelNavigator) NavigateByURL(ctx context.Context, url string, args any) (bool, error) {
	payload := map[string]any{"url": url}
	if args != nil {
		payload["state"] = args
	}
	return n.invokeOK(ctx, "navigateByUrl", payload)
}

// Navigate navigates to the path built from commands, one segment each.
func (n *ChannelNavigator) Navigate(ctx context.Context, commands []string) (bool, error) {
	return n.invokeOK(ctx, "navigate", map[string]any{"commands": commands})
}

// Back pops one entry off the native history stack.
func (n *ChannelNavigator) Back(ctx context.Context) error {
	_, err := n.channel.InvokeContext(ctx, "back", nil)
	return err
}

func (n *ChannelNavigator) invokeOK(ctx context.Context, method string, args any) (bool, error) {
	result, err := n.channel.InvokeContext(ctx, method, args)
	if err != nil {
		return false, err
	}
	m := parseMap(result)
	if m == nil {
		return false, unexpectedResponse(n.channel.Name(), method+" result", result)
	}
	return parseBool(m["ok"]), nil
}
