// Package navigation provides the app's navigation gateway.
//
// [Service] turns "go to X" intents into calls on a [Router] and a [History]
// stack. It also owns the hand-off of a payload from the navigating screen
// to the destination:
//
//	nav := navigation.NewService(router, history)
//	nav.RouteWithState(ctx, "/account-detail", navigation.State{"wallet": w})
//
//	// on the destination screen
//	state := nav.State()
//
// The destination can also claim the payload by the token passed along with
// the navigation, which guards against a later hand-off overwriting it:
//
//	state, ok := nav.Claim(token)
package navigation

import "context"

// State is an arbitrary key-value payload handed to the next screen.
type State map[string]any

// Identifiable is implemented by models that can be addressed by a path segment.
type Identifiable interface {
	Identifier() string
}

// Router navigates the platform router. Both methods report whether the
// navigation took place; an error means the router rejected the attempt.
type Router interface {
	// NavigateByURL navigates to an absolute path. args, when non-nil, is
	// delivered to the destination as navigation state.
	NavigateByURL(ctx context.Context, url string, args any) (bool, error)

	// Navigate navigates to the path formed by commands, one segment each.
	Navigate(ctx context.Context, commands []string) (bool, error)
}

// History is the platform back stack.
type History interface {
	// Back pops one entry. Behavior on an empty stack is up to the platform.
	Back(ctx context.Context) error
}

// Handoff is sent as navigation state by [Service.RouteWithState]. The
// destination passes Token to [Service.Claim].
type Handoff struct {
	Token string `json:"handoff"`
}

// Tabs holds the fixed destinations of the tab bar.
type Tabs struct {
	Accounts string
	Scan     string
	Settings string
}

// DefaultTabs are the tab paths of the vault app.
var DefaultTabs = Tabs{
	Accounts: "/tabs/tab-accounts",
	Scan:     "/tabs/tab-scan",
	Settings: "/tabs/tab-settings",
}
