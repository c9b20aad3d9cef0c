package navigation

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/go-drift/vault/pkg/log"
)

// ErrNilObject is returned by RouteWithIdentifiableObject when obj is nil.
var ErrNilObject = errors.New("navigation: nil object")

// Service is the navigation gateway used by screens.
type Service struct {
	router  Router
	history History
	tabs    Tabs
	handoff *HandoffStore
	logger  zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithTabs overrides the tab destinations. Empty fields keep their defaults.
func WithTabs(tabs Tabs) Option {
	return func(s *Service) {
		if tabs.Accounts != "" {
			s.tabs.Accounts = tabs.Accounts
		}
		if tabs.Scan != "" {
			s.tabs.Scan = tabs.Scan
		}
		if tabs.Settings != "" {
			s.tabs.Settings = tabs.Settings
		}
	}
}

// WithHandoffStore replaces the default hand-off store.
func WithHandoffStore(store *HandoffStore) Option {
	return func(s *Service) {
		s.handoff = store
	}
}

// NewService creates a navigation gateway over router and history.
func NewService(router Router, history History, opts ...Option) *Service {
	s := &Service{
		router:  router,
		history: history,
		tabs:    DefaultTabs,
		handoff: NewHandoffStore(DefaultHandoffTTL),
		logger:  log.WithComponent("navigation"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RouteWithIdentifiableObject navigates to route with obj's identifier
// appended as a path segment.
func (s *Service) RouteWithIdentifiableObject(ctx context.Context, route string, obj Identifiable) (bool, error) {
	if obj == nil {
		return false, ErrNilObject
	}
	id := obj.Identifier()
	s.logger.Debug().Str(log.FieldRoute, route).Str("id", id).Msg("navigate to object")
	return s.router.Navigate(ctx, []string{route, id})
}

// Route navigates to an absolute path.
func (s *Service) Route(ctx context.Context, route string) (bool, error) {
	s.logger.Debug().Str(log.FieldRoute, route).Msg("navigate")
	return s.router.NavigateByURL(ctx, route, nil)
}

// RouteWithState stores state for the destination, then navigates to route.
// The state replaces whatever State returned before, and is also claimable
// by the token sent along as a [Handoff].
func (s *Service) RouteWithState(ctx context.Context, route string, state State) (bool, error) {
	token := s.handoff.Put(state)
	s.logger.Debug().Str(log.FieldRoute, route).Str(log.FieldHandoff, token).Msg("navigate with state")
	return s.router.NavigateByURL(ctx, route, Handoff{Token: token})
}

// State returns the payload of the latest RouteWithState call. It is never
// nil; before any hand-off it is empty.
func (s *Service) State() State {
	return s.handoff.Latest()
}

// Claim redeems the payload sent with a [Handoff] token. It succeeds once.
func (s *Service) Claim(token string) (State, bool) {
	return s.handoff.Claim(token)
}

// Back pops one entry off the history stack.
func (s *Service) Back(ctx context.Context) error {
	s.logger.Debug().Msg("navigate back")
	return s.history.Back(ctx)
}

// RouteToAccountsTab navigates to the accounts tab.
func (s *Service) RouteToAccountsTab(ctx context.Context) (bool, error) {
	return s.Route(ctx, s.tabs.Accounts)
}

// RouteToScanTab navigates to the scan tab.
func (s *Service) RouteToScanTab(ctx context.Context) (bool, error) {
	return s.Route(ctx, s.tabs.Scan)
}

// RouteToSettingsTab navigates to the settings tab.
func (s *Service) RouteToSettingsTab(ctx context.Context) (bool, error) {
	return s.Route(ctx, s.tabs.Settings)
}
