// Package vault assembles the app's platform gateways from configuration.
package vault

import (
	"github.com/go-drift/vault/pkg/config"
	"github.com/go-drift/vault/pkg/errors"
	"github.com/go-drift/vault/pkg/log"
	"github.com/go-drift/vault/pkg/navigation"
	"github.com/go-drift/vault/pkg/permissions"
	"github.com/go-drift/vault/pkg/platform"
)

// Services holds the gateways screens depend on.
type Services struct {
	Navigation  *navigation.Service
	Permissions *permissions.Service
}

// Collaborators are the native capabilities behind the gateways. Nil fields
// are filled with the channel-backed implementations.
type Collaborators struct {
	Router     navigation.Router
	History    navigation.History
	Diagnostic platform.Diagnostic
	Alerts     platform.AlertController
	// Dispatch schedules alert button handlers on the host's main loop. Nil
	// leaves the current platform dispatch function in place.
	Dispatch func(callback func())
}

// New configures logging and error reporting from cfg and builds both
// gateways. The native bridge is installed separately with
// platform.SetNativeBridge.
func New(cfg *config.Resolved, c Collaborators) *Services {
	log.Configure(log.Config{Level: cfg.LogLevel, Service: cfg.AppName})
	errors.SetHandler(&errors.LogHandler{Verbose: cfg.LogVerbose})

	if c.Dispatch != nil {
		platform.RegisterDispatch(c.Dispatch)
	}
	if c.Router == nil || c.History == nil {
		nav := platform.NewChannelNavigator()
		if c.Router == nil {
			c.Router = nav
		}
		if c.History == nil {
			c.History = nav
		}
	}
	if c.Diagnostic == nil {
		c.Diagnostic = platform.NewChannelDiagnostic(cfg.Platform)
	}
	if c.Alerts == nil {
		c.Alerts = platform.NewChannelAlertController()
	}

	l := log.WithComponent("vault")
	l.Info().
		Str(log.FieldPlatform, string(cfg.Platform)).
		Str("app_id", cfg.AppID).
		Msg("gateways ready")

	return &Services{
		Navigation: navigation.NewService(c.Router, c.History,
			navigation.WithTabs(cfg.Tabs),
			navigation.WithHandoffStore(navigation.NewHandoffStore(cfg.HandoffTTL)),
		),
		Permissions: permissions.NewService(
			permissions.ForKind(cfg.Platform), c.Diagnostic, c.Alerts,
			permissions.WithSettingsAlert(cfg.SettingsAlert),
		),
	}
}
