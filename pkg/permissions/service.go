package permissions

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/go-drift/vault/pkg/errors"
	"github.com/go-drift/vault/pkg/log"
	"github.com/go-drift/vault/pkg/platform"
)

// SettingsAlert is the text of the alert that links to the system settings.
type SettingsAlert struct {
	Title      string
	Message    string
	CancelText string
	OpenText   string
}

// DefaultSettingsAlert is the alert shown when no override is configured.
var DefaultSettingsAlert = SettingsAlert{
	Title:      "Settings",
	Message:    "You can enable the missing permissions in the device settings.",
	CancelText: "Cancel",
	OpenText:   "Open settings",
}

// Service is the permission gateway.
type Service struct {
	platform   Platform
	diagnostic platform.Diagnostic
	alerts     platform.AlertController
	classifier Classifier
	alert      SettingsAlert
	logger     zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithSettingsAlert overrides the settings alert text. Empty fields keep
// their defaults.
func WithSettingsAlert(a SettingsAlert) Option {
	return func(s *Service) {
		if a.Title != "" {
			s.alert.Title = a.Title
		}
		if a.Message != "" {
			s.alert.Message = a.Message
		}
		if a.CancelText != "" {
			s.alert.CancelText = a.CancelText
		}
		if a.OpenText != "" {
			s.alert.OpenText = a.OpenText
		}
	}
}

// NewService creates a permission gateway. The platform strategy is fixed for
// the lifetime of the Service.
func NewService(p Platform, d platform.Diagnostic, alerts platform.AlertController, opts ...Option) *Service {
	s := &Service{
		platform:   p,
		diagnostic: d,
		alerts:     alerts,
		classifier: NewClassifier(d.StatusConstants()),
		alert:      DefaultSettingsAlert,
		logger:     log.WithComponent("permissions").With().Str(log.FieldPlatform, string(p.Kind())).Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HasCameraPermission returns the current camera permission status.
func (s *Service) HasCameraPermission(ctx context.Context) (Status, error) {
	raw, err := s.diagnostic.CameraAuthorizationStatus(ctx, false)
	if err != nil {
		return Unknown, fmt.Errorf("permissions: camera status: %w", err)
	}
	return s.classify(Camera, raw), nil
}

// HasMicrophonePermission returns the current microphone permission status.
func (s *Service) HasMicrophonePermission(ctx context.Context) (Status, error) {
	raw, err := s.diagnostic.MicrophoneAuthorizationStatus(ctx)
	if err != nil {
		return Unknown, fmt.Errorf("permissions: microphone status: %w", err)
	}
	return s.classify(Microphone, raw), nil
}

// RequestPermissions shows the native permission prompt for types.
// Duplicates are dropped; the order of first occurrence is kept.
func (s *Service) RequestPermissions(ctx context.Context, types ...Type) error {
	types, err := normalize(types)
	if err != nil || len(types) == 0 {
		return err
	}
	s.logger.Debug().Strs(log.FieldPermissions, typeNames(types)).Msg("request permissions")
	return s.platform.Request(ctx, s.diagnostic, types)
}

// UserRequestsPermissions handles a user asking to grant types.
//
// If at least one type can still be prompted in-app, all of types are
// requested natively, including those that are permanently denied. Only when
// none can be prompted is the settings alert shown.
func (s *Service) UserRequestsPermissions(ctx context.Context, types ...Type) error {
	types, err := normalize(types)
	if err != nil {
		return err
	}

	canRequest := false
	for _, t := range types {
		ok, err := s.canAskFor(ctx, t)
		if err != nil {
			return err
		}
		canRequest = canRequest || ok
	}

	if canRequest {
		return s.RequestPermissions(ctx, types...)
	}
	s.ShowSettingsAlert(ctx)
	return nil
}

// ShowSettingsAlert presents an alert offering to open the system settings.
// Failures are reported through errors.Report and not returned.
func (s *Service) ShowSettingsAlert(ctx context.Context) {
	// The button is tapped after this call returns.
	tapCtx := context.WithoutCancel(ctx)

	alert, err := s.alerts.Create(ctx, platform.AlertOptions{
		Header:  s.alert.Title,
		Message: s.alert.Message,
		Buttons: []platform.AlertButton{
			{Text: s.alert.CancelText, Role: "cancel"},
			{Text: s.alert.OpenText, Handler: func() { s.openSettings(tapCtx) }},
		},
	})
	if err != nil {
		errors.Report(&errors.VaultError{
			Op:      "permissions.createSettingsAlert",
			Kind:    errors.KindAlert,
			Channel: platform.AlertChannelName,
			Err:     err,
		})
		return
	}

	if err := alert.Present(ctx); err != nil {
		errors.Report(&errors.VaultError{
			Op:      "permissions.presentSettingsAlert",
			Kind:    errors.KindAlert,
			Channel: platform.AlertChannelName,
			Err:     err,
		})
	}
}

func (s *Service) openSettings(ctx context.Context) {
	s.logger.Debug().Msg("open settings")
	if err := s.diagnostic.SwitchToSettings(ctx); err != nil {
		errors.Report(&errors.VaultError{
			Op:      "permissions.switchToSettings",
			Kind:    errors.KindPlugin,
			Channel: platform.DiagnosticChannelName,
			Err:     err,
		})
	}
}

func (s *Service) canAskFor(ctx context.Context, t Type) (bool, error) {
	var (
		status Status
		err    error
	)
	switch t {
	case Camera:
		status, err = s.HasCameraPermission(ctx)
	case Microphone:
		status, err = s.HasMicrophonePermission(ctx)
	}
	if err != nil {
		return false, err
	}
	return !s.platform.PermanentlyDenied(status), nil
}

func (s *Service) classify(t Type, raw string) Status {
	status := s.classifier.Classify(raw)
	s.logger.Debug().
		Str("type", string(t)).
		Str(log.FieldRawStatus, raw).
		Str(log.FieldStatus, string(status)).
		Msg("permission status")
	return status
}

func normalize(types []Type) ([]Type, error) {
	out := make([]Type, 0, len(types))
	seen := make(map[Type]bool, len(types))
	for _, t := range types {
		if err := t.validate(); err != nil {
			return nil, err
		}
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out, nil
}

func typeNames(types []Type) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return names
}
