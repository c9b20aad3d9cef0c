package platform

import "context"

// StatusConstants is the native permission-status vocabulary of one OS.
// Empty fields do not exist on that OS and never match a raw status.
type StatusConstants struct {
	Granted          string
	GrantedWhenInUse string
	NotRequested     string
	Denied           string
	DeniedOnce       string
	DeniedAlways     string
	Restricted       string
}

// Known returns the non-empty status strings of the vocabulary.
func (c StatusConstants) Known() []string {
	all := []string{
		c.Granted, c.GrantedWhenInUse, c.NotRequested,
		c.Denied, c.DeniedOnce, c.DeniedAlways, c.Restricted,
	}
	known := all[:0]
	for _, s := range all {
		if s != "" {
			known = append(known, s)
		}
	}
	return known
}

// PermissionIDs holds the native permission identifiers used by batch requests.
type PermissionIDs struct {
	Camera      string
	RecordAudio string
}

var (
	androidStatuses = StatusConstants{
		Granted:          "GRANTED",
		GrantedWhenInUse: "GRANTED_WHEN_IN_USE",
		NotRequested:     "NOT_REQUESTED",
		Denied:           "DENIED",
		DeniedOnce:       "DENIED_ONCE",
		DeniedAlways:     "DENIED_ALWAYS",
	}
	iosStatuses = StatusConstants{
		Granted:          "authorized",
		GrantedWhenInUse: "authorized_when_in_use",
		NotRequested:     "not_determined",
		Denied:           "denied",
		DeniedAlways:     "denied_always",
		Restricted:       "restricted",
	}
	androidPermissionIDs = PermissionIDs{
		Camera:      "android.permission.CAMERA",
		RecordAudio: "android.permission.RECORD_AUDIO",
	}
)

// StatusConstantsFor returns the native status vocabulary for kind.
func StatusConstantsFor(kind Kind) StatusConstants {
	switch kind {
	case KindAndroid:
		return androidStatuses
	case KindIOS:
		return iosStatuses
	default:
		return StatusConstants{}
	}
}

// PermissionIDsFor returns the native permission identifiers for kind.
// Only Android uses identifiers; other kinds return the zero value.
func PermissionIDsFor(kind Kind) PermissionIDs {
	if kind == KindAndroid {
		return androidPermissionIDs
	}
	return PermissionIDs{}
}

// Diagnostic is the native permission plugin. All methods block on the
// native side.
type Diagnostic interface {
	CameraAuthorizationStatus(ctx context.Context, externalStorage bool) (string, error)
	MicrophoneAuthorizationStatus(ctx context.Context) (string, error)

	// RequestRuntimePermissions asks for several Android permissions at once
	// and returns the resulting native status per identifier.
	RequestRuntimePermissions(ctx context.Context, ids []string) (map[string]string, error)
	RequestCameraAuthorization(ctx context.Context, externalStorage bool) (string, error)
	RequestMicrophoneAuthorization(ctx context.Context) (string, error)

	// SwitchToSettings opens this app's page in the system settings.
	SwitchToSettings(ctx context.Context) error

	StatusConstants() StatusConstants
	PermissionIDs() PermissionIDs
}

// DiagnosticChannelName is the method channel used by ChannelDiagnostic.
const DiagnosticChannelName = "vault/diagnostic"

// ChannelDiagnostic implements Diagnostic over a platform method channel.
type ChannelDiagnostic struct {
	channel *MethodChannel
	kind    Kind
}

// NewChannelDiagnostic creates a Diagnostic speaking the vocabulary of kind.
func NewChannelDiagnostic(kind Kind) *ChannelDiagnostic {
	return &ChannelDiagnostic{
		channel: NewMethodChannel(DiagnosticChannelName),
		kind:    kind,
	}
}

func (d *ChannelDiagnostic) CameraAuthorizationStatus(ctx context.Context, externalStorage bool) (string, error) {
	return d.invokeStatus(ctx, "getCameraAuthorizationStatus", map[string]any{
		"externalStorage": externalStorage,
	})
}

func (d *ChannelDiagnostic) MicrophoneAuthorizationStatus(ctx context.Context) (string, error) {
	return d.invokeStatus(ctx, "getMicrophoneAuthorizationStatus", nil)
}

func (d *ChannelDiagnostic) RequestRuntimePermissions(ctx context.Context, ids []string) (map[string]string, error) {
	result, err := d.channel.InvokeContext(ctx, "requestRuntimePermissions", map[string]any{
		"permissions": ids,
	})
	if err != nil {
		return nil, err
	}
	statuses := make(map[string]string, len(ids))
	if m := parseMap(result); m != nil {
		for id, status := range parseMap(m["statuses"]) {
			statuses[id] = parseString(status)
		}
	}
	return statuses, nil
}

func (d *ChannelDiagnostic) RequestCameraAuthorization(ctx context.Context, externalStorage bool) (string, error) {
	return d.invokeStatus(ctx, "requestCameraAuthorization", map[string]any{
		"externalStorage": externalStorage,
	})
}

func (d *ChannelDiagnostic) RequestMicrophoneAuthorization(ctx context.Context) (string, error) {
	return d.invokeStatus(ctx, "requestMicrophoneAuthorization", nil)
}

func (d *ChannelDiagnostic) SwitchToSettings(ctx context.Context) error {
	_, err := d.channel.InvokeContext(ctx, "switchToSettings", nil)
	return err
}

func (d *ChannelDiagnostic) StatusConstants() StatusConstants {
	return StatusConstantsFor(d.kind)
}

func (d *ChannelDiagnostic) PermissionIDs() PermissionIDs {
	return PermissionIDsFor(d.kind)
}

func (d *ChannelDiagnostic) invokeStatus(ctx context.Context, method string, args any) (string, error) {
	result, err := d.channel.InvokeContext(ctx, method, args)
	if err != nil {
		return "", err
	}
	if m := parseMap(result); m != nil {
		if status := parseString(m["status"]); status != "" {
			return status, nil
		}
	}
	return "", unexpectedResponse(d.channel.Name(), method+" status", result)
}
