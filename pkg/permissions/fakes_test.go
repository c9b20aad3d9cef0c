package permissions

import (
	"context"

	"github.com/go-drift/vault/pkg/errors"
	"github.com/go-drift/vault/pkg/platform"
)

type fakeDiagnostic struct {
	kind        platform.Kind
	camera      string
	microphone  string
	statusErr   error
	requestErr  error
	settingsErr error
	calls       []string
	batches     [][]string
}

func newFakeDiagnostic(kind platform.Kind) *fakeDiagnostic {
	c := platform.StatusConstantsFor(kind)
	return &fakeDiagnostic{kind: kind, camera: c.NotRequested, microphone: c.NotRequested}
}

func (d *fakeDiagnostic) CameraAuthorizationStatus(ctx context.Context, externalStorage bool) (string, error) {
	d.calls = append(d.calls, "getCameraAuthorizationStatus")
	return d.camera, d.statusErr
}

func (d *fakeDiagnostic) MicrophoneAuthorizationStatus(ctx context.Context) (string, error) {
	d.calls = append(d.calls, "getMicrophoneAuthorizationStatus")
	return d.microphone, d.statusErr
}

func (d *fakeDiagnostic) RequestRuntimePermissions(ctx context.Context, ids []string) (map[string]string, error) {
	d.calls = append(d.calls, "requestRuntimePermissions")
	d.batches = append(d.batches, ids)
	return map[string]string{}, d.requestErr
}

func (d *fakeDiagnostic) RequestCameraAuthorization(ctx context.Context, externalStorage bool) (string, error) {
	d.calls = append(d.calls, "requestCameraAuthorization")
	return d.camera, d.requestErr
}

func (d *fakeDiagnostic) RequestMicrophoneAuthorization(ctx context.Context) (string, error) {
	d.calls = append(d.calls, "requestMicrophoneAuthorization")
	return d.microphone, d.requestErr
}

func (d *fakeDiagnostic) SwitchToSettings(ctx context.Context) error {
	d.calls = append(d.calls, "switchToSettings")
	if err := ctx.Err(); err != nil {
		return err
	}
	return d.settingsErr
}

func (d *fakeDiagnostic) StatusConstants() platform.StatusConstants {
	return platform.StatusConstantsFor(d.kind)
}

func (d *fakeDiagnostic) PermissionIDs() platform.PermissionIDs {
	return platform.PermissionIDsFor(d.kind)
}

func (d *fakeDiagnostic) requested() bool {
	for _, c := range d.calls {
		switch c {
		case "requestRuntimePermissions", "requestCameraAuthorization", "requestMicrophoneAuthorization":
			return true
		}
	}
	return false
}

type fakeAlerts struct {
	createErr  error
	presentErr error
	created    []platform.AlertOptions
	presented  int
}

func (a *fakeAlerts) Create(ctx context.Context, opts platform.AlertOptions) (platform.Alert, error) {
	if a.createErr != nil {
		return nil, a.createErr
	}
	a.created = append(a.created, opts)
	return fakeAlert{a}, nil
}

type fakeAlert struct{ owner *fakeAlerts }

func (a fakeAlert) Present(ctx context.Context) error {
	if a.owner.presentErr != nil {
		return a.owner.presentErr
	}
	a.owner.presented++
	return nil
}

// tap simulates the user pressing the button with the given text on the
// last created alert.
func (a *fakeAlerts) tap(text string) bool {
	if len(a.created) == 0 {
		return false
	}
	for _, b := range a.created[len(a.created)-1].Buttons {
		if b.Text == text {
			if b.Handler != nil {
				b.Handler()
			}
			return true
		}
	}
	return false
}

type reportRecorder struct {
	reports []*errors.VaultError
}

func (r *reportRecorder) HandleError(err *errors.VaultError) { r.reports = append(r.reports, err) }
func (r *reportRecorder) HandlePanic(*errors.PanicError)     {}

func recordReports(t interface{ Cleanup(func()) }) *reportRecorder {
	r := &reportRecorder{}
	errors.SetHandler(r)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return r
}
