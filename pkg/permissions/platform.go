package permissions

import (
	"context"
	"fmt"

	"github.com/go-drift/vault/pkg/log"
	"github.com/go-drift/vault/pkg/platform"
)

// Platform is the OS-specific part of permission handling.
type Platform interface {
	Kind() platform.Kind

	// PermanentlyDenied reports whether status rules out an in-app prompt.
	PermanentlyDenied(status Status) bool

	// Request prompts for types using the OS's request style.
	Request(ctx context.Context, d platform.Diagnostic, types []Type) error
}

// ForKind returns the Platform for kind. Unrecognized kinds get a platform
// whose requests are no-ops.
func ForKind(kind platform.Kind) Platform {
	switch kind {
	case platform.KindAndroid:
		return androidPlatform{}
	case platform.KindIOS:
		return iosPlatform{}
	default:
		return unsupportedPlatform{kind: kind}
	}
}

// androidPlatform batches every type into one runtime-permissions request.
type androidPlatform struct{}

func (androidPlatform) Kind() platform.Kind { return platform.KindAndroid }

func (androidPlatform) PermanentlyDenied(status Status) bool {
	return status == DeniedAlways
}

func (androidPlatform) Request(ctx context.Context, d platform.Diagnostic, types []Type) error {
	ids := d.PermissionIDs()
	var native []string
	for _, t := range types {
		switch t {
		case Camera:
			native = append(native, ids.Camera)
		case Microphone:
			native = append(native, ids.RecordAudio)
		}
	}
	statuses, err := d.RequestRuntimePermissions(ctx, native)
	if err != nil {
		return fmt.Errorf("permissions: request runtime permissions: %w", err)
	}
	l := log.WithComponent("permissions")
	l.Debug().Interface(log.FieldStatus, statuses).Msg("runtime permissions answered")
	return nil
}

// iosPlatform requests one type at a time, waiting for each answer.
type iosPlatform struct{}

func (iosPlatform) Kind() platform.Kind { return platform.KindIOS }

func (iosPlatform) PermanentlyDenied(status Status) bool {
	return status == Denied
}

func (iosPlatform) Request(ctx context.Context, d platform.Diagnostic, types []Type) error {
	for _, t := range types {
		var err error
		switch t {
		case Camera:
			_, err = d.RequestCameraAuthorization(ctx, false)
		case Microphone:
			_, err = d.RequestMicrophoneAuthorization(ctx)
		}
		if err != nil {
			return fmt.Errorf("permissions: request %s authorization: %w", t, err)
		}
	}
	return nil
}

type unsupportedPlatform struct {
	kind platform.Kind
}

func (p unsupportedPlatform) Kind() platform.Kind { return p.kind }

func (unsupportedPlatform) PermanentlyDenied(Status) bool { return false }

func (unsupportedPlatform) Request(context.Context, platform.Diagnostic, []Type) error {
	return nil
}
