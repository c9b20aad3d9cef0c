// Package permissions provides the camera and microphone permission gateway.
//
// [Service] reads the native permission status through a
// [platform.Diagnostic], classifies it into a [Status], and requests
// permissions the way the running OS expects. If the user asks for a
// permission that can no longer be granted in-app, the gateway shows an
// alert that links to the system settings instead.
package permissions

import (
	"errors"
	"fmt"

	"github.com/go-drift/vault/pkg/platform"
)

// Status is the classified state of a permission.
type Status string

const (
	Granted      Status = "GRANTED"
	NotRequested Status = "NOT_REQUESTED"
	DeniedAlways Status = "DENIED_ALWAYS"
	Denied       Status = "DENIED"
	Unknown      Status = "UNKNOWN"
)

// Type selects the device capability a permission guards.
type Type string

const (
	Camera     Type = "CAMERA"
	Microphone Type = "MICROPHONE"
)

// ErrUnknownType is returned for a Type outside Camera and Microphone.
var ErrUnknownType = errors.New("permissions: unknown permission type")

func (t Type) validate() error {
	switch t {
	case Camera, Microphone:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownType, string(t))
	}
}

// Classifier maps native status strings onto Status.
type Classifier struct {
	c     platform.StatusConstants
	known map[string]struct{}
}

// NewClassifier creates a classifier for one OS vocabulary.
func NewClassifier(c platform.StatusConstants) Classifier {
	known := make(map[string]struct{})
	for _, s := range c.Known() {
		known[s] = struct{}{}
	}
	return Classifier{c: c, known: known}
}

// Classify applies the rules in order; the first match wins. Raw values
// outside the OS vocabulary are Unknown.
func (cl Classifier) Classify(raw string) Status {
	switch {
	case cl.isGranted(raw):
		return Granted
	case cl.is(raw, cl.c.NotRequested):
		return NotRequested
	case cl.is(raw, cl.c.DeniedAlways) || cl.is(raw, cl.c.Restricted):
		return DeniedAlways
	case cl.isKnown(raw):
		return Denied
	default:
		return Unknown
	}
}

func (cl Classifier) isGranted(raw string) bool {
	return cl.is(raw, cl.c.Granted) || cl.is(raw, cl.c.GrantedWhenInUse)
}

func (cl Classifier) isKnown(raw string) bool {
	_, ok := cl.known[raw]
	return ok
}

// is guards against empty constants, which mean "not on this OS".
func (cl Classifier) is(raw, constant string) bool {
	return constant != "" && raw == constant
}
