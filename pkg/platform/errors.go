package platform

import "errors"

// ErrUnexpectedResponse is returned when native code answers with a payload
// that does not have the documented shape.
var ErrUnexpectedResponse = errors.New("platform: unexpected response")
