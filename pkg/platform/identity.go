package platform

import (
	"runtime"
	"strings"
)

// Kind identifies the operating system family the app is running on.
type Kind string

const (
	KindAndroid Kind = "android"
	KindIOS     Kind = "ios"
	// KindOther covers desktop builds and tests. Permission requests are
	// no-ops there.
	KindOther Kind = "other"
)

// ParseKind maps a configuration or CLI value to a Kind. Matching is
// case-insensitive; anything unrecognized is KindOther.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "android":
		return KindAndroid
	case "ios", "iphone", "ipad":
		return KindIOS
	default:
		return KindOther
	}
}

// CurrentKind reports the Kind of the running binary based on GOOS.
func CurrentKind() Kind {
	return kindForGOOS(runtime.GOOS)
}

func kindForGOOS(goos string) Kind {
	switch goos {
	case "android":
		return KindAndroid
	case "ios":
		return KindIOS
	default:
		return KindOther
	}
}
