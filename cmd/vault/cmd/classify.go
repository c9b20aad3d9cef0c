package cmd

import (
	"fmt"
	"strings"

	"github.com/go-drift/vault/pkg/permissions"
	"github.com/go-drift/vault/pkg/platform"
)

func init() {
	RegisterCommand(&Command{
		Name:  "classify",
		Short: "Classify a native permission status",
		Long: `Classify a raw status string reported by the native diagnostic plugin,
and report whether the app can still prompt for the permission in-app.

Usage:
  vault classify android DENIED_ALWAYS
  vault classify ios denied`,
		Usage: "vault classify <android|ios> <raw-status>",
		Run:   runClassify,
	})
}

func runClassify(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected a platform and a raw status\n\nUsage: vault classify <android|ios> <raw-status>")
	}

	kind := platform.ParseKind(args[0])
	if kind == platform.KindOther {
		return fmt.Errorf("unknown platform %q (use android or ios)", args[0])
	}

	cl := permissions.NewClassifier(platform.StatusConstantsFor(kind))
	status := cl.Classify(args[1])
	permanent := permissions.ForKind(kind).PermanentlyDenied(status)

	fmt.Fprintf(stdout, "%s %q => %s (permanent denial: %t)\n", kind, args[1], status, permanent)
	if status == permissions.Unknown {
		fmt.Fprintf(stdout, "known %s statuses: %s\n", kind, strings.Join(platform.StatusConstantsFor(kind).Known(), ", "))
	}
	return nil
}
