// Command vault inspects the configuration and permission handling of the
// vault app.
package main

import (
	"os"

	"github.com/go-drift/vault/cmd/vault/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
