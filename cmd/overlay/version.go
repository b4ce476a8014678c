package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	overlay "github.com/grindlemire/go-overlay"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "v0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version and detected platform capabilities",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "overlay %s\n", displayVersion(version))
			fmt.Fprintf(w, "capabilities: %s\n", overlay.DetectCapabilities())
		},
	}
}

// displayVersion normalizes v to canonical semver, or "devel" when v is
// not a semantic version.
func displayVersion(v string) string {
	if v != "" && v[0] != 'v' {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "devel"
	}
	return semver.Canonical(v)
}
