package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func versionCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Short: "Version information",
		Run:   cmdVersion,
	}
	return c
}

func cmdVersion(cmd *cobra.Command, args []string) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", BuildDetails())
}

func BuildDetails() string {
	if version == "" {
		return `
resload (unknown version)

To build with version information set it using -ldflags
> go build -ldflags "-X main.version=v1.0.0" ./cmd
`
	}

	return fmt.Sprintf(`
resload %v

Commit SHA-1          : %v
Commit timestamp      : %v
Go version            : %v
`,
		version,
		commit,
		date,
		runtime.Version())
}
