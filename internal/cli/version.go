package cli

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build version and Go version used to build this tool.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()

			if version == "" && ok {
				version = info.Main.Version
			}

			if version == "" {
				version = "unknown"
			}

			cmd.Println("tool version\t", version)

			if ok {
				cmd.Println("go version\t", info.GoVersion)
			}
		},
	}
}
