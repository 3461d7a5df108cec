package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/tuplang/pkg/core/version"
)

var versionVerbose bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.String())
		if !versionVerbose {
			return
		}
		for _, name := range version.Components {
			fmt.Fprintf(out, "  %-10s %s\n", name+":", version.ComponentVersion(name))
		}
		fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
		fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionVerbose, "components", false, "also print component versions")
	rootCmd.AddCommand(versionCmd)
}
