package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Build metadata, injected with
// -ldflags "-X github.com/ziadkadry99/refhub/cmd.Version=... -X ...cmd.Commit=... -X ...cmd.BuildDate=...".
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func versionString() string {
	return fmt.Sprintf("refhub %s (commit %s, built %s, %s)", Version, Commit, BuildDate, runtime.Version())
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print refhub build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), versionString())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
