package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "refhub",
	Short: "Serve and build curated reference hub pages",
	Long: `Refhub loads catalogs of learning resources (YAML, JSON or SQLite) and
renders them as browsable hub pages with section tabs, type filters and
live search. Hubs can be served over HTTP, built into a static site, queried
from the terminal or exposed to AI agents via MCP.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".refhub.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
