package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/refhub/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a static website of every hub",
	Long: `Generates a self-contained static HTML site from the hubs: one page per
section and type filter, client-side search, and a navigation tree.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().Bool("serve", false, "start a local HTTP server after building")
	buildCmd.Flags().Int("port", 8080, "port for the local preview server")
	buildCmd.Flags().Bool("open", false, "open browser automatically when serving")
	buildCmd.Flags().String("output", "", "override output directory (defaults to output_dir)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(context.Background())
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = e.cfg.OutputDir
	}

	generator := site.NewGenerator(e.reg, outputDir, e.cfg.SiteTitle, e.policy)
	generator.Logo = e.cfg.Logo
	pageCount, err := generator.Generate()
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	fmt.Printf("Static site built: %s (%d hubs, %d pages)\n", outputDir, e.reg.Len(), pageCount)

	serve, _ := cmd.Flags().GetBool("serve")
	if serve {
		port, _ := cmd.Flags().GetInt("port")
		openBrowser, _ := cmd.Flags().GetBool("open")

		fmt.Printf("Serving at http://localhost:%d, press Ctrl+C to stop\n", port)
		if err := site.Serve(outputDir, port, openBrowser); err != nil {
			return fmt.Errorf("serving site: %w", err)
		}
	}

	return nil
}
