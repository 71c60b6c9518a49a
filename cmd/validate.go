package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/refhub/internal/catalog"
	"github.com/ziadkadry99/refhub/internal/registry"
)

var validateCmd = &cobra.Command{
	Use:   "validate [hub...]",
	Short: "Lint hub catalogs",
	Long: `Checks every hub (or the named hubs) for duplicate section ids, missing titles
or URLs, malformed URLs, unknown types and levels, and empty sections.
Exits non-zero when any error is found.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(context.Background())
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	hubs := e.reg.Hubs()
	if len(args) > 0 {
		hubs = hubs[:0]
		for _, name := range args {
			h, err := lookupHub(e.reg, name)
			if err != nil {
				return err
			}
			hubs = append(hubs, h)
		}
	}

	errs := printIssues(os.Stdout, hubs)
	if errs > 0 {
		return fmt.Errorf("%d error(s) found", errs)
	}
	return nil
}

// printIssues reports the issues of each hub and returns the error count.
func printIssues(w io.Writer, hubs []*registry.Hub) int {
	errs := 0
	for _, h := range hubs {
		if len(h.Issues) == 0 {
			fmt.Fprintf(w, "ok    %s\n", h.Name)
			continue
		}
		status := "warn "
		if catalog.HasErrors(h.Issues) {
			status = "FAIL "
		}
		fmt.Fprintf(w, "%s %s (%s)\n", status, h.Name, h.Source)
		for _, issue := range h.Issues {
			if issue.Severity == catalog.SeverityError {
				errs++
			}
			fmt.Fprintf(w, "      %s\n", issue)
		}
	}
	return errs
}
