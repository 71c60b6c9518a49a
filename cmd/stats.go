package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/refhub/internal/registry"
	"github.com/ziadkadry99/refhub/internal/view"
)

var statsCmd = &cobra.Command{
	Use:   "stats [hub]",
	Short: "Show entry counts per hub",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().Bool("json", false, "output stats as JSON")
	rootCmd.AddCommand(statsCmd)
}

type hubStats struct {
	Hub   string     `json:"hub"`
	Title string     `json:"title"`
	Stats view.Stats `json:"stats"`
}

func runStats(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	e, err := loadEnv(context.Background())
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	hubs := e.reg.Hubs()
	if len(args) == 1 {
		h, err := lookupHub(e.reg, args[0])
		if err != nil {
			return err
		}
		hubs = []*registry.Hub{h}
	}

	out := collectStats(hubs)
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	printStats(os.Stdout, out)
	return nil
}

func collectStats(hubs []*registry.Hub) []hubStats {
	out := make([]hubStats, 0, len(hubs))
	for _, h := range hubs {
		out = append(out, hubStats{Hub: h.Name, Title: h.Title, Stats: view.ComputeStats(h.Store)})
	}
	return out
}

func printStats(w io.Writer, stats []hubStats) {
	total := 0
	for _, s := range stats {
		total += s.Stats.Entries
		fmt.Fprintf(w, "%s (%s)\n", s.Title, s.Hub)
		fmt.Fprintf(w, "  Entries: %d  Sections: %d  Subsections: %d\n",
			s.Stats.Entries, s.Stats.Sections, s.Stats.Subsections)
		for _, tc := range s.Stats.ByType {
			fmt.Fprintf(w, "    %-8s %d\n", tc.Type, tc.Count)
		}
	}
	fmt.Fprintf(w, "\n%d hub(s), %d entries\n", len(stats), total)
}
