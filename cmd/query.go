package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/refhub/internal/registry"
	"github.com/ziadkadry99/refhub/internal/view"
)

var queryCmd = &cobra.Command{
	Use:   "query [hub] [text]",
	Short: "Search a hub from the terminal",
	Long: `Renders the entries of a hub that match the search text, grouped by section
and subsection. Matches are marked with **asterisks**.`,
	Args: cobra.ExactArgs(2),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().String("section", "", "only search this section (defaults to every section)")
	queryCmd.Flags().String("type", "", "filter by entry type: book, notes, video, course, code, data")
	queryCmd.Flags().Bool("json", false, "output render descriptions as JSON")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	section, _ := cmd.Flags().GetString("section")
	typeFilter, _ := cmd.Flags().GetString("type")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	e, err := loadEnv(context.Background())
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	hub, err := lookupHub(e.reg, args[0])
	if err != nil {
		return err
	}

	renders, err := queryRenders(hub, e.policy, section, typeFilter, args[1])
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(renders)
	}
	printRenders(os.Stdout, hub, renders)
	return nil
}

// queryRenders renders section, or every section when section is empty, with
// the given filter and search text.
func queryRenders(hub *registry.Hub, policy view.Policy, section, filter, text string) ([]view.Render, error) {
	if section != "" {
		if _, ok := hub.Store.Section(section); !ok {
			return nil, fmt.Errorf("hub %s has no section %q", hub.Name, section)
		}
		return []view.Render{hub.Render(policy, section, filter, text)}, nil
	}
	var out []view.Render
	for _, sec := range hub.Store.Sections() {
		out = append(out, hub.Render(policy, sec.ID, filter, text))
	}
	return out, nil
}

var markReplacer = strings.NewReplacer("<mark>", "**", "</mark>", "**")

// plain turns highlighted card HTML into terminal text.
func plain(s string) string {
	return html.UnescapeString(markReplacer.Replace(s))
}

func printRenders(w io.Writer, hub *registry.Hub, renders []view.Render) {
	visible := 0
	for _, rd := range renders {
		visible += rd.Visible
	}
	if visible == 0 {
		fmt.Fprintln(w, "No resources match.")
		return
	}

	fmt.Fprintf(w, "%s: %d of %d resources\n", hub.Title, visible, hub.Store.TotalEntries())
	for _, rd := range renders {
		if rd.Visible == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s\n", rd.Section.Label)
		for _, g := range rd.Groups {
			fmt.Fprintf(w, "  %s\n", g.Title)
			for _, c := range g.Cards {
				line := plain(string(c.Title))
				if c.Author != "" {
					line += " by " + plain(string(c.Author))
				}
				badges := "[" + string(c.Type)
				if c.Level != "" {
					badges += ", " + string(c.Level)
				}
				badges += "]"
				fmt.Fprintf(w, "    - %s %s\n", line, badges)
				if c.Desc != "" {
					fmt.Fprintf(w, "      %s\n", plain(string(c.Desc)))
				}
				fmt.Fprintf(w, "      %s\n", c.URL)
			}
		}
	}
}
