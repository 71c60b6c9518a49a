package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/refhub/internal/catalog"
	"github.com/ziadkadry99/refhub/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize refhub configuration with an interactive wizard",
	Long: `Runs an interactive wizard to configure refhub and generates a .refhub.yml file.
If the hubs directory is empty, a starter hub is written into it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.RunWizard(cfgFile)
		if err != nil {
			return err
		}
		path, err := writeStarterHub(cfg.HubsDir)
		if err != nil {
			return err
		}
		if path != "" {
			fmt.Printf("Starter hub written to %s\n", path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// starterHub is the example catalog written by init.
var starterHub = catalog.Catalog{
	Title:   "My Reference Hub",
	Tagline: "Curated resources, one section per tab.",
	Sections: []catalog.Section{
		{
			ID:    "overview",
			Label: "Overview",
			Intro: "Start here. Each **section** is a tab; each entry is a link.",
			Subsections: []catalog.Subsection{
				{
					Title: "Getting started",
					Entries: []catalog.Entry{
						{
							Title:  "A Tour of Go",
							Author: "The Go Authors",
							Type:   catalog.TypeCourse,
							Level:  catalog.LevelBeginner,
							URL:    "https://go.dev/tour/",
							Desc:   "Interactive introduction to the language.",
						},
						{
							Title: "Effective Go",
							Type:  catalog.TypeNotes,
							URL:   "https://go.dev/doc/effective_go",
							Desc:  "How to write clear, idiomatic code.",
						},
					},
				},
			},
		},
	},
}

// writeStarterHub writes starterHub to dir/starter.yml when dir holds no
// files. It returns the path written, or "" when nothing was written.
func writeStarterHub(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating hubs dir: %w", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("reading hubs dir: %w", err)
	}
	if len(entries) > 0 {
		return "", nil
	}

	path := filepath.Join(dir, "starter.yml")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating starter hub: %w", err)
	}
	defer f.Close()
	if err := catalog.Encode(f, starterHub, catalog.FormatYAML); err != nil {
		return "", fmt.Errorf("writing starter hub: %w", err)
	}
	return path, nil
}
