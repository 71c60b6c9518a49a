package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/refhub/internal/catalog"
	"github.com/ziadkadry99/refhub/internal/db"
	"github.com/ziadkadry99/refhub/internal/registry"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export hubs into a SQLite catalog database",
	Long: `Writes every loaded hub into a SQLite database. Existing hubs with the same
name are replaced. The database can be placed in hubs_dir and served directly.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("out", "hubs.db", "path of the SQLite database to write")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	out, _ := cmd.Flags().GetString("out")

	e, err := loadEnv(ctx)
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	database, err := db.Open(out)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	n, err := exportHubs(ctx, database, e.reg.Hubs(), e.logger)
	if err != nil {
		return err
	}
	fmt.Printf("Exported %d hub(s) to %s\n", n, out)
	return nil
}

// exportHubs saves each hub under its name and returns how many were written.
func exportHubs(ctx context.Context, database *db.DB, hubs []*registry.Hub, logger *zap.Logger) (int, error) {
	n := 0
	for _, h := range hubs {
		if err := catalog.SaveDB(ctx, database, h.Name, h.Store.Catalog()); err != nil {
			return n, fmt.Errorf("exporting %s: %w", h.Name, err)
		}
		logger.Debug("exported hub", zap.String("hub", h.Name))
		n++
	}
	return n, nil
}
