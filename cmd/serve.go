package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/refhub/internal/browse"
	"github.com/ziadkadry99/refhub/internal/registry"
	"github.com/ziadkadry99/refhub/internal/server"
	"github.com/ziadkadry99/refhub/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the hub HTTP server",
	Long: `Starts the refhub HTTP server: rendered hub pages with live WebSocket
sessions, and a JSON API under /api.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (defaults to server.port)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(context.Background())
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	port, _ := cmd.Flags().GetInt("port")
	if port == 0 {
		port = e.cfg.Server.Port
	}

	renderer, err := site.NewRenderer(e.cfg.SiteTitle, e.cfg.Logo, e.policy)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}

	srv := server.New(server.Config{
		Port:     port,
		AllowAll: e.cfg.Server.AllowAllOrigins,
	}, e.logger)

	r := srv.Router()
	registry.RegisterRoutes(r, e.reg, e.policy)
	browse.New(e.reg, renderer, e.logger, e.cfg.Logo).RegisterRoutes(r)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		e.logger.Info("shutting down server")
		if err := srv.Shutdown(context.Background()); err != nil {
			e.logger.Error("shutdown", zap.Error(err))
		}
	}()

	fmt.Fprintf(os.Stderr, "refhub server v%s starting on port %d\n", Version, port)
	fmt.Fprintf(os.Stderr, "  Hubs: %s (%d loaded)\n", e.cfg.HubsDir, e.reg.Len())

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
