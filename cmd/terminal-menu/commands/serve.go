package commands

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/seanodell/vscode-terminal-menu/internal/logging"
	"github.com/seanodell/vscode-terminal-menu/internal/server"
)

var (
	servePort     int
	serveHostname string
	serveNoCORS   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the menu over HTTP",
	Long: `Start an HTTP server exposing the providers and the discovered menu
as JSON, for editor integrations and scripts.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 7878, "Port to listen on")
	serveCmd.Flags().StringVar(&serveHostname, "hostname", "127.0.0.1", "Hostname to listen on")
	serveCmd.Flags().BoolVar(&serveNoCORS, "no-cors", false, "Disable CORS headers")
}

func runServe(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	serverConfig := server.DefaultConfig()
	serverConfig.Port = servePort
	serverConfig.Hostname = serveHostname
	serverConfig.Directory = s.workDir
	serverConfig.Folders = s.folders[1:]
	serverConfig.Enabled = s.config.EnabledConfigTypes
	serverConfig.EnableCORS = !serveNoCORS

	srv := server.New(serverConfig, s.registry)

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", serveHostname).Int("port", servePort).Msg("server listening")
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-cmd.Context().Done():
	}

	logging.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("server shutdown")
	}
	return nil
}
