package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	httpHandler "github.com/KirkDiggler/primedice/internal/handlers/http"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the roll page, the JSON API and /metrics over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			a.cfg.HTTP.Addr = addr
		}

		server, err := httpHandler.New(&httpHandler.Config{
			RollerService:    a.rollerService,
			MessagingService: a.messagingService,
			Metrics:          a.metrics,
			Logger:           a.logger,
		})
		if err != nil {
			return fmt.Errorf("failed to create http server: %w", err)
		}

		srv := &http.Server{
			Addr:              a.cfg.HTTP.Addr,
			Handler:           server.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			a.logger.Info("starting http server", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("http server: %w", err)

		case <-cmd.Context().Done():
			a.logger.Info("shutting down http server")

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				a.logger.Warn("graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
				return srv.Close()
			}
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Address to listen on (overrides HTTP_ADDR)")
}
