package cmd

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katariya/portfolio/internal/mailer"
	"github.com/katariya/portfolio/internal/server"
	"github.com/katariya/portfolio/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serveRun(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serveRun(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	doc, err := loadDocument(cfg)
	if err != nil {
		return err
	}

	opts := server.Options{
		Config:   cfg,
		Document: doc,
		Mailer:   mailer.NewSMTPSender(cfg.SMTP),
	}

	if cfg.TrackingEnabled() {
		s, err := store.NewSQLiteStore(cfg.DBPath)
		if err != nil {
			return err
		}
		defer s.Close()
		if err := s.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		opts.Store = s
	}

	srv, err := server.New(opts)
	if err != nil {
		return err
	}

	if opts.Store != nil {
		go func() {
			if _, err := srv.Cleanup(ctx); err != nil {
				log.Printf("Error cleaning up old visitor data: %v", err)
			}
		}()
	}

	return srv.Run(ctx)
}
