package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katariya/portfolio/internal/config"
	"github.com/katariya/portfolio/internal/output"
	"github.com/katariya/portfolio/internal/site"
)

var (
	ui = output.New()

	contentPath string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site with a filterable project grid",
	Long: `portfolio serves a one-page personal portfolio (header, hero, tag-filterable
project cards, contact form) or exports it as static HTML.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.Verbose = verbose
	},
}

// Execute is the main entry point called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&contentPath, "content", "", "Content YAML file (default: bundled sample, or $PORTFOLIO_CONTENT)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

// loadConfig reads the environment and applies command-line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if contentPath != "" {
		cfg.ContentPath = contentPath
	}
	return cfg, nil
}

func loadDocument(cfg *config.Config) (*site.Document, error) {
	doc, err := site.LoadDocument(cfg.ContentPath)
	if err != nil {
		return nil, err
	}
	if cfg.ContentPath == "" {
		ui.Verbosef("Using bundled content (%d projects)", len(doc.Projects))
	} else {
		ui.Verbosef("Loaded %s (%d projects)", cfg.ContentPath, len(doc.Projects))
	}
	return doc, nil
}
