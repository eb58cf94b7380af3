package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katariya/portfolio/internal/site"
)

var renderOut string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Export the portfolio as static HTML pages",
	Long: `Writes index.html (all projects) and one tag-<slug>.html page per tag.
Filter buttons link between the exported pages, so no server is needed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return renderRun(renderOut)
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "dist", "Output directory")
	rootCmd.AddCommand(renderCmd)
}

func renderRun(dir string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	doc, err := loadDocument(cfg)
	if err != nil {
		return err
	}

	files, err := site.Export(dir, doc)
	if err != nil {
		return err
	}
	for _, f := range files {
		ui.Verbosef("wrote %s", f)
	}
	ui.Success("Rendered %d pages into %s", len(files), dir)
	return nil
}
