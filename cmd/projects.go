package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katariya/portfolio/internal/catalog"
)

var projectsTag string

var projectsCmd = &cobra.Command{
	Use:     "projects",
	Aliases: []string{"ls"},
	Short:   "List projects, optionally filtered by tag",
	RunE: func(cmd *cobra.Command, args []string) error {
		return projectsRun(projectsTag)
	},
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the filter tags shown on the page",
	RunE: func(cmd *cobra.Command, args []string) error {
		return tagsRun()
	},
}

func init() {
	projectsCmd.Flags().StringVarP(&projectsTag, "tag", "t", catalog.All, "Only show projects with this tag")
	rootCmd.AddCommand(projectsCmd, tagsCmd)
}

func projectsRun(tag string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	doc, err := loadDocument(cfg)
	if err != nil {
		return err
	}

	f := catalog.NewFilter(doc.Projects)
	f.Set(tag)

	visible := f.Visible()
	if len(visible) == 0 {
		ui.Warning("No projects tagged %q", tag)
		return nil
	}

	return ui.Projects(visible)
}

func tagsRun() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	doc, err := loadDocument(cfg)
	if err != nil {
		return err
	}

	for _, tag := range catalog.AvailableTags(doc.Projects) {
		fmt.Fprintln(ui.Out, tag)
	}
	return nil
}
