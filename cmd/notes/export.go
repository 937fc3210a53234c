package main

import (
	"github.com/spf13/cobra"

	"github.com/nhle/notes/internal/export"
	"github.com/nhle/notes/internal/model"
)

var (
	exportFormat string
	exportView   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write notes to stdout as JSON or YAML",
	Long: `Export writes the notes to stdout. Without --view the whole collection is
written in stored order; with --view only that view's notes, pinned first.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := export.ParseFormat(exportFormat)
		if err != nil {
			return err
		}

		selected := current.notes.Notes()
		if cmd.Flags().Changed("view") {
			v, err := model.ParseView(exportView)
			if err != nil {
				return err
			}
			selected = current.notes.View(v, "")
		}

		return export.Write(cmd.OutOrStdout(), format, selected)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", string(export.FormatJSON), "output format (json, yaml)")
	exportCmd.Flags().StringVar(&exportView, "view", "", "only export this view (all, pinned, archived, trash)")
}
