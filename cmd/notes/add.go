package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nhle/notes/internal/model"
)

var (
	addTitle       string
	addDescription string
	addTags        string
	addColor       string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a note",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		color := addColor
		if color == "" {
			color = current.cfg.Display.DefaultColor
		}
		c, err := model.ParseColor(color)
		if err != nil {
			return err
		}

		n, err := current.notes.Create(cmd.Context(), model.Draft{
			Title:       addTitle,
			Description: addDescription,
			Tags:        model.ParseTags(addTags),
			Color:       c,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), n.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "note title")
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "note body")
	addCmd.Flags().StringVar(&addTags, "tags", "", "comma-separated tags")
	addCmd.Flags().StringVarP(&addColor, "color", "c", "", "label colour (green, blue, red, yellow, purple, gray)")
}
