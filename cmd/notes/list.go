package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/nhle/notes/internal/model"
	"github.com/nhle/notes/internal/theme"
)

var (
	listView   string
	listSearch string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the notes of a view",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := model.ParseView(listView)
		if err != nil {
			return err
		}

		visible := current.notes.View(v, listSearch)
		if len(visible) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No notes.")
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), renderTable(visible))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listView, "view", string(model.ViewAll), "view to list (all, pinned, archived, trash)")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "only notes whose title or description contains this text")
}

func renderTable(ns []model.Note) string {
	rows := make([][]string, len(ns))
	for i, n := range ns {
		var flags []string
		if n.Pinned {
			flags = append(flags, "pinned")
		}
		if n.Archived {
			flags = append(flags, "archived")
		}
		if n.Trashed {
			flags = append(flags, "trash")
		}
		rows[i] = []string{
			n.ID,
			ansi.Truncate(n.Title, 40, "…"),
			string(n.LabelColor()),
			strings.Join(n.Tags, ","),
			strings.Join(flags, ","),
		}
	}

	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("ID", "TITLE", "COLOR", "TAGS", "FLAGS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if col == 2 && row >= 0 && row < len(ns) {
				return cell.Foreground(theme.LabelColor(ns[row].LabelColor()))
			}
			return cell
		}).
		String()
}
