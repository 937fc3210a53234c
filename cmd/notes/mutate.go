package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nhle/notes/internal/model"
)

var (
	editTitle       string
	editDescription string
	editTags        string
	editColor       string
)

var editCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Change the title, description, tags or colour of a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := resolveNote(args[0])
		if err != nil {
			return err
		}

		var p model.Patch
		flags := cmd.Flags()
		if flags.Changed("title") {
			p.Title = &editTitle
		}
		if flags.Changed("description") {
			p.Description = &editDescription
		}
		if flags.Changed("tags") {
			tags := model.ParseTags(editTags)
			p.Tags = &tags
		}
		if flags.Changed("color") {
			c, err := model.ParseColor(editColor)
			if err != nil {
				return err
			}
			p.Color = &c
		}
		if p.IsEmpty() {
			return fmt.Errorf("nothing to change: pass --title, --description, --tags or --color")
		}

		return current.notes.Update(cmd.Context(), n.ID, p)
	},
}

var pinCmd = &cobra.Command{
	Use:   "pin ID",
	Short: "Pin or unpin a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(cmd.Context(), args[0], false, current.notes.TogglePinned)
	},
}

var archiveCmd = &cobra.Command{
	Use:   "archive ID",
	Short: "Archive or unarchive a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(cmd.Context(), args[0], false, current.notes.ToggleArchived)
	},
}

var trashCmd = &cobra.Command{
	Use:   "trash ID",
	Short: "Move a note to the trash",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(cmd.Context(), args[0], false, current.notes.Trash)
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore ID",
	Short: "Take a note out of the trash",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(cmd.Context(), args[0], true, current.notes.Restore)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Permanently delete a trashed note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(cmd.Context(), args[0], true, current.notes.RemoveForever)
	},
}

func init() {
	rootCmd.AddCommand(editCmd, pinCmd, archiveCmd, trashCmd, restoreCmd, deleteCmd)

	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "new title")
	editCmd.Flags().StringVarP(&editDescription, "description", "d", "", "new body")
	editCmd.Flags().StringVar(&editTags, "tags", "", "comma-separated tags (replaces the current ones)")
	editCmd.Flags().StringVarP(&editColor, "color", "c", "", "new label colour")
}

// mutate resolves ref and applies op. wantTrashed says which side of the
// trash the note must be on: restore and delete only act on trashed notes,
// everything else only on notes outside the trash.
func mutate(ctx context.Context, ref string, wantTrashed bool, op func(context.Context, string) error) error {
	n, err := resolveNote(ref)
	if err != nil {
		return err
	}
	if n.Trashed != wantTrashed {
		if wantTrashed {
			return fmt.Errorf("note %s is not in the trash", n.ID)
		}
		return fmt.Errorf("note %s is in the trash; restore it first", n.ID)
	}
	return op(ctx, n.ID)
}

// resolveNote finds a note by full id or by a unique id prefix.
func resolveNote(ref string) (model.Note, error) {
	if n, ok := current.notes.Get(ref); ok {
		return n, nil
	}

	var found []model.Note
	for _, n := range current.notes.Notes() {
		if strings.HasPrefix(n.ID, ref) {
			found = append(found, n)
		}
	}
	switch len(found) {
	case 0:
		return model.Note{}, fmt.Errorf("note %s not found", ref)
	case 1:
		return found[0], nil
	default:
		return model.Note{}, fmt.Errorf("id prefix %s matches %d notes", ref, len(found))
	}
}
