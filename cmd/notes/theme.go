package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nhle/notes/internal/prefs"
)

var themeCmd = &cobra.Command{
	Use:       "theme [system|light|dark]",
	Short:     "Show or set the colour theme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(prefs.ThemeSystem), string(prefs.ThemeLight), string(prefs.ThemeDark)},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			t, err := prefs.LoadTheme(cmd.Context(), current.db)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		}

		t, err := prefs.ParseTheme(args[0])
		if err != nil {
			return err
		}
		return prefs.SaveTheme(cmd.Context(), current.db, t)
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
