package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove <index>",
		Short: "Delete an entry from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			lib, err := ctx.openLibrary()
			if err != nil {
				return err
			}
			defer lib.Close()

			cat := lib.Catalog()
			rec, err := cat.At(index)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !yes {
				prompt := fmt.Sprintf("Delete %q (entry %d)? (y/n): ", rec.Title(), index)
				ok, err := confirm(cmd.InOrStdin(), out, prompt)
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
			}

			if err := cat.Remove(index); err != nil {
				return err
			}
			if err := lib.Save(); err != nil {
				return err
			}

			fmt.Fprintln(out, "Movie deleted successfully.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Delete without asking for confirmation")

	return cmd
}
