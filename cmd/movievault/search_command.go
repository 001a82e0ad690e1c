package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "search <title>",
		Short: "Find the first entry with an exact title match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := ctx.openLibrary()
			if err != nil {
				return err
			}
			defer lib.Close()

			index, err := lib.Catalog().Search(args[0])
			if err != nil {
				return err
			}
			rec, err := lib.Catalog().At(index)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Entry %d: %s\n", index, rec.Format())
			return nil
		},
	}
}
