package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUpdateCommand(ctx *commandContext) *cobra.Command {
	var title string
	var director string
	var year int

	cmd := &cobra.Command{
		Use:   "update <index>",
		Short: "Replace the title, director, and year of an entry",
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

			rec, err := lib.Catalog().At(index)
			if err != nil {
				return err
			}
			if err := rec.Update(title, director, year); err != nil {
				return err
			}
			if err := lib.Save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated entry %d: %s\n", index, rec.Format())
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&director, "director", "d", "", "New director")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "New release year")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("director")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}
