package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ChrisDaskalos/myMovieRatingApp/internal/catalog"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var title string
	var director string
	var year int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a movie to the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateYear(year); err != nil {
				return err
			}
			rec, err := catalog.New(title, director, year)
			if err != nil {
				return err
			}

			lib, err := ctx.openLibrary()
			if err != nil {
				return err
			}
			defer lib.Close()

			index, err := lib.Catalog().Add(rec)
			if err != nil {
				return err
			}
			if err := lib.Save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %q at entry %d\n", rec.Title(), index)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Movie title")
	cmd.Flags().StringVarP(&director, "director", "d", "", "Movie director")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Release year")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("director")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}
