package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newRateCommand(ctx *commandContext) *cobra.Command {
	var index int

	cmd := &cobra.Command{
		Use:   "rate [title] <rating>",
		Short: "Rate a movie from 1 to 5",
		Long: `Rate a movie from 1 to 5. The target is the first entry whose title
matches exactly, or a specific entry when --index is given.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var title, ratingArg string
			switch {
			case index >= 0:
				if len(args) != 1 {
					return fmt.Errorf("with --index, pass only the rating")
				}
				ratingArg = args[0]
			case len(args) == 2:
				title, ratingArg = args[0], args[1]
			default:
				return fmt.Errorf("pass a title and a rating, or --index and a rating")
			}

			rating, err := strconv.Atoi(strings.TrimSpace(ratingArg))
			if err != nil {
				return fmt.Errorf("rating must be a number from 1 to 5, got %q", ratingArg)
			}

			lib, err := ctx.openLibrary()
			if err != nil {
				return err
			}
			defer lib.Close()

			cat := lib.Catalog()
			if index < 0 {
				index, err = cat.Search(title)
				if err != nil {
					return err
				}
			}
			rec, err := cat.At(index)
			if err != nil {
				return err
			}
			if err := rec.SetRating(rating); err != nil {
				return err
			}
			if err := lib.Save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Rated %q %d/5\n", rec.Title(), rating)
			return nil
		},
	}

	cmd.Flags().IntVarP(&index, "index", "i", -1, "Entry index to rate instead of a title")

	return cmd
}
