package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ChrisDaskalos/myMovieRatingApp/internal/catalog"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var sorted bool
	var locale string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Display the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := ctx.openLibrary()
			if err != nil {
				return err
			}
			defer lib.Close()

			cat := lib.Catalog()
			if cat.Count() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No movies to display.")
				return nil
			}

			// Sorting affects display only: list never saves, so the slot
			// order in the catalog file stays as-is.
			if sorted || locale != "" {
				if err := applySort(cat, locale); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			records := cat.Records()
			if !isTerminal(out) {
				for _, rec := range records {
					fmt.Fprintln(out, rec.Format())
				}
				return nil
			}

			rows := make([][]string, 0, len(records))
			for i, rec := range records {
				rows = append(rows, []string{
					strconv.Itoa(i),
					rec.Title(),
					rec.Director(),
					strconv.Itoa(rec.Year()),
					formatRating(rec.Rating()),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Title", "Director", "Year", "Rating"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&sorted, "sort", "s", false, "Sort entries by title")
	cmd.Flags().StringVar(&locale, "locale", "", "Collate titles for the given BCP 47 locale (implies --sort)")

	return cmd
}

func applySort(cat *catalog.Catalog, locale string) error {
	if locale == "" {
		cat.Sort()
		return nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("parse locale %q: %w", locale, err)
	}
	collator := collate.New(tag)
	cat.SortFunc(func(a, b *catalog.Record) int {
		return collator.CompareString(a.Title(), b.Title())
	})
	return nil
}
