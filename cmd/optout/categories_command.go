package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"optout/internal/catalog"
	"optout/internal/journey"
)

func newCategoriesCommand(cctx *commandContext) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List broker categories from the opt-out catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := cctx.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			if search != "" {
				categories = catalog.Filter(categories, search)
			}

			var completed map[string]bool
			storeErr := cctx.withStore(func(store *journey.Store) error {
				var err error
				completed, err = store.CompletedBrokers(cmd.Context())
				return err
			})
			if storeErr != nil {
				// Completion counts are cosmetic on this listing.
				cctx.ensureLogger().Warn("journey store unavailable", "error", storeErr)
				completed = map[string]bool{}
			}

			rows := make([][]string, 0, len(categories))
			totalBrokers := 0
			for _, category := range categories {
				done := 0
				for _, b := range category.Brokers {
					if completed[b.Name] {
						done++
					}
				}
				totalBrokers += len(category.Brokers)
				rows = append(rows, []string{
					category.Name,
					strconv.Itoa(len(category.Brokers)),
					strconv.Itoa(done),
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Category", "Brokers", "Done"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight},
			))
			fmt.Fprintf(out, "%d categories, %d brokers\n", len(categories), totalBrokers)
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Filter brokers by name substring")
	return cmd
}
