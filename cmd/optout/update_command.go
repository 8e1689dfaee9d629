package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"optout/internal/journey"
)

func newUpdateCommand(cctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Fetch new journeys from the published feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.Updates.Enabled {
				fmt.Fprintln(cmd.OutOrStdout(), "Journey updates are disabled in configuration.")
				return nil
			}
			return cctx.withStore(func(store *journey.Store) error {
				checker := journey.NewChecker(store, cfg, cctx.ensureLogger())
				added, fetched, err := checker.Check(cmd.Context(), force)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if !fetched {
					last, lastErr := checker.LastCheck(cmd.Context())
					if lastErr == nil && !last.IsZero() {
						fmt.Fprintf(out, "Already checked %s ago; use --force to check again.\n",
							time.Since(last).Round(time.Minute))
					} else {
						fmt.Fprintln(out, "Update check skipped; use --force to check again.")
					}
					return nil
				}
				if added == 0 {
					fmt.Fprintln(out, "No new journeys.")
				} else {
					fmt.Fprintf(out, "Added %d new journeys.\n", added)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Check even if the interval has not elapsed")
	return cmd
}
