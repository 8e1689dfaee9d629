package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"optout/internal/catalog"
	"optout/internal/journey"
)

func newJourneyCommand(cctx *commandContext) *cobra.Command {
	journeyCmd := &cobra.Command{
		Use:   "journey",
		Short: "Track per-broker removal journeys",
	}

	journeyCmd.AddCommand(newJourneyShowCommand(cctx))
	journeyCmd.AddCommand(newJourneyListCommand(cctx))
	journeyCmd.AddCommand(newJourneyNextCommand(cctx))
	journeyCmd.AddCommand(newJourneyPrevCommand(cctx))
	journeyCmd.AddCommand(newJourneyAddCommand(cctx))
	journeyCmd.AddCommand(newJourneyMoveCommand(cctx))

	return journeyCmd
}

// resolveBroker maps a user-supplied name to a catalog broker so journeys
// key on the canonical broker name.
func resolveBroker(ctx context.Context, cctx *commandContext, name string) (*catalog.Broker, error) {
	categories, err := cctx.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	broker, _ := catalog.FindBroker(categories, name)
	if broker == nil {
		return nil, fmt.Errorf("no broker matches %q", name)
	}
	return broker, nil
}

func newJourneyShowCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show BROKER",
		Short: "Show the journey for a broker, starting it if needed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			broker, err := resolveBroker(cmd.Context(), cctx, args[0])
			if err != nil {
				return err
			}
			return cctx.withStore(func(store *journey.Store) error {
				j, err := store.GetOrCreate(cmd.Context(), broker)
				if err != nil {
					return err
				}
				printJourney(cmd.OutOrStdout(), cctx, j)
				return nil
			})
		},
	}
}

func newJourneyListCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all started journeys",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cctx.withStore(func(store *journey.Store) error {
				journeys, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				if len(journeys) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No journeys started yet.")
					return nil
				}
				lang := cctx.language()
				rows := make([][]string, 0, len(journeys))
				for _, j := range journeys {
					steps := j.StepsFor(lang)
					progress := fmt.Sprintf("%d/%d", j.CurrentStep+1, len(steps))
					status := "in progress"
					if j.Completed {
						status = "completed"
					}
					rows = append(rows, []string{j.Broker, progress, status})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Broker", "Step", "Status"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignLeft},
				))
				return nil
			})
		},
	}
}

func newJourneyNextCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "next BROKER",
		Short: "Advance a journey one step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			broker, err := resolveBroker(cmd.Context(), cctx, args[0])
			if err != nil {
				return err
			}
			return cctx.withStore(func(store *journey.Store) error {
				if _, err := store.GetOrCreate(cmd.Context(), broker); err != nil {
					return err
				}
				j, err := store.Advance(cmd.Context(), broker.Name)
				if err != nil {
					return err
				}
				printJourney(cmd.OutOrStdout(), cctx, j)
				return nil
			})
		},
	}
}

func newJourneyPrevCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "prev BROKER",
		Short: "Move a journey back one step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			broker, err := resolveBroker(cmd.Context(), cctx, args[0])
			if err != nil {
				return err
			}
			return cctx.withStore(func(store *journey.Store) error {
				if _, err := store.GetOrCreate(cmd.Context(), broker); err != nil {
					return err
				}
				j, err := store.Rewind(cmd.Context(), broker.Name)
				if err != nil {
					return err
				}
				printJourney(cmd.OutOrStdout(), cctx, j)
				return nil
			})
		},
	}
}

func newJourneyAddCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add BROKER STEP",
		Short: "Append a custom step to a journey",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			broker, err := resolveBroker(cmd.Context(), cctx, args[0])
			if err != nil {
				return err
			}
			return cctx.withStore(func(store *journey.Store) error {
				if _, err := store.GetOrCreate(cmd.Context(), broker); err != nil {
					return err
				}
				j, err := store.AppendStep(cmd.Context(), broker.Name, args[1])
				if err != nil {
					return err
				}
				printJourney(cmd.OutOrStdout(), cctx, j)
				return nil
			})
		},
	}
}

func newJourneyMoveCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "move BROKER FROM TO",
		Short: "Move a step to a new position (1-based)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			broker, err := resolveBroker(cmd.Context(), cctx, args[0])
			if err != nil {
				return err
			}
			from, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid step position %q", args[1])
			}
			to, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid step position %q", args[2])
			}
			return cctx.withStore(func(store *journey.Store) error {
				if _, err := store.GetOrCreate(cmd.Context(), broker); err != nil {
					return err
				}
				j, err := store.Reorder(cmd.Context(), broker.Name, from-1, to-1)
				if err != nil {
					return err
				}
				printJourney(cmd.OutOrStdout(), cctx, j)
				return nil
			})
		},
	}
}

func printJourney(out io.Writer, cctx *commandContext, j *journey.Journey) {
	lang := cctx.language()
	colorized := stdoutIsTTY()
	steps := j.StepsFor(lang)

	fmt.Fprintln(out, colorize(j.Broker, ansiCyan, colorized))
	for i, step := range steps {
		marker := " "
		switch {
		case j.Completed || i < j.CurrentStep:
			marker = colorize("✓", ansiGreen, colorized)
		case i == j.CurrentStep:
			marker = colorize(">", ansiCyan, colorized)
		}
		fmt.Fprintf(out, " %s %2d. %s\n", marker, i+1, step)
	}
	if j.Completed {
		fmt.Fprintln(out, colorize("Journey completed.", ansiGreen, colorized))
	} else if j.AtLastStep() {
		fmt.Fprintln(out, "Final step; advancing again marks the journey complete.")
	}
}
