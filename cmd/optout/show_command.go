package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"optout/internal/catalog"
	"optout/internal/journey"
	"optout/internal/language"
	"optout/internal/textextract"
)

func newShowCommand(cctx *commandContext) *cobra.Command {
	var asHTML bool

	cmd := &cobra.Command{
		Use:   "show BROKER",
		Short: "Show opt-out details for a broker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := cctx.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			broker, category := catalog.FindBroker(categories, args[0])
			if broker == nil {
				return fmt.Errorf("no broker matches %q", args[0])
			}

			lang := cctx.language()
			if asHTML {
				fmt.Fprintln(cmd.OutOrStdout(), textextract.Linkify(broker.InstructionsFor(lang)))
				return nil
			}
			colorized := stdoutIsTTY()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, colorize(broker.DisplayName(), ansiCyan, colorized))
			fmt.Fprintf(out, "Category: %s\n", category.Name)
			if broker.Interactive {
				label := "Guided journey available"
				if lang == language.Spanish {
					label = "Recorrido guiado disponible"
				}
				fmt.Fprintln(out, colorize(label, ansiGreen, colorized))
			}
			fmt.Fprintln(out)

			if instructions := broker.InstructionsFor(lang); instructions != "" {
				fmt.Fprintln(out, instructions)
				fmt.Fprintln(out)
			}

			printContactList(out, "Emails", broker.Emails)
			printContactList(out, "Phones", broker.Phones)
			printContactList(out, "Links", broker.Links)

			return cctx.withStore(func(store *journey.Store) error {
				j, err := store.Get(cmd.Context(), broker.Name)
				if err != nil || j == nil {
					return err
				}
				steps := j.StepsFor(lang)
				if j.Completed {
					fmt.Fprintf(out, "Journey: completed (%d steps)\n", len(steps))
				} else {
					fmt.Fprintf(out, "Journey: step %d of %d\n", j.CurrentStep+1, len(steps))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asHTML, "html", false, "Print the instructions as linkified HTML")
	return cmd
}

func printContactList(out io.Writer, label string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(out, "%s: %s\n", label, strings.Join(values, ", "))
}
