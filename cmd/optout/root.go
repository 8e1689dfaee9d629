package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"optout/internal/language"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var langFlag string

	ctx := newCommandContext(&configFlag, &langFlag)

	rootCmd := &cobra.Command{
		Use:           "optout",
		Short:         "Data broker opt-out helper",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&langFlag, "lang", "l", "", "Display language: "+languageFlagValues())

	rootCmd.AddCommand(newCategoriesCommand(ctx))
	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newJourneyCommand(ctx))
	rootCmd.AddCommand(newUpdateCommand(ctx))
	rootCmd.AddCommand(newGenerateCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

func languageFlagValues() string {
	parts := make([]string, 0, len(language.All()))
	for _, l := range language.All() {
		parts = append(parts, fmt.Sprintf("%s (%s)", l, language.DisplayName(l)))
	}
	return strings.Join(parts, ", ")
}
