package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"optout/internal/compose"
	"optout/internal/language"
	"optout/internal/translate"
)

type generateFlags struct {
	name    string
	email   string
	phone   string
	link    string
	address string
	mailto  bool
}

func (f *generateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Your full name")
	cmd.Flags().StringVar(&f.email, "email", "", "Your email address")
	cmd.Flags().StringVar(&f.phone, "phone", "", "Your phone number")
	cmd.Flags().StringVar(&f.link, "link", "", "Profile URL on the broker site")
	cmd.Flags().StringVar(&f.address, "address", "", "Your mailing address")
}

func (f *generateFlags) fields() compose.Fields {
	return compose.Fields{
		Name:    f.name,
		Email:   f.email,
		Phone:   f.phone,
		Link:    f.link,
		Address: f.address,
	}
}

func newGenerateCommand(cctx *commandContext) *cobra.Command {
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate removal request emails and letters",
	}

	generateCmd.AddCommand(newGenerateEmailCommand(cctx))
	generateCmd.AddCommand(newGenerateLetterCommand(cctx))

	return generateCmd
}

func newGenerateEmailCommand(cctx *commandContext) *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "email BROKER",
		Short: "Generate a removal request email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			broker, err := resolveBroker(cmd.Context(), cctx, args[0])
			if err != nil {
				return err
			}
			lang := cctx.language()
			msg, err := compose.Email(broker, flags.fields(), lang)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if msg.To != "" {
				fmt.Fprintf(out, "To: %s\n", msg.To)
			}
			fmt.Fprintf(out, "Subject: %s\n", msg.Subject)
			fmt.Fprintf(out, "Reference: %s\n\n", msg.ReferenceID)
			fmt.Fprintln(out, msg.Body)

			if flags.mailto {
				body := msg.Body
				// Brokers expect English; translate a Spanish draft before
				// building the mailto link.
				if lang == language.Spanish {
					cfg, err := cctx.ensureConfig()
					if err != nil {
						return err
					}
					translated, err := translate.NewService(cfg).ToEnglish(cmd.Context(), body)
					if err != nil {
						cctx.ensureLogger().Warn("translation failed", "error", err)
					} else if translated != "" {
						body = translated
					}
				}
				fmt.Fprintf(out, "\n%s\n", msg.Mailto(body))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&flags.mailto, "mailto", false, "Print a mailto link for the request")
	return cmd
}

func newGenerateLetterCommand(cctx *commandContext) *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "letter BROKER",
		Short: "Generate a removal request letter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			broker, err := resolveBroker(cmd.Context(), cctx, args[0])
			if err != nil {
				return err
			}
			msg, err := compose.Letter(broker, flags.fields(), cctx.language())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reference: %s\n\n", msg.ReferenceID)
			fmt.Fprintln(cmd.OutOrStdout(), msg.Body)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
