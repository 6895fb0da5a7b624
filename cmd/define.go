package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/knsugi/wordlens/internal/bot"
)

func newDefineCmd(b *bot.Bot) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "define <word>",
		Short: "Look up a word definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]

			if asJSON {
				e, refused := b.DefineEntry(cmd.Context(), word)
				if refused {
					fmt.Fprintln(cmd.OutOrStdout(), b.RefusalMessage())
					return nil
				}
				out, err := json.MarshalIndent(e, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode entry: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), b.Define(cmd.Context(), word))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the entry as JSON")
	return cmd
}
