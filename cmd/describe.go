package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/knsugi/wordlens/internal/bot"
)

func newDescribeCmd(b *bot.Bot) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "describe <image>",
		Short: "Describe an image file (JPG/PNG)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			if asJSON {
				fields, refused := b.DescribeFields(cmd.Context(), path)
				if refused {
					fmt.Fprintln(cmd.OutOrStdout(), b.RefusalMessage())
					return nil
				}
				out, err := json.MarshalIndent(fields, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode entry: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), b.Describe(cmd.Context(), path))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the entry fields as JSON")
	return cmd
}
