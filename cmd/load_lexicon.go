package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/knsugi/wordlens/internal/lexicon"
)

func newLoadLexiconCmd(store *lexicon.SQLLexicon) *cobra.Command {
	return &cobra.Command{
		Use:   "load-lexicon <file>",
		Short: "Import a JSONL corpus into the local lexicon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := lexicon.LoadFile(cmd.Context(), store, args[0])
			if err != nil {
				return fmt.Errorf("failed to load corpus: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d words into the lexicon.\n", count)
			return nil
		},
	}
}
