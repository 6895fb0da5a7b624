// Package cmd wires the CLI: the interactive session as the root
// command plus one-shot define/describe/load-lexicon subcommands.
package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/knsugi/wordlens/internal/bot"
	"github.com/knsugi/wordlens/internal/config"
	"github.com/knsugi/wordlens/internal/lexicon"
	"github.com/knsugi/wordlens/internal/logger"
	"github.com/knsugi/wordlens/internal/online"
	"github.com/knsugi/wordlens/internal/safety"
	"github.com/knsugi/wordlens/internal/tui"
	"github.com/knsugi/wordlens/internal/vision"
)

func NewRootCmd(b *bot.Bot, store *lexicon.SQLLexicon) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordlens",
		Short: "Dictionary for words and images, offline first",
		Long: "wordlens turns an English word or an image file into a structured\n" +
			"dictionary entry. It works offline against a local lexicon and a\n" +
			"classifier daemon, and can optionally delegate to a remote model.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			session := tui.NewSession(b)
			p := tea.NewProgram(session)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("failed to run session: %w", err)
			}
			fmt.Println("Bye!")
			return nil
		},
	}

	cmd.AddCommand(newDefineCmd(b))
	cmd.AddCommand(newDescribeCmd(b))
	cmd.AddCommand(newLoadLexiconCmd(store))
	return cmd
}

// Execute builds the shared collaborators once and runs the CLI.
func Execute() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Init(cfg.Log.Level)

	db, err := lexicon.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := lexicon.Migrate(db); err != nil {
		return err
	}
	store := lexicon.NewSQLLexicon(db)

	// First-run corpus bootstrap. An empty lexicon is usable, every
	// word just resolves to a not-found entry, so failure is logged
	// and not fatal.
	if err := lexicon.EnsureCorpus(context.Background(), store, cfg.CorpusURL); err != nil {
		logger.Error("corpus bootstrap failed: %v", err)
	}

	// Re-import in the background when a locally loaded corpus file
	// changed since the last import.
	lexicon.LaunchSyncers(context.Background(), lexicon.NewCorpusSyncer(store))

	var delegate bot.Delegate
	if cfg.Online.Ready() {
		logger.Info("online track enabled (model=%s)", cfg.Online.Model)
		delegate = online.NewClient(cfg.Online)
	}

	b := bot.New(
		safety.NewGate(),
		store,
		vision.NewHTTPClassifier(cfg.ClassifierURL),
		vision.DefaultLabelTable(),
		delegate,
	)

	return NewRootCmd(b, store).Execute()
}
