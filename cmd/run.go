package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/autodidact/internal/app"
	"github.com/abhisek/autodidact/internal/clarify"
	"github.com/abhisek/autodidact/internal/graph"
	"github.com/abhisek/autodidact/internal/llm"
	"github.com/abhisek/autodidact/internal/report"
	"github.com/abhisek/autodidact/internal/research"
	"github.com/abhisek/autodidact/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	repo := st.ProjectRepo()
	opts := app.Options{
		Projects:    repo,
		Transcripts: st.TranscriptRepo(),
		Resolver:    graph.NewResolver(repo),
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Creating new projects will be unavailable.")
	} else {
		root, err := report.DefaultRoot()
		if err != nil {
			return fmt.Errorf("resolve report root: %w", err)
		}
		opts.Clarifier = clarify.NewEngine(provider)
		opts.Orchestrator = research.NewOrchestrator(provider, repo, report.NewStorage(root))
	}

	return app.Run(opts)
}
