package cmd

import (
	"fmt"
	"os"

	"github.com/jcmontoya/omnilearn/internal/app"
	"github.com/jcmontoya/omnilearn/internal/content"
	"github.com/jcmontoya/omnilearn/internal/course"
	"github.com/jcmontoya/omnilearn/internal/llm"
	"github.com/jcmontoya/omnilearn/internal/store"
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

	eventRepo := st.EventRepo()

	lib := course.NewLibrary(st.LibraryRepo())
	if err := lib.Load(ctx); err != nil {
		return fmt.Errorf("load courses: %w", err)
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Set ANTHROPIC_API_KEY, OPENAI_API_KEY, OPENROUTER_API_KEY, or GEMINI_API_KEY.")
		return err
	}

	return app.Run(app.Options{
		Library: lib,
		Content: content.NewService(provider, content.DefaultConfig()),
		Events:  eventRepo,
	})
}
