package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dsengupta/mindprobe/internal/app"
	"github.com/dsengupta/mindprobe/internal/llm"
	"github.com/dsengupta/mindprobe/internal/profile"
	"github.com/dsengupta/mindprobe/internal/questiongen"
	"github.com/dsengupta/mindprobe/internal/screen"
	"github.com/dsengupta/mindprobe/internal/screens/boot"
	"github.com/dsengupta/mindprobe/internal/screens/login"
	"github.com/dsengupta/mindprobe/internal/screens/menu"
	"github.com/dsengupta/mindprobe/internal/store"
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

	// The app runs without a provider; assessments then fail with an
	// on-screen connection fault instead of at startup.
	var provider llm.Provider
	if p, err := llm.NewProviderFromEnv(ctx, st.EventRepo()); err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Assessments will be unavailable.")
	} else {
		provider = p
	}

	generator := questiongen.New(provider, questiongen.DefaultConfig())
	analyzer := profile.NewAnalyzer(provider, profile.DefaultConfig())
	lbRepo := st.LeaderboardRepo()

	first := boot.New(func() screen.Screen {
		return login.New(func(operative string) screen.Screen {
			return menu.New(operative, generator, analyzer, lbRepo)
		})
	})

	return app.Run(first)
}
