package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dsengupta/mindprobe/internal/llm"
	"github.com/dsengupta/mindprobe/internal/questiongen"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview generated assessment questions (no database)",
	Long: `Generate a question batch and print it to stdout.

This is a stateless developer tool — no database, no roster, no event log.
Useful for evaluating question quality and prompt changes.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("count", 5, "Number of questions to generate")
}

func runPreview(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	if count < 1 {
		return fmt.Errorf("count must be at least 1")
	}

	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	gen := questiongen.New(provider, questiongen.DefaultConfig())

	fmt.Printf("Generating %d questions...\n\n", count)
	questions, err := gen.Generate(ctx, count)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	for i, q := range questions {
		fmt.Printf("── Question %d/%d [%s] ──\n", i+1, len(questions), q.Dimension)
		fmt.Println(q.Text)
		for j, opt := range q.Options {
			fmt.Printf("  %d) %s\n", j+1, opt)
		}
		fmt.Println()
	}
	return nil
}
