package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dsengupta/mindprobe/internal/store"
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Print the operative leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		entries, err := s.LeaderboardRepo().Load(context.Background())
		if err != nil {
			return fmt.Errorf("load roster: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("No evaluations on record.")
			return nil
		}

		fmt.Printf("%-4s  %-18s  %5s  %s\n", "RANK", "CALLSIGN", "SCORE", "DATE")
		fmt.Println(strings.Repeat("─", 48))
		for i, e := range entries {
			fmt.Printf("%-4d  %-18s  %5d  %s\n",
				i+1, e.Username, e.Score, e.Date.Local().Format("2006-01-02"))
		}
		return nil
	},
}
