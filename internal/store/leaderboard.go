package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

const (
	leaderboardKey = "leaderboard"

	// MaxLeaderboardEntries bounds the persisted roster.
	MaxLeaderboardEntries = 10
)

// seedLeaderboard returns the roster installed on first load. Dates are
// assigned at seed time.
func seedLeaderboard(now time.Time) []LeaderboardEntry {
	seeds := []struct {
		username string
		score    int
	}{
		{"GHOST_01", 98},
		{"NEXUS", 92},
		{"CIPHER", 85},
	}

	entries := make([]LeaderboardEntry, 0, len(seeds))
	for _, s := range seeds {
		entries = append(entries, LeaderboardEntry{
			ID:       uuid.NewString(),
			Username: s.username,
			Score:    s.score,
			Date:     now,
		})
	}
	return entries
}

// leaderboardRepo implements LeaderboardRepo on the collections table.
// The whole roster lives under one key as a JSON array; every write
// replaces the document.
type leaderboardRepo struct {
	db *sql.DB
}

func (r *leaderboardRepo) Load(ctx context.Context) ([]LeaderboardEntry, error) {
	entries, found, err := r.read(ctx)
	if err != nil {
		return nil, err
	}
	if found {
		return entries, nil
	}

	seeded := seedLeaderboard(time.Now().UTC())
	if err := r.write(ctx, seeded); err != nil {
		return nil, fmt.Errorf("seed leaderboard: %w", err)
	}
	return seeded, nil
}

func (r *leaderboardRepo) Record(ctx context.Context, username string, score int) ([]LeaderboardEntry, error) {
	entries, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}

	entries = append(entries, LeaderboardEntry{
		ID:       uuid.NewString(),
		Username: username,
		Score:    score,
		Date:     time.Now().UTC(),
	})

	// Stable sort keeps earlier entries ahead on score ties, so a new
	// result never displaces an equal existing one.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	if len(entries) > MaxLeaderboardEntries {
		entries = entries[:MaxLeaderboardEntries]
	}

	if err := r.write(ctx, entries); err != nil {
		return nil, fmt.Errorf("persist leaderboard: %w", err)
	}
	return entries, nil
}

func (r *leaderboardRepo) read(ctx context.Context) ([]LeaderboardEntry, bool, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM collections WHERE key = ?`, leaderboardKey,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read leaderboard: %w", err)
	}

	var entries []LeaderboardEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, false, fmt.Errorf("decode leaderboard: %w", err)
	}
	return entries, true, nil
}

func (r *leaderboardRepo) write(ctx context.Context, entries []LeaderboardEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode leaderboard: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO collections (key, value, updated_at_ms) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at_ms = excluded.updated_at_ms`,
		leaderboardKey, string(raw), time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("write leaderboard: %w", err)
	}
	return nil
}
