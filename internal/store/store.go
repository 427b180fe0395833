// Package store handles SQLite persistence of finished days.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/tuicandy/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for day history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS days (
			id INTEGER PRIMARY KEY,
			run_id TEXT NOT NULL,
			day INTEGER NOT NULL,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			coins INTEGER NOT NULL,
			served INTEGER NOT NULL,
			perfect INTEGER NOT NULL,
			ok INTEGER NOT NULL,
			failed INTEGER NOT NULL,
			timed_out INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS rounds (
			day_id INTEGER NOT NULL,
			seq INTEGER NOT NULL,
			offset_ms INTEGER NOT NULL,
			mode TEXT NOT NULL,
			kinds INTEGER NOT NULL,
			items INTEGER NOT NULL,
			tier TEXT NOT NULL,
			coins INTEGER NOT NULL,
			patience INTEGER NOT NULL,
			timed_out INTEGER NOT NULL,
			PRIMARY KEY (day_id, seq)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_days_ended_at ON days(ended_at);`,
		`CREATE INDEX IF NOT EXISTS idx_days_run_id ON days(run_id);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertDay stores a finished day and its rounds.
func (s *Store) InsertDay(ctx context.Context, day model.DayRecord, rounds []model.RoundRecord) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO days (run_id, day, started_at, ended_at, coins, served, perfect, ok, failed, timed_out)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		day.RunID,
		day.Day,
		day.StartedAt.Format(time.RFC3339Nano),
		day.EndedAt.Format(time.RFC3339Nano),
		day.Coins,
		day.Served,
		day.Perfect,
		day.OK,
		day.Failed,
		day.TimedOut,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(rounds) > 0 {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO rounds (day_id, seq, offset_ms, mode, kinds, items, tier, coins, patience, timed_out)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return 0, err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for i, r := range rounds {
			timedOut := 0
			if r.TimedOut {
				timedOut = 1
			}
			if _, err := stmt.ExecContext(ctx, id, i+1, r.Offset.Milliseconds(), r.Mode.String(), r.Kinds, r.Items, r.Tier.String(), r.Coins, r.Patience, timedOut); err != nil {
				return 0, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListDays returns stored days filtered by stats config, oldest first.
func (s *Store) ListDays(ctx context.Context, cfg model.StatsConfig) ([]model.DayRecord, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Since != nil {
		clauses = append(clauses, "ended_at >= ?")
		args = append(args, cfg.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, run_id, day, started_at, ended_at, coins, served, perfect, ok, failed, timed_out
		FROM days
		WHERE %s
		ORDER BY ended_at ASC, id ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var days []model.DayRecord
	for rows.Next() {
		var rec model.DayRecord
		var startedAt, endedAt string
		if err := rows.Scan(&rec.ID, &rec.RunID, &rec.Day, &startedAt, &endedAt, &rec.Coins, &rec.Served, &rec.Perfect, &rec.OK, &rec.Failed, &rec.TimedOut); err != nil {
			return nil, err
		}
		if rec.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
			return nil, err
		}
		if rec.EndedAt, err = time.Parse(time.RFC3339Nano, endedAt); err != nil {
			return nil, err
		}
		days = append(days, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return days, nil
}

// ListTierCounts aggregates rounds by tier and mode across the given days.
func (s *Store) ListTierCounts(ctx context.Context, dayIDs []int64) ([]model.TierCount, error) {
	if len(dayIDs) == 0 {
		return nil, nil
	}
	placeholders := make([]string, len(dayIDs))
	args := make([]any, len(dayIDs))
	for i, id := range dayIDs {
		placeholders[i] = "?"
		args[i] = id
	}
	query := fmt.Sprintf(`SELECT tier, mode, COUNT(*) AS n, SUM(coins) AS coins
		FROM rounds
		WHERE day_id IN (%s)
		GROUP BY tier, mode
		ORDER BY mode, tier`, strings.Join(placeholders, ","))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.TierCount
	for rows.Next() {
		var tier, mode string
		var tc model.TierCount
		if err := rows.Scan(&tier, &mode, &tc.Count, &tc.Coins); err != nil {
			return nil, err
		}
		tc.Tier = parseTier(tier)
		tc.Mode = parseMode(mode)
		result = append(result, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func parseTier(s string) model.Tier {
	switch s {
	case model.TierPerfect.String():
		return model.TierPerfect
	case model.TierOK.String():
		return model.TierOK
	default:
		return model.TierFailed
	}
}

func parseMode(s string) model.Mode {
	if s == model.ModeAtLeast.String() {
		return model.ModeAtLeast
	}
	return model.ModeExact
}
