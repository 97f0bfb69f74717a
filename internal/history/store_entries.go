package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"tubetag/internal/titleparse"
)

// searchScanLimit caps how many recent entries Search ranks.
const searchScanLimit = 5000

const entryColumns = `id, run_id, position, original_title, original_channel, artist,
    featuring, track, parsed, parse_method, parse_confidence, recorded_at`

// Record stores results as a single run. An empty result set records nothing.
func (s *Store) Record(ctx context.Context, runID string, results []titleparse.Metadata) error {
	runID = strings.TrimSpace(runID)
	if runID == "" {
		return errors.New("record history: run id is empty")
	}
	if len(results) == 0 {
		return nil
	}
	return s.withWriteLock(ctx, func(ctx context.Context) error {
		return retryOnBusy(ctx, func() error {
			return s.recordTx(ctx, runID, results)
		})
	})
}

func (s *Store) recordTx(ctx context.Context, runID string, results []titleparse.Metadata) error {
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin record tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO runs (id, created_at, entry_count) VALUES (?, ?, ?)",
		runID, timestamp, len(results),
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO entries (
            run_id, position, original_title, original_channel, artist,
            featuring, track, parsed, parse_method, parse_confidence, recorded_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare entry insert: %w", err)
	}
	defer stmt.Close()

	for i, m := range results {
		if _, err := stmt.ExecContext(ctx,
			runID,
			i+1,
			m.OriginalTitle,
			m.OriginalChannel,
			m.Artist,
			nullableString(m.Featuring),
			m.Track,
			boolToInt(m.Parsed),
			string(m.Method),
			string(m.Confidence),
			timestamp,
		); err != nil {
			return fmt.Errorf("insert entry %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit record tx: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	ctx = ensureContext(ctx)
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+entryColumns+" FROM entries ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("query recent entries: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// Run returns the entries of one run in input order.
func (s *Store) Run(ctx context.Context, runID string) ([]Entry, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+entryColumns+" FROM entries WHERE run_id = ? ORDER BY position", runID)
	if err != nil {
		return nil, fmt.Errorf("query run %s: %w", runID, err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// Search ranks recent entries by fuzzy match of query against artist, track
// and original title. Closer matches come first; ties keep newest first.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]Match, error) {
	query = strings.TrimSpace(query)
	if query == "" || limit <= 0 {
		return nil, nil
	}
	entries, err := s.Recent(ctx, searchScanLimit)
	if err != nil {
		return nil, err
	}

	targets := make([]string, len(entries))
	for i, e := range entries {
		targets[i] = searchTarget(e)
	}
	ranks := fuzzy.RankFindNormalizedFold(query, targets)
	slices.SortStableFunc(ranks, func(a, b fuzzy.Rank) int {
		if a.Distance != b.Distance {
			return a.Distance - b.Distance
		}
		return a.OriginalIndex - b.OriginalIndex
	})

	matches := make([]Match, 0, min(limit, len(ranks)))
	for _, r := range ranks {
		if len(matches) == limit {
			break
		}
		matches = append(matches, Match{Entry: entries[r.OriginalIndex], Distance: r.Distance})
	}
	return matches, nil
}

func searchTarget(e Entry) string {
	parts := []string{e.Artist, e.Track, e.OriginalTitle}
	if e.Featuring != nil {
		parts = append(parts, *e.Featuring)
	}
	return strings.Join(parts, " ")
}

// MethodCounts aggregates every recorded entry by method and confidence,
// most common first.
func (s *Store) MethodCounts(ctx context.Context) ([]MethodCount, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, `SELECT parse_method, parse_confidence, COUNT(1) AS n
        FROM entries
        GROUP BY parse_method, parse_confidence
        ORDER BY n DESC, parse_method`)
	if err != nil {
		return nil, fmt.Errorf("query method counts: %w", err)
	}
	defer rows.Close()

	var counts []MethodCount
	for rows.Next() {
		var (
			mc         MethodCount
			method     string
			confidence string
		)
		if err := rows.Scan(&method, &confidence, &mc.Count); err != nil {
			return nil, fmt.Errorf("scan method count: %w", err)
		}
		mc.Method = titleparse.Method(method)
		mc.Confidence = titleparse.Confidence(confidence)
		counts = append(counts, mc)
	}
	return counts, rows.Err()
}

// Clear removes every run and entry and reports how many entries were deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	var removed int64
	err := s.withWriteLock(ctx, func(ctx context.Context) error {
		return retryOnBusy(ctx, func() error {
			tx, err := s.db.BeginTx(ctx, nil)
			if err != nil {
				return fmt.Errorf("begin clear tx: %w", err)
			}
			defer func() { _ = tx.Rollback() }()

			res, err := tx.ExecContext(ctx, "DELETE FROM entries")
			if err != nil {
				return fmt.Errorf("delete entries: %w", err)
			}
			if _, err := tx.ExecContext(ctx, "DELETE FROM runs"); err != nil {
				return fmt.Errorf("delete runs: %w", err)
			}
			if err := tx.Commit(); err != nil {
				return fmt.Errorf("commit clear tx: %w", err)
			}
			removed, _ = res.RowsAffected()
			return nil
		})
	})
	return removed, err
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var (
			e          Entry
			featuring  sql.NullString
			parsed     int
			method     string
			confidence string
			recordedAt string
		)
		if err := rows.Scan(
			&e.ID, &e.RunID, &e.Position, &e.OriginalTitle, &e.OriginalChannel, &e.Artist,
			&featuring, &e.Track, &parsed, &method, &confidence, &recordedAt,
		); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		if featuring.Valid {
			value := featuring.String
			e.Featuring = &value
		}
		e.Parsed = parsed != 0
		e.Method = titleparse.Method(method)
		e.Confidence = titleparse.Confidence(confidence)
		if ts, err := time.Parse(time.RFC3339Nano, recordedAt); err == nil {
			e.RecordedAt = ts
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func nullableString(value *string) any {
	if value == nil {
		return nil
	}
	return *value
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
