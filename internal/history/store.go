// Package history keeps word-count snapshots over time, so a writer can
// see a draft grow. The analyzer itself stays stateless; this store is the
// caller that remembers.
package history

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Snapshot is one recorded word-count state of a project.
type Snapshot struct {
	ID          string
	TakenAt     time.Time
	Root        string
	Files       int
	Words       int
	Readability int
}

// Record stores a snapshot, filling in id and timestamp when unset, and
// returns the stored value.
func Record(dbPath string, snap Snapshot) (Snapshot, error) {
	conn, err := Open(dbPath)
	if err != nil {
		return Snapshot{}, err
	}
	defer conn.Close()

	if snap.ID == "" {
		snap.ID = uuid.NewString()
	}
	if snap.TakenAt.IsZero() {
		snap.TakenAt = time.Now().UTC()
	}

	if _, err := conn.Exec(
		`INSERT INTO snapshots(id, taken_at, root, files, words, readability) VALUES(?,?,?,?,?,?)`,
		snap.ID,
		snap.TakenAt.UTC().Format(time.RFC3339),
		snap.Root,
		snap.Files,
		snap.Words,
		snap.Readability,
	); err != nil {
		return Snapshot{}, fmt.Errorf("insert snapshot: %w", err)
	}
	return snap, nil
}

// List returns snapshots newest first, filtered by project root when root
// is non-empty. A limit of zero or less means all rows.
func List(dbPath, root string, limit int) ([]Snapshot, error) {
	conn, err := Open(dbPath)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	query := `SELECT id, taken_at, root, files, words, readability FROM snapshots`
	args := []any{}
	if root != "" {
		query += ` WHERE root = ?`
		args = append(args, root)
	}
	query += ` ORDER BY taken_at DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		var s Snapshot
		var taken string
		if err := rows.Scan(&s.ID, &taken, &s.Root, &s.Files, &s.Words, &s.Readability); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		if parsed, parseErr := time.Parse(time.RFC3339, taken); parseErr == nil {
			s.TakenAt = parsed
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshots: %w", err)
	}
	return out, nil
}

// Latest returns the newest snapshot for root, or nil when none exists.
func Latest(dbPath, root string) (*Snapshot, error) {
	snaps, err := List(dbPath, root, 1)
	if err != nil {
		return nil, err
	}
	if len(snaps) == 0 {
		return nil, nil
	}
	return &snaps[0], nil
}

// CountSnapshots reports the stored row count; handy in tests.
func CountSnapshots(dbPath string) (int, error) {
	conn, err := Open(dbPath)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM snapshots`).Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}
	return count, nil
}
