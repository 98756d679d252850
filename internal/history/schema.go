package history

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const SchemaSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
    id TEXT PRIMARY KEY,
    taken_at TEXT NOT NULL,
    root TEXT NOT NULL,
    files INTEGER NOT NULL,
    words INTEGER NOT NULL,
    readability INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_snapshots_root_taken ON snapshots(root, taken_at);
`

func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(SchemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}
