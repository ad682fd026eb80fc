package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"trak/internal/modules/studylog/domain"

	_ "modernc.org/sqlite"
)

// SQLiteLogJournal keeps a local record of committed study logs so history
// works offline. Course names are stored newline-joined; names themselves
// never contain newlines because enrollment parsing splits on them.
type SQLiteLogJournal struct {
	db *sql.DB
}

func NewSQLiteLogJournal(dbPath string) (*SQLiteLogJournal, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	journal := &SQLiteLogJournal{db: db}
	if err := journal.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return journal, nil
}

func (j *SQLiteLogJournal) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS study_logs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  course_names TEXT NOT NULL,
  committed_at TEXT NOT NULL
);
`
	if _, err := j.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create study_logs table: %w", err)
	}
	return nil
}

func (j *SQLiteLogJournal) Append(ctx context.Context, courseNames []string, committedAt time.Time) error {
	const stmt = `INSERT INTO study_logs (course_names, committed_at) VALUES (?, ?)`
	_, err := j.db.ExecContext(ctx, stmt,
		strings.Join(courseNames, "\n"),
		committedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("append study log: %w", err)
	}
	return nil
}

func (j *SQLiteLogJournal) Recent(ctx context.Context, limit int) ([]domain.JournalEntry, error) {
	const query = `
SELECT id, course_names, committed_at
FROM study_logs
ORDER BY id DESC
LIMIT ?;
`
	rows, err := j.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query study logs: %w", err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		var (
			entry domain.JournalEntry
			names string
			stamp string
		)
		if err := rows.Scan(&entry.ID, &names, &stamp); err != nil {
			return nil, fmt.Errorf("scan study log: %w", err)
		}
		entry.CourseNames = strings.Split(names, "\n")
		committedAt, err := time.Parse(time.RFC3339, stamp)
		if err != nil {
			return nil, fmt.Errorf("parse committed_at: %w", err)
		}
		entry.CommittedAt = committedAt
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate study logs: %w", err)
	}
	return entries, nil
}

func (j *SQLiteLogJournal) Close() error {
	return j.db.Close()
}
