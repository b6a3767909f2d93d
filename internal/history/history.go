/*
 * Copyright (c) 2026 by Clarissa Littler.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package history keeps a small per-user SQLite database of played
// presentations: which file, how far the viewer got, and when. It backs the
// "tpp history" listing and the --resume flag.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	applog "github.com/clarissalittler/tpp/internal/log"

	// Pure-Go SQLite driver (CGO-free)
	_ "modernc.org/sqlite"
)

const (
	DBFileName = "history.sqlite"

	// schemaVersion tracks the local SQLite schema. Bump on breaking changes.
	schemaVersion = 1
)

// Entry is one remembered playback session, keyed by absolute file path.
type Entry struct {
	Path      string
	Title     string
	LastPage  int
	PageCount int
	PlayedAt  time.Time
}

// Store wraps the history database.
type Store struct {
	db *sql.DB
}

// Open creates or opens the history database under dir (normally the user
// config directory), enables WAL mode, and ensures the schema exists.
func Open(dir string) (*Store, error) {
	l := applog.WithOperation(applog.WithComponent("history"), "open").With(slog.String("dir", dir))
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("history dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	path := filepath.Join(dir, DBFileName)
	dsn := fmt.Sprintf("file:%s?cache=shared&_pragma=busy_timeout(5000)", filepath.ToSlash(path))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	if err := ensureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	l.Debug("history ready", slog.String("path", path))
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func ensureSchema(ctx context.Context, db *sql.DB) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS entries (
			path       TEXT PRIMARY KEY,
			title      TEXT NOT NULL DEFAULT '',
			last_page  INTEGER NOT NULL,
			page_count INTEGER NOT NULL,
			played_at  TEXT NOT NULL
		);`,
	}
	for _, q := range ddl {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	_, err := db.ExecContext(ctx,
		`INSERT INTO meta(key, value) VALUES('schema', ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		fmt.Sprint(schemaVersion))
	if err != nil {
		return fmt.Errorf("write schema version: %w", err)
	}
	return nil
}

// Record upserts the session for path. The path should be absolute so the
// same file matches across working directories.
func (s *Store) Record(ctx context.Context, path, title string, lastPage, pageCount int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO entries(path, title, last_page, page_count, played_at)
		 VALUES(?, ?, ?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET
			title=excluded.title,
			last_page=excluded.last_page,
			page_count=excluded.page_count,
			played_at=excluded.played_at`,
		path, title, lastPage, pageCount, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("record session: %w", err)
	}
	return nil
}

// LastPage returns the page index the viewer last reached for path. The
// second return value is false when the file has no history.
func (s *Store) LastPage(ctx context.Context, path string) (int, bool, error) {
	var page int
	err := s.db.QueryRowContext(ctx, `SELECT last_page FROM entries WHERE path = ?`, path).Scan(&page)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("query last page: %w", err)
	}
	return page, true, nil
}

// Recent lists sessions, most recently played first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT path, title, last_page, page_count, played_at
		 FROM entries ORDER BY played_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Entry
	for rows.Next() {
		var e Entry
		var played string
		if err := rows.Scan(&e.Path, &e.Title, &e.LastPage, &e.PageCount, &played); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		e.PlayedAt, _ = time.Parse(time.RFC3339, played)
		out = append(out, e)
	}
	return out, rows.Err()
}
