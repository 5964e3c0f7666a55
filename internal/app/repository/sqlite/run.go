package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/zpeteman/content-repurposer/internal/app/model"
	"github.com/zpeteman/content-repurposer/internal/app/repository"
	"github.com/zpeteman/content-repurposer/internal/app/util/files"
)

const createRunsTable = `
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	source TEXT NOT NULL,
	source_kind TEXT NOT NULL,
	audio_file_name TEXT NOT NULL DEFAULT '',
	audio_duration INTEGER NOT NULL DEFAULT 0,
	language TEXT NOT NULL,
	platforms TEXT NOT NULL,
	post_count INTEGER NOT NULL DEFAULT 0,
	has_error INTEGER NOT NULL DEFAULT 0,
	error_message TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL
);`

// SQLiteRunDAO stores run history in a local SQLite file.
type SQLiteRunDAO struct {
	db *sql.DB
}

// NewSQLiteRunDAO opens (creating if needed) the run history database at
// dbFilePath and ensures the schema exists.
func NewSQLiteRunDAO(dbFilePath string) (*SQLiteRunDAO, error) {
	if err := files.EnsureDir(filepath.Dir(dbFilePath)); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?cache=shared&mode=rwc", dbFilePath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	dao := &SQLiteRunDAO{db: db}
	if err := dao.init(); err != nil {
		db.Close()
		return nil, err
	}
	return dao, nil
}

// NewWithDB wraps an existing connection. Used by tests.
func NewWithDB(db *sql.DB) *SQLiteRunDAO {
	return &SQLiteRunDAO{db: db}
}

func (dao *SQLiteRunDAO) init() error {
	if _, err := dao.db.Exec(createRunsTable); err != nil {
		return fmt.Errorf("failed to create runs table: %w", err)
	}
	return nil
}

func (dao *SQLiteRunDAO) Close() error {
	return dao.db.Close()
}

func (dao *SQLiteRunDAO) RecordRun(ctx context.Context, record *model.RunRecord) error {
	insertSQL := `INSERT INTO runs (source, source_kind, audio_file_name, audio_duration, language, platforms, post_count, has_error, error_message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`
	_, err := dao.db.ExecContext(ctx, insertSQL,
		record.Source, record.SourceKind, record.AudioFileName, record.AudioDuration,
		record.Language, record.Platforms, record.PostCount,
		record.HasError, record.ErrorMessage, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	return nil
}

func (dao *SQLiteRunDAO) RecentRuns(ctx context.Context, limit int) ([]model.RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, source, source_kind, audio_file_name, audio_duration, language, platforms, post_count, has_error, error_message, created_at
		FROM runs
		ORDER BY created_at DESC, id DESC
		LIMIT ?;`
	rows, err := dao.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	records := make([]model.RunRecord, 0)
	for rows.Next() {
		var r model.RunRecord
		err = rows.Scan(&r.ID, &r.Source, &r.SourceKind, &r.AudioFileName, &r.AudioDuration,
			&r.Language, &r.Platforms, &r.PostCount, &r.HasError, &r.ErrorMessage, &r.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

var _ repository.RunDAO = (*SQLiteRunDAO)(nil)
