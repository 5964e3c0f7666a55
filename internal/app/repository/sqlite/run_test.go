package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zpeteman/content-repurposer/internal/app/model"
)

func newMockDAO(t *testing.T) (*SQLiteRunDAO, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewWithDB(db), mock
}

func TestRecordRun(t *testing.T) {
	dao, mock := newMockDAO(t)

	record := &model.RunRecord{
		Source:        "https://youtube.com/watch?v=abc",
		SourceKind:    "url",
		AudioFileName: "artifact.mp3",
		AudioDuration: 120,
		Language:      "english",
		Platforms:     "instagram,x",
		PostCount:     3,
		CreatedAt:     time.Now(),
	}

	mock.ExpectExec("INSERT INTO runs").
		WithArgs(record.Source, record.SourceKind, record.AudioFileName, record.AudioDuration,
			record.Language, record.Platforms, record.PostCount,
			record.HasError, record.ErrorMessage, record.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := dao.RecordRun(context.Background(), record)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRunError(t *testing.T) {
	dao, mock := newMockDAO(t)

	mock.ExpectExec("INSERT INTO runs").
		WillReturnError(assert.AnError)

	err := dao.RecordRun(context.Background(), &model.RunRecord{CreatedAt: time.Now()})
	assert.Error(t, err)
}

func TestRecentRuns(t *testing.T) {
	dao, mock := newMockDAO(t)

	now := time.Now()
	columns := []string{"id", "source", "source_kind", "audio_file_name", "audio_duration",
		"language", "platforms", "post_count", "has_error", "error_message", "created_at"}
	mock.ExpectQuery("SELECT (.+) FROM runs").
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(2, "https://youtu.be/xyz", "url", "b.mp3", 30, "french", "x", 1, 0, "", now).
			AddRow(1, "/tmp/talk.mp4", "file", "a.mp3", 90, "english", "linkedin", 2, 1, "boom", now.Add(-time.Hour)))

	records, err := dao.RecentRuns(context.Background(), 2)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "url", records[0].SourceKind)
	assert.Equal(t, "french", records[0].Language)
	assert.Equal(t, 1, records[1].HasError)
	assert.Equal(t, "boom", records[1].ErrorMessage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecentRunsDefaultLimit(t *testing.T) {
	dao, mock := newMockDAO(t)

	columns := []string{"id", "source", "source_kind", "audio_file_name", "audio_duration",
		"language", "platforms", "post_count", "has_error", "error_message", "created_at"}
	mock.ExpectQuery("SELECT (.+) FROM runs").
		WithArgs(20).
		WillReturnRows(sqlmock.NewRows(columns))

	records, err := dao.RecentRuns(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, records)
}
