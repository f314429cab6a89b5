package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-translation-webhooks/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentContext_Success(t *testing.T) {
	db, mock, raw := newTestDB(t)
	defer raw.Close()

	repo := NewDocumentRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT d.doc_path, v.slug, p.slug, p.project_id FROM documents d").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.
			NewRows([]string{"doc_path", "slug", "slug", "project_id"}).
			AddRow("po/manual.pot", "main", "fedora-docs", int64(7)))

	mock.ExpectQuery("SELECT target_url, secret FROM webhooks").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.
			NewRows([]string{"target_url", "secret"}).
			AddRow("https://hooks.example.com/a", "topsecret").
			AddRow("https://hooks.example.com/b", nil))

	got, err := repo.DocumentContext(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "po/manual.pot", got.DocumentPath)
	assert.Equal(t, "main", got.VersionSlug)
	assert.Equal(t, "fedora-docs", got.ProjectSlug)
	require.Len(t, got.Subscribers, 2)
	assert.Equal(t, "https://hooks.example.com/a", got.Subscribers[0].TargetURL)
	assert.True(t, got.Subscribers[0].Signed())
	assert.Equal(t, "https://hooks.example.com/b", got.Subscribers[1].TargetURL)
	assert.False(t, got.Subscribers[1].Signed())
}

func TestDocumentContext_NoSubscribers(t *testing.T) {
	db, mock, raw := newTestDB(t)
	defer raw.Close()

	repo := NewDocumentRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT d.doc_path, v.slug, p.slug, p.project_id FROM documents d").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.
			NewRows([]string{"doc_path", "slug", "slug", "project_id"}).
			AddRow("po/manual.pot", "main", "fedora-docs", int64(7)))

	mock.ExpectQuery("SELECT target_url, secret FROM webhooks").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"target_url", "secret"}))

	got, err := repo.DocumentContext(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, got.Subscribers)
}

func TestDocumentContext_NotFound(t *testing.T) {
	db, mock, raw := newTestDB(t)
	defer raw.Close()

	repo := NewDocumentRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT d.doc_path, v.slug, p.slug, p.project_id FROM documents d").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.DocumentContext(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDocumentContext_SubscriberLookupFails(t *testing.T) {
	db, mock, raw := newTestDB(t)
	defer raw.Close()

	repo := NewDocumentRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT d.doc_path, v.slug, p.slug, p.project_id FROM documents d").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.
			NewRows([]string{"doc_path", "slug", "slug", "project_id"}).
			AddRow("po/manual.pot", "main", "fedora-docs", int64(7)))

	mock.ExpectQuery("SELECT target_url, secret FROM webhooks").
		WithArgs(int64(7)).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.DocumentContext(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrNotFound)
}
