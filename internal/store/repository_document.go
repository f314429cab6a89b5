package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-translation-webhooks/internal/logger"
	"github.com/MKhiriev/go-translation-webhooks/models"
)

// documentRepository is the SQL-backed implementation of
// [DocumentRepository]. One call resolves the document's path, owning
// version and project, and the project's webhook subscribers, so the
// coordinator holds a consistent read-only snapshot for the whole batch.
type documentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDocumentRepository constructs a [DocumentRepository] backed by the
// provided database connection and logger.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		db:     db,
		logger: logger,
	}
}

// DocumentContext resolves the owning context of documentID.
//
// Error handling:
//   - document row missing → [ErrNotFound] (the document may have been
//     deleted after the transition batch was produced);
//   - subscriber rows are read after the document row; a failure there is
//     an [ErrExecutingQuery], not a NotFound.
func (r *documentRepository) DocumentContext(ctx context.Context, documentID int64) (models.DocumentContext, error) {
	log := logger.FromContext(ctx)

	query, args, err := documentContextQuery(r.db.builder, documentID).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.DocumentContext").Msg("error: building query")
		return models.DocumentContext{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var docCtx models.DocumentContext
	var projectID int64
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&docCtx.DocumentPath, &docCtx.VersionSlug, &docCtx.ProjectSlug, &projectID); err != nil {
		log.Err(err).Str("func", "*documentRepository.DocumentContext").Int64("document_id", documentID).Msg("error: document lookup")
		return models.DocumentContext{}, mapLookupError(err)
	}

	subscribers, err := r.projectSubscribers(ctx, projectID)
	if err != nil {
		return models.DocumentContext{}, err
	}
	docCtx.Subscribers = subscribers

	return docCtx, nil
}

func (r *documentRepository) projectSubscribers(ctx context.Context, projectID int64) ([]models.Subscriber, error) {
	log := logger.FromContext(ctx)

	query, args, err := subscribersQuery(r.db.builder, projectID).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.projectSubscribers").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.projectSubscribers").Int64("project_id", projectID).Msg("error: subscribers lookup")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var subscribers []models.Subscriber
	for rows.Next() {
		var sub models.Subscriber
		var secret sql.NullString
		if err := rows.Scan(&sub.TargetURL, &secret); err != nil {
			log.Err(err).Str("func", "*documentRepository.projectSubscribers").Msg("error: scanning subscriber row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		sub.Secret = secret.String
		subscribers = append(subscribers, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return subscribers, nil
}
