package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-translation-webhooks/internal/logger"
)

// textFlowRepository is the SQL-backed implementation of
// [TextFlowRepository]. It serves the single hot lookup of the pipeline —
// word count by text-unit id — against the "text_flows" table.
type textFlowRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTextFlowRepository constructs a [TextFlowRepository] backed by the
// provided database connection and logger.
func NewTextFlowRepository(db *DB, logger *logger.Logger) TextFlowRepository {
	logger.Debug().Msg("creating text flow repository")
	return &textFlowRepository{
		db:     db,
		logger: logger,
	}
}

// WordCount returns the source word count of the given text unit.
//
// Error handling:
//   - no matching row → [ErrNotFound];
//   - undefined table → [ErrSchemaMissing];
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *textFlowRepository) WordCount(ctx context.Context, textUnitID int64) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := wordCountQuery(r.db.builder, textUnitID).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*textFlowRepository.WordCount").Msg("error: building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var wordCount int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&wordCount); err != nil {
		log.Err(err).Str("func", "*textFlowRepository.WordCount").Int64("text_unit_id", textUnitID).Msg("error: word count lookup")
		return 0, mapLookupError(err)
	}

	return wordCount, nil
}
