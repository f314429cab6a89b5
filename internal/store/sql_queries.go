package store

import (
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
)

// ErrSchemaMissing is returned when a lookup hits an undefined table,
// meaning migrations have not been applied to the configured database.
var ErrSchemaMissing = errors.New("lookup schema is missing, run migrations")

// Query builders shared by the repositories. Placeholders are rendered with
// the backend-specific format carried by [DB].

func wordCountQuery(b sq.StatementBuilderType, textUnitID int64) sq.SelectBuilder {
	return b.Select("word_count").
		From("text_flows").
		Where(sq.Eq{"text_flow_id": textUnitID})
}

func documentContextQuery(b sq.StatementBuilderType, documentID int64) sq.SelectBuilder {
	return b.Select("d.doc_path", "v.slug", "p.slug", "p.project_id").
		From("documents d").
		Join("project_versions v ON v.version_id = d.version_id").
		Join("projects p ON p.project_id = v.project_id").
		Where(sq.Eq{"d.document_id": documentID})
}

func subscribersQuery(b sq.StatementBuilderType, projectID int64) sq.SelectBuilder {
	return b.Select("target_url", "secret").
		From("webhooks").
		Where(sq.Eq{"project_id": projectID}).
		OrderBy("webhook_id")
}

func personQuery(b sq.StatementBuilderType, personID int64) sq.SelectBuilder {
	return b.Select("username", "name", "email", "image_url").
		From("persons").
		Where(sq.Eq{"person_id": personID})
}

func languageTeamsQuery(b sq.StatementBuilderType, personID int64) sq.SelectBuilder {
	return b.Select("locale_id").
		From("person_language_teams").
		Where(sq.Eq{"person_id": personID}).
		OrderBy("locale_id")
}

// mapLookupError converts driver-level errors into the package's sentinel
// errors. sql.ErrNoRows becomes [ErrNotFound]; an undefined-table error from
// postgres becomes [ErrSchemaMissing]; anything else is wrapped as a query
// execution failure.
func mapLookupError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	if postgresError(err) == pgerrcode.UndefinedTable {
		return ErrSchemaMissing
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
