package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-translation-webhooks/internal/logger"
	"github.com/MKhiriev/go-translation-webhooks/models"
)

// personRepository is the SQL-backed implementation of [PersonRepository].
// It projects a person row (plus language teams) into the privacy-filtered
// [models.UserSummary] embedded in outbound notifications.
type personRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPersonRepository constructs a [PersonRepository] backed by the provided
// database connection and logger.
func NewPersonRepository(db *DB, logger *logger.Logger) PersonRepository {
	logger.Debug().Msg("creating person repository")
	return &personRepository{
		db:     db,
		logger: logger,
	}
}

// PersonSummary resolves the display summary of personID. Email is dropped
// from the projection unless displayEmail is set — the column is still read
// so the query shape stays identical for both policies.
func (r *personRepository) PersonSummary(ctx context.Context, personID int64, displayEmail bool) (models.UserSummary, error) {
	log := logger.FromContext(ctx)

	query, args, err := personQuery(r.db.builder, personID).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*personRepository.PersonSummary").Msg("error: building query")
		return models.UserSummary{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var summary models.UserSummary
	var email sql.NullString
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&summary.Username, &summary.Name, &email, &summary.ImageURL); err != nil {
		log.Err(err).Str("func", "*personRepository.PersonSummary").Int64("person_id", personID).Msg("error: person lookup")
		return models.UserSummary{}, mapLookupError(err)
	}

	if displayEmail {
		summary.Email = email.String
	}

	teams, err := r.languageTeams(ctx, personID)
	if err != nil {
		return models.UserSummary{}, err
	}
	summary.LanguageTeams = teams

	return summary, nil
}

func (r *personRepository) languageTeams(ctx context.Context, personID int64) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := languageTeamsQuery(r.db.builder, personID).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*personRepository.languageTeams").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*personRepository.languageTeams").Int64("person_id", personID).Msg("error: language teams lookup")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var teams []string
	for rows.Next() {
		var localeID string
		if err := rows.Scan(&localeID); err != nil {
			log.Err(err).Str("func", "*personRepository.languageTeams").Msg("error: scanning team row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		teams = append(teams, localeID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return teams, nil
}
