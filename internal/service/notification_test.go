package service

import (
	"testing"

	"github.com/MKhiriev/go-translation-webhooks/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBuildInputs() (models.UserSummary, models.DocumentContext, string, models.WordCountDelta) {
	actor := models.UserSummary{Username: "aeng", Name: "Alex Eng"}
	document := models.DocumentContext{
		DocumentPath: "po/manual.pot",
		VersionSlug:  "main",
		ProjectSlug:  "fedora-docs",
	}
	delta := models.WordCountDelta{models.StateNew: -10, models.StateTranslated: 10}

	return actor, document, "de", delta
}

func TestBuild_Success(t *testing.T) {
	builder := NewNotificationBuilder()
	actor, document, localeID, delta := validBuildInputs()

	payload, err := builder.Build(actor, document, localeID, delta)
	require.NoError(t, err)

	assert.Equal(t, actor, payload.Actor)
	assert.Equal(t, "fedora-docs", payload.ProjectSlug)
	assert.Equal(t, "main", payload.VersionSlug)
	assert.Equal(t, "po/manual.pot", payload.DocumentID)
	assert.Equal(t, "de", payload.LocaleID)
	assert.Equal(t, delta, payload.ContentStateWordCounts)
}

func TestBuild_DeltaIsCopied(t *testing.T) {
	builder := NewNotificationBuilder()
	actor, document, localeID, delta := validBuildInputs()

	payload, err := builder.Build(actor, document, localeID, delta)
	require.NoError(t, err)

	delta.Apply(models.StateTranslated, models.StateApproved, 100)

	assert.Equal(t, 10, payload.ContentStateWordCounts[models.StateTranslated])
	assert.NotContains(t, payload.ContentStateWordCounts, models.StateApproved)
}

func TestBuild_MissingFields(t *testing.T) {
	builder := NewNotificationBuilder()

	tests := []struct {
		name   string
		mutate func(*models.UserSummary, *models.DocumentContext, *string, *models.WordCountDelta)
	}{
		{"no actor username", func(a *models.UserSummary, _ *models.DocumentContext, _ *string, _ *models.WordCountDelta) {
			a.Username = ""
		}},
		{"no project slug", func(_ *models.UserSummary, d *models.DocumentContext, _ *string, _ *models.WordCountDelta) {
			d.ProjectSlug = ""
		}},
		{"no version slug", func(_ *models.UserSummary, d *models.DocumentContext, _ *string, _ *models.WordCountDelta) {
			d.VersionSlug = ""
		}},
		{"no document path", func(_ *models.UserSummary, d *models.DocumentContext, _ *string, _ *models.WordCountDelta) {
			d.DocumentPath = ""
		}},
		{"no locale", func(_ *models.UserSummary, _ *models.DocumentContext, l *string, _ *models.WordCountDelta) {
			*l = ""
		}},
		{"nil delta", func(_ *models.UserSummary, _ *models.DocumentContext, _ *string, d *models.WordCountDelta) {
			*d = nil
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actor, document, localeID, delta := validBuildInputs()
			tt.mutate(&actor, &document, &localeID, &delta)

			_, err := builder.Build(actor, document, localeID, delta)
			assert.ErrorIs(t, err, ErrIncompleteNotification)
		})
	}
}
