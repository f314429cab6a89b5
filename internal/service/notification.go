package service

import (
	"fmt"

	"github.com/MKhiriev/go-translation-webhooks/models"
)

type notificationBuilder struct{}

// NewNotificationBuilder constructs the default [NotificationBuilder].
func NewNotificationBuilder() NotificationBuilder {
	return notificationBuilder{}
}

// Build implements [NotificationBuilder]. The delta is cloned so the payload
// stays immutable even if the caller keeps mutating its copy.
func (notificationBuilder) Build(actor models.UserSummary, document models.DocumentContext, localeID string, delta models.WordCountDelta) (models.NotificationPayload, error) {
	switch {
	case actor.Username == "":
		return models.NotificationPayload{}, fmt.Errorf("%w: actor username", ErrIncompleteNotification)
	case document.ProjectSlug == "":
		return models.NotificationPayload{}, fmt.Errorf("%w: project slug", ErrIncompleteNotification)
	case document.VersionSlug == "":
		return models.NotificationPayload{}, fmt.Errorf("%w: version slug", ErrIncompleteNotification)
	case document.DocumentPath == "":
		return models.NotificationPayload{}, fmt.Errorf("%w: document path", ErrIncompleteNotification)
	case localeID == "":
		return models.NotificationPayload{}, fmt.Errorf("%w: locale id", ErrIncompleteNotification)
	case delta == nil:
		return models.NotificationPayload{}, fmt.Errorf("%w: word count delta", ErrIncompleteNotification)
	}

	return models.NotificationPayload{
		Actor:                  actor,
		ProjectSlug:            document.ProjectSlug,
		VersionSlug:            document.VersionSlug,
		DocumentID:             document.DocumentPath,
		LocaleID:               localeID,
		ContentStateWordCounts: delta.Clone(),
	}, nil
}
