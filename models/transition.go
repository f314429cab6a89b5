package models

import "errors"

// Batch validation errors. Callers should match with [errors.Is].
var (
	// ErrInvalidTransition is returned when a transition carries an unknown
	// content state or a zero text-unit id.
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrIncompleteBatch is returned when a batch is missing its document,
	// locale, version or actor identifiers.
	ErrIncompleteBatch = errors.New("incomplete transition batch")
)

// StateTransition is an immutable record of one text unit's state change.
// It is created at the moment a translation target is persisted and consumed
// exactly once by the update pipeline.
type StateTransition struct {
	// TextUnitID identifies the source text unit whose target changed.
	TextUnitID int64 `json:"text_unit_id"`

	// TargetRevision is the revision of the translation target after the
	// change was persisted.
	TargetRevision int64 `json:"target_revision"`

	// PreviousState is the content state the target held before the change.
	PreviousState ContentState `json:"previous_state"`

	// NewState is the content state the target holds after the change.
	NewState ContentState `json:"new_state"`
}

// TransitionBatch groups the state transitions produced by one committed
// translation update. All transitions in a batch share the same document,
// locale and project version; the batch is constructed by the triggering
// collaborator immediately after its transaction commits.
type TransitionBatch struct {
	// DocumentID identifies the document all transitions belong to.
	DocumentID int64 `json:"document_id"`

	// LocaleID is the BCP-47 identifier of the translation locale
	// (e.g. "de", "pt-BR").
	LocaleID string `json:"locale_id"`

	// ProjectVersionID identifies the project version owning the document.
	ProjectVersionID int64 `json:"project_version_id"`

	// ActorPersonID identifies the person whose action produced the batch.
	ActorPersonID int64 `json:"actor_person_id"`

	// Transitions is the ordered sequence of state changes. May be empty,
	// in which case the batch is a no-op.
	Transitions []StateTransition `json:"transitions"`
}

// Validate checks the batch shape before it enters the pipeline.
// An empty Transitions slice is legal; missing identifiers or malformed
// transitions are not.
func (b TransitionBatch) Validate() error {
	if b.DocumentID == 0 || b.LocaleID == "" || b.ProjectVersionID == 0 || b.ActorPersonID == 0 {
		return ErrIncompleteBatch
	}

	for _, tr := range b.Transitions {
		if tr.TextUnitID == 0 || !tr.PreviousState.Valid() || !tr.NewState.Valid() {
			return ErrInvalidTransition
		}
	}

	return nil
}

// Empty reports whether the batch carries no transitions.
func (b TransitionBatch) Empty() bool {
	return len(b.Transitions) == 0
}
