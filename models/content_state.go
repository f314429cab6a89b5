package models

// ContentState is the lifecycle stage of a translation target.
// The zero value is not a valid state; callers must use one of the
// constants below.
type ContentState string

const (
	// StateNew marks a target that has no translation yet.
	StateNew ContentState = "New"

	// StateNeedReview marks a translated target that was flagged for review.
	StateNeedReview ContentState = "NeedReview"

	// StateTranslated marks a target with a finished translation that has
	// not been reviewed.
	StateTranslated ContentState = "Translated"

	// StateApproved marks a reviewed and accepted translation.
	StateApproved ContentState = "Approved"

	// StateRejected marks a reviewed and rejected translation.
	StateRejected ContentState = "Rejected"
)

// Valid reports whether s is one of the known content states.
func (s ContentState) Valid() bool {
	switch s {
	case StateNew, StateNeedReview, StateTranslated, StateApproved, StateRejected:
		return true
	}
	return false
}

func (s ContentState) String() string {
	return string(s)
}
