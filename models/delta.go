package models

// WordCountDelta maps a content state to the signed word-count change a
// batch produced for that state. For every transition the previous state's
// bucket decreases by the unit's word count and the new state's bucket
// increases by the same amount, so the values always sum to zero.
//
// Buckets are allowed to go negative; the delta is a signed change, not an
// absolute count.
type WordCountDelta map[ContentState]int

// Apply folds one transition into the delta. Missing buckets default to
// zero. When previous == next the two operations cancel and the delta is
// unchanged.
func (d WordCountDelta) Apply(previous, next ContentState, wordCount int) {
	d[previous] -= wordCount
	d[next] += wordCount
}

// Sum returns the total of all buckets. It is zero for any delta built
// exclusively through Apply.
func (d WordCountDelta) Sum() int {
	var total int
	for _, v := range d {
		total += v
	}
	return total
}

// Clone returns an independent copy of the delta.
func (d WordCountDelta) Clone() WordCountDelta {
	out := make(WordCountDelta, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
