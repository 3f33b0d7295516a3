package store

// ConstraintClassification is the result type returned by
// [ConstraintClassifier.Classify]. It indicates whether a failed database
// operation was caused by a uniqueness constraint breach.
type ConstraintClassification int

const (
	// OtherError indicates that the failed operation was not a uniqueness
	// constraint breach. This is the default classification for nil and
	// unrecognised errors.
	OtherError ConstraintClassification = iota

	// UniqueViolation indicates that the database rejected the write
	// because it would duplicate a unique-constrained value. This is the
	// authoritative conflict signal: the accounts table constraint fires
	// even when a caller's pre-check raced with a concurrent writer.
	UniqueViolation
)
