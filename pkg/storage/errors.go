package storage

import "errors"

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidAmount is returned when a tendered payment amount is zero or negative.
// It is raised before any store call is made.
var ErrInvalidAmount = errors.New("payment amount must be positive")

// ErrInvalidSelection is returned when a bill or fine is generated from an empty
// charge selection, or one whose templates sum to nothing.
var ErrInvalidSelection = errors.New("charge selection is empty or sums to zero")

// ErrDuplicateWithPayment is returned when generating a bill or fine would replace an
// existing entry that money has already moved against. Payment history is never
// destroyed silently.
var ErrDuplicateWithPayment = errors.New("an entry with recorded payments already exists")

// ErrStoreConflict is returned after the bounded optimistic retry loop exhausts its
// attempts on concurrent modification. It is transient: the caller may safely retry.
var ErrStoreConflict = errors.New("concurrent modification, retries exhausted")

// ErrEntryExists is returned when a conditional create loses to an entry that
// appeared under the same id.
var ErrEntryExists = errors.New("entry already exists")
