package multimap

import "fmt"

// ArityError indicates that flat bulk construction was given an odd number of
// arguments. It is fatal at construction time and never yields a partially
// built multimap.
type ArityError struct {
	// Count is the number of arguments that were supplied.
	Count int
}

func (err *ArityError) Error() string {
	return fmt.Sprintf("flat construction requires alternating key/value pairs but was given %d arguments", err.Count)
}

// PairTypeError indicates that an element of a flat construction list had the
// wrong dynamic type for its position, or was nil where a value was required.
type PairTypeError struct {
	// Index is the zero-based position of the offending argument.
	Index int

	// Position is "key" or "value".
	Position string

	// Value is the offending argument.
	Value any
}

func (err *PairTypeError) Error() string {
	return fmt.Sprintf("flat construction argument %d: %T is not a valid %s", err.Index, err.Value, err.Position)
}

// FamilyMismatchError indicates an attempt to merge multimaps built from
// different container families.
type FamilyMismatchError struct {
	Receiver Family
	Argument Family
}

func (err *FamilyMismatchError) Error() string {
	return fmt.Sprintf("cannot merge a %s-backed multimap with a %s-backed multimap", err.Receiver, err.Argument)
}
