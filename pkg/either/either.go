// Package either provides a value that holds exactly one of two typed
// alternatives. By convention the left side carries a failure and the right
// side carries a success, but nothing in the type enforces that reading.
package either

import "fmt"

// Either holds either a left value or a right value, never both.
//
// The zero value is a Left holding L's zero value.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left constructs an Either holding a left value.
func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{left: value}
}

// Right constructs an Either holding a right value.
func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

// IsLeft returns true if this Either holds a left value.
func (e Either[L, R]) IsLeft() bool { return !e.isRight }

// IsRight returns true if this Either holds a right value.
func (e Either[L, R]) IsRight() bool { return e.isRight }

// Left returns the left value and whether this Either holds one.
func (e Either[L, R]) Left() (L, bool) { return e.left, !e.isRight }

// Right returns the right value and whether this Either holds one.
func (e Either[L, R]) Right() (R, bool) { return e.right, e.isRight }

// MustLeft returns the left value, panicking if this Either holds a right
// value. Use Left when the side is not already known.
func (e Either[L, R]) MustLeft() L {
	if e.isRight {
		panic("either: MustLeft called on a Right")
	}
	return e.left
}

// MustRight returns the right value, panicking if this Either holds a left
// value. Use Right when the side is not already known.
func (e Either[L, R]) MustRight() R {
	if !e.isRight {
		panic("either: MustRight called on a Left")
	}
	return e.right
}

// LeftOr returns the left value, or the fallback if this Either is a Right.
func (e Either[L, R]) LeftOr(fallback L) L {
	if e.isRight {
		return fallback
	}
	return e.left
}

// RightOr returns the right value, or the fallback if this Either is a Left.
func (e Either[L, R]) RightOr(fallback R) R {
	if !e.isRight {
		return fallback
	}
	return e.right
}

// Swap returns an Either with the two sides exchanged.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// MapLeft applies fn to the left value; a Right passes through unchanged.
//
// Type-changing transforms are package functions because Go methods cannot
// introduce type parameters.
func MapLeft[L, R, U any](e Either[L, R], fn func(L) U) Either[U, R] {
	if e.isRight {
		return Right[U, R](e.right)
	}
	return Left[U, R](fn(e.left))
}

// MapRight applies fn to the right value; a Left passes through unchanged.
func MapRight[L, R, U any](e Either[L, R], fn func(R) U) Either[L, U] {
	if !e.isRight {
		return Left[L, U](e.left)
	}
	return Right[L, U](fn(e.right))
}

// FlatMapRight applies fn to the right value, flattening the result; a Left
// passes through unchanged.
func FlatMapRight[L, R, U any](e Either[L, R], fn func(R) Either[L, U]) Either[L, U] {
	if !e.isRight {
		return Left[L, U](e.left)
	}
	return fn(e.right)
}

// Fold reduces the Either to a single value by applying whichever function
// matches the held side.
func Fold[L, R, U any](e Either[L, R], onLeft func(L) U, onRight func(R) U) U {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}
