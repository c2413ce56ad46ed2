package either

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLeftAndRightConstruction(t *testing.T) {
	left := Left[error, int](errors.New("broken"))
	require.True(t, left.IsLeft())
	require.False(t, left.IsRight())

	err, ok := left.Left()
	require.True(t, ok)
	require.EqualError(t, err, "broken")

	_, ok = left.Right()
	require.False(t, ok)

	right := Right[error](42)
	require.True(t, right.IsRight())
	require.False(t, right.IsLeft())

	value, ok := right.Right()
	require.True(t, ok)
	require.Equal(t, 42, value)

	_, ok = right.Left()
	require.False(t, ok)
}

func TestZeroValueIsLeft(t *testing.T) {
	var e Either[string, int]
	require.True(t, e.IsLeft())
	require.Equal(t, "", e.MustLeft())
}

func TestMustPanicsOnWrongSide(t *testing.T) {
	left := Left[string, int]("oops")
	right := Right[string](7)

	require.Equal(t, "oops", left.MustLeft())
	require.Equal(t, 7, right.MustRight())

	require.Panics(t, func() { left.MustRight() })
	require.Panics(t, func() { right.MustLeft() })
}

func TestOrFallbacks(t *testing.T) {
	left := Left[string, int]("oops")
	right := Right[string](7)

	require.Equal(t, "oops", left.LeftOr("fallback"))
	require.Equal(t, "fallback", right.LeftOr("fallback"))
	require.Equal(t, 7, right.RightOr(0))
	require.Equal(t, 0, left.RightOr(0))
}

func TestSwap(t *testing.T) {
	right := Right[string](7)
	swapped := right.Swap()
	require.True(t, swapped.IsLeft())
	require.Equal(t, 7, swapped.MustLeft())

	// Swapping twice restores the original shape.
	require.Equal(t, right, swapped.Swap())
}

func TestMapRight(t *testing.T) {
	right := Right[error](21)
	doubled := MapRight(right, func(v int) int { return v * 2 })
	require.Equal(t, 42, doubled.MustRight())

	// Mapping the inactive side is the identity.
	left := Left[error, int](errors.New("broken"))
	mapped := MapRight(left, func(v int) string { return strconv.Itoa(v) })
	require.True(t, mapped.IsLeft())
	require.EqualError(t, mapped.MustLeft(), "broken")
}

func TestMapLeft(t *testing.T) {
	left := Left[int, string](4)
	mapped := MapLeft(left, func(v int) int { return v + 1 })
	require.Equal(t, 5, mapped.MustLeft())

	right := Right[int]("ok")
	require.Equal(t, "ok", MapLeft(right, func(v int) int { return v + 1 }).MustRight())
}

func TestFlatMapRight(t *testing.T) {
	parse := func(s string) Either[error, int] {
		v, err := strconv.Atoi(s)
		if err != nil {
			return Left[error, int](err)
		}
		return Right[error](v)
	}

	require.Equal(t, 7, FlatMapRight(Right[error]("7"), parse).MustRight())
	require.True(t, FlatMapRight(Right[error]("seven"), parse).IsLeft())
	require.True(t, FlatMapRight(Left[error, string](errors.New("broken")), parse).IsLeft())
}

func TestFold(t *testing.T) {
	describe := func(e Either[error, int]) string {
		return Fold(e,
			func(err error) string { return "error: " + err.Error() },
			func(v int) string { return "value: " + strconv.Itoa(v) },
		)
	}

	require.Equal(t, "value: 3", describe(Right[error](3)))
	require.Equal(t, "error: broken", describe(Left[error, int](errors.New("broken"))))
}

func TestString(t *testing.T) {
	require.Equal(t, "Left(oops)", Left[string, int]("oops").String())
	require.Equal(t, "Right(7)", Right[string](7).String())
}
