package slicez

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		pred     func(int) bool
		expected []int
	}{
		{
			name:     "keep even numbers",
			input:    []int{1, 2, 3, 4, 5, 6},
			pred:     func(x int) bool { return x%2 == 0 },
			expected: []int{2, 4, 6},
		},
		{
			name:     "keep nothing",
			input:    []int{1, 2, 3},
			pred:     func(int) bool { return false },
			expected: []int{},
		},
		{
			name:     "empty input",
			input:    nil,
			pred:     func(int) bool { return true },
			expected: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Filter(tt.input, tt.pred))
		})
	}
}

func TestMap(t *testing.T) {
	require.Equal(t, []string{"1", "2", "3"}, Map([]int{1, 2, 3}, strconv.Itoa))
	require.Equal(t, []string{}, Map(nil, strconv.Itoa))
}
