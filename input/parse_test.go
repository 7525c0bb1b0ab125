package input_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algotrace/algotrace/input"
)

// TestParseInts covers separators, negatives, and rejection cases.
func TestParseInts(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []int
		err  error
	}{
		{"commas", "1,2,3", []int{1, 2, 3}, nil},
		{"spaces", " 4 5  6 ", []int{4, 5, 6}, nil},
		{"mixed separators", "7, 8,\t9\n10", []int{7, 8, 9, 10}, nil},
		{"negatives", "-1, 0, -22", []int{-1, 0, -22}, nil},
		{"empty", "", nil, input.ErrEmptyInput},
		{"separators only", " , ,, ", nil, input.ErrEmptyInput},
		{"word token", "1, two, 3", nil, input.ErrNonNumeric},
		{"float token", "1.5", nil, input.ErrNonNumeric},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := input.ParseInts(tc.raw)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestParseInts_NamesOffendingToken verifies the error message carries the
// bad token for the UI to display.
func TestParseInts_NamesOffendingToken(t *testing.T) {
	_, err := input.ParseInts("1, oops, 3")
	require.ErrorIs(t, err, input.ErrNonNumeric)
	assert.Contains(t, err.Error(), `"oops"`)
}

// TestParseInt covers the single-token variant.
func TestParseInt(t *testing.T) {
	v, err := input.ParseInt("  42 ")
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = input.ParseInt("")
	assert.ErrorIs(t, err, input.ErrEmptyInput)

	_, err = input.ParseInt("4 2")
	assert.ErrorIs(t, err, input.ErrNonNumeric)
}
