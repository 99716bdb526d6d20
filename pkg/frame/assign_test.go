package frame

import (
	"errors"
	"testing"

	"github.com/leapstack-labs/leapframe/pkg/column"
	"github.com/leapstack-labs/leapframe/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAlphabetFrame builds a 26-row single-column frame for recycling tests.
func newAlphabetFrame(t *testing.T, policy core.Policy) *Frame {
	t.Helper()
	letters := make([]string, 26)
	for i := range letters {
		letters[i] = string(rune('a' + i))
	}
	f, err := New([]Column{{Name: "letters", Vector: column.Strings(letters...)}}, policy)
	require.NoError(t, err)
	return f
}

func TestWithColumn_LegacyRecyclesDivisorLength(t *testing.T) {
	f := newAlphabetFrame(t, core.Legacy)

	// Length 2 divides 26: the source repeats 13 times.
	out, diag, err := f.WithColumn("flag", column.Ints(0, 1))
	require.NoError(t, err)
	require.Nil(t, diag)

	got := out.Col("flag")
	require.True(t, got.Found())
	assert.Equal(t, 26, got.Vector.Len())
	assert.Equal(t, int64(0), got.Vector.Int(0))
	assert.Equal(t, int64(1), got.Vector.Int(25))

	// The receiver is untouched.
	assert.Equal(t, 1, f.ColumnCount())
}

func TestWithColumn_StrictRejectsDivisorLength(t *testing.T) {
	f := newAlphabetFrame(t, core.Strict)

	out, diag, err := f.WithColumn("flag", column.Ints(0, 1))
	var mismatch *core.LengthMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, 2, mismatch.Got)
	assert.Equal(t, 26, mismatch.Want)
	assert.Nil(t, diag)
	assert.True(t, out.Equal(f), "failed assignment returns the frame unchanged")
}

func TestWithColumn_BroadcastUnderBothPolicies(t *testing.T) {
	for _, policy := range []core.Policy{core.Legacy, core.Strict} {
		t.Run(policy.String(), func(t *testing.T) {
			f := newAlphabetFrame(t, policy)

			out, diag, err := f.WithColumn("mark", column.Bools(true))
			require.NoError(t, err)
			require.Nil(t, diag)

			got := out.Col("mark")
			require.True(t, got.Found())
			assert.Equal(t, 26, got.Vector.Len())
			assert.True(t, got.Vector.Bool(13))
		})
	}
}

func TestWithColumn_LegacyNonDivisorWarnsWithoutMutation(t *testing.T) {
	f := newAlphabetFrame(t, core.Legacy)

	// 3 does not divide 26: the assignment is rejected whole with a warning.
	out, diag, err := f.WithColumn("thirds", column.Ints(1, 2, 3))
	require.NoError(t, err)
	require.NotNil(t, diag)
	assert.Equal(t, core.WarnRecycleLength, diag.Kind)
	assert.True(t, out.Equal(f), "no partial column state ever becomes visible")
	assert.False(t, out.Col("thirds").Found())
}

func TestWithColumn_ReplacesExistingColumn(t *testing.T) {
	f := newTestFrame(t, core.Strict)

	out, diag, err := f.WithColumn("values", column.Ints(10, 20, 30))
	require.NoError(t, err)
	require.Nil(t, diag)

	assert.Equal(t, 3, out.ColumnCount(), "replacement keeps the column count")
	assert.Equal(t, []string{"letters_lower", "letters_upper", "values"}, out.Names(),
		"replacement keeps the column position")

	got := out.Col("values")
	require.True(t, got.Found())
	assert.True(t, got.Vector.Equal(column.Ints(10, 20, 30)))

	// The original frame still sees the old values.
	old := f.Col("values")
	assert.True(t, old.Vector.Equal(column.Ints(1, 2, 3)))
}

func TestWithColumn_SharesUntouchedColumns(t *testing.T) {
	f := newTestFrame(t, core.Strict)

	out, _, err := f.WithColumn("values", column.Ints(10, 20, 30))
	require.NoError(t, err)

	// Copy-on-write at column granularity: only the assigned column's
	// storage is replaced.
	origLetters, err := f.ColumnAt(1)
	require.NoError(t, err)
	newLetters, err := out.ColumnAt(1)
	require.NoError(t, err)
	assert.Same(t, origLetters, newLetters)
}

func TestWithColumn_EmptyFrameAdoptsSourceLength(t *testing.T) {
	for _, policy := range []core.Policy{core.Legacy, core.Strict} {
		t.Run(policy.String(), func(t *testing.T) {
			empty, err := New(nil, policy)
			require.NoError(t, err)

			out, diag, err := empty.WithColumn("first", column.Ints(1, 2, 3, 4))
			require.NoError(t, err)
			require.Nil(t, diag)
			assert.Equal(t, 4, out.RowCount())
			assert.Equal(t, policy, out.Policy())
		})
	}
}

func TestWithColumn_ExactLength(t *testing.T) {
	for _, policy := range []core.Policy{core.Legacy, core.Strict} {
		t.Run(policy.String(), func(t *testing.T) {
			f := newTestFrame(t, policy)

			out, diag, err := f.WithColumn("doubled", column.Ints(2, 4, 6))
			require.NoError(t, err)
			require.Nil(t, diag)
			assert.Equal(t, 4, out.ColumnCount())
		})
	}
}
