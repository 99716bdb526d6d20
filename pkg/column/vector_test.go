package column

import (
	"errors"
	"testing"

	"github.com/leapstack-labs/leapframe/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsCopyInput(t *testing.T) {
	src := []int64{1, 2, 3}
	v := Ints(src...)
	src[0] = 99

	assert.Equal(t, int64(1), v.Int(0), "vector must not alias caller storage")
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, core.KindInt, v.Kind())
}

func TestVector_Value(t *testing.T) {
	assert.Equal(t, true, Bools(true, false).Value(0))
	assert.Equal(t, int64(7), Ints(7).Value(0))
	assert.Equal(t, 1.5, Floats(1.5).Value(0))
	assert.Equal(t, "a", Strings("a").Value(0))
}

func TestVector_At(t *testing.T) {
	v := Strings("a", "b", "c")

	got, err := v.At(3)
	require.NoError(t, err)
	assert.Equal(t, "c", got)

	_, err = v.At(0)
	require.Error(t, err, "positions are 1-based")

	_, err = v.At(4)
	var oor *core.IndexOutOfRangeError
	require.True(t, errors.As(err, &oor))
	assert.Equal(t, 4, oor.Pos)
	assert.Equal(t, 3, oor.Len)
}

func TestVector_Take(t *testing.T) {
	v := Ints(10, 20, 30, 40)
	got := v.Take([]int{3, 1})

	assert.True(t, got.Equal(Ints(40, 20)))
	assert.True(t, v.Equal(Ints(10, 20, 30, 40)), "receiver unchanged")
}

func TestVector_Element(t *testing.T) {
	v := Floats(0.5, 1.5, 2.5)

	el, err := v.Element(2)
	require.NoError(t, err)
	assert.True(t, el.Equal(Floats(1.5)))

	_, err = v.Element(9)
	require.Error(t, err)
}

func TestVector_Display(t *testing.T) {
	assert.Equal(t, "true", Bools(true).Display(0))
	assert.Equal(t, "42", Ints(42).Display(0))
	assert.Equal(t, "2.5", Floats(2.5).Display(0))
	assert.Equal(t, "x", Strings("x").Display(0))
}

func TestVector_Equal(t *testing.T) {
	assert.True(t, Ints(1, 2).Equal(Ints(1, 2)))
	assert.False(t, Ints(1, 2).Equal(Ints(2, 1)))
	assert.False(t, Ints(1).Equal(Floats(1)), "kind is part of identity")
	assert.False(t, Ints(1).Equal(nil))
}

func TestRecycleTo_Legacy(t *testing.T) {
	tests := []struct {
		name   string
		src    *Vector
		target int
		want   *Vector
		ok     bool
	}{
		{"exact", Ints(1, 2, 3), 3, Ints(1, 2, 3), true},
		{"broadcast", Strings("x"), 3, Strings("x", "x", "x"), true},
		{"divisor", Ints(1, 2), 6, Ints(1, 2, 1, 2, 1, 2), true},
		{"non-divisor", Ints(1, 2, 3), 4, nil, false},
		{"empty source", Ints(), 4, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.src.RecycleTo(tt.target, core.Legacy)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, got.Equal(tt.want))
			}
		})
	}
}

func TestRecycleTo_Strict(t *testing.T) {
	got, ok := Ints(7).RecycleTo(4, core.Strict)
	require.True(t, ok, "broadcast is allowed")
	assert.True(t, got.Equal(Ints(7, 7, 7, 7)))

	got, ok = Ints(1, 2, 3, 4).RecycleTo(4, core.Strict)
	require.True(t, ok, "exact length is allowed")
	assert.True(t, got.Equal(Ints(1, 2, 3, 4)))

	_, ok = Ints(1, 2).RecycleTo(4, core.Strict)
	assert.False(t, ok, "divisor recycling is a legacy behavior")
}

func TestInfer(t *testing.T) {
	tests := []struct {
		name     string
		values   []any
		wantKind core.Kind
	}{
		{"all bools", []any{true, false}, core.KindBool},
		{"all ints", []any{1, 2, 3}, core.KindInt},
		{"ints widen to float", []any{1, 2.5, 3}, core.KindFloat},
		{"string forces text", []any{"a", 1, 2}, core.KindString},
		{"bool among numbers forces text", []any{true, 1}, core.KindString},
		{"empty", nil, core.KindString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Infer(tt.values)
			assert.Equal(t, tt.wantKind, v.Kind())
			assert.Equal(t, len(tt.values), v.Len())
		})
	}
}

func TestInfer_Coercion(t *testing.T) {
	v := Infer([]any{1, 2.5})
	assert.True(t, v.Equal(Floats(1, 2.5)), "integers widen in a float column")

	v = Infer([]any{"a", 1, true})
	assert.True(t, v.Equal(Strings("a", "1", "true")), "mixed values re-render as text")
}
