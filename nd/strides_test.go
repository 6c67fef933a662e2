// strides_test.go - Konformanz-Tests fuer Strides
// Testet: Konstruktoren, Laengen-Schranke, Zugriff, Vergleich,
// Iteration, Formatierung, Ableitung aus Shape
package nd

import (
	"errors"
	"iter"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// seqOf erstellt eine Iterator-Sequenz ueber die gegebenen Werte
func seqOf(values ...int64) iter.Seq[int64] {
	return slices.Values(values)
}

// requireDimensionError prueft, dass err ein DimensionError ist
func requireDimensionError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var dimErr *DimensionError
	require.ErrorAs(t, err, &dimErr)
	require.NotEmpty(t, dimErr.Msg)
}

func TestStridesCtor(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		var strides Strides
		require.Equal(t, 0, strides.Ndim())
		require.Equal(t, 0, strides.Len())
	})

	t.Run("from values", func(t *testing.T) {
		strides, err := NewStrides(48, 16, 4)
		require.NoError(t, err)
		require.Equal(t, 3, strides.Ndim())
		require.Equal(t, 3, strides.Len())
		require.Equal(t, []int64{48, 16, 4}, strides.Values())
	})

	t.Run("from slice", func(t *testing.T) {
		dims := []int64{48, 16, 4}
		strides, err := StridesFromSlice(dims)
		require.NoError(t, err)
		require.Equal(t, 3, strides.Ndim())
		require.Equal(t, dims, strides.Values())

		// Kopie, keine geteilte Sicht
		dims[0] = 99
		require.Equal(t, []int64{48, 16, 4}, strides.Values())
	})

	t.Run("from seq", func(t *testing.T) {
		strides, err := StridesFromSeq(seqOf(48, 16, 4))
		require.NoError(t, err)
		require.Equal(t, 3, strides.Ndim())
		require.Equal(t, []int64{48, 16, 4}, strides.Values())
	})

	t.Run("empty values", func(t *testing.T) {
		strides, err := NewStrides()
		require.NoError(t, err)
		require.Equal(t, 0, strides.Ndim())
		require.Empty(t, strides.Values())
		require.Equal(t, "()", strides.String())
	})

	t.Run("empty slice", func(t *testing.T) {
		strides, err := StridesFromSlice(nil)
		require.NoError(t, err)
		require.Equal(t, 0, strides.Ndim())
		require.Empty(t, strides.Values())
		require.Equal(t, "()", strides.String())
	})

	t.Run("empty seq", func(t *testing.T) {
		strides, err := StridesFromSeq(seqOf())
		require.NoError(t, err)
		require.Equal(t, 0, strides.Ndim())
		require.Empty(t, strides.Values())
		require.Equal(t, "()", strides.String())
	})

	t.Run("from shape and item size", func(t *testing.T) {
		shape, err := NewShape(2, 3, 4)
		require.NoError(t, err)
		strides, err := ContiguousStrides(shape, 4)
		require.NoError(t, err)
		require.Equal(t, 3, strides.Ndim())
		require.Equal(t, 3, strides.Len())
		require.Equal(t, []int64{48, 16, 4}, strides.Values())
	})

	t.Run("from shape and dtype", func(t *testing.T) {
		shape, err := NewShape(2, 3, 4)
		require.NoError(t, err)
		strides, err := StridesOf(shape, Int32)
		require.NoError(t, err)
		require.Equal(t, 3, strides.Ndim())
		require.Equal(t, []int64{48, 16, 4}, strides.Values())
	})

	t.Run("too long values", func(t *testing.T) {
		_, err := NewStrides(1, 2, 3, 4, 5, 6, 7, 8, 9)
		requireDimensionError(t, err)
	})

	t.Run("too long slice", func(t *testing.T) {
		tooLong := make([]int64, MaxNdim+1)
		tooLong[0] = 1
		_, err := StridesFromSlice(tooLong)
		requireDimensionError(t, err)
	})

	t.Run("too long seq", func(t *testing.T) {
		_, err := StridesFromSeq(seqOf(1, 2, 3, 4, 5, 6, 7, 8, 9))
		requireDimensionError(t, err)
	})
}

// TestStridesNdimBoundary prueft die exakte Schranke: MaxNdim Achsen
// gelingen, MaxNdim+1 schlaegt fehl, fuer jede Konstruktionsform
func TestStridesNdimBoundary(t *testing.T) {
	for k := 0; k <= MaxNdim; k++ {
		values := make([]int64, k)
		for i := range values {
			values[i] = int64(i + 1)
		}

		strides, err := NewStrides(values...)
		require.NoError(t, err)
		require.Equal(t, k, strides.Ndim())

		strides, err = StridesFromSlice(values)
		require.NoError(t, err)
		require.Equal(t, k, strides.Ndim())

		strides, err = StridesFromSeq(slices.Values(values))
		require.NoError(t, err)
		require.Equal(t, k, strides.Ndim())
	}

	over := make([]int64, MaxNdim+1)
	_, err := NewStrides(over...)
	requireDimensionError(t, err)
	_, err = StridesFromSlice(over)
	requireDimensionError(t, err)
	_, err = StridesFromSeq(slices.Values(over))
	requireDimensionError(t, err)
}

func TestStridesSubscript(t *testing.T) {
	strides, err := NewStrides(48, 16, 4)
	require.NoError(t, err)

	for i, want := range []int64{48, 16, 4} {
		got, err := strides.At(i)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err = strides.At(-1)
	requireDimensionError(t, err)
	_, err = strides.At(3)
	requireDimensionError(t, err)
}

func TestStridesCompare(t *testing.T) {
	mustStrides := func(values ...int64) Strides {
		s, err := NewStrides(values...)
		require.NoError(t, err)
		return s
	}

	t.Run("equal", func(t *testing.T) {
		require.True(t, mustStrides(48, 16, 4).Equal(mustStrides(48, 16, 4)))
	})

	t.Run("length mismatch", func(t *testing.T) {
		require.False(t, mustStrides(48, 16, 4).Equal(mustStrides(48, 16)))
		require.False(t, mustStrides(48, 16).Equal(mustStrides(48, 16, 4)))
	})

	t.Run("value mismatch", func(t *testing.T) {
		require.False(t, mustStrides(48, 16, 4).Equal(mustStrides(4, 8, 24)))
	})
}

func TestStridesCheckEqual(t *testing.T) {
	strides, err := NewStrides(48, 16, 4)
	require.NoError(t, err)
	strides2, err := NewStrides(48, 16, 4)
	require.NoError(t, err)
	require.NoError(t, CheckEqual(strides, strides2))

	var empty Strides
	err = CheckEqual(strides, empty)
	requireDimensionError(t, err)
}

func TestStridesIterator(t *testing.T) {
	strides, err := NewStrides(48, 16, 4)
	require.NoError(t, err)

	var forward []int64
	for _, v := range strides.All() {
		forward = append(forward, v)
	}
	if diff := cmp.Diff([]int64{48, 16, 4}, forward); diff != "" {
		t.Errorf("forward mismatch (-want +got):\n%s", diff)
	}

	var backward []int64
	for _, v := range strides.Backward() {
		backward = append(backward, v)
	}
	if diff := cmp.Diff([]int64{4, 16, 48}, backward); diff != "" {
		t.Errorf("backward mismatch (-want +got):\n%s", diff)
	}

	// Traversierungen sind unabhaengig wiederholbar
	var again []int64
	for _, v := range strides.All() {
		again = append(again, v)
	}
	require.Equal(t, forward, again)
}

func TestStridesString(t *testing.T) {
	cases := []struct {
		values []int64
		want   string
	}{
		{nil, "()"},
		{[]int64{4}, "(4,)"},
		{[]int64{48, 16, 4}, "(48, 16, 4)"},
		{[]int64{0, -4}, "(0, -4)"},
	}

	for _, tt := range cases {
		strides, err := StridesFromSlice(tt.values)
		require.NoError(t, err)
		if got := strides.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestStridesValuesView(t *testing.T) {
	strides, err := NewStrides(2, 3, 4)
	require.NoError(t, err)
	require.Equal(t, []int64{2, 3, 4}, strides.Values())

	// Schreiben in die Sicht ist nicht erlaubt; Anhaengen darf den
	// Inline-Speicher nicht erreichen
	v := append(strides.Values(), 5)
	require.Equal(t, []int64{2, 3, 4}, strides.Values())
	require.Equal(t, []int64{2, 3, 4, 5}, v)
}

func TestContiguousStrides(t *testing.T) {
	t.Run("empty shape", func(t *testing.T) {
		strides, err := ContiguousStrides(Shape{}, 8)
		require.NoError(t, err)
		require.Equal(t, 0, strides.Ndim())
	})

	t.Run("single axis", func(t *testing.T) {
		shape, err := NewShape(5)
		require.NoError(t, err)
		strides, err := ContiguousStrides(shape, 8)
		require.NoError(t, err)
		require.Equal(t, []int64{8}, strides.Values())
	})

	t.Run("zero extent", func(t *testing.T) {
		shape, err := NewShape(2, 0, 4)
		require.NoError(t, err)
		strides, err := ContiguousStrides(shape, 4)
		require.NoError(t, err)
		require.Equal(t, []int64{0, 16, 4}, strides.Values())
	})

	t.Run("invalid item size", func(t *testing.T) {
		shape, err := NewShape(2, 3)
		require.NoError(t, err)
		_, err = ContiguousStrides(shape, 0)
		requireDimensionError(t, err)
		_, err = ContiguousStrides(shape, -4)
		requireDimensionError(t, err)
	})

	t.Run("invalid dtype", func(t *testing.T) {
		shape, err := NewShape(2, 3)
		require.NoError(t, err)
		_, err = StridesOf(shape, DtypeInvalid)
		var dimErr *DimensionError
		require.True(t, errors.As(err, &dimErr))
	})
}
