// elementwise_test.go - Tests fuer elementweise Operationen
package array

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/axleml/axle/nd"
)

func fromF64(t *testing.T, s []float64, extents ...int64) *Array {
	t.Helper()
	a, err := FromFloat64s(s, extents...)
	require.NoError(t, err)
	return a
}

func TestUnaryOps(t *testing.T) {
	x := fromF64(t, []float64{-2, 0, 3}, 3)

	abs, err := Absolute(x)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 0, 3}, abs.Float64s())

	sq, err := Square(x)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 0, 9}, sq.Float64s())

	neg, err := Neg(x)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 0, -3}, neg.Float64s())

	ex, err := Exp(x)
	require.NoError(t, err)
	require.InDelta(t, math.Exp(-2), ex.Float64s()[0], 1e-12)
	require.InDelta(t, 1, ex.Float64s()[1], 1e-12)

	lp, err := Log1p(fromF64(t, []float64{0, 1}, 2))
	require.NoError(t, err)
	require.InDelta(t, 0, lp.Float64s()[0], 1e-12)
	require.InDelta(t, math.Log(2), lp.Float64s()[1], 1e-12)
}

func TestBinaryOps(t *testing.T) {
	x1 := fromF64(t, []float64{1, 2, 3, 4}, 2, 2)
	x2 := fromF64(t, []float64{4, 3, 2, 1}, 2, 2)

	sum, err := Add(x1, x2)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 5, 5, 5}, sum.Float64s())

	diff, err := Sub(x1, x2)
	require.NoError(t, err)
	require.Equal(t, []float64{-3, -1, 1, 3}, diff.Float64s())

	prod, err := Mul(x1, x2)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 6, 6, 4}, prod.Float64s())
}

func TestBinaryOpContractErrors(t *testing.T) {
	x1 := fromF64(t, []float64{1, 2}, 2)
	x2 := fromF64(t, []float64{1, 2, 3}, 3)

	// Shape-Unterschied ist ein Kontraktfehler, kein Vergleichsergebnis
	_, err := Add(x1, x2)
	var dimErr *nd.DimensionError
	require.ErrorAs(t, err, &dimErr)

	f32, err := FromFloats([]float32{1, 2}, 2)
	require.NoError(t, err)
	_, err = Add(x1, f32)
	require.Error(t, err)
	require.False(t, errors.As(err, &dimErr))
}

func TestCompareOps(t *testing.T) {
	x1 := fromF64(t, []float64{1, 2, 3}, 3)
	x2 := fromF64(t, []float64{1, 0, 5}, 3)

	eq, err := Equal(x1, x2)
	require.NoError(t, err)
	require.Equal(t, nd.Bool, eq.Dtype())
	require.Equal(t, []bool{true, false, false}, eq.Bools())

	ne, err := NotEqual(x1, x2)
	require.NoError(t, err)
	require.Equal(t, []bool{false, true, true}, ne.Bools())

	ge, err := GreaterEqual(x1, x2)
	require.NoError(t, err)
	require.Equal(t, []bool{true, true, false}, ge.Bools())

	lt, err := Less(x1, x2)
	require.NoError(t, err)
	require.Equal(t, []bool{false, false, true}, lt.Bools())
}

func TestWhere(t *testing.T) {
	x := fromF64(t, []float64{1, 2, 3}, 3)
	y := fromF64(t, []float64{-1, -2, -3}, 3)

	cond, err := Greater(x, fromF64(t, []float64{0, 5, 0}, 3))
	require.NoError(t, err)

	out, err := Where(cond, x, y)
	require.NoError(t, err)
	require.Equal(t, []float64{1, -2, 3}, out.Float64s())

	// Bedingung muss bool sein
	_, err = Where(x, x, y)
	require.Error(t, err)
}

func TestAsType(t *testing.T) {
	x := fromF64(t, []float64{1.9, -2.7, 3}, 3)

	i, err := AsType(x, nd.Int32)
	require.NoError(t, err)
	require.Equal(t, nd.Int32, i.Dtype())
	require.Equal(t, []float64{1, -2, 3}, i.Float64s())

	b, err := AsType(fromF64(t, []float64{0, 2}, 2), nd.Bool)
	require.NoError(t, err)
	require.Equal(t, []bool{false, true}, b.Bools())

	same, err := AsType(x, nd.Float64)
	require.NoError(t, err)
	require.Equal(t, x.Float64s(), same.Float64s())
}

func TestMean(t *testing.T) {
	x := fromF64(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)

	m, err := Mean(x)
	require.NoError(t, err)
	require.Equal(t, 0, m.Ndim())

	got, err := m.At()
	require.NoError(t, err)
	require.Equal(t, 3.5, got)

	empty, err := Empty(mustShape(t, 0), nd.Float64)
	require.NoError(t, err)
	_, err = Mean(empty)
	require.Error(t, err)
}

func TestParallelChunking(t *testing.T) {
	// Schwellwert herabsetzen, damit der parallele Pfad laeuft
	t.Setenv("AXLE_PARALLEL_THRESHOLD", "8")
	t.Setenv("AXLE_NUM_THREADS", "4")

	data := make([]float64, 1000)
	for i := range data {
		data[i] = float64(i)
	}
	x := fromF64(t, data, 1000)

	sq, err := Square(x)
	require.NoError(t, err)
	got := sq.Float64s()
	for i, v := range got {
		if v != float64(i)*float64(i) {
			t.Fatalf("sq[%d] = %v, want %v", i, v, float64(i)*float64(i))
		}
	}
}

func TestFloat16ElementwiseSpecialization(t *testing.T) {
	ones, err := Ones(mustShape(t, 4), nd.Float16)
	require.NoError(t, err)

	ex, err := Exp(ones)
	require.NoError(t, err)
	require.Equal(t, nd.Float16, ex.Dtype())
	for _, v := range ex.Float64s() {
		require.InDelta(t, math.E, v, 1e-2)
	}

	bf, err := Ones(mustShape(t, 4), nd.BFloat16)
	require.NoError(t, err)
	exbf, err := Exp(bf)
	require.NoError(t, err)
	for _, v := range exbf.Float64s() {
		require.InDelta(t, math.E, v, 2e-2)
	}
}
