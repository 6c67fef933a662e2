// array.go - Dichte Array-Struktur und Konstruktoren
//
// Package array ist eine minimale dichte Array-Engine ueber den
// Geometrie-Typen aus nd. Ein Array koppelt Shape, Strides und Dtype mit
// einem rohen Byte-Puffer; die Adresse von Element (i0..in-1) ist
// base + Summe ik*strides[k]. Kein Broadcasting, kein Autograd, keine
// Geraete-Dispatch: zweistellige Operationen verlangen gleiche Shapes
// und gleiche Dtypes.
package array

import (
	"fmt"

	"github.com/axleml/axle/nd"
)

// Array ist ein dichtes Array mit festem Element-Typ. Der Datenpuffer
// wird ausschliesslich von den Operationen dieses Pakets beschrieben;
// nach aussen verhaelt sich ein Array unveraenderlich.
type Array struct {
	shape   nd.Shape
	strides nd.Strides
	dtype   nd.Dtype
	data    []byte

	// contig merkt sich ob die Strides zeilen-major kontiguierlich
	// sind; dann ist der Byte-Offset eines Elements sein linearer
	// Index mal ItemSize
	contig bool
}

// Empty erstellt ein nicht initialisiertes Array (Go-seitig genullt)
func Empty(shape nd.Shape, dtype nd.Dtype) (*Array, error) {
	strides, err := nd.StridesOf(shape, dtype)
	if err != nil {
		return nil, err
	}
	return &Array{
		shape:   shape,
		strides: strides,
		dtype:   dtype,
		data:    make([]byte, shape.NumElements()*dtype.ItemSize()),
		contig:  true,
	}, nil
}

// Full erstellt ein Array, dessen Elemente alle den Wert v haben
func Full(shape nd.Shape, v float64, dtype nd.Dtype) (*Array, error) {
	a, err := Empty(shape, dtype)
	if err != nil {
		return nil, err
	}
	if v != 0 {
		itemSize := dtype.ItemSize()
		forEach(a.shape.NumElements(), func(lo, hi int64) {
			for li := lo; li < hi; li++ {
				a.set(li*itemSize, v)
			}
		})
	}
	return a, nil
}

// Zeros erstellt ein Array aus Nullen
func Zeros(shape nd.Shape, dtype nd.Dtype) (*Array, error) {
	return Empty(shape, dtype)
}

// Ones erstellt ein Array aus Einsen
func Ones(shape nd.Shape, dtype nd.Dtype) (*Array, error) {
	return Full(shape, 1, dtype)
}

// FullLike erstellt ein Array mit Shape und Dtype von x, gefuellt mit v
func FullLike(x *Array, v float64) (*Array, error) {
	return Full(x.shape, v, x.dtype)
}

// ZerosLike erstellt ein Null-Array mit Shape und Dtype von x
func ZerosLike(x *Array) (*Array, error) {
	return Zeros(x.shape, x.dtype)
}

// OnesLike erstellt ein Eins-Array mit Shape und Dtype von x
func OnesLike(x *Array) (*Array, error) {
	return Ones(x.shape, x.dtype)
}

// FromFloats erstellt ein float32-Array aus einem Go-Slice
func FromFloats(s []float32, extents ...int64) (*Array, error) {
	shape, err := nd.NewShape(extents...)
	if err != nil {
		return nil, err
	}
	if int64(len(s)) != shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %s", len(s), shape)
	}
	a, err := Empty(shape, nd.Float32)
	if err != nil {
		return nil, err
	}
	for i, v := range s {
		a.set(int64(i)*4, float64(v))
	}
	return a, nil
}

// FromFloat64s erstellt ein float64-Array aus einem Go-Slice
func FromFloat64s(s []float64, extents ...int64) (*Array, error) {
	shape, err := nd.NewShape(extents...)
	if err != nil {
		return nil, err
	}
	if int64(len(s)) != shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %s", len(s), shape)
	}
	a, err := Empty(shape, nd.Float64)
	if err != nil {
		return nil, err
	}
	for i, v := range s {
		a.set(int64(i)*8, v)
	}
	return a, nil
}

// FromInts erstellt ein int32-Array aus einem Go-Slice
func FromInts(s []int32, extents ...int64) (*Array, error) {
	shape, err := nd.NewShape(extents...)
	if err != nil {
		return nil, err
	}
	if int64(len(s)) != shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %s", len(s), shape)
	}
	a, err := Empty(shape, nd.Int32)
	if err != nil {
		return nil, err
	}
	for i, v := range s {
		a.set(int64(i)*4, float64(v))
	}
	return a, nil
}

// Shape gibt das Shape des Arrays zurueck
func (a *Array) Shape() nd.Shape {
	return a.shape
}

// Strides gibt die Strides des Arrays zurueck
func (a *Array) Strides() nd.Strides {
	return a.strides
}

// Dtype gibt den Element-Typ zurueck
func (a *Array) Dtype() nd.Dtype {
	return a.dtype
}

// Ndim gibt die Achsenzahl zurueck
func (a *Array) Ndim() int {
	return a.shape.Ndim()
}

// NumElements gibt die Gesamtzahl der Elemente zurueck
func (a *Array) NumElements() int64 {
	return a.shape.NumElements()
}

// NBytes gibt die Puffer-Groesse in Bytes zurueck
func (a *Array) NBytes() int64 {
	return int64(len(a.data))
}

// At gibt das Element am Multi-Index als float64 zurueck. Der Offset
// wird ueber die Strides berechnet, Indizes werden pro Achse geprueft.
func (a *Array) At(ix ...int64) (float64, error) {
	off, err := a.offsetOf(ix)
	if err != nil {
		return 0, err
	}
	return a.get(off), nil
}

// Floats gibt alle Elemente als float32-Slice in zeilen-major
// Reihenfolge zurueck
func (a *Array) Floats() []float32 {
	n := a.NumElements()
	out := make([]float32, n)
	for li := int64(0); li < n; li++ {
		out[li] = float32(a.get(a.linearOffset(li)))
	}
	return out
}

// Float64s gibt alle Elemente als float64-Slice zurueck
func (a *Array) Float64s() []float64 {
	n := a.NumElements()
	out := make([]float64, n)
	for li := int64(0); li < n; li++ {
		out[li] = a.get(a.linearOffset(li))
	}
	return out
}

// Bools gibt alle Elemente als bool-Slice zurueck (ungleich null = true)
func (a *Array) Bools() []bool {
	n := a.NumElements()
	out := make([]bool, n)
	for li := int64(0); li < n; li++ {
		out[li] = a.get(a.linearOffset(li)) != 0
	}
	return out
}

// String beschreibt das Array kompakt fuer Logging
func (a *Array) String() string {
	return fmt.Sprintf("array(shape=%s, strides=%s, dtype=%s)", a.shape, a.strides, a.dtype)
}

// offsetOf berechnet den Byte-Offset eines Multi-Index ueber die Strides
func (a *Array) offsetOf(ix []int64) (int64, error) {
	if len(ix) != a.shape.Ndim() {
		return 0, nd.DimensionErrorf("expected %d indices, got %d", a.shape.Ndim(), len(ix))
	}
	strides := a.strides.Values()
	extents := a.shape.Values()
	var off int64
	for k, i := range ix {
		if i < 0 || i >= extents[k] {
			return 0, nd.DimensionErrorf("index %d out of bounds for axis %d with extent %d", i, k, extents[k])
		}
		off += i * strides[k]
	}
	return off, nil
}

// linearOffset rechnet einen zeilen-major Elementindex in einen
// Byte-Offset um. Fuer kontiguierliche Arrays ist das Index mal
// ItemSize; sonst wird der Multi-Index achsweise rekonstruiert.
func (a *Array) linearOffset(li int64) int64 {
	if a.contig {
		return li * a.dtype.ItemSize()
	}
	strides := a.strides.Values()
	extents := a.shape.Values()
	var off int64
	for k := a.shape.Ndim() - 1; k >= 0; k-- {
		e := extents[k]
		off += (li % e) * strides[k]
		li /= e
	}
	return off
}
