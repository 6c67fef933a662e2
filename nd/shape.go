// shape.go - Achsen-Ausdehnungen eines Arrays
// Hauptfunktionen: NewShape, ShapeFromSlice, ShapeFromSeq, CheckShapeEqual
package nd

import "iter"

// Shape beschreibt pro Achse die Anzahl der Elemente. Ausdehnungen sind
// nicht-negativ; die Achsenzahl ist auf MaxNdim beschraenkt. Shape folgt
// derselben beschraenkten Sequenz-Disziplin wie Strides und ist nach der
// Konstruktion unveraenderlich.
type Shape struct {
	dims [MaxNdim]int64
	ndim int
}

// NewShape erstellt ein Shape aus einzelnen Ausdehnungen
func NewShape(extents ...int64) (Shape, error) {
	return shapeFromValues(extents)
}

// ShapeFromSlice erstellt ein Shape aus einer bestehenden Sicht auf
// Ausdehnungen. Der Slice wird kopiert.
func ShapeFromSlice(extents []int64) (Shape, error) {
	return shapeFromValues(extents)
}

// shapeFromValues ist der kanonische validierende Konstruktor
func shapeFromValues(extents []int64) (Shape, error) {
	if len(extents) > MaxNdim {
		return Shape{}, DimensionErrorf("too many dimensions: %d (max %d)", len(extents), MaxNdim)
	}
	for i, e := range extents {
		if e < 0 {
			return Shape{}, DimensionErrorf("negative extent %d at axis %d", e, i)
		}
	}
	var s Shape
	s.ndim = copy(s.dims[:], extents)
	return s, nil
}

// ShapeFromSeq erstellt ein Shape aus einer Iterator-Sequenz
func ShapeFromSeq(extents iter.Seq[int64]) (Shape, error) {
	var s Shape
	for e := range extents {
		if s.ndim == MaxNdim {
			return Shape{}, DimensionErrorf("too many dimensions: more than %d", MaxNdim)
		}
		if e < 0 {
			return Shape{}, DimensionErrorf("negative extent %d at axis %d", e, s.ndim)
		}
		s.dims[s.ndim] = e
		s.ndim++
	}
	return s, nil
}

// Ndim gibt die Anzahl der Achsen zurueck
func (s Shape) Ndim() int {
	return s.ndim
}

// Len gibt die Anzahl der Achsen zurueck, immer gleich Ndim
func (s Shape) Len() int {
	return s.ndim
}

// At gibt die Ausdehnung der Achse i zurueck
func (s Shape) At(i int) (int64, error) {
	if i < 0 || i >= s.ndim {
		return 0, DimensionErrorf("index %d out of bounds for %d dimensions", i, s.ndim)
	}
	return s.dims[i], nil
}

// Values gibt den Inhalt als kontiguierliche Sicht ohne Kopie zurueck.
// Nur lesend zu verwenden.
func (s *Shape) Values() []int64 {
	return s.dims[:s.ndim:s.ndim]
}

// NumElements gibt die Gesamtzahl der Elemente zurueck (Produkt aller
// Ausdehnungen). Das leere Shape beschreibt einen Skalar mit genau
// einem Element.
func (s Shape) NumElements() int64 {
	n := int64(1)
	for i := range s.ndim {
		n *= s.dims[i]
	}
	return n
}

// Equal prueft strukturelle Gleichheit
func (s Shape) Equal(other Shape) bool {
	if s.ndim != other.ndim {
		return false
	}
	for i := range s.ndim {
		if s.dims[i] != other.dims[i] {
			return false
		}
	}
	return true
}

// CheckShapeEqual prueft strukturelle Gleichheit als Vorbedingung und
// meldet einen Unterschied als DimensionError
func CheckShapeEqual(a, b Shape) error {
	if !a.Equal(b) {
		return DimensionErrorf("shape mismatch: %s != %s", a, b)
	}
	return nil
}

// All iteriert vorwaerts ueber (Achse, Ausdehnung)
func (s Shape) All() iter.Seq2[int, int64] {
	return func(yield func(int, int64) bool) {
		for i := range s.ndim {
			if !yield(i, s.dims[i]) {
				return
			}
		}
	}
}

// Backward iteriert rueckwaerts ueber (Achse, Ausdehnung)
func (s Shape) Backward() iter.Seq2[int, int64] {
	return func(yield func(int, int64) bool) {
		for i := s.ndim - 1; i >= 0; i-- {
			if !yield(i, s.dims[i]) {
				return
			}
		}
	}
}

// String rendert die Tupel-Form, z.B. "(2, 3, 4)"
func (s Shape) String() string {
	return renderTuple(s.dims[:s.ndim])
}
