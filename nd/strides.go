// strides.go - Byte-Offsets pro Achse
// Hauptfunktionen: NewStrides, StridesFromSlice, StridesFromSeq,
// ContiguousStrides, StridesOf, CheckEqual
package nd

import (
	"iter"
	"strconv"
	"strings"
)

// Strides beschreibt pro Achse den Byte-Offset zwischen benachbarten
// Elementen. Ein Stride darf null sein (Broadcast-Achse) oder negativ
// (umgekehrte Sicht); nur die Achsenzahl ist auf MaxNdim beschraenkt.
// Strides ist nach der Konstruktion unveraenderlich und kann ohne
// Synchronisation zwischen Goroutinen geteilt werden.
type Strides struct {
	dims [MaxNdim]int64
	ndim int
}

// NewStrides erstellt Strides aus einzelnen Werten in Achsen-Reihenfolge
func NewStrides(values ...int64) (Strides, error) {
	return stridesFromValues(values)
}

// StridesFromSlice erstellt Strides aus einer bestehenden Sicht auf Werte.
// Der Slice wird kopiert und bleibt im Besitz des Aufrufers.
func StridesFromSlice(values []int64) (Strides, error) {
	return stridesFromValues(values)
}

// stridesFromValues ist der kanonische validierende Konstruktor.
// Die Laengen-Pruefung erfolgt bevor Werte uebernommen werden.
func stridesFromValues(values []int64) (Strides, error) {
	if len(values) > MaxNdim {
		return Strides{}, DimensionErrorf("too many dimensions: %d (max %d)", len(values), MaxNdim)
	}
	var s Strides
	s.ndim = copy(s.dims[:], values)
	return s, nil
}

// StridesFromSeq erstellt Strides aus einer Iterator-Sequenz in
// Traversierungs-Reihenfolge
func StridesFromSeq(values iter.Seq[int64]) (Strides, error) {
	var s Strides
	for v := range values {
		if s.ndim == MaxNdim {
			return Strides{}, DimensionErrorf("too many dimensions: more than %d", MaxNdim)
		}
		s.dims[s.ndim] = v
		s.ndim++
	}
	return s, nil
}

// ContiguousStrides leitet zeilen-major (C-kontiguierliche) Strides aus
// einem Shape und einer Element-Groesse in Bytes ab: die letzte Achse
// erhaelt itemSize, jede weitere das Produkt der Ausdehnungen rechts von
// ihr. Andere Layouts muessen explizit konstruiert werden.
func ContiguousStrides(shape Shape, itemSize int64) (Strides, error) {
	if itemSize <= 0 {
		return Strides{}, DimensionErrorf("item size must be positive, got %d", itemSize)
	}
	var s Strides
	s.ndim = shape.ndim
	st := itemSize
	for i := s.ndim - 1; i >= 0; i-- {
		s.dims[i] = st
		st *= shape.dims[i]
	}
	return s, nil
}

// StridesOf leitet kontiguierliche Strides aus Shape und Dtype ab
func StridesOf(shape Shape, dtype Dtype) (Strides, error) {
	return ContiguousStrides(shape, dtype.ItemSize())
}

// Ndim gibt die Anzahl der Achsen zurueck
func (s Strides) Ndim() int {
	return s.ndim
}

// Len gibt die Anzahl der Achsen zurueck, immer gleich Ndim
func (s Strides) Len() int {
	return s.ndim
}

// At gibt den Stride der Achse i zurueck. Indizes werden bei jedem
// Zugriff geprueft, niemals stillschweigend begrenzt.
func (s Strides) At(i int) (int64, error) {
	if i < 0 || i >= s.ndim {
		return 0, DimensionErrorf("index %d out of bounds for %d dimensions", i, s.ndim)
	}
	return s.dims[i], nil
}

// Values gibt den Inhalt als kontiguierliche Sicht ohne Kopie zurueck.
// Die Sicht ist nur lesend zu verwenden und so lange gueltig wie der
// besitzende Wert.
func (s *Strides) Values() []int64 {
	return s.dims[:s.ndim:s.ndim]
}

// Equal prueft strukturelle Gleichheit: gleiche Achsenzahl und
// elementweise gleiche Werte
func (s Strides) Equal(other Strides) bool {
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

// CheckEqual prueft strukturelle Gleichheit als Vorbedingung.
// Ein Unterschied ist ein Kontraktfehler des Aufrufers und wird als
// DimensionError gemeldet, nicht als Vergleichsergebnis.
func CheckEqual(a, b Strides) error {
	if !a.Equal(b) {
		return DimensionErrorf("strides mismatch: %s != %s", a, b)
	}
	return nil
}

// All iteriert vorwaerts ueber (Achse, Stride) in Reihenfolge 0..ndim-1
func (s Strides) All() iter.Seq2[int, int64] {
	return func(yield func(int, int64) bool) {
		for i := range s.ndim {
			if !yield(i, s.dims[i]) {
				return
			}
		}
	}
}

// Backward iteriert rueckwaerts ueber (Achse, Stride) in Reihenfolge ndim-1..0
func (s Strides) Backward() iter.Seq2[int, int64] {
	return func(yield func(int, int64) bool) {
		for i := s.ndim - 1; i >= 0; i-- {
			if !yield(i, s.dims[i]) {
				return
			}
		}
	}
}

// String rendert die Tupel-Form: "()", "(4,)", "(48, 16, 4)".
// Das Komma bei genau einer Achse unterscheidet die Sequenz von einem
// Skalar.
func (s Strides) String() string {
	return renderTuple(s.dims[:s.ndim])
}

// renderTuple rendert eine Achsen-Sequenz in kanonischer Tupel-Form,
// geteilt zwischen Shape und Strides
func renderTuple(dims []int64) string {
	switch len(dims) {
	case 0:
		return "()"
	case 1:
		return "(" + strconv.FormatInt(dims[0], 10) + ",)"
	}

	var sb strings.Builder
	sb.WriteByte('(')
	for i, d := range dims {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatInt(d, 10))
	}
	sb.WriteByte(')')
	return sb.String()
}
