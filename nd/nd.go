// nd.go - Paket-Dokumentation und gemeinsame Konstanten
//
// Package nd enthaelt die Geometrie-Grundtypen des Array-Laufzeitsystems:
// Shape (Achsen-Ausdehnungen), Strides (Byte-Offsets pro Achse) und Dtype
// (Element-Typ mit Byte-Breite). Shape und Strides teilen dieselbe
// beschraenkte Sequenz-Disziplin: maximal MaxNdim Achsen, Inline-Speicher,
// unveraenderlich nach der Konstruktion.
package nd

// MaxNdim ist die maximale Anzahl von Achsen eines Arrays.
// Shape und Strides teilen dieselbe Schranke, damit die beiden Typen
// immer konsistent gepaart werden koennen.
const MaxNdim = 8
