// device.go - Skalare Fallback-Kernels (float64)
//
// Package device enthaelt die elementweisen Rechen-Kernels, auf die die
// Array-Engine zurueckfaellt, wenn kein beschleunigtes Backend vorhanden
// ist. Die Kernels sind reine Funktionen ohne Zustand; die Dispatch nach
// Dtype uebernimmt der Aufrufer. Reduzierte Gleitkomma-Typen (float16,
// bfloat16) haben eigene Spezialisierungen in float16.go und bfloat16.go.
package device

import "math"

// UnaryFunc ist ein elementweiser Kernel mit einem Operanden
type UnaryFunc func(x float64) float64

// BinaryFunc ist ein elementweiser Kernel mit zwei Operanden
type BinaryFunc func(x, y float64) float64

// =============================================================================
// Klassifikation
// =============================================================================

// IsNaN prueft ob x Not-a-Number ist
func IsNaN(x float64) bool { return math.IsNaN(x) }

// IsInf prueft ob x positiv oder negativ unendlich ist
func IsInf(x float64) bool { return math.IsInf(x, 0) }

// =============================================================================
// Vorzeichen und Betrag
// =============================================================================

// Absolute gibt den Betrag von x zurueck
func Absolute(x float64) float64 { return math.Abs(x) }

// Neg gibt -x zurueck
func Neg(x float64) float64 { return -x }

// Sign gibt -1, 0 oder 1 zurueck; NaN bleibt NaN
func Sign(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return x
}

// Square gibt x*x zurueck
func Square(x float64) float64 { return x * x }

// Sqrt gibt die Quadratwurzel zurueck
func Sqrt(x float64) float64 { return math.Sqrt(x) }

// =============================================================================
// Rundung
// =============================================================================

// Ceil rundet zur naechsten Ganzzahl auf
func Ceil(x float64) float64 { return math.Ceil(x) }

// Floor rundet zur naechsten Ganzzahl ab
func Floor(x float64) float64 { return math.Floor(x) }

// =============================================================================
// Trigonometrie
// =============================================================================

// Sin gibt den Sinus zurueck
func Sin(x float64) float64 { return math.Sin(x) }

// Cos gibt den Cosinus zurueck
func Cos(x float64) float64 { return math.Cos(x) }

// Tan gibt den Tangens zurueck
func Tan(x float64) float64 { return math.Tan(x) }

// Asin gibt den Arcussinus zurueck
func Asin(x float64) float64 { return math.Asin(x) }

// Acos gibt den Arcuscosinus zurueck
func Acos(x float64) float64 { return math.Acos(x) }

// Atan gibt den Arcustangens zurueck
func Atan(x float64) float64 { return math.Atan(x) }

// Atan2 gibt den Arcustangens von y/x mit Quadranten-Korrektur zurueck
func Atan2(y, x float64) float64 { return math.Atan2(y, x) }

// =============================================================================
// Hyperbolische Funktionen
// =============================================================================

// Sinh gibt den Sinus hyperbolicus zurueck
func Sinh(x float64) float64 { return math.Sinh(x) }

// Cosh gibt den Cosinus hyperbolicus zurueck
func Cosh(x float64) float64 { return math.Cosh(x) }

// Tanh gibt den Tangens hyperbolicus zurueck
func Tanh(x float64) float64 { return math.Tanh(x) }

// Asinh gibt den inversen Sinus hyperbolicus zurueck
func Asinh(x float64) float64 { return math.Asinh(x) }

// Acosh gibt den inversen Cosinus hyperbolicus zurueck
func Acosh(x float64) float64 { return math.Acosh(x) }

// Atanh gibt den inversen Tangens hyperbolicus zurueck
func Atanh(x float64) float64 { return math.Atanh(x) }

// =============================================================================
// Exponential und Logarithmus
// =============================================================================

// Exp gibt e**x zurueck
func Exp(x float64) float64 { return math.Exp(x) }

// Expm1 gibt e**x - 1 zurueck, praezise fuer kleine x
func Expm1(x float64) float64 { return math.Expm1(x) }

// Log gibt den natuerlichen Logarithmus zurueck
func Log(x float64) float64 { return math.Log(x) }

// Log1p gibt log(1+x) zurueck, praezise fuer kleine x
func Log1p(x float64) float64 { return math.Log1p(x) }

// Log2 gibt den Logarithmus zur Basis 2 zurueck
func Log2(x float64) float64 { return math.Log2(x) }

// Log10 gibt den Logarithmus zur Basis 10 zurueck
func Log10(x float64) float64 { return math.Log10(x) }

// Pow gibt x**y zurueck
func Pow(x, y float64) float64 { return math.Pow(x, y) }

// Sigmoid gibt 1/(1+e**-x) zurueck
func Sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }
