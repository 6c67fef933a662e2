// float16.go - float16-Spezialisierungen der Fallback-Kernels
//
// float16 hat keine nativen Rechenoperationen; jeder Kernel weitet auf
// float64, rechnet dort und rundet auf die naechste float16 zurueck.
package device

import "github.com/x448/float16"

// Apply16 wendet einen float64-Kernel auf einen float16-Wert an und
// rundet das Ergebnis zurueck
func Apply16(f UnaryFunc, x float16.Float16) float16.Float16 {
	return float16.Fromfloat32(float32(f(float64(x.Float32()))))
}

// Apply16Binary wendet einen zweistelligen float64-Kernel auf
// float16-Werte an
func Apply16Binary(f BinaryFunc, x, y float16.Float16) float16.Float16 {
	return float16.Fromfloat32(float32(f(float64(x.Float32()), float64(y.Float32()))))
}

// IsNaN16 prueft ob x Not-a-Number ist, ohne Weitung
func IsNaN16(x float16.Float16) bool { return x.IsNaN() }

// IsInf16 prueft ob x unendlich ist, ohne Weitung
func IsInf16(x float16.Float16) bool { return x.IsInf(0) }

// Exp16 gibt e**x als float16 zurueck
func Exp16(x float16.Float16) float16.Float16 { return Apply16(Exp, x) }

// Log16 gibt den natuerlichen Logarithmus als float16 zurueck
func Log16(x float16.Float16) float16.Float16 { return Apply16(Log, x) }

// Log1p16 gibt log(1+x) als float16 zurueck
func Log1p16(x float16.Float16) float16.Float16 { return Apply16(Log1p, x) }

// Sqrt16 gibt die Quadratwurzel als float16 zurueck
func Sqrt16(x float16.Float16) float16.Float16 { return Apply16(Sqrt, x) }

// Ceil16 rundet auf
func Ceil16(x float16.Float16) float16.Float16 { return Apply16(Ceil, x) }

// Floor16 rundet ab
func Floor16(x float16.Float16) float16.Float16 { return Apply16(Floor, x) }

// Tanh16 gibt den Tangens hyperbolicus als float16 zurueck
func Tanh16(x float16.Float16) float16.Float16 { return Apply16(Tanh, x) }

// Atan216 gibt den Arcustangens von y/x als float16 zurueck
func Atan216(y, x float16.Float16) float16.Float16 { return Apply16Binary(Atan2, y, x) }

// Pow16 gibt x**y als float16 zurueck
func Pow16(x, y float16.Float16) float16.Float16 { return Apply16Binary(Pow, x, y) }

// Sigmoid16 gibt 1/(1+e**-x) als float16 zurueck
func Sigmoid16(x float16.Float16) float16.Float16 { return Apply16(Sigmoid, x) }
