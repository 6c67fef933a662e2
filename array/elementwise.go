// elementwise.go - Elementweise Operationen, Auswahl, Reduktion
//
// Alle Operationen erzeugen neue Arrays; Operanden bleiben unveraendert.
// Zweistellige Operationen verlangen gleiche Shapes (Kontrakt-Pruefung
// ueber nd.CheckShapeEqual) und gleiche Dtypes. Grosse Arrays werden in
// Bloecken ueber mehrere Goroutinen verarbeitet.
package array

import (
	"encoding/binary"
	"fmt"

	"github.com/x448/float16"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/axleml/axle/device"
	"github.com/axleml/axle/envconfig"
	"github.com/axleml/axle/nd"
)

// forEach verarbeitet n Elemente in Bloecken. Ab dem Schwellwert aus
// envconfig laufen die Bloecke parallel.
func forEach(n int64, fn func(lo, hi int64)) {
	if n == 0 {
		return
	}

	workers := int64(envconfig.NumThreads())
	if n < envconfig.ParallelThreshold() || workers <= 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	for lo := int64(0); lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	g.Wait() //nolint:errcheck // die Bloecke liefern nie einen Fehler
}

// unaryOp wendet einen Kernel elementweise an. float16 und bfloat16
// rechnen ueber ihre Geraete-Spezialisierungen direkt auf den Lanes.
func unaryOp(x *Array, f device.UnaryFunc) (*Array, error) {
	out, err := Empty(x.shape, x.dtype)
	if err != nil {
		return nil, err
	}

	forEach(x.NumElements(), func(lo, hi int64) {
		switch x.dtype {
		case nd.Float16:
			for li := lo; li < hi; li++ {
				v := float16.Frombits(binary.LittleEndian.Uint16(x.data[x.linearOffset(li):]))
				binary.LittleEndian.PutUint16(out.data[out.linearOffset(li):], device.Apply16(f, v).Bits())
			}
		case nd.BFloat16:
			for li := lo; li < hi; li++ {
				bits := binary.LittleEndian.Uint16(x.data[x.linearOffset(li):])
				binary.LittleEndian.PutUint16(out.data[out.linearOffset(li):], device.ApplyBF16(f, bits))
			}
		default:
			for li := lo; li < hi; li++ {
				out.set(out.linearOffset(li), f(x.get(x.linearOffset(li))))
			}
		}
	})
	return out, nil
}

// binaryOp wendet einen zweistelligen Kernel elementweise an
func binaryOp(x1, x2 *Array, f device.BinaryFunc) (*Array, error) {
	if err := nd.CheckShapeEqual(x1.shape, x2.shape); err != nil {
		return nil, err
	}
	if x1.dtype != x2.dtype {
		return nil, fmt.Errorf("dtype mismatch: %s != %s", x1.dtype, x2.dtype)
	}

	out, err := Empty(x1.shape, x1.dtype)
	if err != nil {
		return nil, err
	}

	forEach(out.NumElements(), func(lo, hi int64) {
		for li := lo; li < hi; li++ {
			v := f(x1.get(x1.linearOffset(li)), x2.get(x2.linearOffset(li)))
			out.set(out.linearOffset(li), v)
		}
	})
	return out, nil
}

// compareOp wendet ein Praedikat elementweise an und liefert ein
// Bool-Array
func compareOp(x1, x2 *Array, f func(a, b float64) bool) (*Array, error) {
	if err := nd.CheckShapeEqual(x1.shape, x2.shape); err != nil {
		return nil, err
	}
	if x1.dtype != x2.dtype {
		return nil, fmt.Errorf("dtype mismatch: %s != %s", x1.dtype, x2.dtype)
	}

	out, err := Empty(x1.shape, nd.Bool)
	if err != nil {
		return nil, err
	}

	forEach(out.NumElements(), func(lo, hi int64) {
		for li := lo; li < hi; li++ {
			if f(x1.get(x1.linearOffset(li)), x2.get(x2.linearOffset(li))) {
				out.set(out.linearOffset(li), 1)
			}
		}
	})
	return out, nil
}

// =============================================================================
// Einstellige Operationen
// =============================================================================

// Neg gibt -x zurueck
func Neg(x *Array) (*Array, error) { return unaryOp(x, device.Neg) }

// Absolute gibt |x| zurueck
func Absolute(x *Array) (*Array, error) { return unaryOp(x, device.Absolute) }

// Square gibt x*x zurueck
func Square(x *Array) (*Array, error) { return unaryOp(x, device.Square) }

// Sign gibt das Vorzeichen zurueck
func Sign(x *Array) (*Array, error) { return unaryOp(x, device.Sign) }

// Sqrt gibt die Quadratwurzel zurueck
func Sqrt(x *Array) (*Array, error) { return unaryOp(x, device.Sqrt) }

// Exp gibt e**x zurueck
func Exp(x *Array) (*Array, error) { return unaryOp(x, device.Exp) }

// Log gibt den natuerlichen Logarithmus zurueck
func Log(x *Array) (*Array, error) { return unaryOp(x, device.Log) }

// Log1p gibt log(1+x) zurueck
func Log1p(x *Array) (*Array, error) { return unaryOp(x, device.Log1p) }

// Sigmoid gibt 1/(1+e**-x) zurueck
func Sigmoid(x *Array) (*Array, error) { return unaryOp(x, device.Sigmoid) }

// Ceil rundet elementweise auf
func Ceil(x *Array) (*Array, error) { return unaryOp(x, device.Ceil) }

// Floor rundet elementweise ab
func Floor(x *Array) (*Array, error) { return unaryOp(x, device.Floor) }

// =============================================================================
// Skalar-Formen
// =============================================================================

// AddScalar gibt x + c zurueck
func AddScalar(x *Array, c float64) (*Array, error) {
	return unaryOp(x, func(v float64) float64 { return v + c })
}

// SubScalar gibt x - c zurueck
func SubScalar(x *Array, c float64) (*Array, error) {
	return unaryOp(x, func(v float64) float64 { return v - c })
}

// MulScalar gibt x * c zurueck
func MulScalar(x *Array, c float64) (*Array, error) {
	return unaryOp(x, func(v float64) float64 { return v * c })
}

// Power gibt x**c zurueck
func Power(x *Array, c float64) (*Array, error) {
	return unaryOp(x, func(v float64) float64 { return device.Pow(v, c) })
}

// =============================================================================
// Zweistellige Operationen
// =============================================================================

// Add gibt x1 + x2 zurueck
func Add(x1, x2 *Array) (*Array, error) {
	return binaryOp(x1, x2, func(a, b float64) float64 { return a + b })
}

// Sub gibt x1 - x2 zurueck
func Sub(x1, x2 *Array) (*Array, error) {
	return binaryOp(x1, x2, func(a, b float64) float64 { return a - b })
}

// Mul gibt x1 * x2 zurueck
func Mul(x1, x2 *Array) (*Array, error) {
	return binaryOp(x1, x2, func(a, b float64) float64 { return a * b })
}

// Div gibt x1 / x2 zurueck
func Div(x1, x2 *Array) (*Array, error) {
	return binaryOp(x1, x2, func(a, b float64) float64 { return a / b })
}

// Pow gibt x1**x2 zurueck
func Pow(x1, x2 *Array) (*Array, error) {
	return binaryOp(x1, x2, device.Pow)
}

// =============================================================================
// Vergleiche
// =============================================================================

// Equal gibt elementweise x1 == x2 als Bool-Array zurueck
func Equal(x1, x2 *Array) (*Array, error) {
	return compareOp(x1, x2, func(a, b float64) bool { return a == b })
}

// NotEqual gibt elementweise x1 != x2 als Bool-Array zurueck
func NotEqual(x1, x2 *Array) (*Array, error) {
	return compareOp(x1, x2, func(a, b float64) bool { return a != b })
}

// Greater gibt elementweise x1 > x2 als Bool-Array zurueck
func Greater(x1, x2 *Array) (*Array, error) {
	return compareOp(x1, x2, func(a, b float64) bool { return a > b })
}

// GreaterEqual gibt elementweise x1 >= x2 als Bool-Array zurueck
func GreaterEqual(x1, x2 *Array) (*Array, error) {
	return compareOp(x1, x2, func(a, b float64) bool { return a >= b })
}

// Less gibt elementweise x1 < x2 als Bool-Array zurueck
func Less(x1, x2 *Array) (*Array, error) {
	return compareOp(x1, x2, func(a, b float64) bool { return a < b })
}

// =============================================================================
// Auswahl, Koerzierung, Reduktion
// =============================================================================

// Where waehlt elementweise aus x wo cond wahr ist, sonst aus y.
// cond muss ein Bool-Array sein; alle drei Shapes muessen gleich sein.
func Where(cond, x, y *Array) (*Array, error) {
	if cond.dtype != nd.Bool {
		return nil, fmt.Errorf("condition must be bool, got %s", cond.dtype)
	}
	if err := nd.CheckShapeEqual(cond.shape, x.shape); err != nil {
		return nil, err
	}
	if err := nd.CheckShapeEqual(x.shape, y.shape); err != nil {
		return nil, err
	}
	if x.dtype != y.dtype {
		return nil, fmt.Errorf("dtype mismatch: %s != %s", x.dtype, y.dtype)
	}

	out, err := Empty(x.shape, x.dtype)
	if err != nil {
		return nil, err
	}

	forEach(out.NumElements(), func(lo, hi int64) {
		for li := lo; li < hi; li++ {
			if cond.get(cond.linearOffset(li)) != 0 {
				out.set(out.linearOffset(li), x.get(x.linearOffset(li)))
			} else {
				out.set(out.linearOffset(li), y.get(y.linearOffset(li)))
			}
		}
	})
	return out, nil
}

// AsType koerziert das Array elementweise in einen anderen Dtype
func AsType(x *Array, dtype nd.Dtype) (*Array, error) {
	if dtype == x.dtype {
		out, err := Empty(x.shape, x.dtype)
		if err != nil {
			return nil, err
		}
		copy(out.data, x.data)
		return out, nil
	}

	out, err := Empty(x.shape, dtype)
	if err != nil {
		return nil, err
	}
	forEach(out.NumElements(), func(lo, hi int64) {
		for li := lo; li < hi; li++ {
			out.set(out.linearOffset(li), x.get(x.linearOffset(li)))
		}
	})
	return out, nil
}

// Mean reduziert ueber alle Elemente auf ein 0-dimensionales Array
// desselben Dtype
func Mean(x *Array) (*Array, error) {
	n := x.NumElements()
	if n == 0 {
		return nil, fmt.Errorf("mean of empty array %s", x.shape)
	}

	// Summation auf der float64-Spur
	sum := floats.Sum(x.Float64s())

	out, err := Empty(nd.Shape{}, x.dtype)
	if err != nil {
		return nil, err
	}
	out.set(0, sum/float64(n))
	return out, nil
}
