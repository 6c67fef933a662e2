// bfloat16.go - bfloat16-Spezialisierungen der Fallback-Kernels
//
// bfloat16 wird wie float16 ueber Weitung gerechnet. Die Konvertierung
// laeuft ueber die Byte-Codecs der bfloat16-Bibliothek (little-endian).
package device

import (
	"encoding/binary"
	"math"

	"github.com/d4l3k/go-bfloat16"
)

// BF16FromFloat32 kodiert einen float32 als bfloat16-Bits
func BF16FromFloat32(f float32) uint16 {
	buf := bfloat16.EncodeFloat32([]float32{f})
	return binary.LittleEndian.Uint16(buf)
}

// BF16ToFloat32 dekodiert bfloat16-Bits zu float32
func BF16ToFloat32(bits uint16) float32 {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], bits)
	return bfloat16.DecodeFloat32(buf[:])[0]
}

// ApplyBF16 wendet einen float64-Kernel auf bfloat16-Bits an
func ApplyBF16(f UnaryFunc, bits uint16) uint16 {
	return BF16FromFloat32(float32(f(float64(BF16ToFloat32(bits)))))
}

// ApplyBF16Binary wendet einen zweistelligen float64-Kernel auf
// bfloat16-Bits an
func ApplyBF16Binary(f BinaryFunc, x, y uint16) uint16 {
	return BF16FromFloat32(float32(f(float64(BF16ToFloat32(x)), float64(BF16ToFloat32(y)))))
}

// IsNaNBF16 prueft ob die Bits Not-a-Number darstellen
func IsNaNBF16(bits uint16) bool {
	return math.IsNaN(float64(BF16ToFloat32(bits)))
}

// IsInfBF16 prueft ob die Bits unendlich darstellen
func IsInfBF16(bits uint16) bool {
	return math.IsInf(float64(BF16ToFloat32(bits)), 0)
}

// ExpBF16 gibt e**x als bfloat16-Bits zurueck
func ExpBF16(bits uint16) uint16 { return ApplyBF16(Exp, bits) }

// Log1pBF16 gibt log(1+x) als bfloat16-Bits zurueck
func Log1pBF16(bits uint16) uint16 { return ApplyBF16(Log1p, bits) }

// SqrtBF16 gibt die Quadratwurzel als bfloat16-Bits zurueck
func SqrtBF16(bits uint16) uint16 { return ApplyBF16(Sqrt, bits) }

// PowBF16 gibt x**y als bfloat16-Bits zurueck
func PowBF16(x, y uint16) uint16 { return ApplyBF16Binary(Pow, x, y) }
