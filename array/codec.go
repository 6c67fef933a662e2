// codec.go - Element-Codec pro Dtype
//
// Lesen und Schreiben einzelner Elemente am Byte-Offset. Alle Werte
// laufen ueber eine float64-Spur; reduzierte Gleitkomma-Typen runden
// beim Schreiben auf die naechste darstellbare Zahl.
package array

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/x448/float16"

	"github.com/axleml/axle/device"
	"github.com/axleml/axle/nd"
)

// get dekodiert das Element am Byte-Offset off
func (a *Array) get(off int64) float64 {
	switch a.dtype {
	case nd.Bool:
		if a.data[off] != 0 {
			return 1
		}
		return 0
	case nd.Int8:
		return float64(int8(a.data[off]))
	case nd.UInt8:
		return float64(a.data[off])
	case nd.Int16:
		return float64(int16(binary.LittleEndian.Uint16(a.data[off:])))
	case nd.Int32:
		return float64(int32(binary.LittleEndian.Uint32(a.data[off:])))
	case nd.Int64:
		return float64(int64(binary.LittleEndian.Uint64(a.data[off:])))
	case nd.Float16:
		return float64(float16.Frombits(binary.LittleEndian.Uint16(a.data[off:])).Float32())
	case nd.BFloat16:
		return float64(device.BF16ToFloat32(binary.LittleEndian.Uint16(a.data[off:])))
	case nd.Float32:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(a.data[off:])))
	case nd.Float64:
		return math.Float64frombits(binary.LittleEndian.Uint64(a.data[off:]))
	}
	panic(fmt.Sprintf("unsupported dtype %v", a.dtype))
}

// set kodiert v in das Element am Byte-Offset off
func (a *Array) set(off int64, v float64) {
	switch a.dtype {
	case nd.Bool:
		if v != 0 {
			a.data[off] = 1
		} else {
			a.data[off] = 0
		}
	case nd.Int8:
		a.data[off] = byte(int8(v))
	case nd.UInt8:
		a.data[off] = byte(uint8(v))
	case nd.Int16:
		binary.LittleEndian.PutUint16(a.data[off:], uint16(int16(v)))
	case nd.Int32:
		binary.LittleEndian.PutUint32(a.data[off:], uint32(int32(v)))
	case nd.Int64:
		binary.LittleEndian.PutUint64(a.data[off:], uint64(int64(v)))
	case nd.Float16:
		binary.LittleEndian.PutUint16(a.data[off:], float16.Fromfloat32(float32(v)).Bits())
	case nd.BFloat16:
		binary.LittleEndian.PutUint16(a.data[off:], device.BF16FromFloat32(float32(v)))
	case nd.Float32:
		binary.LittleEndian.PutUint32(a.data[off:], math.Float32bits(float32(v)))
	case nd.Float64:
		binary.LittleEndian.PutUint64(a.data[off:], math.Float64bits(v))
	default:
		panic(fmt.Sprintf("unsupported dtype %v", a.dtype))
	}
}
