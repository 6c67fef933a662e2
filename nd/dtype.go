// dtype.go - Element-Typ Registrierung
// Enthaelt: Dtype Konstanten, ItemSize, Parsing und Hilfsfunktionen
package nd

import "fmt"

// Dtype beschreibt den Element-Typ eines Arrays. Jeder Typ hat eine
// feste Byte-Breite (ItemSize), die von der Strides-Ableitung als
// Element-Groesse verwendet wird.
type Dtype int

const (
	DtypeInvalid Dtype = iota
	Bool
	Int8
	Int16
	Int32
	Int64
	UInt8
	Float16
	BFloat16
	Float32
	Float64
)

// ParseDtype parst einen Dtype aus seiner String-Repraesentation
func ParseDtype(s string) (Dtype, error) {
	switch s {
	case "bool":
		return Bool, nil
	case "int8":
		return Int8, nil
	case "int16":
		return Int16, nil
	case "int32":
		return Int32, nil
	case "int64":
		return Int64, nil
	case "uint8":
		return UInt8, nil
	case "float16":
		return Float16, nil
	case "bfloat16":
		return BFloat16, nil
	case "float32":
		return Float32, nil
	case "float64":
		return Float64, nil
	default:
		return DtypeInvalid, fmt.Errorf("unsupported dtype %q", s)
	}
}

// ItemSize gibt die Byte-Breite eines Elements zurueck, 0 fuer
// DtypeInvalid
func (t Dtype) ItemSize() int64 {
	switch t {
	case Bool, Int8, UInt8:
		return 1
	case Int16, Float16, BFloat16:
		return 2
	case Int32, Float32:
		return 4
	case Int64, Float64:
		return 8
	default:
		return 0
	}
}

// IsFloat prueft ob der Dtype ein Gleitkomma-Typ ist
func (t Dtype) IsFloat() bool {
	switch t {
	case Float16, BFloat16, Float32, Float64:
		return true
	default:
		return false
	}
}

// String gibt die String-Repraesentation des Dtype zurueck
func (t Dtype) String() string {
	switch t {
	case Bool:
		return "bool"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case UInt8:
		return "uint8"
	case Float16:
		return "float16"
	case BFloat16:
		return "bfloat16"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "invalid"
	}
}

// Dtypes listet alle gueltigen Dtypes in stabiler Reihenfolge auf
func Dtypes() []Dtype {
	return []Dtype{Bool, Int8, Int16, Int32, Int64, UInt8, Float16, BFloat16, Float32, Float64}
}
