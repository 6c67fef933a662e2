// dtype_test.go - Tests fuer die Dtype-Registrierung
package nd

import "testing"

func TestDtypeItemSize(t *testing.T) {
	cases := []struct {
		dtype Dtype
		want  int64
	}{
		{Bool, 1},
		{Int8, 1},
		{UInt8, 1},
		{Int16, 2},
		{Float16, 2},
		{BFloat16, 2},
		{Int32, 4},
		{Float32, 4},
		{Int64, 8},
		{Float64, 8},
		{DtypeInvalid, 0},
	}

	for _, tt := range cases {
		if got := tt.dtype.ItemSize(); got != tt.want {
			t.Errorf("%s.ItemSize() = %d, want %d", tt.dtype, got, tt.want)
		}
	}
}

func TestDtypeParseRoundTrip(t *testing.T) {
	for _, dt := range Dtypes() {
		parsed, err := ParseDtype(dt.String())
		if err != nil {
			t.Fatalf("ParseDtype(%q): %v", dt.String(), err)
		}
		if parsed != dt {
			t.Errorf("ParseDtype(%q) = %v, want %v", dt.String(), parsed, dt)
		}
	}

	if _, err := ParseDtype("complex128"); err == nil {
		t.Error("expected error for unsupported dtype")
	}
}

func TestDtypeIsFloat(t *testing.T) {
	floats := map[Dtype]bool{Float16: true, BFloat16: true, Float32: true, Float64: true}
	for _, dt := range Dtypes() {
		if got := dt.IsFloat(); got != floats[dt] {
			t.Errorf("%s.IsFloat() = %v, want %v", dt, got, floats[dt])
		}
	}
}
