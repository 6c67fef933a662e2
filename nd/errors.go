// errors.go - Fehlertypen des nd-Pakets
// Enthaelt: DimensionError und den zugehoerigen Formatierungs-Helfer
package nd

import "fmt"

// DimensionError meldet eine Verletzung der Dimensions-Kontrakte:
// zu viele Achsen bei der Konstruktion, ein Index ausserhalb der Grenzen
// oder eine fehlgeschlagene Gleichheits-Pruefung. Diese Fehler sind
// Logikfehler im aufrufenden Code und nicht transient.
type DimensionError struct {
	Msg string
}

func (e *DimensionError) Error() string {
	return e.Msg
}

// DimensionErrorf erstellt einen DimensionError mit formatierter Nachricht
func DimensionErrorf(format string, args ...any) error {
	return &DimensionError{Msg: fmt.Sprintf(format, args...)}
}
