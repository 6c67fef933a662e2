// loss.go - Elementweise Verlust-Funktionen
//
// Package loss komponiert Verlust-Funktionen aus den elementweisen
// Operationen der Array-Engine. Alle Funktionen verlangen Operanden mit
// gleichem Shape und Dtype; Verletzungen melden die zugrundeliegenden
// Operationen.
package loss

import (
	"github.com/axleml/axle/array"
)

// AbsoluteError gibt |x1 - x2| elementweise zurueck
func AbsoluteError(x1, x2 *array.Array) (*array.Array, error) {
	d, err := array.Sub(x1, x2)
	if err != nil {
		return nil, err
	}
	return array.Absolute(d)
}

// SquaredError gibt (x1 - x2)**2 elementweise zurueck
func SquaredError(x1, x2 *array.Array) (*array.Array, error) {
	d, err := array.Sub(x1, x2)
	if err != nil {
		return nil, err
	}
	return array.Square(d)
}

// MeanSquaredError gibt den Mittelwert von (x1 - x2)**2 als
// 0-dimensionales Array zurueck
func MeanSquaredError(x1, x2 *array.Array) (*array.Array, error) {
	sq, err := SquaredError(x1, x2)
	if err != nil {
		return nil, err
	}
	return array.Mean(sq)
}

// GaussianKLDivergence gibt (mean**2 + exp(lnVar) - lnVar - 1) * 0.5
// elementweise zurueck: die KL-Divergenz einer Gauss-Verteilung mit
// gegebenem Mittelwert und Log-Varianz gegen die Standard-Normale
func GaussianKLDivergence(mean, lnVar *array.Array) (*array.Array, error) {
	sq, err := array.Square(mean)
	if err != nil {
		return nil, err
	}
	ex, err := array.Exp(lnVar)
	if err != nil {
		return nil, err
	}
	sum, err := array.Add(sq, ex)
	if err != nil {
		return nil, err
	}
	sum, err = array.Sub(sum, lnVar)
	if err != nil {
		return nil, err
	}
	sum, err = array.SubScalar(sum, 1)
	if err != nil {
		return nil, err
	}
	return array.MulScalar(sum, 0.5)
}

// HuberLoss gibt elementweise den Huber-Verlust zurueck: quadratisch
// fuer |x1-x2| < delta, linear darueber
func HuberLoss(x1, x2 *array.Array, delta float64) (*array.Array, error) {
	a, err := array.Sub(x1, x2)
	if err != nil {
		return nil, err
	}
	absA, err := array.Absolute(a)
	if err != nil {
		return nil, err
	}
	deltaArr, err := array.FullLike(a, delta)
	if err != nil {
		return nil, err
	}
	cond, err := array.Less(absA, deltaArr)
	if err != nil {
		return nil, err
	}

	sq, err := array.Square(a)
	if err != nil {
		return nil, err
	}
	quadratic, err := array.MulScalar(sq, 0.5)
	if err != nil {
		return nil, err
	}
	lin, err := array.SubScalar(absA, 0.5*delta)
	if err != nil {
		return nil, err
	}
	linear, err := array.MulScalar(lin, delta)
	if err != nil {
		return nil, err
	}

	return array.Where(cond, quadratic, linear)
}

// SigmoidCrossEntropy gibt elementweise die Sigmoid-Kreuzentropie von
// Logits x1 gegen Labels x2 zurueck. Labels mit dem Wert -1 werden
// ignoriert (Beitrag 0).
func SigmoidCrossEntropy(x1, x2 *array.Array) (*array.Array, error) {
	ones, err := array.OnesLike(x2)
	if err != nil {
		return nil, err
	}
	ignoreLabel, err := array.Neg(ones)
	if err != nil {
		return nil, err
	}
	ignoreMask, err := array.NotEqual(x2, ignoreLabel)
	if err != nil {
		return nil, err
	}
	mask, err := array.AsType(ignoreMask, x1.Dtype())
	if err != nil {
		return nil, err
	}

	zeros, err := array.ZerosLike(x1)
	if err != nil {
		return nil, err
	}
	geq, err := array.GreaterEqual(x1, zeros)
	if err != nil {
		return nil, err
	}
	geqT, err := array.AsType(geq, x1.Dtype())
	if err != nil {
		return nil, err
	}

	inner, err := array.Sub(x2, geqT)
	if err != nil {
		return nil, err
	}
	left, err := array.Mul(x1, inner)
	if err != nil {
		return nil, err
	}

	absX, err := array.Absolute(x1)
	if err != nil {
		return nil, err
	}
	negAbsX, err := array.Neg(absX)
	if err != nil {
		return nil, err
	}
	expNegAbsX, err := array.Exp(negAbsX)
	if err != nil {
		return nil, err
	}
	right, err := array.Log1p(expNegAbsX)
	if err != nil {
		return nil, err
	}

	sum, err := array.Sub(left, right)
	if err != nil {
		return nil, err
	}
	masked, err := array.Mul(mask, sum)
	if err != nil {
		return nil, err
	}
	return array.Neg(masked)
}
