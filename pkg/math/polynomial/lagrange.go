package polynomial

import (
	"errors"
	"math/big"

	"github.com/Vinayak2k03/Hashira/pkg/math/arith"
	"github.com/Vinayak2k03/Hashira/pkg/math/rational"
)

// LagrangeCoefficients returns the Lagrange coefficients at 0 for every x in the interpolation domain,
// in the same order.
//
// The following formulas are taken from
// https://en.wikipedia.org/wiki/Lagrange_polynomial
//
//	         (0 - x₀)⋅⋅⋅(0 - xⱼ₋₁)⋅(0 - xⱼ₊₁)⋅⋅⋅(0 - xₖ)
//	lⱼ(0) = --------------------------------------------------
//	        (xⱼ - x₀)⋅⋅⋅(xⱼ - xⱼ₋₁)⋅(xⱼ - xⱼ₊₁)⋅⋅⋅(xⱼ - xₖ).
//
// Each product is kept in lowest terms after every factor, which bounds the size of the
// intermediate numerators and denominators.
func LagrangeCoefficients(interpolationDomain []*big.Int) ([]rational.Rational, error) {
	if len(interpolationDomain) == 0 {
		return nil, ErrNoPoints
	}
	coefficients := make([]rational.Rational, len(interpolationDomain))
	for j, xJ := range interpolationDomain {
		lJ, err := lagrange(interpolationDomain, j, xJ)
		if err != nil {
			return nil, err
		}
		coefficients[j] = lJ
	}
	return coefficients, nil
}

// lagrange returns the Lagrange coefficient lⱼ(0), for xⱼ in the interpolation domain.
func lagrange(interpolationDomain []*big.Int, j int, xJ *big.Int) (rational.Rational, error) {
	var err error
	lJ := rational.One()
	for i, xI := range interpolationDomain {
		if i == j {
			continue
		}
		// lⱼ *= 0 - xᵢ
		lJ = lJ.Mul(rational.FromInt(arith.Neg(xI)))
		// lⱼ /= xⱼ - xᵢ
		lJ, err = lJ.Div(rational.FromInt(arith.Sub(xJ, xI)))
		if errors.Is(err, rational.ErrDivisionByZero) {
			return rational.Rational{}, &DuplicateXError{X: new(big.Int).Set(xJ), I: min(i, j), J: max(i, j)}
		}
		if err != nil {
			return rational.Rational{}, err
		}
	}
	return lJ, nil
}

// EvaluateAtZero returns f(0), where f is the unique polynomial of degree < len(points)
// passing through all points.
//
// The sum f(0) = Σⱼ yⱼ⋅lⱼ(0) is accumulated exactly. If it does not reduce to an integer,
// a *NonIntegerError is returned instead of a rounded value.
func EvaluateAtZero(points []Point) (*big.Int, error) {
	xs := make([]*big.Int, len(points))
	for i, p := range points {
		xs[i] = p.X
	}
	coefficients, err := LagrangeCoefficients(xs)
	if err != nil {
		return nil, err
	}

	sum := rational.Zero()
	for j, lJ := range coefficients {
		// sum += yⱼ⋅lⱼ(0)
		sum = sum.Add(rational.FromInt(points[j].Y).Mul(lJ))
	}

	if !sum.IsInt() {
		return nil, &NonIntegerError{Num: sum.Num(), Den: sum.Den()}
	}
	return sum.Num(), nil
}
