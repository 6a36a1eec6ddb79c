package polynomial

import (
	"errors"
	"io"
	"math/big"

	"github.com/Vinayak2k03/Hashira/pkg/math/sample"
)

// Polynomial represents f(X) = a₀ + a₁⋅X + … + aₜ⋅Xᵗ over the integers.
type Polynomial struct {
	coefficients []*big.Int
}

// New returns the polynomial with the given coefficients, constant term first.
// The coefficients are copied. With no arguments, this is the zero polynomial.
func New(coefficients ...*big.Int) *Polynomial {
	if len(coefficients) == 0 {
		return &Polynomial{coefficients: []*big.Int{new(big.Int)}}
	}
	p := &Polynomial{coefficients: make([]*big.Int, len(coefficients))}
	for i, c := range coefficients {
		p.coefficients[i] = new(big.Int).Set(c)
	}
	return p
}

// Random generates a Polynomial f(X) = constant + a₁⋅X + … + aₜ⋅Xᵗ,
// with each aᵢ uniform in [0, 2ᵇⁱᵗˢ) and degree t.
//
// The leading coefficient is resampled until it is non-zero, so the degree is exactly t.
func Random(rand io.Reader, degree int, constant *big.Int, bits int) (*Polynomial, error) {
	if degree < 0 {
		return nil, errors.New("polynomial: negative degree")
	}
	if bits <= 0 {
		return nil, errors.New("polynomial: coefficient size must be positive")
	}

	var polynomial Polynomial
	polynomial.coefficients = make([]*big.Int, degree+1)

	// if the constant is nil, we interpret it as 0.
	if constant == nil {
		constant = new(big.Int)
	}
	polynomial.coefficients[0] = new(big.Int).Set(constant)

	for i := 1; i <= degree; i++ {
		polynomial.coefficients[i] = sample.Int(rand, bits)
	}
	if degree > 0 {
		for polynomial.coefficients[degree].Sign() == 0 {
			polynomial.coefficients[degree] = sample.Int(rand, bits)
		}
	}

	return &polynomial, nil
}

// Evaluate evaluates a polynomial in a given variable index
// We use Horner's method: https://en.wikipedia.org/wiki/Horner%27s_method
func (p *Polynomial) Evaluate(index *big.Int) *big.Int {
	result := new(big.Int)
	// reverse order
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		// bₙ₋₁ = bₙ * x + aₙ₋₁
		result.Mul(result, index)
		result.Add(result, p.coefficients[i])
	}
	return result
}

// Constant returns a copy of the constant coefficient of the polynomial.
func (p *Polynomial) Constant() *big.Int {
	return new(big.Int).Set(p.coefficients[0])
}

// Degree is the highest power of the Polynomial.
func (p *Polynomial) Degree() int {
	return len(p.coefficients) - 1
}
