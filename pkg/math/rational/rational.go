// Package rational implements exact fractions over arbitrary-precision integers.
//
// A Rational is an immutable value: every operation returns a fresh value in
// canonical form, and operands are never modified. Values can therefore be
// shared freely between goroutines.
package rational

import (
	"errors"
	"math/big"

	"github.com/Vinayak2k03/Hashira/pkg/math/arith"
)

var (
	// ErrZeroDenominator is returned when constructing a fraction n/0.
	ErrZeroDenominator = errors.New("rational: zero denominator")
	// ErrDivisionByZero is returned when dividing by a Rational equal to 0.
	ErrDivisionByZero = errors.New("rational: division by zero")
)

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
)

// Rational represents num/den with den > 0 and gcd(|num|, den) = 1.
//
// The zero value is 0/1 and ready to use.
type Rational struct {
	// num and den are never mutated after construction.
	num, den *big.Int
}

// New returns num/den in lowest terms with a positive denominator.
// The arguments are copied.
func New(num, den *big.Int) (Rational, error) {
	if den.Sign() == 0 {
		return Rational{}, ErrZeroDenominator
	}
	return canonical(new(big.Int).Set(num), new(big.Int).Set(den)), nil
}

// FromInt returns x/1.
func FromInt(x *big.Int) Rational {
	return Rational{num: new(big.Int).Set(x), den: one}
}

// FromInt64 returns x/1.
func FromInt64(x int64) Rational {
	return Rational{num: big.NewInt(x), den: one}
}

// Zero returns 0/1.
func Zero() Rational { return Rational{num: zero, den: one} }

// One returns 1/1.
func One() Rational { return Rational{num: one, den: one} }

// canonical takes ownership of num and den, which must be freshly allocated, and den ≠ 0.
func canonical(num, den *big.Int) Rational {
	// move the sign to the numerator
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	// gcd(0, d) = d, so 0/d becomes 0/1
	g := arith.GCD(num, den)
	if g.Cmp(one) != 0 {
		num = arith.DivExact(num, g)
		den = arith.DivExact(den, g)
	}
	return Rational{num: num, den: den}
}

func (a Rational) n() *big.Int {
	if a.num == nil {
		return zero
	}
	return a.num
}

func (a Rational) d() *big.Int {
	if a.den == nil {
		return one
	}
	return a.den
}

// Add returns a + b.
func (a Rational) Add(b Rational) Rational {
	// a.num⋅b.den + b.num⋅a.den / a.den⋅b.den
	num := arith.Mul(a.n(), b.d())
	num.Add(num, arith.Mul(b.n(), a.d()))
	den := arith.Mul(a.d(), b.d())
	return canonical(num, den)
}

// Neg returns -a.
func (a Rational) Neg() Rational {
	return Rational{num: arith.Neg(a.n()), den: a.d()}
}

// Sub returns a - b.
func (a Rational) Sub(b Rational) Rational {
	return a.Add(b.Neg())
}

// Mul returns a⋅b.
func (a Rational) Mul(b Rational) Rational {
	return canonical(arith.Mul(a.n(), b.n()), arith.Mul(a.d(), b.d()))
}

// Div returns a / b, or ErrDivisionByZero if b = 0.
func (a Rational) Div(b Rational) (Rational, error) {
	if b.IsZero() {
		return Rational{}, ErrDivisionByZero
	}
	return canonical(arith.Mul(a.n(), b.d()), arith.Mul(a.d(), b.n())), nil
}

// Num returns a copy of the numerator.
func (a Rational) Num() *big.Int {
	return new(big.Int).Set(a.n())
}

// Den returns a copy of the denominator, which is always positive.
func (a Rational) Den() *big.Int {
	return new(big.Int).Set(a.d())
}

// IsInt reports whether the denominator is 1.
func (a Rational) IsInt() bool {
	return a.d().Cmp(one) == 0
}

// IsZero reports whether a = 0.
func (a Rational) IsZero() bool {
	return a.n().Sign() == 0
}

// Sign returns -1, 0 or +1 depending on the sign of a.
func (a Rational) Sign() int {
	return a.n().Sign()
}

// Equal compares the canonical forms of a and b.
func (a Rational) Equal(b Rational) bool {
	return a.n().Cmp(b.n()) == 0 && a.d().Cmp(b.d()) == 0
}

// String returns "num" for integers and "num/den" otherwise.
func (a Rational) String() string {
	if a.IsInt() {
		return a.n().String()
	}
	return a.n().String() + "/" + a.d().String()
}
