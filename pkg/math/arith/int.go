package arith

import "math/big"

// GCD returns gcd(|a|, |b|) as a new integer.
// By convention gcd(0, n) = |n|, and gcd(0, 0) = 0.
func GCD(a, b *big.Int) *big.Int {
	// big.Int.GCD accepts signed and zero inputs and always returns a value ⩾ 0.
	return new(big.Int).GCD(nil, nil, a, b)
}

// Neg returns -x as a new integer.
func Neg(x *big.Int) *big.Int {
	return new(big.Int).Neg(x)
}

// Sub returns x - y as a new integer.
func Sub(x, y *big.Int) *big.Int {
	return new(big.Int).Sub(x, y)
}

// Mul returns x⋅y as a new integer.
func Mul(x, y *big.Int) *big.Int {
	return new(big.Int).Mul(x, y)
}

// DivExact returns x / d, which must have no remainder.
// It panics if d does not divide x, since that signals a broken invariant in the caller.
func DivExact(x, d *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(x, d, new(big.Int))
	if r.Sign() != 0 {
		panic("arith.DivExact: inexact division")
	}
	return q
}
