// Package basen converts between arbitrary-precision integers and their
// positional representation in a base between 2 and 36.
//
// Digits are '0'-'9' followed by 'a'-'z', and decoding is case-insensitive.
package basen

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"

	"github.com/Vinayak2k03/Hashira/internal/params"
	"github.com/cronokirby/saferith"
)

var (
	// ErrInvalidBase is returned when a base lies outside [2, 36].
	ErrInvalidBase = errors.New("basen: invalid base")
	// ErrInvalidDigit is returned when a character is not a digit, or its value is not below the base.
	ErrInvalidDigit = errors.New("basen: invalid digit")
)

// BaseError reports a base outside the supported range.
type BaseError struct {
	Base int
}

func (e *BaseError) Error() string {
	return fmt.Sprintf("basen: base %d outside [%d, %d]", e.Base, params.MinBase, params.MaxBase)
}

func (e *BaseError) Unwrap() error { return ErrInvalidBase }

// DigitError reports the first offending character of an encoded value.
type DigitError struct {
	// Digit is the offending character.
	Digit rune
	// Position is the byte offset of Digit in the input.
	Position int
	Base     int
}

func (e *DigitError) Error() string {
	return fmt.Sprintf("basen: digit %q at position %d is not valid in base %d", e.Digit, e.Position, e.Base)
}

func (e *DigitError) Unwrap() error { return ErrInvalidDigit }

// ValidateBase returns a *BaseError if base is not in [2, 36].
func ValidateBase(base int) error {
	if base < params.MinBase || base > params.MaxBase {
		return &BaseError{Base: base}
	}
	return nil
}

// digitValue maps '0'-'9' to 0-9 and 'a'-'z' (either case) to 10-35.
func digitValue(r rune) (uint64, bool) {
	switch {
	case '0' <= r && r <= '9':
		return uint64(r - '0'), true
	case 'a' <= r && r <= 'z':
		return uint64(r-'a') + 10, true
	case 'A' <= r && r <= 'Z':
		return uint64(r-'A') + 10, true
	}
	return 0, false
}

// Decode interprets digits as a number written in the given base, most significant digit first.
//
// The value is accumulated with Horner's rule, acc = acc⋅base + d.
// The accumulator is sized once from the length of the input, which bounds the value by
// base^len(digits) < 2^(len(digits)⋅bitlen(base)), so no step depends on the digits themselves.
func Decode(digits string, base int) (*big.Int, error) {
	if err := ValidateBase(base); err != nil {
		return nil, err
	}
	if len(digits) == 0 {
		return nil, fmt.Errorf("%w: empty value", ErrInvalidDigit)
	}

	capacity := len(digits) * bits.Len(uint(base))
	b := new(saferith.Nat).SetUint64(uint64(base))
	acc := new(saferith.Nat).SetUint64(0).Resize(capacity)
	var tmp, d saferith.Nat
	for i, r := range digits {
		v, ok := digitValue(r)
		if !ok || v >= uint64(base) {
			return nil, &DigitError{Digit: r, Position: i, Base: base}
		}
		// acc = acc⋅base + d
		tmp.Mul(acc, b, capacity)
		acc.Add(&tmp, d.SetUint64(v), capacity)
	}
	return acc.Big(), nil
}

// Encode returns the lower-case representation of v in the given base.
// Only non-negative values can be encoded.
func Encode(v *big.Int, base int) (string, error) {
	if err := ValidateBase(base); err != nil {
		return "", err
	}
	if v == nil || v.Sign() < 0 {
		return "", fmt.Errorf("basen: cannot encode negative or nil value")
	}
	return v.Text(base), nil
}
