// Package share handles encoded shares: parsing input documents, decoding each share
// into a point, selecting the points used for reconstruction, and dealing new shares.
package share

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"

	"github.com/Vinayak2k03/Hashira/pkg/math/basen"
	"github.com/Vinayak2k03/Hashira/pkg/math/polynomial"
)

// Base is the radix of an encoded share value.
//
// In JSON it is accepted either as a number or as a string holding a base 10 number,
// and it is always written as a string.
type Base int

// UnmarshalJSON implements json.Unmarshaler.
func (b *Base) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var n int
		if errN := json.Unmarshal(data, &n); errN != nil {
			return fmt.Errorf("share: base must be a string or an integer, got %s", data)
		}
		*b = Base(n)
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("share: invalid base %q: %w", s, err)
	}
	*b = Base(n)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (b Base) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.Itoa(int(b)))
}

// EncodedShare is a single share as found in an input document: the y-coordinate
// Value is written in the given Base, and Index is the x-coordinate.
type EncodedShare struct {
	Index *big.Int `cbor:"1,keyasint"`
	Base  Base     `cbor:"2,keyasint"`
	Value string   `cbor:"3,keyasint"`
}

// Decode returns the point (Index, Value in base Base).
func (s EncodedShare) Decode() (polynomial.Point, error) {
	if s.Index == nil || s.Index.Sign() <= 0 {
		return polynomial.Point{}, ErrInvalidIndex
	}
	y, err := basen.Decode(s.Value, int(s.Base))
	if err != nil {
		return polynomial.Point{}, err
	}
	return polynomial.Point{X: new(big.Int).Set(s.Index), Y: y}, nil
}

// Encode returns the share for point p, writing its y-coordinate in the given base.
func Encode(p polynomial.Point, base int) (EncodedShare, error) {
	if p.X == nil || p.X.Sign() <= 0 {
		return EncodedShare{}, ErrInvalidIndex
	}
	value, err := basen.Encode(p.Y, base)
	if err != nil {
		return EncodedShare{}, err
	}
	return EncodedShare{Index: new(big.Int).Set(p.X), Base: Base(base), Value: value}, nil
}

func (s EncodedShare) indexString() string {
	if s.Index == nil {
		return "<nil>"
	}
	return s.Index.String()
}
