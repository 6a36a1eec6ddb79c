package polynomial

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/big"
)

// Point is an evaluation (X, f(X)) of a polynomial.
//
// Points are treated as immutable; functions in this package never modify X or Y.
type Point struct {
	X *big.Int `cbor:"1,keyasint"`
	Y *big.Int `cbor:"2,keyasint"`
}

// NewPoint returns the point (x, y), copying both coordinates.
func NewPoint(x, y *big.Int) Point {
	return Point{X: new(big.Int).Set(x), Y: new(big.Int).Set(y)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%s, %s)", p.X, p.Y)
}

// WriteTo implements io.WriterTo and should be used within the hash.Hash function.
//
// Each coordinate is written as a 4 byte big-endian length, a sign byte and the absolute value.
func (p Point) WriteTo(w io.Writer) (int64, error) {
	var nAll int64
	for _, c := range []*big.Int{p.X, p.Y} {
		if c == nil {
			return nAll, fmt.Errorf("polynomial.Point: nil coordinate")
		}
		abs := c.Bytes()
		header := make([]byte, 5)
		binary.BigEndian.PutUint32(header, uint32(len(abs)))
		if c.Sign() < 0 {
			header[4] = 1
		}
		n, err := w.Write(header)
		nAll += int64(n)
		if err != nil {
			return nAll, err
		}
		n, err = w.Write(abs)
		nAll += int64(n)
		if err != nil {
			return nAll, err
		}
	}
	return nAll, nil
}

// Domain implements hash.WriterToWithDomain.
func (Point) Domain() string { return "Point" }
