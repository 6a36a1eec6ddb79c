package sample

import (
	"io"
	"math/big"
)

// IntervalSigned returns an integer in the range ± 2ᵇⁱᵗˢ.
func IntervalSigned(rand io.Reader, bits int) *big.Int {
	buf := make([]byte, 1)
	mustReadBits(rand, buf)
	out := Int(rand, bits)
	if buf[0]&1 == 1 {
		out.Neg(out)
	}
	return out
}
