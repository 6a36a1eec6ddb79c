package sample

import (
	"fmt"
	"io"
	"math/big"

	"github.com/cronokirby/saferith"
)

const maxIterations = 255

var ErrMaxIterations = fmt.Errorf("sample: failed to generate after %d iterations", maxIterations)

func mustReadBits(rand io.Reader, buf []byte) {
	for i := 0; i < maxIterations; i++ {
		if _, err := io.ReadFull(rand, buf); err == nil {
			return
		}
	}
	panic(ErrMaxIterations)
}

// natBits reads a uniform Nat in [0, 2ᵇⁱᵗˢ).
func natBits(rand io.Reader, bits int) *saferith.Nat {
	buf := make([]byte, (bits+7)/8)
	mustReadBits(rand, buf)
	// clear the bits above the requested size
	if extra := 8*len(buf) - bits; extra > 0 {
		buf[0] &= 0xff >> extra
	}
	return new(saferith.Nat).SetBytes(buf)
}

// Int returns a uniform integer in [0, 2ᵇⁱᵗˢ).
func Int(rand io.Reader, bits int) *big.Int {
	if bits <= 0 {
		return new(big.Int)
	}
	return natBits(rand, bits).Big()
}
