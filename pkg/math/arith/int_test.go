package arith

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{12, 18, 6},
		{-12, 18, 6},
		{12, -18, 6},
		{-12, -18, 6},
		{0, 5, 5},
		{0, -5, 5},
		{7, 0, 7},
		{0, 0, 0},
		{17, 5, 1},
	}
	for _, tt := range tests {
		got := GCD(big.NewInt(tt.a), big.NewInt(tt.b))
		assert.Equalf(t, tt.want, got.Int64(), "gcd(%d, %d)", tt.a, tt.b)
	}
}

func TestDivExact(t *testing.T) {
	x := new(big.Int).Lsh(big.NewInt(3), 200)
	d := new(big.Int).Lsh(big.NewInt(1), 199)
	assert.Equal(t, int64(6), DivExact(x, d).Int64())
	assert.Equal(t, int64(-6), DivExact(Neg(x), d).Int64())
	assert.Panics(t, func() { DivExact(big.NewInt(7), big.NewInt(2)) })
}

func TestHelpersDoNotMutate(t *testing.T) {
	x, y := big.NewInt(10), big.NewInt(4)
	assert.Equal(t, int64(6), Sub(x, y).Int64())
	assert.Equal(t, int64(40), Mul(x, y).Int64())
	assert.Equal(t, int64(-10), Neg(x).Int64())
	assert.Equal(t, int64(10), x.Int64())
	assert.Equal(t, int64(4), y.Int64())
}
