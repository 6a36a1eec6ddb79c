package share

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/Vinayak2k03/Hashira/pkg/math/basen"
	"github.com/Vinayak2k03/Hashira/pkg/math/polynomial"
)

// Deal splits secret into n shares such that any k of them reconstruct it.
//
// The shares are evaluations at x = 1, …, n of a random polynomial of degree k-1 whose constant
// term is the secret, and whose other coefficients are sampled from [0, 2ᵇⁱᵗˢ).
// All values are written in the given base. The secret must be non-negative, which
// keeps every share non-negative as well.
func Deal(rand io.Reader, secret *big.Int, k, n, base, bits int) (*Document, error) {
	if secret == nil || secret.Sign() < 0 {
		return nil, errors.New("share: secret must be a non-negative integer")
	}
	if k < 1 {
		return nil, ErrInvalidThreshold
	}
	if n < k {
		return nil, fmt.Errorf("share: cannot deal %d shares with threshold %d", n, k)
	}
	if err := basen.ValidateBase(base); err != nil {
		return nil, err
	}

	f, err := polynomial.Random(rand, k-1, secret, bits)
	if err != nil {
		return nil, fmt.Errorf("share: %w", err)
	}

	shares := make([]EncodedShare, 0, n)
	for i := 1; i <= n; i++ {
		x := big.NewInt(int64(i))
		s, err := Encode(polynomial.Point{X: x, Y: f.Evaluate(x)}, base)
		if err != nil {
			return nil, Error{Index: x.String(), Err: err}
		}
		shares = append(shares, s)
	}
	return &Document{Keys: Keys{N: n, K: k}, Shares: shares}, nil
}
