package secret

import (
	"math/big"

	"github.com/Vinayak2k03/Hashira/internal/hash"
	"github.com/Vinayak2k03/Hashira/internal/types"
	"github.com/Vinayak2k03/Hashira/pkg/math/polynomial"
)

// Digest returns a blake3 fingerprint of (k, points, secret).
// Two reconstructions agree on their digest exactly when they used the same points and found the same secret.
func Digest(k int, points []polynomial.Point, secret *big.Int) ([]byte, error) {
	h := hash.New()
	if err := h.WriteAny(types.Threshold(k)); err != nil {
		return nil, err
	}
	for _, p := range points {
		if err := h.WriteAny(p); err != nil {
			return nil, err
		}
	}
	if err := h.WriteAny(secret); err != nil {
		return nil, err
	}
	return h.Sum(), nil
}
