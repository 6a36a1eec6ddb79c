package share

import (
	"slices"

	"github.com/Vinayak2k03/Hashira/pkg/math/polynomial"
)

// DecodeAll decodes every share into a point, keeping the input order.
// The first failure is returned, wrapped in an Error naming the share.
func DecodeAll(shares []EncodedShare) ([]polynomial.Point, error) {
	points := make([]polynomial.Point, 0, len(shares))
	for _, s := range shares {
		p, err := s.Decode()
		if err != nil {
			return nil, Error{Index: s.indexString(), Err: err}
		}
		points = append(points, p)
	}
	return points, nil
}

// SelectPoints decodes all shares, sorts the resulting points by increasing x,
// and returns the first k of them.
//
// The sort is stable, and points sharing an x-coordinate are kept as they are;
// interpolating over them fails with polynomial.ErrDuplicateX.
func SelectPoints(shares []EncodedShare, k int) ([]polynomial.Point, error) {
	if k < 1 {
		return nil, ErrInvalidThreshold
	}
	points, err := DecodeAll(shares)
	if err != nil {
		return nil, err
	}
	if len(points) < k {
		return nil, &InsufficientSharesError{Have: len(points), Need: k}
	}
	slices.SortStableFunc(points, func(a, b polynomial.Point) int {
		return a.X.Cmp(b.X)
	})
	return slices.Clip(points[:k]), nil
}
