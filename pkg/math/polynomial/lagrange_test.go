package polynomial

import (
	"bytes"
	"errors"
	"math/big"
	mrand "math/rand"
	"testing"

	"github.com/Vinayak2k03/Hashira/pkg/math/rational"
	"github.com/Vinayak2k03/Hashira/pkg/math/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func points(t *testing.T, xy ...int64) []Point {
	t.Helper()
	require.Equal(t, 0, len(xy)%2)
	ps := make([]Point, 0, len(xy)/2)
	for i := 0; i < len(xy); i += 2 {
		ps = append(ps, NewPoint(big.NewInt(xy[i]), big.NewInt(xy[i+1])))
	}
	return ps
}

func TestLagrangeCoefficients(t *testing.T) {
	r := mrand.New(mrand.NewSource(0))
	N := 10
	seen := make(map[int64]bool)
	allIDs := make([]*big.Int, 0, N)
	for len(allIDs) < N {
		x := r.Int63n(1000) + 1
		if seen[x] {
			continue
		}
		seen[x] = true
		allIDs = append(allIDs, big.NewInt(x))
	}

	coefsEven, err := LagrangeCoefficients(allIDs)
	require.NoError(t, err)
	coefsOdd, err := LagrangeCoefficients(allIDs[:N-1])
	require.NoError(t, err)

	sumEven := rational.Zero()
	sumOdd := rational.Zero()
	for _, c := range coefsEven {
		sumEven = sumEven.Add(c)
	}
	for _, c := range coefsOdd {
		sumOdd = sumOdd.Add(c)
	}
	assert.True(t, sumEven.Equal(rational.One()))
	assert.True(t, sumOdd.Equal(rational.One()))
}

func TestLagrangeCoefficients_Small(t *testing.T) {
	// x = 1, 2, 3: l₀(0) = 3, l₁(0) = -3, l₂(0) = 1
	coefs, err := LagrangeCoefficients([]*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3)})
	require.NoError(t, err)
	require.Len(t, coefs, 3)
	assert.Equal(t, "3", coefs[0].String())
	assert.Equal(t, "-3", coefs[1].String())
	assert.Equal(t, "1", coefs[2].String())

	// x = 1, 3: l₀(0) = 3/2, l₁(0) = -1/2
	coefs, err = LagrangeCoefficients([]*big.Int{big.NewInt(1), big.NewInt(3)})
	require.NoError(t, err)
	assert.Equal(t, "3/2", coefs[0].String())
	assert.Equal(t, "-1/2", coefs[1].String())
}

func TestEvaluateAtZero_Line(t *testing.T) {
	secret, err := EvaluateAtZero(points(t, 1, 4, 2, 7))
	require.NoError(t, err)
	assert.Equal(t, "1", secret.String())
}

func TestEvaluateAtZero_SinglePoint(t *testing.T) {
	secret, err := EvaluateAtZero(points(t, 5, 42))
	require.NoError(t, err)
	assert.Equal(t, "42", secret.String())
}

func TestEvaluateAtZero_Empty(t *testing.T) {
	_, err := EvaluateAtZero(nil)
	assert.ErrorIs(t, err, ErrNoPoints)
}

func TestEvaluateAtZero_DuplicateX(t *testing.T) {
	_, err := EvaluateAtZero(points(t, 1, 4, 2, 7, 1, 5))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateX)

	var dupErr *DuplicateXError
	require.True(t, errors.As(err, &dupErr))
	assert.Equal(t, "1", dupErr.X.String())
	assert.Equal(t, 0, dupErr.I)
	assert.Equal(t, 2, dupErr.J)
}

func TestEvaluateAtZero_NonInteger(t *testing.T) {
	// the line through (1, 0) and (3, 1) crosses x = 0 at -1/2
	_, err := EvaluateAtZero(points(t, 1, 0, 3, 1))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNonIntegerResult)

	var nonInt *NonIntegerError
	require.True(t, errors.As(err, &nonInt))
	assert.Equal(t, "-1", nonInt.Num.String())
	assert.Equal(t, "2", nonInt.Den.String())
}

func TestEvaluateAtZero_TooFewPoints(t *testing.T) {
	// f(X) = 5 + 3X + 2X², but only two samples are supplied.
	// The result must be an exact integer or an explicit failure, never a rounded value.
	f := New(big.NewInt(5), big.NewInt(3), big.NewInt(2))
	ps := []Point{
		{X: big.NewInt(1), Y: f.Evaluate(big.NewInt(1))},
		{X: big.NewInt(2), Y: f.Evaluate(big.NewInt(2))},
	}
	secret, err := EvaluateAtZero(ps)
	if err != nil {
		assert.ErrorIs(t, err, ErrNonIntegerResult)
		return
	}
	// the line through (1, 10) and (2, 19) gives 1
	assert.Equal(t, "1", secret.String())
}

func TestEvaluateAtZero_RandomPolynomials(t *testing.T) {
	r := mrand.New(mrand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		k := r.Intn(12) + 1
		constant := sample.IntervalSigned(r, 256)
		f, err := Random(r, k-1, constant, 128)
		require.NoError(t, err)

		// k distinct x-coordinates, possibly negative
		seen := make(map[int64]bool)
		ps := make([]Point, 0, k)
		for len(ps) < k {
			x := r.Int63n(2000) - 1000
			if x == 0 || seen[x] {
				continue
			}
			seen[x] = true
			xBig := big.NewInt(x)
			ps = append(ps, Point{X: xBig, Y: f.Evaluate(xBig)})
		}

		secret, err := EvaluateAtZero(ps)
		require.NoError(t, err)
		assert.Equalf(t, 0, constant.Cmp(secret), "degree %d: want %s, got %s", k-1, constant, secret)
	}
}

func TestEvaluateAtZero_DoesNotModifyPoints(t *testing.T) {
	ps := points(t, 1, 4, 2, 7, 3, 12)
	before := make([]string, len(ps))
	for i, p := range ps {
		before[i] = p.String()
	}
	_, err := EvaluateAtZero(ps)
	require.NoError(t, err)
	for i, p := range ps {
		assert.Equal(t, before[i], p.String())
	}
}

func TestPoint_WriteTo(t *testing.T) {
	var a, b bytes.Buffer
	_, err := NewPoint(big.NewInt(3), big.NewInt(-5)).WriteTo(&a)
	require.NoError(t, err)
	_, err = NewPoint(big.NewInt(3), big.NewInt(5)).WriteTo(&b)
	require.NoError(t, err)
	assert.NotEqual(t, a.Bytes(), b.Bytes())

	_, err = Point{X: big.NewInt(1)}.WriteTo(&a)
	assert.Error(t, err)
}
