// Package secret reconstructs the constant term of a sharing polynomial from an input document.
package secret

import (
	"fmt"
	"math/big"

	"github.com/Vinayak2k03/Hashira/pkg/math/polynomial"
	"github.com/Vinayak2k03/Hashira/pkg/share"
	"github.com/rs/zerolog"
)

// Result is the outcome of a successful reconstruction.
type Result struct {
	// Secret is f(0).
	Secret *big.Int
	// Threshold is the number of points used.
	Threshold int
	// Points are the points f(0) was interpolated from, by increasing x.
	Points []polynomial.Point
	// Digest fingerprints the threshold, the points and the secret.
	Digest []byte
}

// String returns the secret in base 10.
func (r *Result) String() string {
	return r.Secret.String()
}

type options struct {
	log zerolog.Logger
}

// Option configures Reconstruct.
type Option func(*options)

// WithLogger sets the logger used to report progress. By default nothing is logged.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// Reconstruct selects the first k shares of the document by index, decodes them,
// and interpolates the secret at x = 0.
func Reconstruct(doc *share.Document, opts ...Option) (*Result, error) {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.log.With().Int("k", doc.Keys.K).Int("shares", len(doc.Shares)).Logger()

	if n := doc.Keys.N; n != 0 && n != len(doc.Shares) {
		log.Warn().Int("n", n).Msg("document announces a different number of shares")
	}

	points, err := doc.Points()
	if err != nil {
		return nil, fmt.Errorf("secret: %w", err)
	}
	log.Debug().Stringer("first", points[0]).Stringer("last", points[len(points)-1]).Msg("points selected")

	s, err := polynomial.EvaluateAtZero(points)
	if err != nil {
		log.Debug().Err(err).Msg("interpolation failed")
		return nil, fmt.Errorf("secret: %w", err)
	}

	digest, err := Digest(doc.Keys.K, points, s)
	if err != nil {
		return nil, fmt.Errorf("secret: %w", err)
	}
	log.Debug().Int("bits", s.BitLen()).Msg("secret reconstructed")

	return &Result{
		Secret:    s,
		Threshold: doc.Keys.K,
		Points:    points,
		Digest:    digest,
	}, nil
}

// ReconstructJSON parses a JSON document and reconstructs its secret.
func ReconstructJSON(data []byte, opts ...Option) (*Result, error) {
	doc, err := share.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("secret: %w", err)
	}
	return Reconstruct(doc, opts...)
}
