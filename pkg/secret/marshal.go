package secret

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"

	"github.com/Vinayak2k03/Hashira/pkg/math/polynomial"
	"github.com/fxamacker/cbor/v2"
)

// encMode writes every big.Int as a CBOR bignum, whatever its size.
var encMode, _ = cbor.EncOptions{BigIntConvert: cbor.BigIntConvertNone}.EncMode()

type resultMarshal struct {
	Secret    *big.Int
	Threshold int
	Points    []polynomial.Point
	Digest    []byte
}

// MarshalBinary encodes the result as CBOR.
func (r *Result) MarshalBinary() ([]byte, error) {
	return encMode.Marshal(&resultMarshal{
		Secret:    r.Secret,
		Threshold: r.Threshold,
		Points:    r.Points,
		Digest:    r.Digest,
	})
}

// UnmarshalBinary decodes a result produced by MarshalBinary, and checks that its digest matches its content.
func (r *Result) UnmarshalBinary(data []byte) error {
	var rm resultMarshal
	if err := cbor.Unmarshal(data, &rm); err != nil {
		return fmt.Errorf("secret: result: %w", err)
	}
	if rm.Secret == nil {
		return errors.New("secret: result: missing secret")
	}
	digest, err := Digest(rm.Threshold, rm.Points, rm.Secret)
	if err != nil {
		return fmt.Errorf("secret: result: %w", err)
	}
	if !bytes.Equal(digest, rm.Digest) {
		return errors.New("secret: result: digest mismatch")
	}
	*r = Result{
		Secret:    rm.Secret,
		Threshold: rm.Threshold,
		Points:    rm.Points,
		Digest:    rm.Digest,
	}
	return nil
}
