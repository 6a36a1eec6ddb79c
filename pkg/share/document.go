package share

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"slices"

	"github.com/Vinayak2k03/Hashira/pkg/math/polynomial"
	"github.com/fxamacker/cbor/v2"
)

// keysField is the reserved top-level key holding the (n, k) parameters.
const keysField = "keys"

// Keys holds the sharing parameters of a document.
type Keys struct {
	// N is the total number of shares dealt. It is informational and may be 0 when absent.
	N int `json:"n,omitempty"`
	// K is the threshold: the number of shares needed to reconstruct the secret.
	K int `json:"k"`
}

// Document is a parsed input document: the sharing parameters and the shares,
// ordered by increasing index.
type Document struct {
	Keys   Keys
	Shares []EncodedShare
}

type encodedValue struct {
	Base  *Base   `json:"base"`
	Value *string `json:"value"`
}

// Parse reads a JSON document of the form
//
//	{"keys": {"n": 4, "k": 3}, "1": {"base": "10", "value": "4"}, ...}
func Parse(data []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("share: document: %w", err)
	}

	rawKeys, ok := raw[keysField]
	if !ok {
		return ErrMissingKeys
	}
	var keys Keys
	if err := json.Unmarshal(rawKeys, &keys); err != nil {
		return fmt.Errorf("share: document: %q: %w", keysField, err)
	}

	shares := make([]EncodedShare, 0, len(raw)-1)
	sortedKeys := make([]string, 0, len(raw))
	for key := range raw {
		sortedKeys = append(sortedKeys, key)
	}
	slices.Sort(sortedKeys)
	for _, key := range sortedKeys {
		if key == keysField {
			continue
		}
		index, ok := new(big.Int).SetString(key, 10)
		if !ok || index.Sign() <= 0 {
			return Error{Index: key, Err: ErrInvalidIndex}
		}
		var v encodedValue
		if err := json.Unmarshal(raw[key], &v); err != nil {
			return Error{Index: key, Err: err}
		}
		if v.Base == nil || v.Value == nil {
			return Error{Index: key, Err: errors.New("share: both \"base\" and \"value\" are required")}
		}
		shares = append(shares, EncodedShare{Index: index, Base: *v.Base, Value: *v.Value})
	}
	slices.SortStableFunc(shares, func(a, b EncodedShare) int {
		return a.Index.Cmp(b.Index)
	})

	*d = Document{Keys: keys, Shares: shares}
	return nil
}

// MarshalJSON implements json.Marshaler, writing "keys" first and then every share by increasing index.
func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	data, err := json.Marshal(d.Keys)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(&buf, "%q:%s", keysField, data)
	for _, s := range d.Shares {
		if s.Index == nil || s.Index.Sign() <= 0 {
			return nil, Error{Index: s.indexString(), Err: ErrInvalidIndex}
		}
		data, err = json.Marshal(encodedValue{Base: &s.Base, Value: &s.Value})
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, ",%q:%s", s.Index.String(), data)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encMode writes every big.Int as a CBOR bignum, whatever its size.
var encMode, _ = cbor.EncOptions{BigIntConvert: cbor.BigIntConvertNone}.EncMode()

// documentMarshal is the CBOR form of a Document.
type documentMarshal struct {
	N, K   int
	Shares []EncodedShare
}

// MarshalBinary encodes the document as CBOR.
func (d *Document) MarshalBinary() ([]byte, error) {
	return encMode.Marshal(&documentMarshal{
		N:      d.Keys.N,
		K:      d.Keys.K,
		Shares: d.Shares,
	})
}

// UnmarshalBinary decodes a document produced by MarshalBinary.
func (d *Document) UnmarshalBinary(data []byte) error {
	var dm documentMarshal
	if err := cbor.Unmarshal(data, &dm); err != nil {
		return fmt.Errorf("share: document: %w", err)
	}
	for _, s := range dm.Shares {
		if s.Index == nil || s.Index.Sign() <= 0 {
			return Error{Index: s.indexString(), Err: ErrInvalidIndex}
		}
	}
	*d = Document{
		Keys:   Keys{N: dm.N, K: dm.K},
		Shares: dm.Shares,
	}
	return nil
}

// Validate checks the threshold, and that there are at least k shares.
func (d *Document) Validate() error {
	if d.Keys.K < 1 {
		return ErrInvalidThreshold
	}
	if len(d.Shares) < d.Keys.K {
		return &InsufficientSharesError{Have: len(d.Shares), Need: d.Keys.K}
	}
	return nil
}

// Points selects the first k points of the document, by increasing x.
func (d *Document) Points() ([]polynomial.Point, error) {
	return SelectPoints(d.Shares, d.Keys.K)
}
