package types

import (
	"encoding/binary"
	"io"
)

// Threshold is the number k of shares needed to rebuild a secret.
// It writes itself as a fixed 8 byte big-endian value.
type Threshold uint64

// WriteTo implements io.WriterTo interface.
func (t Threshold) WriteTo(w io.Writer) (int64, error) {
	intBuffer := make([]byte, 8)
	binary.BigEndian.PutUint64(intBuffer, uint64(t))
	n, err := w.Write(intBuffer)
	return int64(n), err
}

// Domain implements hash.WriterToWithDomain.
func (Threshold) Domain() string { return "Threshold" }
