package vector

import (
	"encoding/binary"
	"fmt"
	"math"
)

// EncodeEmbedding encodes e into a BLOB suitable for passing through SQLite.
// The encoding is a little-endian sequence of IEEE 754 float32 values without
// a length prefix; the dimension is derived from the BLOB size on decode and
// the zero padding is never written.
func EncodeEmbedding(e *Embedding) []byte {
	vs := e.components()
	b := make([]byte, len(vs)*4)
	for i, v := range vs {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(v))
	}
	return b
}

// DecodeEmbedding decodes a BLOB produced by EncodeEmbedding. The decoded
// dimension is subject to the same limits as New.
func DecodeEmbedding(b []byte) (*Embedding, error) {
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("%w: blob length %d is not a multiple of 4", ErrValidation, len(b))
	}
	n := len(b) / 4
	if err := checkDimension(n); err != nil {
		return nil, err
	}
	e := &Embedding{dim: uint16(n)}
	for i := 0; i < n; i++ {
		e.values[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return e, nil
}
