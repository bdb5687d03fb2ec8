package vector

import (
	"math"
	"strconv"
	"strings"
	"unsafe"
)

// Number is the set of element types accepted by From.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Embedding is a dense float32 vector with a declared dimension. Components
// are stored inline; the region past the dimension is always zero, so a plain
// value copy yields an independent Embedding.
//
// An Embedding is safe for concurrent reads. Normalize needs exclusive access.
type Embedding struct {
	dim    uint16
	values [MaxDimension]float32
}

// New returns an Embedding holding a copy of values.
func New(values []float32) (*Embedding, error) {
	return From(values)
}

// NewWithWidth is like New but also requires exactly width components.
func NewWithWidth(values []float32, width int) (*Embedding, error) {
	if len(values) != width {
		return nil, dimensionError(ErrWidthMismatch, len(values), width)
	}
	return New(values)
}

// From builds an Embedding from any numeric slice, coercing each element to
// float32.
func From[T Number](values []T) (*Embedding, error) {
	if err := checkDimension(len(values)); err != nil {
		return nil, err
	}
	e := &Embedding{dim: uint16(len(values))}
	for i, v := range values {
		e.values[i] = float32(v)
	}
	return e, nil
}

// FromValues builds an Embedding from loosely typed values, as produced by a
// JSON decoder or a host binding. Elements must be Go numbers or json.Number.
func FromValues(values []any) (*Embedding, error) {
	if err := checkDimension(len(values)); err != nil {
		return nil, err
	}
	e := &Embedding{dim: uint16(len(values))}
	for i, v := range values {
		f, ok := toFloat32(v)
		if !ok {
			return nil, &TypeError{Index: i, Value: v}
		}
		e.values[i] = f
	}
	return e, nil
}

func checkDimension(n int) error {
	if n < 1 {
		return dimensionError(ErrDimensionTooSmall, n, 1)
	}
	if n > MaxDimension {
		return dimensionError(ErrDimensionTooLarge, n, MaxDimension)
	}
	return nil
}

// Dimension returns the number of valid components.
func (e *Embedding) Dimension() int { return int(e.dim) }

// At returns component i. It panics when i is outside [0, Dimension()).
func (e *Embedding) At(i int) float32 {
	return e.values[:e.dim][i]
}

// Values returns a fresh copy of the components.
func (e *Embedding) Values() []float32 {
	out := make([]float32, e.dim)
	copy(out, e.values[:e.dim])
	return out
}

// Clone returns an independent copy of e.
func (e *Embedding) Clone() *Embedding {
	c := *e
	return &c
}

// Equal reports whether both embeddings have the same dimension and
// bit-identical components.
func (e *Embedding) Equal(other *Embedding) bool {
	if e.dim != other.dim {
		return false
	}
	for i, v := range e.values[:e.dim] {
		if math.Float32bits(v) != math.Float32bits(other.values[i]) {
			return false
		}
	}
	return true
}

// MemSize reports the storage held by one Embedding. It does not depend on
// the dimension.
func (e *Embedding) MemSize() int {
	return int(unsafe.Sizeof(*e))
}

// String formats the embedding as Embedding(dim: N, values: [...]).
func (e *Embedding) String() string {
	var b strings.Builder
	b.WriteString("Embedding(dim: ")
	b.WriteString(strconv.Itoa(int(e.dim)))
	b.WriteString(", values: [")
	for i, v := range e.values[:e.dim] {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
	}
	b.WriteString("])")
	return b.String()
}

func (e *Embedding) components() []float32 { return e.values[:e.dim] }
