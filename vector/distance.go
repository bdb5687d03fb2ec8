package vector

import (
	"math"
)

// CosineSimilarity returns the cosine of the angle between e and other,
// clamped to [-1, 1]. A zero vector on either side yields 0. Components are
// accumulated in float64 in a single pass.
func (e *Embedding) CosineSimilarity(other *Embedding) (float64, error) {
	if e.dim != other.dim {
		return 0, &DimensionMismatchError{Left: int(e.dim), Right: int(other.dim)}
	}
	return cosine(e.components(), other.components()), nil
}

// L2Distance returns the Euclidean distance between e and other.
func (e *Embedding) L2Distance(other *Embedding) (float64, error) {
	if e.dim != other.dim {
		return 0, &DimensionMismatchError{Left: int(e.dim), Right: int(other.dim)}
	}
	return l2(e.components(), other.components()), nil
}

// Magnitude returns the L2 norm of e.
func (e *Embedding) Magnitude() float64 {
	return math.Sqrt(sumSquares(e.components()))
}

// Normalize scales e to unit length in place and returns e. A zero vector is
// rejected with a nil result and ErrDivideByZero, and e is left untouched.
func (e *Embedding) Normalize() (*Embedding, error) {
	mag := e.Magnitude()
	if mag == 0 {
		return nil, ErrDivideByZero
	}
	inv := 1 / mag
	vs := e.components()
	for i := range vs {
		vs[i] = float32(float64(vs[i]) * inv)
	}
	return e, nil
}

// cosine expects len(a) == len(b). NaN components propagate to the result.
func cosine(a, b []float32) float64 {
	var dot, na2, nb2 float64
	for i := range a {
		va := float64(a[i])
		vb := float64(b[i])
		dot += va * vb
		na2 += va * va
		nb2 += vb * vb
	}
	if na2 == 0 || nb2 == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(na2) * math.Sqrt(nb2))
	switch {
	case sim > 1:
		return 1
	case sim < -1:
		return -1
	}
	return sim
}

func l2(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}

func sumSquares(v []float32) float64 {
	var sum float64
	for _, x := range v {
		f := float64(x)
		sum += f * f
	}
	return sum
}
