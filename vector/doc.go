// Package vector defines the Embedding type, a bounded-capacity dense vector
// of float32 components, and the numeric operations over it:
//   - construction and validation from plain sequences (New, From, FromValues, ParseJSON)
//   - export (Values, MarshalJSON) and element access (At)
//   - cosine similarity, L2 distance and magnitude with float64 accumulation
//   - in-place normalization
//   - a BLOB encoding used to pass embeddings through SQL
//
// Every Embedding reserves MaxDimension components inline; slots past the
// declared dimension are always zero. MaxDimension is fixed at build time
// (default 3072, tags embed768 and embed1536 select the smaller widths).
package vector
