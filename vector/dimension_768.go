//go:build embed768

package vector

// MaxDimension is the largest dimension an Embedding can hold (BERT-sized
// models).
const MaxDimension = 768
