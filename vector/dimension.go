//go:build !embed768 && !embed1536

package vector

// MaxDimension is the largest dimension an Embedding can hold. It matches
// text-embedding-3-large.
const MaxDimension = 3072
