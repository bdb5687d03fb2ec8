//go:build embed1536 && !embed768

package vector

// MaxDimension is the largest dimension an Embedding can hold
// (text-embedding-ada-002).
const MaxDimension = 1536
