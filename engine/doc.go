// Package engine exposes the vector.Embedding operations as deterministic
// SQLite scalar functions on the modernc.org/sqlite driver. Embeddings cross
// the SQL boundary as BLOBs (see vector.EncodeEmbedding); construction errors,
// dimension mismatches and zero-vector normalization surface as SQL errors.
package engine
