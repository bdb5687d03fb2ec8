package engine

import (
	"path/filepath"
	"testing"

	"github.com/viant/vecembed/vector"
)

// TestOpen_FunctionsVisible checks that connections opened after registration
// see the vec_* functions, and that embedding BLOBs survive a reopen of a
// file-backed database.
func TestOpen_FunctionsVisible(t *testing.T) {
	if err := RegisterVectorFunctions(); err != nil {
		t.Fatalf("RegisterVectorFunctions failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "vectors.sqlite")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open(%s) failed: %v", path, err)
	}
	var maxDim int
	if err := db.QueryRow(`SELECT vec_max_dim()`).Scan(&maxDim); err != nil {
		t.Fatalf("vec_max_dim after Open failed: %v", err)
	}
	if maxDim != vector.MaxDimension {
		t.Fatalf("vec_max_dim = %d, want %d", maxDim, vector.MaxDimension)
	}
	if _, err := db.Exec(`CREATE TABLE items(id INTEGER PRIMARY KEY, embedding BLOB)`); err != nil {
		t.Fatalf("CREATE TABLE failed: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO items(id, embedding) VALUES (1, vec_from_json('[3, 4]'))`); err != nil {
		t.Fatalf("INSERT failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	db, err = Open(path)
	if err != nil {
		t.Fatalf("reopen %s failed: %v", path, err)
	}
	defer db.Close()
	var mag float64
	if err := db.QueryRow(`SELECT vec_magnitude(embedding) FROM items WHERE id = 1`).Scan(&mag); err != nil {
		t.Fatalf("vec_magnitude after reopen failed: %v", err)
	}
	if mag != 5 {
		t.Fatalf("vec_magnitude after reopen = %v, want 5", mag)
	}
}
