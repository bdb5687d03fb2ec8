package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/viant/vecembed/vector"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vecembed.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvWidth, "")
	t.Setenv(EnvDatabase, "")
	t.Setenv(EnvDebug, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.DatabasePath != DefaultDatabasePath {
		t.Errorf("DatabasePath = %q, want %q", cfg.DatabasePath, DefaultDatabasePath)
	}
	if cfg.Width != 0 || cfg.Debug || cfg.Human {
		t.Errorf("unexpected non-zero config: %+v", cfg)
	}
}

func TestLoad_File(t *testing.T) {
	t.Setenv(EnvWidth, "")
	t.Setenv(EnvDatabase, "")
	t.Setenv(EnvDebug, "")

	path := writeConfig(t, "debug: true\nwidth: 768\ndatabase_path: ./vectors.db\nhuman: true\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !cfg.Debug || cfg.Width != 768 || cfg.DatabasePath != "./vectors.db" || !cfg.Human {
		t.Errorf("Load = %+v", cfg)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "width: 768\ndatabase_path: file.db\n")
	t.Setenv(EnvWidth, "3")
	t.Setenv(EnvDatabase, ":memory:")
	t.Setenv(EnvDebug, "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Width != 3 {
		t.Errorf("Width = %d, want 3", cfg.Width)
	}
	if cfg.DatabasePath != ":memory:" {
		t.Errorf("DatabasePath = %q, want :memory:", cfg.DatabasePath)
	}
	if !cfg.Debug {
		t.Errorf("Debug = false, want true")
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
			t.Fatal("Load(absent) succeeded, want error")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "width: [\n")
		if _, err := Load(path); err == nil {
			t.Fatal("Load(malformed) succeeded, want error")
		}
	})

	t.Run("bad env width", func(t *testing.T) {
		t.Setenv(EnvWidth, "wide")
		if _, err := Load(""); err == nil {
			t.Fatal("Load with VECEMBED_WIDTH=wide succeeded, want error")
		}
	})

	t.Run("width above maximum", func(t *testing.T) {
		t.Setenv(EnvWidth, "")
		path := writeConfig(t, "width: 100000\n")
		if _, err := Load(path); err == nil {
			t.Fatalf("Load(width above %d) succeeded, want error", vector.MaxDimension)
		}
	})
}
