package config

// DefaultDatabasePath keeps SQL sessions in memory.
const DefaultDatabasePath = ":memory:"

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = DefaultDatabasePath
	}
}
