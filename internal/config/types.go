package config

// Config is the top-level lorewiki configuration, corresponding to
// .lorewiki.yml.
type Config struct {
	// SnapshotDir holds the simulation snapshot files.
	SnapshotDir string `yaml:"snapshot_dir" koanf:"snapshot_dir"`
	// SnapshotGlobs selects snapshot files within SnapshotDir.
	SnapshotGlobs []string `yaml:"snapshot_globs" koanf:"snapshot_globs"`
	// DatabasePath is the SQLite archive location.
	DatabasePath string `yaml:"database_path" koanf:"database_path"`
	// OutputDir receives the exported static site.
	OutputDir string `yaml:"output_dir" koanf:"output_dir"`
	// SiteTitle names the wiki in exported pages and the HTTP API.
	SiteTitle string       `yaml:"site_title" koanf:"site_title"`
	Server    ServerConfig `yaml:"server" koanf:"server"`
	Search    SearchConfig `yaml:"search" koanf:"search"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port     int  `yaml:"port" koanf:"port"`
	AllowAll bool `yaml:"allow_all" koanf:"allow_all"`
}

// SearchConfig holds optional semantic search settings. Semantic search is
// off unless enabled; plain substring search always works.
type SearchConfig struct {
	Semantic       bool   `yaml:"semantic" koanf:"semantic"`
	EmbeddingModel string `yaml:"embedding_model" koanf:"embedding_model"`
	OpenAIKeyEnv   string `yaml:"openai_key_env" koanf:"openai_key_env"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SnapshotDir:   "world",
		SnapshotGlobs: []string{"**/*.json"},
		DatabasePath:  ".lorewiki/archive.db",
		OutputDir:     "site",
		SiteTitle:     "Lorewiki",
		Server: ServerConfig{
			Port: 8433,
		},
		Search: SearchConfig{
			Semantic:       false,
			EmbeddingModel: "text-embedding-3-small",
			OpenAIKeyEnv:   "OPENAI_API_KEY",
		},
	}
}
