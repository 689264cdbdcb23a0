package config

import (
	"time"
)

type Config struct {
	Version       int           `toml:"version"`
	Parser        Parser        `toml:"parser"`
	Lint          Lint          `toml:"lint"`
	Server        Server        `toml:"server"`
	Watch         Watch         `toml:"watch"`
	Observability Observability `toml:"observability"`
	Logging       Logging       `toml:"logging"`
}

// Parser selects the tree-sitter grammar used for pasted sources.
type Parser struct {
	Dialect string `toml:"dialect"` // javascript, typescript, tsx
}

// Lint configures the external style checker. The rule set is whatever the
// linter applies by default; only the invocation is configurable.
type Lint struct {
	Enabled *bool    `toml:"enabled"`
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
	Dir     string   `toml:"dir"`
}

type Server struct {
	Address           string        `toml:"address"`
	ReadHeaderTimeout time.Duration `toml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `toml:"shutdown_timeout"`
	RateLimit         RateLimit     `toml:"rate_limit"`
	// Peers (CIDR or address) whose X-Forwarded-For / X-Real-IP headers are
	// believed when attributing requests to a client.
	TrustedProxies []string `toml:"trusted_proxies"`
}

type RateLimit struct {
	Enabled           bool `toml:"enabled"`
	RequestsPerMinute int  `toml:"requests_per_minute"`
	Burst             int  `toml:"burst"`
}

type Watch struct {
	Debounce    time.Duration `toml:"debounce"`
	Include     []string      `toml:"include"`      // Glob patterns matched against file base names
	ExcludeDirs []string      `toml:"exclude_dirs"` // Glob patterns matched against directory base names
}

type Observability struct {
	Enabled       bool   `toml:"enabled"`
	EnableTracing bool   `toml:"enable_tracing"`
	OTLPEndpoint  string `toml:"otlp_endpoint"`
	ServiceName   string `toml:"service_name"`
}

type Logging struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // text, json
}

// LintEnabled reports whether the style checker runs; it defaults to on.
func (l Lint) LintEnabled() bool {
	return l.Enabled == nil || *l.Enabled
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}
