package config

import (
	"fmt"
	"net"
	"strings"

	"jsanalyzer/internal/shared/util"

	"github.com/gobwas/glob"
)

var supportedDialects = map[string]bool{
	"javascript": true,
	"typescript": true,
	"tsx":        true,
}

func validateVersion(cfg *Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported config version %d; supported version is 1", cfg.Version)
	}
	return nil
}

func validateParser(cfg *Config) error {
	if !supportedDialects[cfg.Parser.Dialect] {
		return fmt.Errorf("parser.dialect must be one of: javascript, typescript, tsx; got %q", cfg.Parser.Dialect)
	}
	return nil
}

func validateLint(cfg *Config) error {
	if !cfg.Lint.LintEnabled() {
		return nil
	}
	if cfg.Lint.Command == "" {
		return fmt.Errorf("lint.command must not be empty when linting is enabled")
	}
	return nil
}

func validateServer(cfg *Config) error {
	if _, _, err := net.SplitHostPort(cfg.Server.Address); err != nil {
		return fmt.Errorf("server.address %q is invalid: %w", cfg.Server.Address, err)
	}
	if cfg.Server.RateLimit.Enabled && cfg.Server.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("server.rate_limit.requests_per_minute must be > 0")
	}
	if cfg.Server.RateLimit.Enabled && cfg.Server.RateLimit.Burst <= 0 {
		return fmt.Errorf("server.rate_limit.burst must be > 0")
	}
	if _, err := util.ParseTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return fmt.Errorf("server.trusted_proxies: %w", err)
	}
	return nil
}

func validateWatch(cfg *Config) error {
	if cfg.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	for _, pattern := range cfg.Watch.Include {
		if _, err := glob.Compile(pattern); err != nil {
			return fmt.Errorf("watch.include pattern %q is invalid: %w", pattern, err)
		}
	}
	for _, pattern := range cfg.Watch.ExcludeDirs {
		if _, err := glob.Compile(pattern); err != nil {
			return fmt.Errorf("watch.exclude_dirs pattern %q is invalid: %w", pattern, err)
		}
	}
	return nil
}

func validateObservability(cfg *Config) error {
	if cfg.Observability.EnableTracing && strings.TrimSpace(cfg.Observability.OTLPEndpoint) == "" {
		return fmt.Errorf("observability.otlp_endpoint must be set when tracing is enabled")
	}
	return nil
}

func validateLogging(cfg *Config) error {
	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}
	switch cfg.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json; got %q", cfg.Logging.Format)
	}
	return nil
}
