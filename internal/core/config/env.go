package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// ApplyEnvOverrides applies environment variable overrides to the configuration.
// Pattern: JSANALYZER_[SECTION]_[KEY] (e.g., JSANALYZER_SERVER_ADDRESS).
func ApplyEnvOverrides(cfg *Config) {
	// Parser
	setEnvString(&cfg.Parser.Dialect, "JSANALYZER_PARSER_DIALECT")

	// Lint
	setEnvBoolPtr(&cfg.Lint.Enabled, "JSANALYZER_LINT_ENABLED")
	setEnvString(&cfg.Lint.Command, "JSANALYZER_LINT_COMMAND")
	setEnvString(&cfg.Lint.Dir, "JSANALYZER_LINT_DIR")

	// Server
	setEnvString(&cfg.Server.Address, "JSANALYZER_SERVER_ADDRESS")
	setEnvDuration(&cfg.Server.ReadHeaderTimeout, "JSANALYZER_SERVER_READ_HEADER_TIMEOUT")
	setEnvBool(&cfg.Server.RateLimit.Enabled, "JSANALYZER_SERVER_RATE_LIMIT_ENABLED")
	setEnvInt(&cfg.Server.RateLimit.RequestsPerMinute, "JSANALYZER_SERVER_RATE_LIMIT_REQUESTS_PER_MINUTE")
	setEnvInt(&cfg.Server.RateLimit.Burst, "JSANALYZER_SERVER_RATE_LIMIT_BURST")
	setEnvList(&cfg.Server.TrustedProxies, "JSANALYZER_SERVER_TRUSTED_PROXIES")

	// Watch
	setEnvDuration(&cfg.Watch.Debounce, "JSANALYZER_WATCH_DEBOUNCE")

	// Observability
	setEnvBool(&cfg.Observability.Enabled, "JSANALYZER_OBSERVABILITY_ENABLED")
	setEnvBool(&cfg.Observability.EnableTracing, "JSANALYZER_OBSERVABILITY_ENABLE_TRACING")
	setEnvString(&cfg.Observability.OTLPEndpoint, "JSANALYZER_OBSERVABILITY_OTLP_ENDPOINT")
	setEnvString(&cfg.Observability.ServiceName, "JSANALYZER_OBSERVABILITY_SERVICE_NAME")

	// Logging
	setEnvString(&cfg.Logging.Level, "JSANALYZER_LOGGING_LEVEL")
	setEnvString(&cfg.Logging.Format, "JSANALYZER_LOGGING_FORMAT")

	normalize(cfg)
}

func setEnvString(target *string, key string) {
	if val, ok := os.LookupEnv(key); ok {
		slog.Debug("applying env override", "key", key, "value", val)
		*target = val
	}
}

func setEnvInt(target *int, key string) {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			slog.Debug("applying env override", "key", key, "value", val)
			*target = i
		}
	}
}

func setEnvBool(target *bool, key string) {
	if val, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(strings.ToLower(val))
		if err == nil {
			slog.Debug("applying env override", "key", key, "value", val)
			*target = b
		}
	}
}

func setEnvBoolPtr(target **bool, key string) {
	if val, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(strings.ToLower(val))
		if err == nil {
			slog.Debug("applying env override", "key", key, "value", val)
			*target = &b
		}
	}
}

func setEnvDuration(target *time.Duration, key string) {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			slog.Debug("applying env override", "key", key, "value", val)
			*target = d
		}
	}
}

// setEnvList splits a comma-separated value; an empty value clears the list.
func setEnvList(target *[]string, key string) {
	if val, ok := os.LookupEnv(key); ok {
		slog.Debug("applying env override", "key", key, "value", val)
		var items []string
		for _, item := range strings.Split(val, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		*target = items
	}
}
