package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	coreapp "jsanalyzer/internal/core/app"
	"jsanalyzer/internal/core/config"
	"jsanalyzer/internal/shared/observability"
	"jsanalyzer/internal/shared/version"
	"jsanalyzer/internal/ui/tui"
	"jsanalyzer/internal/ui/web"

	"github.com/joho/godotenv"
)

const tracingFlushTimeout = 5 * time.Second

func Run(args []string) int {
	return run(args, os.Stdin, os.Stdout, os.Stderr)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.version {
		fmt.Fprintf(stdout, "jsanalyzer v%s\n", version.Version)
		return 0
	}

	if err := validateModeOptions(&opts); err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 2
	}

	_ = godotenv.Load()

	cfg, cfgPath, err := loadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return 1
	}
	config.ApplyEnvOverrides(cfg)
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(stderr, "invalid config after environment overrides: %v\n", err)
		return 1
	}

	cleanupLogs := configureLogging(cfg.Logging, opts.mode == modeTUI, opts.verbose, stderr)
	defer cleanupLogs()
	if cfgPath == "" {
		slog.Debug("no config file found, using defaults", "path", opts.configPath)
	} else {
		slog.Debug("config loaded", "path", cfgPath)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfig{
		Enabled:     cfg.Observability.Enabled && cfg.Observability.EnableTracing,
		Endpoint:    cfg.Observability.OTLPEndpoint,
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		slog.Error("failed to initialize tracing", "error", err)
		return 1
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), tracingFlushTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("tracing shutdown failed", "error", err)
		}
	}()

	svc, err := coreapp.New(cfg)
	if err != nil {
		slog.Error("failed to initialize analyzer", "error", err)
		return 1
	}

	switch opts.mode {
	case modeCLI:
		return runOnce(ctx, svc, opts, stdin, stdout)
	case modeWatch:
		return runWatch(ctx, svc, cfg, opts.args, stdout)
	case modeTUI:
		return runTUI(ctx, svc, opts, stdin)
	default:
		return runWeb(ctx, svc, cfg, stdout)
	}
}

func runWeb(ctx context.Context, svc *coreapp.Service, cfg *config.Config, stdout io.Writer) int {
	server, err := web.NewServer(cfg, svc, coreapp.NewHealthService(svc))
	if err != nil {
		slog.Error("failed to build web server", "error", err)
		return 1
	}
	if err := server.Start(ctx); err != nil {
		slog.Error("failed to start web server", "addr", cfg.Server.Address, "error", err)
		return 1
	}
	fmt.Fprintf(stdout, "JavaScript Code Analyzer listening on http://%s\n", server.Addr())

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Stop(shutdownCtx); err != nil {
		slog.Error("web server shutdown failed", "error", err)
		return 1
	}
	slog.Info("web server stopped")
	return 0
}

func runTUI(ctx context.Context, svc *coreapp.Service, opts cliOptions, stdin io.Reader) int {
	var source string
	if opts.file != "" {
		data, err := readSource(opts.file, stdin)
		if err != nil {
			slog.Error("failed to read source", "path", opts.file, "error", err)
			return 1
		}
		source = data
	}
	if err := tui.Run(ctx, svc, source); err != nil {
		slog.Error("failed to run UI", "error", err)
		return 1
	}
	return 0
}

// loadConfig reads path. A missing file at the default location falls back to
// the built-in defaults; a missing explicit path is an error. The returned
// path is empty when defaults were used.
func loadConfig(path string) (*config.Config, string, error) {
	cfg, err := config.Load(path)
	if err == nil {
		return cfg, path, nil
	}
	if path == defaultConfigPath && errors.Is(err, fs.ErrNotExist) {
		return config.DefaultConfig(), "", nil
	}
	return nil, "", err
}

func configureLogging(cfg config.Logging, uiMode, verbose bool, stderr io.Writer) func() {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	if verbose {
		level = slog.LevelDebug
	}

	output := stderr
	closeFn := func() {}
	if uiMode {
		// In UI mode, avoid terminal logs corrupting the TUI.
		logPath := resolveLogPath()
		if err := os.MkdirAll(filepath.Dir(logPath), 0o700); err != nil {
			fmt.Fprintf(stderr, "warning: failed to create log dir for %s: %v\n", logPath, err)
		} else if fi, err := os.Lstat(logPath); err == nil && (fi.Mode()&os.ModeSymlink) != 0 {
			fmt.Fprintf(stderr, "warning: refusing to write logs to symlink path %s\n", logPath)
		} else {
			f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
			if err == nil {
				output = f
				closeFn = func() { _ = f.Close() }
			} else {
				fmt.Fprintf(stderr, "warning: failed to open log file %s: %v\n", logPath, err)
			}
		}
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(output, handlerOpts)
	}
	slog.SetDefault(slog.New(handler))
	return closeFn
}

func resolveLogPath() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "jsanalyzer", "jsanalyzer.log")
	}

	home, err := os.UserHomeDir()
	if err == nil && home != "" {
		return filepath.Join(home, ".local", "state", "jsanalyzer", "jsanalyzer.log")
	}

	return "jsanalyzer.log"
}
