package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	coreapp "jsanalyzer/internal/core/app"
	"jsanalyzer/internal/core/config"
	"jsanalyzer/internal/core/watcher"
)

// runWatch re-analyzes changed sources under roots until ctx is cancelled.
// Each file is its own request; nothing carries over between runs.
func runWatch(ctx context.Context, svc *coreapp.Service, cfg *config.Config, roots []string, stdout io.Writer) int {
	handler := newWatchHandler(ctx, svc, stdout)

	w, err := watcher.NewWatcher(cfg.Watch.Debounce, cfg.Watch.Include, cfg.Watch.ExcludeDirs, handler)
	if err != nil {
		slog.Error("failed to create watcher", "error", err)
		return 1
	}
	defer w.Close()

	if err := w.Watch(roots); err != nil {
		slog.Error("failed to start watcher", "roots", roots, "error", err)
		return 1
	}

	var obs *ObservabilityServer
	if cfg.Observability.Enabled {
		obs = NewObservabilityServer(cfg.Server.Address, coreapp.NewHealthService(svc))
		if err := obs.Start(ctx); err != nil {
			slog.Error("failed to start observability server", "error", err)
			return 1
		}
	}

	fmt.Fprintf(stdout, "Watching %v for changes (debounce %s)\n", roots, cfg.Watch.Debounce)
	<-ctx.Done()

	if obs != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := obs.Stop(shutdownCtx); err != nil {
			slog.Warn("observability server shutdown failed", "error", err)
		}
	}
	return 0
}

func newWatchHandler(ctx context.Context, svc *coreapp.Service, stdout io.Writer) func([]string) {
	return func(paths []string) {
		for _, path := range paths {
			if ctx.Err() != nil {
				return
			}
			data, err := os.ReadFile(path)
			if err != nil {
				// Files removed before the debounce fired are skipped.
				slog.Debug("skipping unreadable source", "path", path, "error", err)
				continue
			}
			report := svc.Analyze(ctx, string(data))
			fmt.Fprintf(stdout, "== %s (%s) ==\n", path, time.Now().Format("15:04:05"))
			printAnalysis(stdout, report)
			fmt.Fprintln(stdout)
		}
	}
}
