package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var jsPatterns = []string{"*.js", "*.mjs", "*.cjs"}

func TestNewWatcher_RejectsNilCallback(t *testing.T) {
	w, err := NewWatcher(100*time.Millisecond, nil, nil, nil)
	if err == nil {
		t.Fatal("expected error for nil callback")
	}
	if !errors.Is(err, os.ErrInvalid) {
		t.Fatalf("expected os.ErrInvalid, got %v", err)
	}
	if w != nil {
		t.Fatal("expected nil watcher when callback is invalid")
	}
}

func TestNewWatcher_RejectsBadPattern(t *testing.T) {
	if _, err := NewWatcher(time.Millisecond, []string{"[a-"}, nil, func([]string) {}); err == nil {
		t.Fatal("expected error for malformed include pattern")
	}
	if _, err := NewWatcher(time.Millisecond, nil, []string{"[a-"}, func([]string) {}); err == nil {
		t.Fatal("expected error for malformed exclude pattern")
	}
}

func TestWatcher(t *testing.T) {
	tmpDir := t.TempDir()

	changedFiles := make(chan []string, 4)
	w, err := NewWatcher(100*time.Millisecond, jsPatterns, []string{"node_modules"}, func(paths []string) {
		changedFiles <- paths
	})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := w.Watch([]string{tmpDir}); err != nil {
		t.Fatal(err)
	}

	testFile := filepath.Join(tmpDir, "app.js")
	if err := os.WriteFile(testFile, []byte("var x = 1;"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case paths := <-changedFiles:
		if !contains(paths, testFile) {
			t.Errorf("expected %s in changed files %v", testFile, paths)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for file change event")
	}

	// Non-matching extensions are ignored.
	if err := os.WriteFile(filepath.Join(tmpDir, "notes.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case paths := <-changedFiles:
		for _, p := range paths {
			if filepath.Base(p) == "notes.txt" {
				t.Error("non-source file triggered event")
			}
		}
	case <-time.After(500 * time.Millisecond):
	}

	// New directory should be recursively watched after create.
	subdir := filepath.Join(tmpDir, "lib")
	if err := os.MkdirAll(subdir, 0o755); err != nil {
		t.Fatal(err)
	}
	subFile := filepath.Join(subdir, "util.mjs")
	if err := os.WriteFile(subFile, []byte("export const a = 1;"), 0o644); err != nil {
		t.Fatal(err)
	}

	timeout := time.After(2 * time.Second)
	for {
		select {
		case paths := <-changedFiles:
			if contains(paths, subFile) {
				return
			}
		case <-timeout:
			t.Fatal("timed out waiting for nested file event in newly created directory")
		}
	}
}

func TestWatcher_DebounceBatches(t *testing.T) {
	tmpDir := t.TempDir()

	changedFiles := make(chan []string, 8)
	w, err := NewWatcher(200*time.Millisecond, jsPatterns, nil, func(paths []string) {
		changedFiles <- paths
	})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := w.Watch([]string{tmpDir}); err != nil {
		t.Fatal(err)
	}

	a := filepath.Join(tmpDir, "a.js")
	b := filepath.Join(tmpDir, "b.cjs")
	for _, p := range []string{a, b, a} {
		if err := os.WriteFile(p, []byte("let v;"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	seen := map[string]bool{}
	timeout := time.After(2 * time.Second)
	for !seen[a] || !seen[b] {
		select {
		case paths := <-changedFiles:
			for _, p := range paths {
				seen[p] = true
			}
		case <-timeout:
			t.Fatalf("timed out waiting for batched events, saw %v", seen)
		}
	}
}

func TestWatcher_Filters(t *testing.T) {
	w, err := NewWatcher(10*time.Millisecond, jsPatterns, []string{"node_modules", ".git"}, func([]string) {})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if !w.shouldInclude("/src/index.js") {
		t.Fatal("expected .js to be included")
	}
	if !w.shouldInclude("/src/config.cjs") {
		t.Fatal("expected .cjs to be included")
	}
	if w.shouldInclude("/src/main.go") {
		t.Fatal("expected .go to be skipped")
	}
	if !w.shouldExcludeDir("/repo/node_modules") {
		t.Fatal("expected node_modules to be excluded")
	}
	if !w.shouldExcludeDir("/repo/.git") {
		t.Fatal("expected .git to be excluded")
	}
	if w.shouldExcludeDir("/repo/src") {
		t.Fatal("expected src to be watched")
	}
}

func TestWatcher_NoIncludeMatchesEverything(t *testing.T) {
	w, err := NewWatcher(10*time.Millisecond, nil, nil, func([]string) {})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if !w.shouldInclude("README.md") {
		t.Fatal("expected every file to be included without patterns")
	}
}

func contains(paths []string, want string) bool {
	for _, p := range paths {
		if p == want {
			return true
		}
	}
	return false
}
