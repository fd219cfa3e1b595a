package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestWatcher(t *testing.T, dir string) *Watcher {
	t.Helper()
	w, err := NewWatcher(nil, dir)
	if err != nil {
		t.Fatalf("watcher: %v", err)
	}
	w.settle = 100 * time.Millisecond
	w.tick = 20 * time.Millisecond
	return w
}

func waitClosed(t *testing.T, ch <-chan string) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatalf("changes channel not closed")
		}
	}
}

func TestWatcher_BurstSettlesToOneReport(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t, dir)
	w.Start(context.Background())

	path := filepath.Join(dir, "a.txt")
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte("1 0.5 0.5 0.1 0.1\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case name := <-w.Changes():
		if name != "a.txt" {
			t.Fatalf("name=%q want a.txt", name)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no settled change reported")
	}
	time.Sleep(3 * w.settle)
	if extra := Drain(w.Changes()); len(extra) != 0 {
		t.Fatalf("burst reported more than once: %v", extra)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	waitClosed(t, w.Changes())
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

func TestWatcher_ContextCancelStops(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t, dir)
	defer w.Close()
	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)
	cancel()
	waitClosed(t, w.Changes())
}

func TestWatcher_MissingDirectory(t *testing.T) {
	if _, err := NewWatcher(nil, filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
