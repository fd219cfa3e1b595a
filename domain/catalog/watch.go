package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports image and label files that changed on disk. Bursts of events on
// one file are collapsed into a single report once the file has been quiet for the
// settle period. Reports carry base file names; map them to frames with IDsForFile.
type Watcher struct {
	w       *fsnotify.Watcher
	log     *slog.Logger
	out     chan string
	settle  time.Duration
	tick    time.Duration
	stopped chan struct{}
	once    sync.Once
}

// NewWatcher watches every non-empty directory in dirs.
func NewWatcher(log *slog.Logger, dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watcher: %w", err)
	}
	seen := map[string]bool{}
	for _, d := range dirs {
		if d == "" || seen[filepath.Clean(d)] {
			continue
		}
		seen[filepath.Clean(d)] = true
		if err := w.Add(d); err != nil {
			w.Close()
			return nil, fmt.Errorf("watch %s: %w", d, err)
		}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Watcher{
		w:       w,
		log:     log,
		out:     make(chan string, 256),
		settle:  300 * time.Millisecond,
		tick:    250 * time.Millisecond,
		stopped: make(chan struct{}),
	}, nil
}

// Changes delivers settled file names. It is closed when the watcher stops.
func (w *Watcher) Changes() <-chan string {
	return w.out
}

// Start runs the event loop until ctx is cancelled or Close is called.
func (w *Watcher) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.out)
	pending := map[string]time.Time{}
	ticker := time.NewTicker(w.tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopped:
			return
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			pending[filepath.Base(ev.Name)] = time.Now()
		case <-ticker.C:
			now := time.Now()
			for name, t := range pending {
				if now.Sub(t) < w.settle {
					continue
				}
				select {
				case w.out <- name:
					delete(pending, name)
				default:
					// Consumer is behind; retry on the next tick.
				}
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", "error", err)
		}
	}
}

// Close stops the watcher and releases its descriptors.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.stopped)
		err = w.w.Close()
	})
	return err
}

// Drain returns every change currently queued without blocking.
func Drain(ch <-chan string) []string {
	var names []string
	for {
		select {
		case n, ok := <-ch:
			if !ok {
				return names
			}
			names = append(names, n)
		default:
			return names
		}
	}
}
