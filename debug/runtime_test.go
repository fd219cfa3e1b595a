package debug

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
)

type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

func TestSample_HasCoreAttrs(t *testing.T) {
	attrs, _ := Sample(nil)
	keys := map[string]bool{}
	for _, a := range attrs {
		keys[a.Key] = true
	}
	for _, k := range []string{"goroutines", "heap_alloc", "rss"} {
		if !keys[k] {
			t.Fatalf("missing attr %q in %v", k, attrs)
		}
	}
}

func TestStartRuntimeLogger_IncludesExtraAttrs(t *testing.T) {
	buf := &syncBuffer{}
	logger := slog.New(slog.NewJSONHandler(buf, nil))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	StartRuntimeLogger(ctx, 5*time.Millisecond, logger, func() []slog.Attr {
		return []slog.Attr{slog.Int("cached_images", 7)}
	})
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(buf.String(), `"cached_images":7`) {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("extra attrs not logged: %s", buf.String())
}
