package debug

// Debug runtime metrics logger. Started only when config.Debug is true.
// Emits goroutine count, heap and stack usage and process RSS at a fixed interval,
// plus whatever attributes the application adds (cache sizes, capture stats).

import (
	"context"
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"
)

// AttrsFunc returns extra attributes for each sample. It runs on the logger goroutine
// and must be safe to call from there.
type AttrsFunc func() []slog.Attr

// StartRuntimeLogger launches a ticker that logs runtime stats until ctx is done.
func StartRuntimeLogger(ctx context.Context, interval time.Duration, logger *slog.Logger, extra AttrsFunc) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
		var rssErrLogged bool
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
			}
			attrs, err := Sample(samples)
			if err != nil && !rssErrLogged {
				logger.Warn("runtime: rss unavailable", slog.String("err", err.Error()))
				rssErrLogged = true
			}
			if extra != nil {
				attrs = append(attrs, extra()...)
			}
			logger.LogAttrs(ctx, slog.LevelInfo, "runtime", attrs...)
		}
	}()
}

// Sample reads the runtime metrics once. The returned error only concerns RSS;
// the other attributes are always filled.
func Sample(samples []metrics.Sample) ([]slog.Attr, error) {
	if len(samples) == 0 {
		samples = []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
	}
	metrics.Read(samples)
	goroutines := uint64(runtime.NumGoroutine())
	if samples[0].Value.Kind() == metrics.KindUint64 {
		goroutines = samples[0].Value.Uint64()
	}
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	rss, err := processRSS()
	return []slog.Attr{
		slog.Uint64("goroutines", goroutines),
		slog.Uint64("heap_alloc", ms.HeapAlloc),
		slog.Uint64("heap_inuse", ms.HeapInuse),
		slog.Uint64("stack_inuse", ms.StackInuse),
		slog.Uint64("num_gc", uint64(ms.NumGC)),
		slog.Uint64("rss", rss),
	}, err
}
