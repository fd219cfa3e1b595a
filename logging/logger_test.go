package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestNewLogger_WritesJSONAtLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, slog.LevelInfo).With("session", "abc")
	log.Debug("hidden")
	log.Info("catalog ready", "frames", 3)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected one JSON record, got %q: %v", buf.String(), err)
	}
	if rec["msg"] != "catalog ready" || rec["session"] != "abc" || rec["frames"] != float64(3) {
		t.Fatalf("unexpected record %v", rec)
	}
}

func TestLevel(t *testing.T) {
	if Level(true, slog.LevelWarn) != slog.LevelDebug {
		t.Fatalf("debug flag should select debug level")
	}
	if Level(false, slog.LevelWarn) != slog.LevelWarn {
		t.Fatalf("base level not kept")
	}
}
