package logger_adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"wareland-api/internal/core/port"
)

func TestSlogAdapter_JSONCarriesFieldsAndError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, IsJSON: true, Level: slog.LevelDebug})

	logger.WithFields(port.Fields{"trace_id": "t-1"}).Error("query failed", errors.New("boom"), port.Fields{"component": "PropertyStore"})

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("unmarshal log line: %v (%s)", err, buf.String())
	}
	if record["msg"] != "query failed" || record["trace_id"] != "t-1" || record["component"] != "PropertyStore" {
		t.Fatalf("unexpected record %v", record)
	}
	if record["err"] != "boom" {
		t.Fatalf("expected error attribute, got %v", record)
	}
}

func TestSlogAdapter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelWarn})
	logger.Info("hidden", nil)
	logger.Debug("hidden", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected nothing below warn, got %q", buf.String())
	}
	logger.Warn("shown", nil)
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("expected warn record, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	if l, ok := ParseLevel("debug"); !ok || l != slog.LevelDebug {
		t.Fatalf("debug: got %v ok=%v", l, ok)
	}
	if l, ok := ParseLevel("WARN"); !ok || l != slog.LevelWarn {
		t.Fatalf("WARN: got %v ok=%v", l, ok)
	}
	if l, ok := ParseLevel("loud"); ok || l != slog.LevelInfo {
		t.Fatalf("unknown: got %v ok=%v", l, ok)
	}
}

type fakePoster struct {
	mu    sync.Mutex
	tags  []string
	posts []port.Fields
}

func (f *fakePoster) Post(tag string, message interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tags = append(f.tags, tag)
	f.posts = append(f.posts, message.(port.Fields))
	return nil
}

func (f *fakePoster) Close() error { return nil }

func TestFluentLoggerAdapter_FiltersAndMerges(t *testing.T) {
	poster := &fakePoster{}
	adapter := &FluentLoggerAdapter{client: poster, fields: port.Fields{"service_name": "wareland-api"}, minLevel: slog.LevelInfo}

	adapter.Debug("dropped", nil)
	child := adapter.WithFields(port.Fields{"trace_id": "abc"})
	child.Error("failed", errors.New("db down"), port.Fields{"method": "FindAll"})

	if len(poster.posts) != 1 {
		t.Fatalf("expected one record, got %d", len(poster.posts))
	}
	got := poster.posts[0]
	if poster.tags[0] != "error" || got["service_name"] != "wareland-api" || got["trace_id"] != "abc" ||
		got["method"] != "FindAll" || got["error"] != "db down" || got["message"] != "failed" {
		t.Fatalf("unexpected record %v (tag %s)", got, poster.tags[0])
	}
	if _, leaked := adapter.fields["trace_id"]; leaked {
		t.Fatal("WithFields must not mutate the parent logger")
	}
}

type countingLogger struct {
	port.LoggerPort
	count *int
}

func (c countingLogger) Info(msg string, fields port.Fields) { *c.count++ }

func (c countingLogger) WithFields(fields port.Fields) port.LoggerPort { return c }

func TestMultiLogger(t *testing.T) {
	if _, err := NewMultiloggerAdapter(); err == nil {
		t.Fatal("expected error without loggers")
	}
	var a, b int
	multi, err := NewMultiloggerAdapter(countingLogger{count: &a}, countingLogger{count: &b})
	if err != nil {
		t.Fatalf("NewMultiloggerAdapter: %v", err)
	}
	multi.WithFields(port.Fields{"k": "v"}).Info("hello", nil)
	if a != 1 || b != 1 {
		t.Fatalf("expected fan-out to both loggers, got %d and %d", a, b)
	}
}
