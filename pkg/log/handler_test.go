package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	handler := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(WrapByErrFmtHandler(handler))
}

// TestErrFmtHandler_Stacktrace verifies that errors created with
// cockroachdb/errors carry their stack trace as a dedicated attribute.
func TestErrFmtHandler_Stacktrace(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	err := errors.New("boom")
	logger.Error("operation failed", ErrAttr(err))

	var entry map[string]interface{}
	if jsonErr := json.Unmarshal(buf.Bytes(), &entry); jsonErr != nil {
		t.Fatalf("Failed to parse log output: %v", jsonErr)
	}

	stack, ok := entry[StacktraceAttrKey].(string)
	if !ok || stack == "" {
		t.Fatal("Expected non-empty stacktrace attribute in log output")
	}

	if !strings.Contains(stack, "handler_test.go") {
		t.Errorf("Stacktrace should reference the error origin, got: %s", stack)
	}
}

// TestErrFmtHandler_PlainError verifies that plain errors without embedded
// stack traces still log cleanly, just without the stacktrace attribute.
func TestErrFmtHandler_PlainError(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	logger.Warn("degenerate resample skipped", SkippedKey, 3)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse log output: %v", err)
	}

	if _, present := entry[StacktraceAttrKey]; present {
		t.Error("Stacktrace attribute should be absent when no error is logged")
	}

	if got, ok := entry[SkippedKey].(float64); !ok || got != 3 {
		t.Errorf("Expected %s=3 in log output, got %v", SkippedKey, entry[SkippedKey])
	}
}

func TestErrFmtHandler_Enabled(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	wrapped := WrapByErrFmtHandler(handler)

	ctx := context.Background()
	if wrapped.Enabled(ctx, slog.LevelDebug) {
		t.Error("Debug should be disabled at Info level")
	}
	if !wrapped.Enabled(ctx, slog.LevelError) {
		t.Error("Error should be enabled at Info level")
	}
}

func TestToLogLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  slog.Level
	}{
		{name: "info", level: "info", want: slog.LevelInfo},
		{name: "debug", level: "debug", want: slog.LevelDebug},
		{name: "warn", level: "warn", want: slog.LevelWarn},
		{name: "error", level: "error", want: slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToLogLevel(tt.level); got != tt.want {
				t.Errorf("ToLogLevel(%q) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}
