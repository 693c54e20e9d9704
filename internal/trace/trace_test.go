package trace

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func resetTracing(t *testing.T) {
	t.Cleanup(func() {
		_ = Shutdown(context.Background())
		tracer, tracerProvider, enabled = nil, nil, false
	})
}

func TestInitWithWriterRecordsSpans(t *testing.T) {
	resetTracing(t)

	var buf bytes.Buffer
	if err := InitWithWriter(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Enabled() {
		t.Fatal("Expected tracing to be enabled")
	}

	ctx, span := StartSpan(context.Background(), "assistant.process")
	traceID, spanID, ok := GetTraceFields(ctx)
	if !ok {
		t.Fatal("Expected trace fields inside a span")
	}
	if len(traceID) != 32 || len(spanID) != 16 {
		t.Errorf("Unexpected ids trace=%q span=%q", traceID, spanID)
	}
	span.End()

	if err := Shutdown(context.Background()); err != nil {
		t.Fatalf("unexpected shutdown error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "assistant.process") || !strings.Contains(out, traceID) {
		t.Errorf("Expected the span to be exported, got %s", out)
	}
}

func TestGetTraceFieldsWithoutSpan(t *testing.T) {
	resetTracing(t)

	var buf bytes.Buffer
	if err := InitWithWriter(&buf); err != nil {
		t.Fatal(err)
	}
	if _, _, ok := GetTraceFields(context.Background()); ok {
		t.Error("Expected no trace fields outside a span")
	}
}

func TestInitDisabledByDefault(t *testing.T) {
	resetTracing(t)
	t.Setenv("LOG_TRACING_ENABLED", "")

	if err := Init(); err != nil {
		t.Fatal(err)
	}
	if Enabled() {
		t.Error("Expected tracing to be off")
	}

	ctx, span := StartSpan(context.Background(), "noop")
	defer span.End()
	if span.SpanContext().IsValid() {
		t.Error("Expected a no-op span when tracing is off")
	}
	if _, _, ok := GetTraceFields(ctx); ok {
		t.Error("Expected no trace fields when tracing is off")
	}
}
