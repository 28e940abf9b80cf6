package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-content-site/pkg/interfaces"
)

type recordingLogger struct {
	fields   []map[string]any
	contexts []context.Context
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	r.fields = append(r.fields, copied)
	return r
}

func (r *recordingLogger) WithContext(ctx context.Context) interfaces.Logger {
	r.contexts = append(r.contexts, ctx)
	return r
}

type stubProvider struct {
	requested []string
	logger    interfaces.Logger
}

func (s *stubProvider) GetLogger(name string) interfaces.Logger {
	s.requested = append(s.requested, name)
	return s.logger
}

func TestModuleLoggerFallsBackToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "site.test")
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger fallback, got %T", logger)
	}
	logger = logger.WithContext(context.Background())
	logger.Debug("noop")
}

func TestModuleLoggerAnnotatesModule(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = GatewayLogger(provider)

	if len(provider.requested) != 1 || provider.requested[0] != gatewayModule {
		t.Fatalf("expected module %s, got %v", gatewayModule, provider.requested)
	}
	if len(rec.fields) != 1 || rec.fields[0]["module"] != gatewayModule {
		t.Fatalf("expected module field %s, got %v", gatewayModule, rec.fields)
	}
}

func TestModuleLoggerDefaultsToRootModule(t *testing.T) {
	provider := &stubProvider{logger: &recordingLogger{}}
	_ = ModuleLogger(provider, "  ")
	if provider.requested[0] != rootModule {
		t.Fatalf("expected default module %s, got %v", rootModule, provider.requested)
	}
}

func TestWithRequestContextSkipsEmptyValues(t *testing.T) {
	rec := &recordingLogger{}
	_ = WithRequestContext(rec, "posts", "", 0)

	if len(rec.fields) != 1 {
		t.Fatalf("expected one WithFields call, got %d", len(rec.fields))
	}
	got := rec.fields[0]
	if got[fieldResource] != "posts" {
		t.Fatalf("expected resource field, got %v", got)
	}
	if _, ok := got[fieldMethod]; ok {
		t.Fatalf("expected method to be skipped, got %v", got)
	}
	if _, ok := got[fieldStatus]; ok {
		t.Fatalf("expected status to be skipped, got %v", got)
	}
}

func TestContextFieldsMergeAndCopy(t *testing.T) {
	ctx := ContextWithFields(context.Background(), map[string]any{"request_id": "a"})
	ctx = ContextWithFields(ctx, map[string]any{"route": "/api/posts"})

	fields := ContextFields(ctx)
	if fields["request_id"] != "a" || fields["route"] != "/api/posts" {
		t.Fatalf("expected merged fields, got %v", fields)
	}

	fields["request_id"] = "mutated"
	if ContextFields(ctx)["request_id"] != "a" {
		t.Fatalf("expected ContextFields to return a copy")
	}
}

func TestFromContextMergesFields(t *testing.T) {
	rec := &recordingLogger{}
	ctx := ContextWithFields(context.Background(), map[string]any{"request_id": "abc"})

	_ = FromContext(ctx, rec)

	if len(rec.contexts) != 1 {
		t.Fatalf("expected logger to be bound to context")
	}
	if len(rec.fields) != 1 || rec.fields[0]["request_id"] != "abc" {
		t.Fatalf("expected request_id field, got %v", rec.fields)
	}
}
