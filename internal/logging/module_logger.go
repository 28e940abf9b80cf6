package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-content-site/pkg/interfaces"
)

const (
	rootModule       = "site"
	gatewayModule    = "site.gateway"
	contentModule    = "site.content"
	categoriesModule = "site.categories"
	exercisesModule  = "site.exercises"
	httpModule       = "site.http"
)

const (
	fieldResource = "resource"
	fieldMethod   = "method"
	fieldStatus   = "status"
)

// ModuleLogger returns a logger scoped to module, falling back to a no-op
// logger when provider is nil or returns nothing. The module name is attached
// as a structured field.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if strings.TrimSpace(module) == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// GatewayLogger returns the logger used for outbound store requests.
func GatewayLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, gatewayModule)
}

// ContentLogger returns the logger used by the content resources service.
func ContentLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, contentModule)
}

// CategoriesLogger returns the logger used by the category aggregator.
func CategoriesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, categoriesModule)
}

// ExercisesLogger returns the logger used by the exercise catalog loader.
func ExercisesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, exercisesModule)
}

// HTTPLogger returns the logger used by the JSON adapter.
func HTTPLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, httpModule)
}

// WithRequestContext annotates logger with the resource, HTTP method and
// status of a store request. Empty values and a zero status are skipped.
func WithRequestContext(logger interfaces.Logger, resource, method string, status int) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(resource); trimmed != "" {
		fields[fieldResource] = trimmed
	}
	if trimmed := strings.TrimSpace(method); trimmed != "" {
		fields[fieldMethod] = trimmed
	}
	if status != 0 {
		fields[fieldStatus] = status
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
