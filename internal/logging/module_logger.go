package logging

import (
	"context"
	"strings"

	"github.com/payjnv/kalcufy-sub010/pkg/interfaces"
)

const (
	rootModule         = "kalcufy"
	definitionsModule  = "kalcufy.definitions"
	translationsModule = "kalcufy.translations"
	slugsModule        = "kalcufy.slugs"
	commandsModule     = "kalcufy.commands"
)

const (
	fieldCalculator = "calculator_id"
	fieldLocale     = "locale"
	fieldFallback   = "fallback"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
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

// DefinitionsLogger returns the logger namespace reserved for the definition registry.
func DefinitionsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, definitionsModule)
}

// TranslationsLogger returns the logger namespace reserved for translation resolution.
func TranslationsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, translationsModule)
}

// SlugsLogger returns the logger namespace reserved for the slug registry.
func SlugsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, slugsModule)
}

// CommandsLogger returns the logger namespace reserved for command handlers.
func CommandsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, commandsModule)
}

// WithResolutionContext enriches the provided logger with the calculator id,
// locale, and fallback flag common to every resolution log line. Empty values
// are ignored.
func WithResolutionContext(logger interfaces.Logger, calculatorID, locale string, fallback bool) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(calculatorID); trimmed != "" {
		fields[fieldCalculator] = trimmed
	}
	if trimmed := strings.TrimSpace(locale); trimmed != "" {
		fields[fieldLocale] = trimmed
	}
	if fallback {
		fields[fieldFallback] = true
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
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

func (l noopLogger) WithContext(context.Context) interfaces.Logger { return l }
