package translationscmd

import (
	"context"
	"fmt"

	"github.com/payjnv/kalcufy-sub010/internal/commands"
	"github.com/payjnv/kalcufy-sub010/internal/translation"
	"github.com/payjnv/kalcufy-sub010/pkg/interfaces"
)

// TemplateSink receives a generated translation template. Implementations
// decide where it lands (stdout, a file under the translations tree, an
// editor buffer).
type TemplateSink func(ctx context.Context, calculatorID, locale string, template translation.RawTranslation) error

// ReportSink receives the validation summary for a calculator.
type ReportSink func(ctx context.Context, summary translation.Summary) error

// ValidateTranslationsHandler runs the completeness check via the
// translation service and forwards the summary to the configured sink.
type ValidateTranslationsHandler struct {
	inner *commands.Handler[ValidateTranslationsCommand]
}

// NewValidateTranslationsHandler constructs a handler wired to the provided translation service.
func NewValidateTranslationsHandler(service *translation.Service, sink ReportSink, logger interfaces.Logger, opts ...commands.HandlerOption[ValidateTranslationsCommand]) *ValidateTranslationsHandler {
	exec := func(ctx context.Context, msg ValidateTranslationsCommand) error {
		summary, err := service.ValidateTranslations(ctx, msg.CalculatorID)
		if err != nil {
			return err
		}
		if sink != nil {
			if err := sink(ctx, summary); err != nil {
				return fmt.Errorf("translations: report sink: %w", err)
			}
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ValidateTranslationsCommand]{
		commands.WithLogger[ValidateTranslationsCommand](logger),
		commands.WithOperation[ValidateTranslationsCommand]("translations.validate"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ValidateTranslationsHandler{
		inner: commands.NewHandler[ValidateTranslationsCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ValidateTranslationsCommand].Execute.
func (h *ValidateTranslationsHandler) Execute(ctx context.Context, msg ValidateTranslationsCommand) error {
	return h.inner.Execute(ctx, msg)
}

// GenerateTemplateHandler produces translation templates via the translation
// service and forwards them to the configured sink.
type GenerateTemplateHandler struct {
	inner *commands.Handler[GenerateTemplateCommand]
}

// NewGenerateTemplateHandler constructs a handler wired to the provided translation service.
func NewGenerateTemplateHandler(service *translation.Service, sink TemplateSink, logger interfaces.Logger, opts ...commands.HandlerOption[GenerateTemplateCommand]) *GenerateTemplateHandler {
	exec := func(ctx context.Context, msg GenerateTemplateCommand) error {
		template, err := service.Template(ctx, msg.CalculatorID, msg.Locale)
		if err != nil {
			return err
		}
		if sink != nil {
			if err := sink(ctx, msg.CalculatorID, msg.Locale, template); err != nil {
				return fmt.Errorf("translations: template sink: %w", err)
			}
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[GenerateTemplateCommand]{
		commands.WithLogger[GenerateTemplateCommand](logger),
		commands.WithOperation[GenerateTemplateCommand]("translations.template"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &GenerateTemplateHandler{
		inner: commands.NewHandler[GenerateTemplateCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[GenerateTemplateCommand].Execute.
func (h *GenerateTemplateHandler) Execute(ctx context.Context, msg GenerateTemplateCommand) error {
	return h.inner.Execute(ctx, msg)
}

// InvalidateCacheHandler evicts cached translation files.
type InvalidateCacheHandler struct {
	inner *commands.Handler[InvalidateCacheCommand]
}

// NewInvalidateCacheHandler constructs a handler wired to the provided translation service.
func NewInvalidateCacheHandler(service *translation.Service, logger interfaces.Logger, opts ...commands.HandlerOption[InvalidateCacheCommand]) *InvalidateCacheHandler {
	exec := func(ctx context.Context, msg InvalidateCacheCommand) error {
		service.Invalidate(msg.CalculatorID, msg.Locale)
		return nil
	}

	handlerOpts := []commands.HandlerOption[InvalidateCacheCommand]{
		commands.WithLogger[InvalidateCacheCommand](logger),
		commands.WithOperation[InvalidateCacheCommand]("translations.invalidate"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &InvalidateCacheHandler{
		inner: commands.NewHandler[InvalidateCacheCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[InvalidateCacheCommand].Execute.
func (h *InvalidateCacheHandler) Execute(ctx context.Context, msg InvalidateCacheCommand) error {
	return h.inner.Execute(ctx, msg)
}
