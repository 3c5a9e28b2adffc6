package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/payjnv/kalcufy-sub010/cmd/i18n/internal/bootstrap"
	translationscmd "github.com/payjnv/kalcufy-sub010/internal/commands/translations"
	"github.com/payjnv/kalcufy-sub010/internal/translation"
)

var moduleBuilder = bootstrap.BuildEngine

func main() {
	if err := runValidate(os.Args[1:]); err != nil {
		log.Fatalf("i18n validate: %v", err)
	}
}

func runValidate(args []string) error {
	fs := flag.NewFlagSet("i18n-validate", flag.ExitOnError)
	definitionsDir := fs.String("definitions", "definitions", "Path to the calculator definition root")
	translationsDir := fs.String("translations", "translations", "Path to the translation file root")
	calculator := fs.String("calculator", "", "Calculator ID to validate (defaults to every registered calculator)")
	locales := fs.String("locales", "", "Comma separated list of locales (defaults to config locales)")
	defaultLocale := fs.String("default-locale", "", "Default locale used for fallback resolution")
	mandatory := fs.String("mandatory", "", "Comma separated list of locales that must be complete")
	logLevel := fs.String("log-level", "info", "Log level for CLI output")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		DefinitionsDir:   *definitionsDir,
		TranslationsDir:  *translationsDir,
		DefaultLocale:    *defaultLocale,
		Locales:          bootstrap.SplitLocales(*locales),
		MandatoryLocales: bootstrap.SplitLocales(*mandatory),
		LogLevel:         *logLevel,
	})
	if err != nil {
		return fmt.Errorf("bootstrap engine: %w", err)
	}

	targets := module.Engine.Definitions().IDs()
	if *calculator != "" {
		targets = []string{*calculator}
	}
	if len(targets) == 0 {
		return fmt.Errorf("no calculator definitions found under %s", *definitionsDir)
	}

	ctx := context.Background()
	invalid := 0
	sink := func(_ context.Context, summary translation.Summary) error {
		if !summary.IsValid {
			invalid++
		}
		printSummary(os.Stdout, summary)
		return nil
	}

	handler := translationscmd.NewValidateTranslationsHandler(module.Engine.Translations(), sink, module.CommandLogger)
	for _, id := range targets {
		cmd := translationscmd.ValidateTranslationsCommand{CalculatorID: id}
		if err := handler.Execute(ctx, cmd); err != nil {
			return fmt.Errorf("validate %s: %w", id, err)
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d calculator(s) have incomplete mandatory translations", invalid)
	}
	fmt.Fprintln(os.Stdout, "all translations complete")
	return nil
}

func printSummary(out *os.File, summary translation.Summary) {
	fmt.Fprintf(out, "%s:\n", summary.CalculatorID)
	for _, report := range summary.Reports {
		status := "ok"
		if !report.IsValid {
			status = fmt.Sprintf("%d missing, %d empty", len(report.MissingKeys), len(report.EmptyKeys))
		}
		fmt.Fprintf(out, "  %s: %s\n", report.Locale, status)
		for _, key := range report.MissingKeys {
			fmt.Fprintf(out, "    missing %s\n", key)
		}
		for _, key := range report.EmptyKeys {
			fmt.Fprintf(out, "    empty   %s\n", key)
		}
	}
	for _, progress := range summary.Progress {
		fmt.Fprintf(out, "  %s progress: %d/%d\n", progress.Locale, progress.CompletedKeys, progress.TotalKeys)
	}
}
