package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/payjnv/kalcufy-sub010/cmd/i18n/internal/bootstrap"
	translationscmd "github.com/payjnv/kalcufy-sub010/internal/commands/translations"
	"github.com/payjnv/kalcufy-sub010/internal/translation"
)

var moduleBuilder = bootstrap.BuildEngine

func main() {
	if err := runTemplate(os.Args[1:]); err != nil {
		log.Fatalf("i18n template: %v", err)
	}
}

func runTemplate(args []string) error {
	fs := flag.NewFlagSet("i18n-template", flag.ExitOnError)
	definitionsDir := fs.String("definitions", "definitions", "Path to the calculator definition root")
	translationsDir := fs.String("translations", "translations", "Path to the translation file root")
	calculator := fs.String("calculator", "", "Calculator ID to generate a template for")
	locale := fs.String("locale", "", "Locale to generate a template for")
	out := fs.String("out", "", "Output file (defaults to stdout; use 'tree' to write under the translations root)")
	logLevel := fs.String("log-level", "info", "Log level for CLI output")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *calculator == "" {
		return fmt.Errorf("calculator is required")
	}
	if *locale == "" {
		return fmt.Errorf("locale is required")
	}

	module, err := moduleBuilder(bootstrap.Options{
		DefinitionsDir:  *definitionsDir,
		TranslationsDir: *translationsDir,
		LogLevel:        *logLevel,
	})
	if err != nil {
		return fmt.Errorf("bootstrap engine: %w", err)
	}

	sink := func(_ context.Context, calculatorID, locale string, template translation.RawTranslation) error {
		encoded, err := json.MarshalIndent(template, "", "  ")
		if err != nil {
			return err
		}
		encoded = append(encoded, '\n')

		switch *out {
		case "":
			_, err = os.Stdout.Write(encoded)
			return err
		case "tree":
			path := filepath.Join(*translationsDir, calculatorID, locale+".json")
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(path, encoded, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "template written to %s (%d TODO items)\n", path, translation.CountTodoItems(template))
			return nil
		default:
			if err := os.WriteFile(*out, encoded, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "template written to %s (%d TODO items)\n", *out, translation.CountTodoItems(template))
			return nil
		}
	}

	handler := translationscmd.NewGenerateTemplateHandler(module.Engine.Translations(), sink, module.CommandLogger)
	cmd := translationscmd.GenerateTemplateCommand{
		CalculatorID: *calculator,
		Locale:       *locale,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute template command: %w", err)
	}
	return nil
}
